package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/cleitonmarx/symbiont-ai-mixby/internal/adapters/outbound/pubsub"
	"github.com/cleitonmarx/symbiont-ai-mixby/internal/domain"
	"github.com/spf13/cobra"
)

func newPublishCatalogUpdatedCommand() *cobra.Command {
	var (
		projectID string
		topicID   string
		source    string
		timeout   time.Duration
	)
	cmd := &cobra.Command{
		Use:   "publish-catalog-updated",
		Short: "Notify running servers that the catalog source changed",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
			defer cancel()

			client, err := pubsub.NewClient(ctx, projectID)
			if err != nil {
				return err
			}
			defer client.Close() //nolint:errcheck

			publisher := pubsub.NewPubSubCatalogEventPublisher(client, topicID)
			err = publisher.PublishCatalogEvent(ctx, domain.CatalogEvent{
				Type:       domain.EventType_CATALOG_UPDATED,
				Source:     source,
				OccurredAt: time.Now().UTC(),
			})
			if err != nil {
				return fmt.Errorf("failed to publish catalog event: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "published %s to %s\n", domain.EventType_CATALOG_UPDATED, topicID)
			return nil
		},
	}
	cmd.Flags().StringVar(&projectID, "project", os.Getenv("PUBSUB_PROJECT_ID"), "Pub/Sub project id")
	cmd.Flags().StringVar(&topicID, "topic", envOr("CATALOG_EVENTS_TOPIC_ID", "catalog-events"), "catalog events topic id")
	cmd.Flags().StringVar(&source, "source", os.Getenv("CATALOG_FILE"), "catalog source reported in the event")
	cmd.Flags().DurationVar(&timeout, "timeout", 30*time.Second, "publish timeout")
	return cmd
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
