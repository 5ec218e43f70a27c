package pubsub

import (
	"context"
	"encoding/json"
	"fmt"

	pubsubV2 "cloud.google.com/go/pubsub/v2"
	"github.com/cleitonmarx/symbiont-ai-mixby/internal/domain"
	"github.com/cleitonmarx/symbiont-ai-mixby/internal/telemetry"
	"github.com/cleitonmarx/symbiont/depend"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// PubSubCatalogEventPublisher implements domain.CatalogEventPublisher using Google Cloud Pub/Sub.
type PubSubCatalogEventPublisher struct {
	client  *pubsubV2.Client
	topicID string
}

// NewPubSubCatalogEventPublisher creates a new instance of PubSubCatalogEventPublisher.
func NewPubSubCatalogEventPublisher(client *pubsubV2.Client, topicID string) PubSubCatalogEventPublisher {
	return PubSubCatalogEventPublisher{client: client, topicID: topicID}
}

// PublishCatalogEvent publishes the event as JSON and waits for the server acknowledgement.
func (p PubSubCatalogEventPublisher) PublishCatalogEvent(ctx context.Context, event domain.CatalogEvent) error {
	spanCtx, span := telemetry.Start(ctx,
		trace.WithAttributes(
			attribute.String("event_type", string(event.Type)),
			attribute.String("topic", p.topicID),
		),
	)
	defer span.End()

	payload, err := json.Marshal(event)
	if telemetry.RecordErrorAndStatus(span, err) {
		return fmt.Errorf("failed to encode catalog event: %w", err)
	}

	result := p.client.Publisher(p.topicID).Publish(spanCtx, &pubsubV2.Message{
		Data: payload,
		Attributes: map[string]string{
			"event_type": string(event.Type),
			"source":     event.Source,
		},
	})

	_, err = result.Get(spanCtx)
	if telemetry.RecordErrorAndStatus(span, err) {
		return err
	}
	return nil
}

// InitPublisher initializes the CatalogEventPublisher implementation.
type InitPublisher struct {
	Client  *pubsubV2.Client `resolve:""`
	TopicID string           `config:"CATALOG_EVENTS_TOPIC_ID" default:"catalog-events"`
}

// Initialize registers the PubSubCatalogEventPublisher as the implementation of CatalogEventPublisher.
func (i *InitPublisher) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[domain.CatalogEventPublisher](NewPubSubCatalogEventPublisher(i.Client, i.TopicID))
	return ctx, nil
}
