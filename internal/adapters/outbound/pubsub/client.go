package pubsub

import (
	"context"
	"fmt"
	"log"

	pubsubV2 "cloud.google.com/go/pubsub/v2"
	"github.com/cleitonmarx/symbiont-ai-mixby/internal/domain"
	"github.com/cleitonmarx/symbiont/depend"
	"google.golang.org/api/option"
)

// NewClient creates a Pub/Sub client for the given project.
// The PUBSUB_EMULATOR_HOST environment variable is honored by the underlying library.
func NewClient(ctx context.Context, projectID string, opts ...option.ClientOption) (*pubsubV2.Client, error) {
	if projectID == "" {
		return nil, domain.NewConfigurationErr("PUBSUB_PROJECT_ID is required")
	}
	client, err := pubsubV2.NewClient(ctx, projectID, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create pubsub client: %w", err)
	}
	return client, nil
}

// InitClient registers a shared *pubsub.Client in the dependency container.
type InitClient struct {
	Logger    *log.Logger `resolve:""`
	ProjectID string      `config:"PUBSUB_PROJECT_ID"`
	client    *pubsubV2.Client
}

// Initialize creates the client unless one was injected.
func (i *InitClient) Initialize(ctx context.Context) (context.Context, error) {
	if i.client == nil {
		client, err := NewClient(ctx, i.ProjectID)
		if err != nil {
			return ctx, err
		}
		i.client = client
	}

	depend.Register(i.client)

	return ctx, nil
}

// Close releases the client connection.
func (i *InitClient) Close() {
	if i.client == nil {
		return
	}
	if err := i.client.Close(); err != nil {
		i.Logger.Printf("InitClient: failed to close pubsub client: %v", err)
	}
}
