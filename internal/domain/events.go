package domain

import (
	"context"
	"time"
)

type EventType string

const (
	// EventType_CATALOG_UPDATED is published when the catalog source changed and the index must follow.
	EventType_CATALOG_UPDATED EventType = "CATALOG.UPDATED"
)

// CatalogEvent represents a change notification for the cocktail catalog.
type CatalogEvent struct {
	Type       EventType
	Source     string
	OccurredAt time.Time
}

// CatalogEventPublisher defines the interface for publishing catalog events.
type CatalogEventPublisher interface {
	PublishCatalogEvent(ctx context.Context, event CatalogEvent) error
}
