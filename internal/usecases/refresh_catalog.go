package usecases

import (
	"context"
	"fmt"
	"log"
	"sync"

	"github.com/cleitonmarx/symbiont-ai-mixby/internal/domain"
	"github.com/cleitonmarx/symbiont-ai-mixby/internal/telemetry"
	"github.com/cleitonmarx/symbiont/depend"
	"go.opentelemetry.io/otel/attribute"
)

// RefreshCatalog is the use case interface for picking up catalog source changes.
type RefreshCatalog interface {
	// Execute reloads the catalog and force-rebuilds the vector index from the new entries.
	Execute(ctx context.Context) (RebuildResult, error)
}

// RefreshCatalogImpl is the implementation of the RefreshCatalog use case.
type RefreshCatalogImpl struct {
	reloader domain.CatalogReloader
	rebuild  RebuildIndex
	logger   *log.Logger
	mu       *sync.Mutex
}

// NewRefreshCatalogImpl creates a new instance of RefreshCatalogImpl.
func NewRefreshCatalogImpl(reloader domain.CatalogReloader, rebuild RebuildIndex, logger *log.Logger) RefreshCatalogImpl {
	return RefreshCatalogImpl{
		reloader: reloader,
		rebuild:  rebuild,
		logger:   logger,
		mu:       &sync.Mutex{},
	}
}

// Execute implements RefreshCatalog.
// The new catalog is only served once the index was rebuilt from it; a failed reload or
// rebuild leaves both the served catalog and the index as they were. Refreshes run one at a time.
func (rc RefreshCatalogImpl) Execute(ctx context.Context) (RebuildResult, error) {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	rc.mu.Lock()
	defer rc.mu.Unlock()

	staged, err := rc.reloader.Stage(spanCtx)
	if telemetry.RecordErrorAndStatus(span, err) {
		return RebuildResult{}, fmt.Errorf("failed to reload catalog: %w", err)
	}
	span.SetAttributes(attribute.Int("catalog_entries", staged.Len()))

	res, err := rc.rebuild.ExecuteFrom(spanCtx, staged)
	if telemetry.RecordErrorAndStatus(span, err) {
		rc.logger.Printf("RefreshCatalog: index rebuild failed, keeping the previous catalog: %v", err)
		return RebuildResult{}, err
	}

	staged.Commit()
	rc.logger.Printf("RefreshCatalog: catalog reloaded with %d entries", staged.Len())
	return res, nil
}

// InitRefreshCatalog initializes the RefreshCatalog use case.
type InitRefreshCatalog struct {
	Logger   *log.Logger            `resolve:""`
	Reloader domain.CatalogReloader `resolve:""`
	Rebuild  RebuildIndex           `resolve:""`
}

// Initialize registers the RefreshCatalog use case implementation.
func (i InitRefreshCatalog) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[RefreshCatalog](NewRefreshCatalogImpl(i.Reloader, i.Rebuild, i.Logger))
	return ctx, nil
}

// InProcessCatalogEventPublisher delivers catalog events straight to RefreshCatalog.
// It stands in for Pub/Sub when the application runs as a single process.
type InProcessCatalogEventPublisher struct {
	refresh RefreshCatalog
	logger  *log.Logger
}

// NewInProcessCatalogEventPublisher creates a new instance of InProcessCatalogEventPublisher.
func NewInProcessCatalogEventPublisher(refresh RefreshCatalog, logger *log.Logger) InProcessCatalogEventPublisher {
	return InProcessCatalogEventPublisher{refresh: refresh, logger: logger}
}

// PublishCatalogEvent implements domain.CatalogEventPublisher.
func (p InProcessCatalogEventPublisher) PublishCatalogEvent(ctx context.Context, event domain.CatalogEvent) error {
	if event.Type != domain.EventType_CATALOG_UPDATED {
		return nil
	}
	res, err := p.refresh.Execute(ctx)
	if err != nil {
		return err
	}
	p.logger.Printf("InProcessCatalogEventPublisher: %s refreshed, %d records indexed", event.Source, res.Count)
	return nil
}

// InitInProcessCatalogEvents registers the in-process domain.CatalogEventPublisher.
type InitInProcessCatalogEvents struct {
	Logger  *log.Logger    `resolve:""`
	Refresh RefreshCatalog `resolve:""`
}

// Initialize registers the publisher.
func (i InitInProcessCatalogEvents) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[domain.CatalogEventPublisher](NewInProcessCatalogEventPublisher(i.Refresh, i.Logger))
	return ctx, nil
}
