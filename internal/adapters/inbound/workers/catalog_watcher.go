package workers

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/cleitonmarx/symbiont-ai-mixby/internal/domain"
)

// CatalogWatcher is a runnable that polls the catalog file and publishes
// a catalog-updated event whenever its modification time changes.
type CatalogWatcher struct {
	Publisher           domain.CatalogEventPublisher `resolve:""`
	TimeProvider        domain.CurrentTimeProvider   `resolve:""`
	Logger              *log.Logger                  `resolve:""`
	File                string                       `config:"CATALOG_FILE"`
	Interval            time.Duration                `config:"CATALOG_WATCH_INTERVAL" default:"30s"`
	workerExecutionChan chan struct{}
}

// Run starts the periodic check of the catalog file.
func (w CatalogWatcher) Run(ctx context.Context) error {
	w.Logger.Println("CatalogWatcher: running...")
	ticker := time.NewTicker(w.Interval)
	defer ticker.Stop()

	lastModified := w.modTime()

	for {
		select {
		case <-ticker.C:
			modified := w.modTime()
			if !modified.IsZero() && !modified.Equal(lastModified) {
				err := w.Publisher.PublishCatalogEvent(ctx, domain.CatalogEvent{
					Type:       domain.EventType_CATALOG_UPDATED,
					Source:     w.File,
					OccurredAt: w.TimeProvider.Now(),
				})
				if err != nil {
					w.Logger.Printf("CatalogWatcher: failed to publish catalog event: %v", err)
				} else {
					lastModified = modified
				}
			}
			if w.workerExecutionChan != nil {
				select {
				case w.workerExecutionChan <- struct{}{}:
				case <-ctx.Done():
				}
			}
		case <-ctx.Done():
			w.Logger.Println("CatalogWatcher: stopped")
			return nil
		}
	}
}

// modTime returns the zero time when the file cannot be read.
func (w CatalogWatcher) modTime() time.Time {
	info, err := os.Stat(w.File)
	if err != nil {
		w.Logger.Printf("CatalogWatcher: failed to stat %s: %v", w.File, err)
		return time.Time{}
	}
	return info.ModTime()
}
