package workers

import (
	"context"
	"io"
	"log"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/cleitonmarx/symbiont-ai-mixby/internal/domain"
	domain_mocks "github.com/cleitonmarx/symbiont-ai-mixby/internal/domain/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCatalogWatcher_Run(t *testing.T) {
	now := time.Date(2026, 5, 2, 18, 0, 0, 0, time.UTC)

	tests := map[string]struct {
		publishErrs []error
	}{
		"publishes-on-change": {
			publishErrs: []error{nil},
		},
		"retries-after-publish-error": {
			publishErrs: []error{assert.AnError, nil},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			file := filepath.Join(t.TempDir(), "cocktails.json")
			require.NoError(t, os.WriteFile(file, []byte(`[]`), 0o600))
			require.NoError(t, os.Chtimes(file, now, now))

			published := make(chan struct{}, len(tt.publishErrs))
			pub := domain_mocks.NewMockCatalogEventPublisher(t)
			for _, publishErr := range tt.publishErrs {
				pub.EXPECT().
					PublishCatalogEvent(mock.Anything, domain.CatalogEvent{
						Type:       domain.EventType_CATALOG_UPDATED,
						Source:     file,
						OccurredAt: now,
					}).
					Run(func(context.Context, domain.CatalogEvent) { published <- struct{}{} }).
					Return(publishErr).
					Once()
			}
			tp := domain_mocks.NewMockCurrentTimeProvider(t)
			tp.EXPECT().Now().Return(now)

			signalChan := make(chan struct{}, 1)
			watcher := CatalogWatcher{
				Publisher:           pub,
				TimeProvider:        tp,
				Logger:              log.New(io.Discard, "", 0),
				File:                file,
				Interval:            2 * time.Millisecond,
				workerExecutionChan: signalChan,
			}

			cancel, doneChan := startWorker(context.Background(), watcher)

			// Unchanged file: ticks pass without publishing.
			waitSignals(t, signalChan, 2, time.Second)

			changed := now.Add(time.Hour)
			require.NoError(t, os.Chtimes(file, changed, changed))

			for range tt.publishErrs {
				select {
				case <-published:
				case <-time.After(time.Second):
					t.Fatal("timeout waiting for catalog event")
				}
				<-signalChan
			}

			// Published modification time is not announced twice.
			waitSignals(t, signalChan, 2, time.Second)

			cancel()
			waitWorkerStop(t, doneChan)
		})
	}
}
