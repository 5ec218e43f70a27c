package workers

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"time"

	"cloud.google.com/go/pubsub/v2"
	"github.com/cleitonmarx/symbiont-ai-mixby/internal/domain"
	"github.com/cleitonmarx/symbiont-ai-mixby/internal/usecases"
)

// CatalogEventSubscriber consumes catalog events from Pub/Sub
// and refreshes the catalog and the vector index.
type CatalogEventSubscriber struct {
	Logger              *log.Logger             `resolve:""`
	Client              *pubsub.Client          `resolve:""`
	Interval            time.Duration           `config:"CATALOG_EVENTS_BATCH_INTERVAL" default:"3s"`
	BatchSize           int                     `config:"CATALOG_EVENTS_BATCH_SIZE" default:"20"`
	SubscriptionID      string                  `config:"CATALOG_EVENTS_SUBSCRIPTION_ID" default:"catalog-events-mixby"`
	RefreshCatalog      usecases.RefreshCatalog `resolve:""`
	workerExecutionChan chan struct{}
}

// Run starts the catalog event subscriber worker.
func (s CatalogEventSubscriber) Run(ctx context.Context) error {
	s.Logger.Println("CatalogEventSubscriber: running...")

	if s.BatchSize <= 0 {
		s.BatchSize = 20
	}
	if s.Interval <= 0 {
		s.Interval = 3 * time.Second
	}

	eventCh := make(chan *pubsub.Message, s.BatchSize*2)
	subscriberInitErrCh := make(chan error, 1)

	// 1. Receive messages in background (blocking call).
	go func() {
		err := s.Client.Subscriber(s.SubscriptionID).Receive(ctx, func(ctx context.Context, msg *pubsub.Message) {
			select {
			case eventCh <- msg:
				// Ack later, after batching.
			case <-ctx.Done():
				msg.Nack()
			}
		})

		if err != nil {
			subscriberInitErrCh <- err
		}
	}()

	// 2. Batch + flush loop. Bursts of updates collapse into one refresh.
	ticker := time.NewTicker(s.Interval)
	defer ticker.Stop()

	var batch []*pubsub.Message

	for {
		select {
		case <-ctx.Done():
			s.Logger.Println("CatalogEventSubscriber: stopped")
			return nil

		case err := <-subscriberInitErrCh:
			return err

		case msg := <-eventCh:
			batch = append(batch, msg)
			if len(batch) >= s.BatchSize {
				s.flush(ctx, batch)
				batch = nil
			}

		case <-ticker.C:
			if len(batch) > 0 {
				s.flush(ctx, batch)
				batch = nil
			}
		}
	}
}

// flush processes one batch of Pub/Sub messages.
func (s CatalogEventSubscriber) flush(ctx context.Context, batch []*pubsub.Message) {
	s.Logger.Printf("CatalogEventSubscriber: processing batch size=%d", len(batch))

	if s.workerExecutionChan != nil {
		select {
		case s.workerExecutionChan <- struct{}{}:
		case <-ctx.Done():
		}
	}

	var updates []*pubsub.Message
	for _, msg := range batch {
		var event domain.CatalogEvent
		if err := json.Unmarshal(msg.Data, &event); err != nil {
			s.Logger.Printf("CatalogEventSubscriber: failed to decode event payload: %v", err)
			msg.Nack()
			continue
		}

		// Ignore unrelated events that may be delivered to this subscription.
		if event.Type != domain.EventType_CATALOG_UPDATED {
			msg.Ack()
			continue
		}
		updates = append(updates, msg)
	}

	if len(updates) == 0 {
		return
	}

	res, err := s.RefreshCatalog.Execute(ctx)
	if err != nil {
		for _, msg := range updates {
			msg.Nack()
		}
		if !errors.Is(err, context.Canceled) {
			s.Logger.Printf("CatalogEventSubscriber: %v", err)
		}
		return
	}
	s.Logger.Printf("CatalogEventSubscriber: vector index rebuilt with %d records", res.Count)

	for _, msg := range updates {
		msg.Ack()
	}
}
