package retrieval

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/cleitonmarx/symbiont-ai-mixby/internal/domain"
	gobreaker "github.com/sony/gobreaker/v2"
)

// BreakerSettings configures the circuit breaker guarding retrieval.
type BreakerSettings struct {
	// FailureThreshold is the number of consecutive failures that opens the breaker.
	FailureThreshold uint32
	// OpenTimeout is how long the breaker stays open before probing again.
	OpenTimeout time.Duration
}

// BreakerRetriever guards a domain.CandidateRetriever with a circuit breaker.
// While the breaker is open, Retrieve fails fast with gobreaker.ErrOpenState.
type BreakerRetriever struct {
	next domain.CandidateRetriever
	cb   *gobreaker.CircuitBreaker[[]domain.ScoredRecord]
}

// NewBreakerRetriever wraps next with a circuit breaker.
func NewBreakerRetriever(next domain.CandidateRetriever, settings BreakerSettings, logger *log.Logger) *BreakerRetriever {
	if settings.FailureThreshold == 0 {
		settings.FailureThreshold = 5
	}
	if settings.OpenTimeout <= 0 {
		settings.OpenTimeout = 30 * time.Second
	}

	cb := gobreaker.NewCircuitBreaker[[]domain.ScoredRecord](gobreaker.Settings{
		Name:        "retrieval",
		MaxRequests: 1,
		Timeout:     settings.OpenTimeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= settings.FailureThreshold
		},
		// Caller cancellations and bad input say nothing about the health of the backends.
		IsSuccessful: func(err error) bool {
			var validationErr *domain.ValidationErr
			return err == nil || errors.Is(err, context.Canceled) || errors.As(err, &validationErr)
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			if logger != nil {
				logger.Printf("BreakerRetriever: %s breaker %s -> %s", name, from, to)
			}
		},
	})

	return &BreakerRetriever{next: next, cb: cb}
}

// Retrieve implements domain.CandidateRetriever.
func (b *BreakerRetriever) Retrieve(ctx context.Context, query string, n int, filter domain.SearchFilter, diversify bool) ([]domain.ScoredRecord, error) {
	return b.cb.Execute(func() ([]domain.ScoredRecord, error) {
		return b.next.Retrieve(ctx, query, n, filter, diversify)
	})
}

// State returns the current breaker state.
func (b *BreakerRetriever) State() gobreaker.State {
	return b.cb.State()
}
