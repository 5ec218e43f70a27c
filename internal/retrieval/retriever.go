package retrieval

import (
	"context"
	"fmt"
	"log"
	"strconv"
	"time"

	"github.com/cleitonmarx/symbiont-ai-mixby/internal/domain"
	"github.com/cleitonmarx/symbiont-ai-mixby/internal/telemetry"
	"github.com/cleitonmarx/symbiont/depend"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// DefaultFetchKCap bounds how many candidates are pulled from the index before MMR runs.
const DefaultFetchKCap = 20

// Retriever implements domain.CandidateRetriever on top of an embedding service and a vector index.
type Retriever struct {
	embedder  domain.EmbeddingService
	index     domain.VectorIndex
	selector  MMRSelector
	fetchKCap int
}

// NewRetriever creates a new Retriever.
func NewRetriever(embedder domain.EmbeddingService, index domain.VectorIndex, selector MMRSelector, fetchKCap int) Retriever {
	if fetchKCap <= 0 {
		fetchKCap = DefaultFetchKCap
	}
	return Retriever{
		embedder:  embedder,
		index:     index,
		selector:  selector,
		fetchKCap: fetchKCap,
	}
}

// FetchK returns how many candidates are searched for a shortlist of n.
// The cap never shrinks the pool below n.
func (r Retriever) FetchK(n int) int {
	return max(n, min(3*n, r.fetchKCap))
}

// Retrieve implements domain.CandidateRetriever.
func (r Retriever) Retrieve(ctx context.Context, query string, n int, filter domain.SearchFilter, diversify bool) ([]domain.ScoredRecord, error) {
	spanCtx, span := telemetry.Start(ctx, trace.WithAttributes(
		attribute.Int("n", n),
		attribute.Bool("diversify", diversify),
		attribute.Bool("restricted", filter.Restricted()),
	))
	defer span.End()

	if n <= 0 {
		err := domain.NewValidationErr("n must be greater than 0")
		telemetry.RecordErrorAndStatus(span, err)
		return nil, err
	}

	vec, err := r.embedder.Embed(spanCtx, query)
	if telemetry.RecordErrorAndStatus(span, err) {
		return nil, fmt.Errorf("embed query: %w", err)
	}

	k := n
	if diversify {
		k = r.FetchK(n)
	}

	candidates, err := r.index.Search(spanCtx, vec.Vector, k, filter)
	if telemetry.RecordErrorAndStatus(span, err) {
		return nil, fmt.Errorf("search index: %w", err)
	}

	if !diversify {
		if len(candidates) > n {
			candidates = candidates[:n]
		}
		return candidates, nil
	}

	return r.selector.Select(candidates, n), nil
}

// InitRetriever builds the MMR retriever over the cached embedding service and the vector index,
// guarded by a circuit breaker.
type InitRetriever struct {
	Logger           *log.Logger        `resolve:""`
	Cache            *EmbeddingCache    `resolve:""`
	Index            domain.VectorIndex `resolve:""`
	Lambda           string             `config:"MMR_LAMBDA" default:"0.5"`
	FetchKCap        int                `config:"MMR_FETCH_K_CAP" default:"20"`
	FailureThreshold int                `config:"RETRIEVAL_BREAKER_FAILURES" default:"5"`
	OpenTimeout      time.Duration      `config:"RETRIEVAL_BREAKER_OPEN_TIMEOUT" default:"30s"`
}

// Initialize registers the domain.CandidateRetriever.
func (i InitRetriever) Initialize(ctx context.Context) (context.Context, error) {
	lambda, err := strconv.ParseFloat(i.Lambda, 64)
	if err != nil {
		return ctx, domain.NewConfigurationErr(fmt.Sprintf("MMR_LAMBDA must be a number: %v", err))
	}
	selector, err := NewMMRSelector(lambda)
	if err != nil {
		return ctx, err
	}
	if i.FailureThreshold <= 0 {
		return ctx, domain.NewConfigurationErr("RETRIEVAL_BREAKER_FAILURES must be greater than 0")
	}

	retriever := NewRetriever(i.Cache, i.Index, selector, i.FetchKCap)
	depend.Register[domain.CandidateRetriever](NewBreakerRetriever(retriever, BreakerSettings{
		FailureThreshold: uint32(i.FailureThreshold),
		OpenTimeout:      i.OpenTimeout,
	}, i.Logger))
	return ctx, nil
}
