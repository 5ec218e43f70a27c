package retrieval

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

var (
	meter                  = otel.Meter("retrieval")
	EmbeddingCacheRequests metric.Int64Counter
	EmbeddingCacheEvicted  metric.Int64Counter
)

func init() {
	var err error
	EmbeddingCacheRequests, err = meter.Int64Counter(
		"embedding_cache_requests_total",
		metric.WithDescription("Embedding cache lookups by result"),
	)
	if err != nil {
		panic(err)
	}

	EmbeddingCacheEvicted, err = meter.Int64Counter(
		"embedding_cache_evictions_total",
		metric.WithDescription("Entries evicted from the embedding cache"),
	)
	if err != nil {
		panic(err)
	}
}

// RecordCacheLookup records a cache hit or miss.
func RecordCacheLookup(ctx context.Context, hit bool) {
	result := "miss"
	if hit {
		result = "hit"
	}
	EmbeddingCacheRequests.Add(ctx, 1, metric.WithAttributes(
		attribute.String("result", result),
	))
}
