package retrieval

import (
	"context"
	"log"
	"slices"
	"sync"
	"time"

	"github.com/cleitonmarx/symbiont-ai-mixby/internal/domain"
	"github.com/cleitonmarx/symbiont-ai-mixby/internal/telemetry"
	"github.com/cleitonmarx/symbiont/depend"
	"github.com/hashicorp/golang-lru/v2/simplelru"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/singleflight"
)

const defaultEmbedCallTimeout = 30 * time.Second

// EmbeddingCache memoizes query embeddings in a bounded map.
// When full, the entry inserted first is evicted; hits never refresh an entry's position.
// Failed lookups are never cached.
type EmbeddingCache struct {
	service     domain.EmbeddingService
	capacity    int
	callTimeout time.Duration

	mu    sync.Mutex
	store *simplelru.LRU[string, []float64]
	calls singleflight.Group
}

// NewEmbeddingCache creates a cache in front of service holding at most capacity vectors.
func NewEmbeddingCache(service domain.EmbeddingService, capacity int) (*EmbeddingCache, error) {
	if capacity <= 0 {
		return nil, domain.NewValidationErr("embedding cache capacity must be greater than 0")
	}

	// The store is only read with Peek, so its recency order stays the insertion order.
	store, err := simplelru.NewLRU[string, []float64](capacity, func(string, []float64) {
		EmbeddingCacheEvicted.Add(context.Background(), 1)
	})
	if err != nil {
		return nil, err
	}

	return &EmbeddingCache{
		service:     service,
		capacity:    capacity,
		callTimeout: defaultEmbedCallTimeout,
		store:       store,
	}, nil
}

// GetOrCompute returns the vector for text, calling the embedding service only on a miss.
// Concurrent misses for the same text share one service call.
func (c *EmbeddingCache) GetOrCompute(ctx context.Context, text string) (domain.EmbeddingVector, error) {
	spanCtx, span := telemetry.Start(ctx, trace.WithAttributes(
		attribute.Int("text_length", len(text)),
	))
	defer span.End()

	if vec, ok := c.peek(text); ok {
		RecordCacheLookup(spanCtx, true)
		span.SetAttributes(attribute.Bool("cache_hit", true))
		telemetry.RecordErrorAndStatus(span, nil)
		return domain.EmbeddingVector{Vector: vec}, nil
	}
	RecordCacheLookup(spanCtx, false)
	span.SetAttributes(attribute.Bool("cache_hit", false))

	// The shared call outlives any single caller: it is detached from the caller that
	// started it and bounded by callTimeout. Each caller only waits on its own context.
	shared := c.calls.DoChan(text, func() (any, error) {
		if vec, ok := c.peek(text); ok {
			return domain.EmbeddingVector{Vector: vec}, nil
		}
		callCtx, cancel := context.WithTimeout(context.WithoutCancel(spanCtx), c.callTimeout)
		defer cancel()

		vec, err := c.service.Embed(callCtx, text)
		if err != nil {
			return domain.EmbeddingVector{}, err
		}
		c.insert(text, vec.Vector)
		return vec, nil
	})

	select {
	case <-ctx.Done():
		err := ctx.Err()
		telemetry.RecordErrorAndStatus(span, err)
		return domain.EmbeddingVector{}, err
	case res := <-shared:
		if telemetry.RecordErrorAndStatus(span, res.Err) {
			return domain.EmbeddingVector{}, res.Err
		}
		span.SetAttributes(attribute.Bool("shared_call", res.Shared))
		vec := res.Val.(domain.EmbeddingVector)
		vec.Vector = slices.Clone(vec.Vector)
		return vec, nil
	}
}

// Embed implements domain.EmbeddingService with caching.
func (c *EmbeddingCache) Embed(ctx context.Context, text string) (domain.EmbeddingVector, error) {
	return c.GetOrCompute(ctx, text)
}

// EmbedBatch implements domain.EmbeddingService. Batches are index builds, so they bypass the cache.
func (c *EmbeddingCache) EmbedBatch(ctx context.Context, texts []string) ([]domain.EmbeddingVector, error) {
	return c.service.EmbedBatch(ctx, texts)
}

// Len returns the number of cached vectors.
func (c *EmbeddingCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.store.Len()
}

// Capacity returns the maximum number of cached vectors.
func (c *EmbeddingCache) Capacity() int {
	return c.capacity
}

// Contains reports whether text is cached without touching its position.
func (c *EmbeddingCache) Contains(text string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.store.Contains(text)
}

func (c *EmbeddingCache) peek(text string) ([]float64, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	vec, ok := c.store.Peek(text)
	if !ok {
		return nil, false
	}
	return slices.Clone(vec), true
}

// insert stores vec unless another caller already did. Eviction and insertion
// happen in the same critical section.
func (c *EmbeddingCache) insert(text string, vec []float64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.store.Contains(text) {
		return
	}
	c.store.Add(text, slices.Clone(vec))
}

// InitEmbeddingCache wraps the registered embedding service with a cache.
type InitEmbeddingCache struct {
	Logger      *log.Logger             `resolve:""`
	Service     domain.EmbeddingService `resolve:""`
	Capacity    int                     `config:"EMBEDDING_CACHE_SIZE" default:"128"`
	CallTimeout time.Duration           `config:"EMBEDDING_CALL_TIMEOUT" default:"30s"`
}

// Initialize registers the *EmbeddingCache in the dependency container.
func (i InitEmbeddingCache) Initialize(ctx context.Context) (context.Context, error) {
	cache, err := NewEmbeddingCache(i.Service, i.Capacity)
	if err != nil {
		return ctx, err
	}
	if i.CallTimeout > 0 {
		cache.callTimeout = i.CallTimeout
	}
	i.Logger.Printf("InitEmbeddingCache: capacity=%d call_timeout=%s", i.Capacity, cache.callTimeout)
	depend.Register(cache)
	return ctx, nil
}
