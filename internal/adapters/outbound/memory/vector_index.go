// Package memory provides an in-process vector index for standalone runs and tests.
package memory

import (
	"cmp"
	"context"
	"slices"
	"sync"
	"sync/atomic"

	"github.com/cleitonmarx/symbiont-ai-mixby/internal/common"
	"github.com/cleitonmarx/symbiont-ai-mixby/internal/domain"
	"github.com/cleitonmarx/symbiont-ai-mixby/internal/telemetry"
	"github.com/cleitonmarx/symbiont/depend"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// collection is an immutable set of records. Writers build a new one and swap it in.
type collection struct {
	records []domain.EmbeddingRecord
}

// VectorIndex implements domain.VectorIndex with exact cosine search over copy-on-write snapshots.
type VectorIndex struct {
	mu          sync.Mutex
	collections map[string]*atomic.Pointer[collection]
	active      atomic.Pointer[atomic.Pointer[collection]]
}

// NewVectorIndex creates an empty index.
func NewVectorIndex() *VectorIndex {
	return &VectorIndex{
		collections: map[string]*atomic.Pointer[collection]{},
	}
}

// Initialize creates the named collection or attaches to it.
func (vi *VectorIndex) Initialize(_ context.Context, name string) error {
	if name == "" {
		return domain.NewValidationErr("collection name is required")
	}

	vi.mu.Lock()
	defer vi.mu.Unlock()

	ptr, ok := vi.collections[name]
	if !ok {
		ptr = &atomic.Pointer[collection]{}
		ptr.Store(&collection{})
		vi.collections[name] = ptr
	}
	vi.active.Store(ptr)
	return nil
}

// Add appends records to the collection.
func (vi *VectorIndex) Add(_ context.Context, records []domain.EmbeddingRecord) error {
	ptr, err := vi.current()
	if err != nil {
		return err
	}

	vi.mu.Lock()
	defer vi.mu.Unlock()

	old := ptr.Load()
	next := &collection{records: make([]domain.EmbeddingRecord, 0, len(old.records)+len(records))}
	next.records = append(next.records, old.records...)
	for _, r := range records {
		next.records = append(next.records, cloneRecord(r))
	}
	ptr.Store(next)
	return nil
}

// Replace swaps the collection contents for records in one step.
func (vi *VectorIndex) Replace(_ context.Context, records []domain.EmbeddingRecord) error {
	ptr, err := vi.current()
	if err != nil {
		return err
	}

	next := &collection{records: make([]domain.EmbeddingRecord, len(records))}
	for i, r := range records {
		next.records[i] = cloneRecord(r)
	}

	vi.mu.Lock()
	defer vi.mu.Unlock()
	ptr.Store(next)
	return nil
}

// Search scores every eligible record and returns the k best.
// Ties are ordered by id so results are stable.
func (vi *VectorIndex) Search(ctx context.Context, query []float64, k int, filter domain.SearchFilter) ([]domain.ScoredRecord, error) {
	_, span := telemetry.Start(ctx, trace.WithAttributes(
		attribute.Int("k", k),
		attribute.Bool("restricted", filter.Restricted()),
	))
	defer span.End()

	ptr, err := vi.current()
	if telemetry.RecordErrorAndStatus(span, err) {
		return nil, err
	}
	if k <= 0 {
		err := domain.NewValidationErr("k must be greater than 0")
		telemetry.RecordErrorAndStatus(span, err)
		return nil, err
	}

	allowed := filter.AllowedSet()
	snap := ptr.Load()

	scored := make([]domain.ScoredRecord, 0, len(snap.records))
	for _, r := range snap.records {
		if allowed != nil {
			if _, ok := allowed[r.ID]; !ok {
				continue
			}
		}
		scored = append(scored, domain.ScoredRecord{
			Record:     cloneRecord(r),
			Similarity: common.SimilarityOrZero(query, r.Vector),
		})
	}

	slices.SortStableFunc(scored, func(a, b domain.ScoredRecord) int {
		if c := cmp.Compare(b.Similarity, a.Similarity); c != 0 {
			return c
		}
		return cmp.Compare(a.Record.ID, b.Record.ID)
	})

	if len(scored) > k {
		scored = scored[:k]
	}
	span.SetAttributes(attribute.Int("results", len(scored)))
	return scored, nil
}

// Count returns the number of records in the collection.
func (vi *VectorIndex) Count(_ context.Context) (int, error) {
	ptr, err := vi.current()
	if err != nil {
		return 0, err
	}
	return len(ptr.Load().records), nil
}

// Clear empties the collection.
func (vi *VectorIndex) Clear(ctx context.Context) error {
	return vi.Replace(ctx, nil)
}

// IsInitialized reports whether the collection holds at least one record.
func (vi *VectorIndex) IsInitialized(ctx context.Context) (bool, error) {
	if vi.active.Load() == nil {
		return false, nil
	}
	count, err := vi.Count(ctx)
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (vi *VectorIndex) current() (*atomic.Pointer[collection], error) {
	ptr := vi.active.Load()
	if ptr == nil {
		return nil, domain.NewValidationErr("vector index is not initialized")
	}
	return ptr, nil
}

func cloneRecord(r domain.EmbeddingRecord) domain.EmbeddingRecord {
	r.Vector = slices.Clone(r.Vector)
	return r
}

// InitVectorIndex registers an in-memory domain.VectorIndex.
type InitVectorIndex struct {
	Collection string `config:"VECTOR_COLLECTION" default:"cocktails"`
}

// Initialize creates the collection and registers the index.
func (i InitVectorIndex) Initialize(ctx context.Context) (context.Context, error) {
	index := NewVectorIndex()
	if err := index.Initialize(ctx, i.Collection); err != nil {
		return ctx, err
	}
	depend.Register[domain.VectorIndex](index)
	return ctx, nil
}
