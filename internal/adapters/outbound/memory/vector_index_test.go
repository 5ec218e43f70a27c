package memory

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/cleitonmarx/symbiont-ai-mixby/internal/domain"
	"github.com/cleitonmarx/symbiont/depend"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func record(id string, vector ...float64) domain.EmbeddingRecord {
	return domain.EmbeddingRecord{
		ID:       id,
		Vector:   vector,
		Metadata: domain.EntryMetadata{Code: id, EnglishName: "cocktail " + id},
	}
}

func newIndex(t *testing.T, records ...domain.EmbeddingRecord) *VectorIndex {
	t.Helper()
	index := NewVectorIndex()
	require.NoError(t, index.Initialize(context.Background(), "cocktails"))
	require.NoError(t, index.Add(context.Background(), records))
	return index
}

func resultIDs(results []domain.ScoredRecord) []string {
	out := make([]string, len(results))
	for i, r := range results {
		out[i] = r.Record.ID
	}
	return out
}

func TestVectorIndex_Search(t *testing.T) {
	index := newIndex(t,
		record("far", 0, 1),
		record("near", 1, 0.1),
		record("exact", 1, 0),
		record("twin", 1, 0),
		record("empty"),
	)

	tests := map[string]struct {
		k        int
		filter   domain.SearchFilter
		expected []string
	}{
		"top-k-by-similarity-ties-by-id": {
			k:        3,
			expected: []string{"exact", "twin", "near"},
		},
		"k-larger-than-collection": {
			k:        10,
			expected: []string{"exact", "twin", "near", "empty", "far"},
		},
		"filter-excludes-better-matches": {
			k:        2,
			filter:   domain.SearchFilter{AllowedIDs: []string{"far", "near"}},
			expected: []string{"near", "far"},
		},
		"filter-with-unknown-ids": {
			k:        2,
			filter:   domain.SearchFilter{AllowedIDs: []string{"missing"}},
			expected: []string{},
		},
		"empty-allow-list": {
			k:        3,
			filter:   domain.SearchFilter{AllowedIDs: []string{}},
			expected: []string{},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got, err := index.Search(context.Background(), []float64{1, 0}, tt.k, tt.filter)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, resultIDs(got))
		})
	}
}

func TestVectorIndex_SearchSimilarity(t *testing.T) {
	index := newIndex(t, record("a", 1, 0), record("b", 0, 1))

	got, err := index.Search(context.Background(), []float64{1, 0}, 2, domain.SearchFilter{})
	require.NoError(t, err)
	assert.InDelta(t, 1.0, got[0].Similarity, 1e-9)
	assert.InDelta(t, 0.0, got[1].Similarity, 1e-9)
	assert.Equal(t, []float64{1, 0}, got[0].Record.Vector)
	assert.Equal(t, "cocktail a", got[0].Record.Metadata.EnglishName)
}

func TestVectorIndex_RequiresInitialize(t *testing.T) {
	index := NewVectorIndex()
	ctx := context.Background()

	_, err := index.Search(ctx, []float64{1}, 1, domain.SearchFilter{})
	assert.IsType(t, &domain.ValidationErr{}, err)
	_, err = index.Count(ctx)
	assert.IsType(t, &domain.ValidationErr{}, err)
	assert.IsType(t, &domain.ValidationErr{}, index.Add(ctx, nil))
	assert.IsType(t, &domain.ValidationErr{}, index.Replace(ctx, nil))
	assert.IsType(t, &domain.ValidationErr{}, index.Clear(ctx))

	initialized, err := index.IsInitialized(ctx)
	assert.NoError(t, err)
	assert.False(t, initialized)

	assert.IsType(t, &domain.ValidationErr{}, index.Initialize(ctx, ""))
}

func TestVectorIndex_Lifecycle(t *testing.T) {
	ctx := context.Background()
	index := NewVectorIndex()
	require.NoError(t, index.Initialize(ctx, "cocktails"))

	initialized, err := index.IsInitialized(ctx)
	require.NoError(t, err)
	assert.False(t, initialized, "an empty collection is not initialized")

	require.NoError(t, index.Add(ctx, []domain.EmbeddingRecord{record("a", 1), record("b", 1)}))
	count, err := index.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	initialized, err = index.IsInitialized(ctx)
	require.NoError(t, err)
	assert.True(t, initialized)

	require.NoError(t, index.Replace(ctx, []domain.EmbeddingRecord{record("c", 1)}))
	got, err := index.Search(ctx, []float64{1}, 5, domain.SearchFilter{})
	require.NoError(t, err)
	assert.Equal(t, []string{"c"}, resultIDs(got))

	require.NoError(t, index.Clear(ctx))
	count, err = index.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, count)

	// re-attaching keeps existing records
	require.NoError(t, index.Add(ctx, []domain.EmbeddingRecord{record("d", 1)}))
	require.NoError(t, index.Initialize(ctx, "cocktails"))
	count, err = index.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestVectorIndex_StoredVectorsAreCopies(t *testing.T) {
	ctx := context.Background()
	vec := []float64{1, 0}
	index := newIndex(t, domain.EmbeddingRecord{ID: "a", Vector: vec})
	vec[0] = 0

	got, err := index.Search(ctx, []float64{1, 0}, 1, domain.SearchFilter{})
	require.NoError(t, err)
	got[0].Record.Vector[1] = 5

	again, err := index.Search(ctx, []float64{1, 0}, 1, domain.SearchFilter{})
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 0}, again[0].Record.Vector)
}

func TestVectorIndex_ReplaceNeverExposesPartialContents(t *testing.T) {
	ctx := context.Background()

	const size = 50
	generation := func(prefix string) []domain.EmbeddingRecord {
		records := make([]domain.EmbeddingRecord, size)
		for i := range records {
			records[i] = record(fmt.Sprintf("%s-%02d", prefix, i), 1, float64(i))
		}
		return records
	}
	index := newIndex(t, generation("old")...)

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		for i := range 100 {
			prefix := "old"
			if i%2 == 0 {
				prefix = "new"
			}
			assert.NoError(t, index.Replace(ctx, generation(prefix)))
		}
	}()
	go func() {
		defer wg.Done()
		for range 200 {
			got, err := index.Search(ctx, []float64{1, 0}, size, domain.SearchFilter{})
			assert.NoError(t, err)
			assert.Len(t, got, size)
			prefix := got[0].Record.ID[:3]
			for _, r := range got {
				assert.Equal(t, prefix, r.Record.ID[:3])
			}
		}
	}()
	wg.Wait()
}

func TestInitVectorIndex_Initialize(t *testing.T) {
	t.Cleanup(depend.ClearContainer)

	_, err := InitVectorIndex{Collection: "cocktails"}.Initialize(context.Background())
	require.NoError(t, err)

	index, err := depend.Resolve[domain.VectorIndex]()
	require.NoError(t, err)

	count, err := index.Count(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, 0, count)
}
