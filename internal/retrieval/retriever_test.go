package retrieval

import (
	"context"
	"errors"
	"io"
	"log"
	"testing"
	"time"

	"github.com/cleitonmarx/symbiont-ai-mixby/internal/domain"
	domain_mocks "github.com/cleitonmarx/symbiont-ai-mixby/internal/domain/mocks"
	"github.com/cleitonmarx/symbiont/depend"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestRetriever_FetchK(t *testing.T) {
	tests := map[string]struct {
		cap  int
		n    int
		want int
	}{
		"three-times-n":      {cap: 20, n: 3, want: 9},
		"capped":             {cap: 20, n: 10, want: 20},
		"custom-cap":         {cap: 5, n: 3, want: 5},
		"non-positive-cap":   {cap: 0, n: 10, want: DefaultFetchKCap},
		"single-shortlisted": {cap: 20, n: 1, want: 3},
		"never-below-n":      {cap: 20, n: 50, want: 50},
		"small-cap-keeps-n":  {cap: 5, n: 8, want: 8},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			r := NewRetriever(nil, nil, MMRSelector{lambda: DefaultLambda}, tt.cap)
			assert.Equal(t, tt.want, r.FetchK(tt.n))
		})
	}
}

func TestRetriever_Retrieve(t *testing.T) {
	queryVec := []float64{1, 0, 0}
	pool := []domain.ScoredRecord{
		scored("A", 0.95, 1, 0.1, 0),
		scored("A2", 0.94, 1, 0.11, 0),
		scored("C", 0.90, 0.6, 0, 0.8),
		scored("D", 0.30, 0, 1, 0),
		scored("E", 0.20, 0, 0, 1),
	}
	embedErr := errors.New("embedding backend down")
	searchErr := errors.New("collection missing")

	tests := map[string]struct {
		n         int
		filter    domain.SearchFilter
		diversify bool
		setExpecs func(emb *domain_mocks.MockEmbeddingService, idx *domain_mocks.MockVectorIndex)
		wantIDs   []string
		wantErr   error
	}{
		"diversified": {
			n:         3,
			diversify: true,
			setExpecs: func(emb *domain_mocks.MockEmbeddingService, idx *domain_mocks.MockVectorIndex) {
				emb.EXPECT().Embed(mock.Anything, "refreshing evening drink").
					Return(domain.EmbeddingVector{Vector: queryVec}, nil)
				idx.EXPECT().Search(mock.Anything, queryVec, 5, domain.SearchFilter{}).
					Return(pool, nil)
			},
			wantIDs: []string{"A", "C", "D"},
		},
		"plain-similarity-order": {
			n: 2,
			setExpecs: func(emb *domain_mocks.MockEmbeddingService, idx *domain_mocks.MockVectorIndex) {
				emb.EXPECT().Embed(mock.Anything, "refreshing evening drink").
					Return(domain.EmbeddingVector{Vector: queryVec}, nil)
				idx.EXPECT().Search(mock.Anything, queryVec, 2, domain.SearchFilter{}).
					Return(pool, nil)
			},
			wantIDs: []string{"A", "A2"},
		},
		"filter-forwarded": {
			n:         1,
			filter:    domain.SearchFilter{AllowedIDs: []string{"D"}},
			diversify: true,
			setExpecs: func(emb *domain_mocks.MockEmbeddingService, idx *domain_mocks.MockVectorIndex) {
				emb.EXPECT().Embed(mock.Anything, "refreshing evening drink").
					Return(domain.EmbeddingVector{Vector: queryVec}, nil)
				idx.EXPECT().Search(mock.Anything, queryVec, 3, domain.SearchFilter{AllowedIDs: []string{"D"}}).
					Return([]domain.ScoredRecord{pool[3]}, nil)
			},
			wantIDs: []string{"D"},
		},
		"no-eligible-records": {
			n:         3,
			filter:    domain.SearchFilter{AllowedIDs: []string{}},
			diversify: true,
			setExpecs: func(emb *domain_mocks.MockEmbeddingService, idx *domain_mocks.MockVectorIndex) {
				emb.EXPECT().Embed(mock.Anything, "refreshing evening drink").
					Return(domain.EmbeddingVector{Vector: queryVec}, nil)
				idx.EXPECT().Search(mock.Anything, queryVec, 5, domain.SearchFilter{AllowedIDs: []string{}}).
					Return([]domain.ScoredRecord{}, nil)
			},
			wantIDs: []string{},
		},
		"invalid-n": {
			n:         0,
			setExpecs: func(emb *domain_mocks.MockEmbeddingService, idx *domain_mocks.MockVectorIndex) {},
			wantErr:   domain.NewValidationErr("n must be greater than 0"),
		},
		"embed-error": {
			n: 3,
			setExpecs: func(emb *domain_mocks.MockEmbeddingService, idx *domain_mocks.MockVectorIndex) {
				emb.EXPECT().Embed(mock.Anything, "refreshing evening drink").
					Return(domain.EmbeddingVector{}, embedErr)
			},
			wantErr: embedErr,
		},
		"search-error": {
			n: 3,
			setExpecs: func(emb *domain_mocks.MockEmbeddingService, idx *domain_mocks.MockVectorIndex) {
				emb.EXPECT().Embed(mock.Anything, "refreshing evening drink").
					Return(domain.EmbeddingVector{Vector: queryVec}, nil)
				idx.EXPECT().Search(mock.Anything, queryVec, 3, domain.SearchFilter{}).
					Return(nil, searchErr)
			},
			wantErr: searchErr,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			emb := domain_mocks.NewMockEmbeddingService(t)
			idx := domain_mocks.NewMockVectorIndex(t)
			tt.setExpecs(emb, idx)

			selector, err := NewMMRSelector(DefaultLambda)
			require.NoError(t, err)
			r := NewRetriever(emb, idx, selector, 5)

			got, err := r.Retrieve(context.Background(), "refreshing evening drink", tt.n, tt.filter, tt.diversify)
			if tt.wantErr != nil {
				var vErr *domain.ValidationErr
				if errors.As(tt.wantErr, &vErr) {
					assert.Equal(t, tt.wantErr, err)
				} else {
					assert.ErrorIs(t, err, tt.wantErr)
				}
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantIDs, ids(got))
		})
	}
}

func TestInitRetriever_Initialize(t *testing.T) {
	tests := map[string]struct {
		lambda   string
		failures int
		wantErr  bool
	}{
		"valid":            {lambda: "0.7", failures: 5},
		"not-a-number":     {lambda: "half", failures: 5, wantErr: true},
		"out-of-range":     {lambda: "2", failures: 5, wantErr: true},
		"invalid-failures": {lambda: "0.5", failures: 0, wantErr: true},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Cleanup(depend.ClearContainer)

			cache, err := NewEmbeddingCache(domain_mocks.NewMockEmbeddingService(t), 4)
			require.NoError(t, err)

			i := InitRetriever{
				Logger:           log.New(io.Discard, "", 0),
				Cache:            cache,
				Index:            domain_mocks.NewMockVectorIndex(t),
				Lambda:           tt.lambda,
				FetchKCap:        20,
				FailureThreshold: tt.failures,
				OpenTimeout:      time.Second,
			}
			_, err = i.Initialize(context.Background())
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)

			r, err := depend.Resolve[domain.CandidateRetriever]()
			require.NoError(t, err)
			assert.IsType(t, &BreakerRetriever{}, r)
		})
	}
}
