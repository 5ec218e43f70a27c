package retrieval

import (
	"fmt"

	"github.com/cleitonmarx/symbiont-ai-mixby/internal/common"
	"github.com/cleitonmarx/symbiont-ai-mixby/internal/domain"
)

// DefaultLambda balances relevance and diversity equally.
const DefaultLambda = 0.5

// MMRSelector re-ranks similarity search results with Maximal Marginal Relevance.
type MMRSelector struct {
	lambda float64
}

// NewMMRSelector creates a selector. Lambda must be within [0, 1]:
// 1 ranks by relevance only, 0 by diversity only.
func NewMMRSelector(lambda float64) (MMRSelector, error) {
	if lambda < 0 || lambda > 1 {
		return MMRSelector{}, domain.NewValidationErr(fmt.Sprintf("mmr lambda must be within [0, 1], got %v", lambda))
	}
	return MMRSelector{lambda: lambda}, nil
}

// Lambda returns the relevance weight.
func (s MMRSelector) Lambda() float64 {
	return s.lambda
}

// Select picks up to n candidates in selection order. The first pick is the most
// relevant candidate; each next pick maximizes
// lambda*relevance - (1-lambda)*max similarity to the picks so far.
// Ties go to the earlier candidate. When no candidate carries a vector, the
// candidates are returned as ranked by the index.
func (s MMRSelector) Select(candidates []domain.ScoredRecord, n int) []domain.ScoredRecord {
	if n <= 0 || len(candidates) == 0 {
		return []domain.ScoredRecord{}
	}

	if !anyVector(candidates) {
		if n > len(candidates) {
			n = len(candidates)
		}
		return append([]domain.ScoredRecord(nil), candidates[:n]...)
	}

	remaining := make([]int, len(candidates))
	for i := range candidates {
		remaining[i] = i
	}

	first := 0
	for i := 1; i < len(candidates); i++ {
		if candidates[i].Similarity > candidates[first].Similarity {
			first = i
		}
	}
	selected := []int{first}
	remaining = removeIndex(remaining, first)

	for len(selected) < n && len(remaining) > 0 {
		bestPos := 0
		bestScore := 0.0
		for pos, idx := range remaining {
			score := s.lambda*candidates[idx].Similarity - (1-s.lambda)*maxSimilarity(candidates, idx, selected)
			if pos == 0 || score > bestScore {
				bestPos, bestScore = pos, score
			}
		}
		selected = append(selected, remaining[bestPos])
		remaining = append(remaining[:bestPos], remaining[bestPos+1:]...)
	}

	out := make([]domain.ScoredRecord, len(selected))
	for i, idx := range selected {
		out[i] = candidates[idx]
	}
	return out
}

func anyVector(candidates []domain.ScoredRecord) bool {
	for _, c := range candidates {
		if len(c.Record.Vector) > 0 {
			return true
		}
	}
	return false
}

func maxSimilarity(candidates []domain.ScoredRecord, idx int, selected []int) float64 {
	best := 0.0
	for i, sel := range selected {
		sim := common.SimilarityOrZero(candidates[idx].Record.Vector, candidates[sel].Record.Vector)
		if i == 0 || sim > best {
			best = sim
		}
	}
	return best
}

func removeIndex(s []int, v int) []int {
	for i, x := range s {
		if x == v {
			return append(s[:i], s[i+1:]...)
		}
	}
	return s
}
