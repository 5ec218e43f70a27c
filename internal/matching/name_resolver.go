package matching

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/agnivade/levenshtein"
	"github.com/cleitonmarx/symbiont-ai-mixby/internal/domain"
	"golang.org/x/text/cases"
	"golang.org/x/text/unicode/norm"
)

// DefaultThreshold is the minimum fuzzy score accepted by the resolver.
const DefaultThreshold = 0.75

// ScopedName is a display name the resolver may snap to.
type ScopedName struct {
	CatalogID string
	Name      string
}

// Resolution is the outcome of resolving one generated name.
type Resolution struct {
	Input     string
	Name      string
	CatalogID string
	Method    domain.NameMatchMethod
	Score     float64
	Resolved  bool
}

type knownName struct {
	ScopedName
	folded string
}

// NameResolver snaps free-text names onto a scoped set of catalog display names.
// Matchers run in order: exact, case insensitive, substring, fuzzy.
type NameResolver struct {
	names     []knownName
	threshold float64
}

// NewNameResolver creates a resolver over names. Blank names are ignored.
func NewNameResolver(names []ScopedName, threshold float64) (*NameResolver, error) {
	if threshold <= 0 || threshold > 1 {
		return nil, domain.NewValidationErr(fmt.Sprintf("name match threshold must be within (0, 1], got %v", threshold))
	}

	r := &NameResolver{threshold: threshold}
	for _, n := range names {
		if strings.TrimSpace(n.Name) == "" {
			continue
		}
		r.names = append(r.names, knownName{ScopedName: n, folded: normalize(n.Name)})
	}
	return r, nil
}

// ScopeFromEntries lists every display name of entries, in entry order.
func ScopeFromEntries(entries []domain.CatalogEntry) []ScopedName {
	var scope []ScopedName
	for _, e := range entries {
		for _, name := range e.DisplayNames() {
			scope = append(scope, ScopedName{CatalogID: e.ID, Name: name})
		}
	}
	return scope
}

// Len returns the number of scoped names.
func (r *NameResolver) Len() int {
	return len(r.names)
}

// Resolve maps input to a scoped name. Unresolved inputs come back unchanged with Resolved unset.
func (r *NameResolver) Resolve(input string) Resolution {
	unresolved := Resolution{
		Input:  input,
		Name:   input,
		Method: domain.NameMatchMethod_Unresolved,
	}

	for _, n := range r.names {
		if n.Name == input {
			return resolved(input, n, domain.NameMatchMethod_Exact, 1)
		}
	}

	folded := normalize(input)
	if folded == "" {
		return unresolved
	}

	for _, n := range r.names {
		if n.folded == folded {
			return resolved(input, n, domain.NameMatchMethod_CaseInsensitive, 1)
		}
	}

	for _, n := range r.names {
		if strings.Contains(folded, n.folded) || strings.Contains(n.folded, folded) {
			return resolved(input, n, domain.NameMatchMethod_Substring, substringScore(folded, n.folded))
		}
	}

	best, bestScore := -1, 0.0
	for i, n := range r.names {
		score := Similarity(folded, n.folded)
		if score > bestScore {
			best, bestScore = i, score
		}
	}
	if best >= 0 && bestScore >= r.threshold {
		return resolved(input, r.names[best], domain.NameMatchMethod_Fuzzy, bestScore)
	}

	unresolved.Score = bestScore
	return unresolved
}

// normalize applies NFC, case folding and whitespace collapsing.
func normalize(s string) string {
	s = norm.NFC.String(s)
	s = cases.Fold().String(s)
	return strings.Join(strings.Fields(s), " ")
}

// Similarity is 1 - levenshtein(a, b) / max rune length, in [0, 1].
func Similarity(a, b string) float64 {
	longest := max(utf8.RuneCountInString(a), utf8.RuneCountInString(b))
	if longest == 0 {
		return 1
	}
	return 1 - float64(levenshtein.ComputeDistance(a, b))/float64(longest)
}

func substringScore(a, b string) float64 {
	la, lb := utf8.RuneCountInString(a), utf8.RuneCountInString(b)
	return float64(min(la, lb)) / float64(max(la, lb))
}

func resolved(input string, n knownName, method domain.NameMatchMethod, score float64) Resolution {
	return Resolution{
		Input:     input,
		Name:      n.Name,
		CatalogID: n.CatalogID,
		Method:    method,
		Score:     score,
		Resolved:  true,
	}
}
