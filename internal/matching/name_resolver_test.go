package matching

import (
	"testing"

	"github.com/cleitonmarx/symbiont-ai-mixby/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testScope() []ScopedName {
	return []ScopedName{
		{CatalogID: "1", Name: "모히토"},
		{CatalogID: "1", Name: "Mojito"},
		{CatalogID: "2", Name: "Old Fashioned"},
		{CatalogID: "3", Name: "Negroni"},
		{CatalogID: "4", Name: "Whiskey Sour"},
		{CatalogID: "5", Name: "   "},
	}
}

func TestNewNameResolver(t *testing.T) {
	tests := map[string]struct {
		threshold float64
		wantErr   bool
	}{
		"default":  {threshold: DefaultThreshold},
		"one":      {threshold: 1},
		"zero":     {threshold: 0, wantErr: true},
		"too-high": {threshold: 1.2, wantErr: true},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			r, err := NewNameResolver(testScope(), tt.threshold)
			if tt.wantErr {
				assert.IsType(t, &domain.ValidationErr{}, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, 5, r.Len())
		})
	}
}

func TestNameResolver_Resolve(t *testing.T) {
	r, err := NewNameResolver(testScope(), DefaultThreshold)
	require.NoError(t, err)

	tests := map[string]struct {
		input      string
		wantName   string
		wantID     string
		wantMethod domain.NameMatchMethod
		wantScore  float64
		resolved   bool
	}{
		"exact": {
			input: "Mojito", wantName: "Mojito", wantID: "1",
			wantMethod: domain.NameMatchMethod_Exact, wantScore: 1, resolved: true,
		},
		"exact-korean": {
			input: "모히토", wantName: "모히토", wantID: "1",
			wantMethod: domain.NameMatchMethod_Exact, wantScore: 1, resolved: true,
		},
		"case-and-whitespace": {
			input: "  old   FASHIONED ", wantName: "Old Fashioned", wantID: "2",
			wantMethod: domain.NameMatchMethod_CaseInsensitive, wantScore: 1, resolved: true,
		},
		"generated-name-contains-known": {
			input: "Classic Negroni", wantName: "Negroni", wantID: "3",
			wantMethod: domain.NameMatchMethod_Substring, wantScore: 7.0 / 15.0, resolved: true,
		},
		"known-name-contains-generated": {
			input: "sour", wantName: "Whiskey Sour", wantID: "4",
			wantMethod: domain.NameMatchMethod_Substring, wantScore: 4.0 / 12.0, resolved: true,
		},
		"misspelled": {
			input: "Negrono", wantName: "Negroni", wantID: "3",
			wantMethod: domain.NameMatchMethod_Fuzzy, wantScore: 1 - 1.0/7.0, resolved: true,
		},
		"misspelled-multi-word": {
			input: "Wiskey Sour", wantName: "Whiskey Sour", wantID: "4",
			wantMethod: domain.NameMatchMethod_Fuzzy, wantScore: 1 - 1.0/12.0, resolved: true,
		},
		"unknown": {
			input: "Margarita", wantName: "Margarita",
			wantMethod: domain.NameMatchMethod_Unresolved,
		},
		"empty": {
			input: "", wantName: "",
			wantMethod: domain.NameMatchMethod_Unresolved,
		},
		"blank": {
			input: "   ", wantName: "   ",
			wantMethod: domain.NameMatchMethod_Unresolved,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got := r.Resolve(tt.input)
			assert.Equal(t, tt.input, got.Input)
			assert.Equal(t, tt.wantName, got.Name)
			assert.Equal(t, tt.wantID, got.CatalogID)
			assert.Equal(t, tt.wantMethod, got.Method)
			assert.Equal(t, tt.resolved, got.Resolved)
			if tt.resolved {
				assert.InDelta(t, tt.wantScore, got.Score, 1e-9)
			}
		})
	}
}

func TestNameResolver_ResolveIsIdempotent(t *testing.T) {
	r, err := NewNameResolver(testScope(), DefaultThreshold)
	require.NoError(t, err)

	for _, n := range testScope()[:5] {
		first := r.Resolve(n.Name)
		require.True(t, first.Resolved, n.Name)
		assert.Equal(t, n.Name, first.Name)

		second := r.Resolve(first.Name)
		assert.Equal(t, first, second)
	}
}

func TestNameResolver_ScopedOnly(t *testing.T) {
	r, err := NewNameResolver([]ScopedName{{CatalogID: "3", Name: "Negroni"}}, DefaultThreshold)
	require.NoError(t, err)

	got := r.Resolve("Mojito")
	assert.False(t, got.Resolved)
	assert.Empty(t, got.CatalogID)
}

func TestScopeFromEntries(t *testing.T) {
	entries := []domain.CatalogEntry{
		{ID: "1", KoreanName: "모히토", EnglishName: "Mojito"},
		{ID: "2", EnglishName: "Negroni"},
	}

	assert.Equal(t, []ScopedName{
		{CatalogID: "1", Name: "모히토"},
		{CatalogID: "1", Name: "Mojito"},
		{CatalogID: "2", Name: "Negroni"},
	}, ScopeFromEntries(entries))
}

func TestSimilarity(t *testing.T) {
	tests := map[string]struct {
		a, b string
		want float64
	}{
		"both-empty": {a: "", b: "", want: 1},
		"identical":  {a: "mojito", b: "mojito", want: 1},
		"disjoint":   {a: "abc", b: "xyz", want: 0},
		"classic":    {a: "kitten", b: "sitting", want: 1 - 3.0/7.0},
		"runes":      {a: "모히토", b: "모히또", want: 1 - 1.0/3.0},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			assert.InDelta(t, tt.want, Similarity(tt.a, tt.b), 1e-9)
		})
	}
}
