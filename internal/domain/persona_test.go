package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRating_Label(t *testing.T) {
	tests := map[string]struct {
		rating Rating
		want   string
	}{
		"lowest":      {rating: 0, want: "very dissatisfied"},
		"neutral":     {rating: 3, want: "neutral"},
		"highest":     {rating: 6, want: "very satisfied"},
		"above-scale": {rating: 9, want: "9"},
		"below-scale": {rating: -1, want: "-1"},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.rating.Label())
		})
	}
}

func TestTastingNote_Describe(t *testing.T) {
	tests := map[string]struct {
		note  TastingNote
		entry CatalogEntry
		want  string
	}{
		"full-entry": {
			note:  TastingNote{Code: "2", DrinkDate: "2024-01-01", Overall: 5, Sweetness: 4, Sourness: 2, Alcohol: 3},
			entry: CatalogEntry{ID: "2", KoreanName: "모히토", EnglishName: "Mojito", Tags: []string{"minty", "refreshing"}},
			want:  "[모히토, 2024-01-01, minty, refreshing, mostly satisfied, slightly satisfied, slightly dissatisfied, neutral]",
		},
		"entry-without-tags": {
			note:  TastingNote{Code: "7", Overall: 6},
			entry: CatalogEntry{ID: "7", EnglishName: "Negroni"},
			want:  "[Negroni, , , , very satisfied, very dissatisfied, very dissatisfied, very dissatisfied]",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.note.Describe(tt.entry))
		})
	}
}
