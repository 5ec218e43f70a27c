package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRecommendationKind_Contexts(t *testing.T) {
	tests := map[string]struct {
		kind       RecommendationKind
		conditions Conditions
		want       []string
		wantErr    bool
	}{
		"default-uses-conditions": {
			kind:       RecommendationKind_Default,
			conditions: Conditions{Season: "summer", TimeOfDay: " evening ", Weather: "rainy"},
			want:       []string{"summer", "evening", "rainy"},
		},
		"default-missing-weather": {
			kind:       RecommendationKind_Default,
			conditions: Conditions{Season: "summer", TimeOfDay: "evening"},
			wantErr:    true,
		},
		"feeling": {
			kind: RecommendationKind_Feeling,
			want: []string{"happy", "tired", "angry"},
		},
		"situation-ignores-conditions": {
			kind:       RecommendationKind_Situation,
			conditions: Conditions{Season: "winter"},
			want:       []string{"busy", "relaxed", "travel"},
		},
		"unknown-kind": {
			kind:    RecommendationKind("weather"),
			wantErr: true,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got, err := tt.kind.Contexts(tt.conditions)
			if tt.wantErr {
				var validationErr *ValidationErr
				assert.True(t, errors.As(err, &validationErr))
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRecommendationKind_ContextsAreCopies(t *testing.T) {
	got, err := RecommendationKind_Feeling.Contexts(Conditions{})
	assert.NoError(t, err)
	got[0] = "changed"

	again, err := RecommendationKind_Feeling.Contexts(Conditions{})
	assert.NoError(t, err)
	assert.Equal(t, "happy", again[0])
}

func TestRecommendation_UnresolvedCount(t *testing.T) {
	r := Recommendation{
		Items: []RecommendedItem{
			{Name: "Mojito", Matched: true},
			{Name: "Blue Moon", Matched: false},
			{Name: "Negroni", Matched: true},
		},
	}
	assert.Equal(t, 1, r.UnresolvedCount())
}

func TestGenerationErr(t *testing.T) {
	cause := errors.New("timeout")
	err := NewGenerationErr("generation failed", cause)

	assert.Equal(t, "generation failed: timeout", err.Error())
	assert.ErrorIs(t, err, cause)

	noCause := NewGenerationErr("malformed output", nil)
	assert.Equal(t, "malformed output", noCause.Error())
	assert.Nil(t, errors.Unwrap(noCause))
}
