package usecases

import (
	"context"
	"errors"
	"io"
	"log"
	"strings"
	"testing"
	"time"

	"github.com/cleitonmarx/symbiont-ai-mixby/internal/domain"
	domain_mocks "github.com/cleitonmarx/symbiont-ai-mixby/internal/domain/mocks"
	"github.com/cleitonmarx/symbiont/depend"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// findInTestCatalog resolves ids against testCatalog.
func findInTestCatalog(_ context.Context, id string) (domain.CatalogEntry, bool, error) {
	for _, e := range testCatalog() {
		if e.ID == id {
			return e, true, nil
		}
	}
	return domain.CatalogEntry{}, false, nil
}

func joinContents(messages []domain.LLMChatMessage) string {
	parts := make([]string, len(messages))
	for i, m := range messages {
		parts[i] = m.Content
	}
	return strings.Join(parts, "\n")
}

func TestGeneratePersonaImpl_Execute(t *testing.T) {
	profile := domain.UserProfile{Name: "Hong", Gender: "male", FavoriteTaste: "sweet"}

	tests := map[string]struct {
		req             PersonaRequest
		setExpectations func(c *domain_mocks.MockCatalogReader, llm *domain_mocks.MockLLMClient)
		expected        domain.Persona
		expectedErr     error
		expectedErrType any
	}{
		"summarizes-known-tastings": {
			req: PersonaRequest{
				Profile: profile,
				Tastings: []domain.TastingNote{
					{Code: "2", DrinkDate: "2024-01-01", Overall: 5, Sweetness: 4, Sourness: 2, Alcohol: 3},
					{Code: " 3 ", DrinkDate: "2024-02-14", Overall: 1, Sweetness: 0, Sourness: 1, Alcohol: 6},
				},
			},
			setExpectations: func(c *domain_mocks.MockCatalogReader, llm *domain_mocks.MockLLMClient) {
				c.EXPECT().FindEntry(mock.Anything, mock.Anything).RunAndReturn(findInTestCatalog).Times(2)
				llm.EXPECT().Chat(
					mock.Anything,
					mock.MatchedBy(func(req domain.LLMChatRequest) bool {
						prompt := joinContents(req.Messages)
						return req.Model == "gpt-4o-mini" &&
							req.ResponseFormat == domain.LLMResponseFormat_JSONObject &&
							strings.Contains(prompt, "User: [Hong, male, sweet]") &&
							strings.Contains(prompt, "[모히토, 2024-01-01, minty, , mostly satisfied, slightly satisfied, slightly dissatisfied, neutral]") &&
							strings.Contains(prompt, "[네그로니, 2024-02-14, bitter, ")
					}),
				).Return(chatResponse(`{"summary":"Sweet tooth who enjoys minty highballs"}`), nil)
			},
			expected: domain.Persona{
				Summary:      "Sweet tooth who enjoys minty highballs",
				MatchedNotes: 2,
				SkippedCodes: []string{},
				Model:        "gpt-4o-mini",
			},
		},
		"unknown-codes-are-skipped": {
			req: PersonaRequest{
				Profile:  profile,
				Tastings: []domain.TastingNote{{Code: "404"}, {Code: "1", Overall: 6}},
			},
			setExpectations: func(c *domain_mocks.MockCatalogReader, llm *domain_mocks.MockLLMClient) {
				c.EXPECT().FindEntry(mock.Anything, mock.Anything).RunAndReturn(findInTestCatalog).Times(2)
				llm.EXPECT().Chat(
					mock.Anything,
					mock.MatchedBy(func(req domain.LLMChatRequest) bool {
						prompt := joinContents(req.Messages)
						return strings.Contains(prompt, "진토닉") && !strings.Contains(prompt, "404")
					}),
				).Return(chatResponse("Sure! {\"summary\":\" Classic gin lover \"}"), nil)
			},
			expected: domain.Persona{
				Summary:      "Classic gin lover",
				MatchedNotes: 1,
				SkippedCodes: []string{"404"},
				Model:        "gpt-4o-mini",
			},
		},
		"no-tastings": {
			req: PersonaRequest{Profile: profile},
			setExpectations: func(c *domain_mocks.MockCatalogReader, llm *domain_mocks.MockLLMClient) {
				llm.EXPECT().Chat(
					mock.Anything,
					mock.MatchedBy(func(req domain.LLMChatRequest) bool {
						return strings.Contains(joinContents(req.Messages), "Cocktails the user drank so far: none")
					}),
				).Return(chatResponse(`{"summary":"Newcomer with a sweet preference"}`), nil)
			},
			expected: domain.Persona{
				Summary:      "Newcomer with a sweet preference",
				SkippedCodes: []string{},
				Model:        "gpt-4o-mini",
			},
		},
		"empty-profile": {
			req:             PersonaRequest{Profile: domain.UserProfile{Name: "  "}},
			expectedErr:     domain.NewValidationErr("user profile cannot be empty"),
			expectedErrType: &domain.ValidationErr{},
		},
		"tasting-without-code": {
			req:             PersonaRequest{Profile: profile, Tastings: []domain.TastingNote{{Code: "1"}, {Code: ""}}},
			expectedErr:     domain.NewValidationErr("tasting 2 has no code"),
			expectedErrType: &domain.ValidationErr{},
		},
		"catalog-error": {
			req: PersonaRequest{Profile: profile, Tastings: []domain.TastingNote{{Code: "1"}}},
			setExpectations: func(c *domain_mocks.MockCatalogReader, llm *domain_mocks.MockLLMClient) {
				c.EXPECT().FindEntry(mock.Anything, "1").Return(domain.CatalogEntry{}, false, errors.New("catalog offline"))
			},
			expectedErr: errors.New(`failed to find catalog entry "1": catalog offline`),
		},
		"llm-error": {
			req: PersonaRequest{Profile: profile},
			setExpectations: func(c *domain_mocks.MockCatalogReader, llm *domain_mocks.MockLLMClient) {
				llm.EXPECT().Chat(mock.Anything, mock.Anything).Return(domain.LLMChatResponse{}, errors.New("timeout"))
			},
			expectedErr:     domain.NewGenerationErr("persona generation failed", errors.New("timeout")),
			expectedErrType: &domain.GenerationErr{},
		},
		"answer-without-summary": {
			req: PersonaRequest{Profile: profile},
			setExpectations: func(c *domain_mocks.MockCatalogReader, llm *domain_mocks.MockLLMClient) {
				llm.EXPECT().Chat(mock.Anything, mock.Anything).Return(chatResponse(`{"persona":"x"}`), nil)
			},
			expectedErr:     domain.NewGenerationErr("persona answer has no summary", nil),
			expectedErrType: &domain.GenerationErr{},
		},
		"answer-not-json": {
			req: PersonaRequest{Profile: profile},
			setExpectations: func(c *domain_mocks.MockCatalogReader, llm *domain_mocks.MockLLMClient) {
				llm.EXPECT().Chat(mock.Anything, mock.Anything).Return(chatResponse("a sweet tooth"), nil)
			},
			expectedErr:     domain.NewGenerationErr("persona answer is not a JSON object", nil),
			expectedErrType: &domain.GenerationErr{},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			catalog := domain_mocks.NewMockCatalogReader(t)
			llm := domain_mocks.NewMockLLMClient(t)
			if tt.setExpectations != nil {
				tt.setExpectations(catalog, llm)
			}

			gp := NewGeneratePersonaImpl(catalog, llm, log.New(io.Discard, "", 0), "gpt-4o-mini", time.Second)
			got, err := gp.Execute(context.Background(), tt.req)

			if tt.expectedErr != nil {
				assert.EqualError(t, err, tt.expectedErr.Error())
				if tt.expectedErrType != nil {
					assert.IsType(t, tt.expectedErrType, err)
				}
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestGeneratePersonaImpl_Execute_CancelledIsNotAGenerationErr(t *testing.T) {
	llm := domain_mocks.NewMockLLMClient(t)
	llm.EXPECT().Chat(mock.Anything, mock.Anything).Return(domain.LLMChatResponse{}, context.Canceled)

	gp := NewGeneratePersonaImpl(domain_mocks.NewMockCatalogReader(t), llm, log.New(io.Discard, "", 0), "gpt-4o-mini", 0)
	_, err := gp.Execute(context.Background(), PersonaRequest{Profile: domain.UserProfile{Name: "Hong"}})

	assert.ErrorIs(t, err, context.Canceled)
	var genErr *domain.GenerationErr
	assert.False(t, errors.As(err, &genErr))
}

func TestInitGeneratePersona_Initialize(t *testing.T) {
	tests := map[string]struct {
		model               string
		recommendationModel string
		expectedModel       string
		wantErr             bool
	}{
		"own-model":                    {model: "persona-llm", recommendationModel: "rec-llm", expectedModel: "persona-llm"},
		"falls-back-to-recommendation": {model: "-", recommendationModel: "rec-llm", expectedModel: "rec-llm"},
		"no-model-at-all":              {model: "-", recommendationModel: " ", wantErr: true},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Cleanup(depend.ClearContainer)

			i := InitGeneratePersona{
				Logger:              log.New(io.Discard, "", 0),
				Catalog:             domain_mocks.NewMockCatalogReader(t),
				LLMClient:           domain_mocks.NewMockLLMClient(t),
				Model:               tt.model,
				RecommendationModel: tt.recommendationModel,
				GenerationTimeout:   time.Minute,
			}
			_, err := i.Initialize(context.Background())
			if tt.wantErr {
				assert.IsType(t, &domain.ConfigurationErr{}, err)
				return
			}
			require.NoError(t, err)

			registered, err := depend.Resolve[GeneratePersona]()
			require.NoError(t, err)
			assert.Equal(t, tt.expectedModel, registered.(GeneratePersonaImpl).model)
		})
	}
}
