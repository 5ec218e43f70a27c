package usecases

import (
	"context"
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/cleitonmarx/symbiont-ai-mixby/internal/common"
	"github.com/cleitonmarx/symbiont-ai-mixby/internal/domain"
	"github.com/cleitonmarx/symbiont-ai-mixby/internal/telemetry"
	"github.com/cleitonmarx/symbiont/depend"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"go.yaml.in/yaml/v3"
)

// PersonaRequest is the input of one persona summary.
type PersonaRequest struct {
	Profile  domain.UserProfile
	Tastings []domain.TastingNote
}

// GeneratePersona is the use case interface for summarizing a user's taste from their tasting notes.
type GeneratePersona interface {
	Execute(ctx context.Context, req PersonaRequest) (domain.Persona, error)
}

// GeneratePersonaImpl resolves every tasting note against the catalog and asks the LLM for a summary.
type GeneratePersonaImpl struct {
	catalog           domain.CatalogReader
	llmClient         domain.LLMClient
	logger            *log.Logger
	model             string
	generationTimeout time.Duration
}

// NewGeneratePersonaImpl creates a new instance of GeneratePersonaImpl.
func NewGeneratePersonaImpl(
	catalog domain.CatalogReader,
	llmClient domain.LLMClient,
	logger *log.Logger,
	model string,
	generationTimeout time.Duration,
) GeneratePersonaImpl {
	return GeneratePersonaImpl{
		catalog:           catalog,
		llmClient:         llmClient,
		logger:            logger,
		model:             model,
		generationTimeout: generationTimeout,
	}
}

// Execute summarizes the user. Notes whose code is not in the catalog are left out of the prompt.
func (gp GeneratePersonaImpl) Execute(ctx context.Context, req PersonaRequest) (domain.Persona, error) {
	spanCtx, span := telemetry.Start(ctx, trace.WithAttributes(
		attribute.Int("tastings", len(req.Tastings)),
	))
	defer span.End()

	if err := validatePersonaRequest(req); telemetry.RecordErrorAndStatus(span, err) {
		return domain.Persona{}, err
	}

	persona := domain.Persona{Model: gp.model, SkippedCodes: []string{}}
	drinks := make([]string, 0, len(req.Tastings))
	for _, note := range req.Tastings {
		code := strings.TrimSpace(note.Code)
		entry, found, err := gp.catalog.FindEntry(spanCtx, code)
		if telemetry.RecordErrorAndStatus(span, err) {
			return domain.Persona{}, fmt.Errorf("failed to find catalog entry %q: %w", code, err)
		}
		if !found {
			persona.SkippedCodes = append(persona.SkippedCodes, code)
			continue
		}
		drinks = append(drinks, note.Describe(entry))
	}
	persona.MatchedNotes = len(drinks)
	span.SetAttributes(
		attribute.Int("matched_notes", persona.MatchedNotes),
		attribute.Int("skipped_codes", len(persona.SkippedCodes)),
	)
	if len(persona.SkippedCodes) > 0 {
		gp.logger.Printf("GeneratePersona: skipped tasting codes unknown to the catalog: %s",
			strings.Join(persona.SkippedCodes, ","))
	}

	summary, err := gp.summarize(spanCtx, req.Profile, drinks)
	if telemetry.RecordErrorAndStatus(span, err) {
		return domain.Persona{}, err
	}
	persona.Summary = summary
	return persona, nil
}

func validatePersonaRequest(req PersonaRequest) error {
	p := req.Profile
	if strings.TrimSpace(p.Name+p.Gender+p.FavoriteTaste) == "" {
		return domain.NewValidationErr("user profile cannot be empty")
	}
	for i, note := range req.Tastings {
		if strings.TrimSpace(note.Code) == "" {
			return domain.NewValidationErr(fmt.Sprintf("tasting %d has no code", i+1))
		}
	}
	return nil
}

type personaAnswer struct {
	Summary string `json:"summary"`
}

func (gp GeneratePersonaImpl) summarize(ctx context.Context, profile domain.UserProfile, drinks []string) (string, error) {
	messages, err := buildPersonaMessages(profile, drinks)
	if err != nil {
		return "", fmt.Errorf("failed to build prompt: %w", err)
	}

	if gp.generationTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, gp.generationTimeout)
		defer cancel()
	}

	resp, err := gp.llmClient.Chat(ctx, domain.LLMChatRequest{
		Model:          gp.model,
		Messages:       messages,
		Temperature:    common.Ptr(1.0),
		TopP:           common.Ptr(1.0),
		MaxTokens:      common.Ptr(2048),
		ResponseFormat: domain.LLMResponseFormat_JSONObject,
	})
	if err != nil {
		if errors.Is(err, context.Canceled) {
			return "", err
		}
		return "", domain.NewGenerationErr("persona generation failed", err)
	}

	RecordLLMTokensUsed(ctx, resp.Usage.PromptTokens, resp.Usage.CompletionTokens)

	var answer personaAnswer
	start, end := strings.Index(resp.Content, "{"), strings.LastIndex(resp.Content, "}")
	if start < 0 || end < start {
		return "", domain.NewGenerationErr("persona answer is not a JSON object", nil)
	}
	if err := json.Unmarshal([]byte(resp.Content[start:end+1]), &answer); err != nil {
		return "", domain.NewGenerationErr("persona answer is malformed", err)
	}
	summary := strings.TrimSpace(answer.Summary)
	if summary == "" {
		return "", domain.NewGenerationErr("persona answer has no summary", nil)
	}
	return summary, nil
}

//go:embed prompts/persona.yml
var personaPrompt embed.FS

func buildPersonaMessages(profile domain.UserProfile, drinks []string) ([]domain.LLMChatMessage, error) {
	file, err := personaPrompt.Open("prompts/persona.yml")
	if err != nil {
		return nil, fmt.Errorf("failed to open persona prompt: %w", err)
	}
	defer file.Close() //nolint:errcheck

	messages := []domain.LLMChatMessage{}
	if err := yaml.NewDecoder(file).Decode(&messages); err != nil {
		return nil, fmt.Errorf("failed to decode persona prompt: %w", err)
	}

	user := fmt.Sprintf("[%s, %s, %s]",
		strings.TrimSpace(profile.Name),
		strings.TrimSpace(profile.Gender),
		strings.TrimSpace(profile.FavoriteTaste),
	)
	drank := "none"
	if len(drinks) > 0 {
		drank = strings.Join(drinks, ", ")
	}

	for i, msg := range messages {
		msg.Content = fmt.Sprintf(msg.Content, user, drank)
		messages[i] = msg
	}
	return messages, nil
}

// InitGeneratePersona initializes the GeneratePersona use case.
// The persona model defaults to the recommendation model.
type InitGeneratePersona struct {
	Logger              *log.Logger          `resolve:""`
	Catalog             domain.CatalogReader `resolve:""`
	LLMClient           domain.LLMClient     `resolve:""`
	Model               string               `config:"LLM_PERSONA_MODEL" default:"-"`
	RecommendationModel string               `config:"LLM_RECOMMENDATION_MODEL"`
	GenerationTimeout   time.Duration        `config:"GENERATION_TIMEOUT" default:"60s"`
}

// Initialize registers the GeneratePersona use case implementation.
func (i InitGeneratePersona) Initialize(ctx context.Context) (context.Context, error) {
	model := strings.TrimSpace(i.Model)
	if model == "" || model == "-" {
		model = strings.TrimSpace(i.RecommendationModel)
	}
	if model == "" {
		return ctx, domain.NewConfigurationErr("LLM_PERSONA_MODEL or LLM_RECOMMENDATION_MODEL is required")
	}

	depend.Register[GeneratePersona](NewGeneratePersonaImpl(i.Catalog, i.LLMClient, i.Logger, model, i.GenerationTimeout))
	return ctx, nil
}
