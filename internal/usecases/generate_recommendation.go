package usecases

import (
	"context"
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strconv"
	"strings"
	"time"

	"github.com/cleitonmarx/symbiont-ai-mixby/internal/common"
	"github.com/cleitonmarx/symbiont-ai-mixby/internal/domain"
	"github.com/cleitonmarx/symbiont-ai-mixby/internal/matching"
	"github.com/cleitonmarx/symbiont-ai-mixby/internal/telemetry"
	"github.com/cleitonmarx/symbiont/depend"
	"github.com/google/uuid"
	"github.com/toon-format/toon-go"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"go.yaml.in/yaml/v3"
)

// DefaultShortlistSize is how many candidates are retrieved per context.
const DefaultShortlistSize = 3

// RecommendationRequest is the input of one recommendation.
type RecommendationRequest struct {
	Kind    domain.RecommendationKind
	Persona string
	// CocktailList holds the codes or display names of the cocktails the user owns.
	CocktailList []string
	// Conditions is only read by the default kind.
	Conditions domain.Conditions
}

// GenerateRecommendation is the use case interface for recommending owned cocktails per context.
type GenerateRecommendation interface {
	Execute(ctx context.Context, req RecommendationRequest) (domain.Recommendation, error)
}

// RecommendationSettings holds the tunables of GenerateRecommendationImpl.
type RecommendationSettings struct {
	Model             string
	ShortlistSize     int
	RetrievalTimeout  time.Duration
	GenerationTimeout time.Duration
	MatchThreshold    float64
}

// GenerateRecommendationImpl runs one retrieval round per context, then a single generation call,
// and snaps the generated names back onto the owned catalog entries.
type GenerateRecommendationImpl struct {
	catalog      domain.CatalogReader
	retriever    domain.CandidateRetriever
	llmClient    domain.LLMClient
	timeProvider domain.CurrentTimeProvider
	logger       *log.Logger
	settings     RecommendationSettings
	createUUID   func() uuid.UUID
}

// NewGenerateRecommendationImpl creates a new instance of GenerateRecommendationImpl.
func NewGenerateRecommendationImpl(
	catalog domain.CatalogReader,
	retriever domain.CandidateRetriever,
	llmClient domain.LLMClient,
	tp domain.CurrentTimeProvider,
	logger *log.Logger,
	settings RecommendationSettings,
) GenerateRecommendationImpl {
	if settings.ShortlistSize <= 0 {
		settings.ShortlistSize = DefaultShortlistSize
	}
	if settings.MatchThreshold <= 0 {
		settings.MatchThreshold = matching.DefaultThreshold
	}
	return GenerateRecommendationImpl{
		catalog:      catalog,
		retriever:    retriever,
		llmClient:    llmClient,
		timeProvider: tp,
		logger:       logger,
		settings:     settings,
		createUUID:   uuid.New,
	}
}

// groundingRound is the grounding recorded for one context.
type groundingRound struct {
	Context    string   `toon:"context"`
	Pick       string   `toon:"pick"`
	Candidates []string `toon:"candidates"`
}

// grounding is the outcome of the retrieval rounds.
type grounding struct {
	mode   domain.GroundingMode
	reason string
	rounds []groundingRound
}

// Execute generates one recommendation per context of the requested kind.
func (gr GenerateRecommendationImpl) Execute(ctx context.Context, req RecommendationRequest) (domain.Recommendation, error) {
	spanCtx, span := telemetry.Start(ctx, trace.WithAttributes(
		attribute.String("kind", string(req.Kind)),
		attribute.Int("cocktail_list_size", len(req.CocktailList)),
	))
	defer span.End()

	contexts, err := req.Kind.Contexts(req.Conditions)
	if telemetry.RecordErrorAndStatus(span, err) {
		return domain.Recommendation{}, err
	}

	entries, err := gr.catalog.ListEntries(spanCtx)
	if telemetry.RecordErrorAndStatus(span, err) {
		return domain.Recommendation{}, fmt.Errorf("failed to list catalog entries: %w", err)
	}

	owned := gr.resolveOwned(entries, req.CocktailList)

	g, err := gr.ground(spanCtx, contexts, owned)
	if telemetry.RecordErrorAndStatus(span, err) {
		return domain.Recommendation{}, err
	}
	span.SetAttributes(
		attribute.String("grounding", string(g.mode)),
		attribute.String("ungrounded_reason", g.reason),
	)

	now := gr.timeProvider.Now()
	answer, err := gr.generate(spanCtx, req, contexts, owned, g)
	if telemetry.RecordErrorAndStatus(span, err) {
		return domain.Recommendation{}, err
	}

	// Without any owned entry the generator was free to pick, so names are checked against the whole catalog.
	scope := owned
	if len(scope) == 0 {
		scope = entries
	}
	resolver, err := matching.NewNameResolver(matching.ScopeFromEntries(scope), gr.settings.MatchThreshold)
	if telemetry.RecordErrorAndStatus(span, err) {
		return domain.Recommendation{}, err
	}

	rec := domain.Recommendation{
		ID:               gr.createUUID(),
		Kind:             req.Kind,
		Grounding:        g.mode,
		UngroundedReason: g.reason,
		Model:            gr.settings.Model,
		GeneratedAt:      now,
		Items:            make([]domain.RecommendedItem, 0, len(answer)),
	}
	for i, a := range answer {
		res := resolver.Resolve(a.Name)
		if !res.Resolved {
			gr.logger.Printf("GenerateRecommendation: unresolved name %q for context %q", a.Name, contexts[i])
		}
		tag := strings.TrimSpace(a.Tag)
		if tag == "" {
			tag = contexts[i]
		}
		rec.Items = append(rec.Items, domain.RecommendedItem{
			Context:     contexts[i],
			Name:        res.Name,
			Tag:         tag,
			Reason:      strings.TrimSpace(a.Reason),
			CatalogID:   res.CatalogID,
			Matched:     res.Resolved,
			MatchMethod: res.Method,
		})
	}

	RecordRecommendation(spanCtx, rec)
	return rec, nil
}

// resolveOwned maps the requested list onto catalog entries, by code first and then by display name.
// Order follows the request and duplicates are dropped.
func (gr GenerateRecommendationImpl) resolveOwned(entries []domain.CatalogEntry, list []string) []domain.CatalogEntry {
	byID := make(map[string]int, len(entries))
	byName := make(map[string]int, len(entries))
	for i, e := range entries {
		byID[e.ID] = i
		for _, name := range e.DisplayNames() {
			if _, exists := byName[strings.ToLower(name)]; !exists {
				byName[strings.ToLower(name)] = i
			}
		}
	}

	seen := make(map[int]struct{}, len(list))
	owned := make([]domain.CatalogEntry, 0, len(list))
	for _, item := range list {
		item = strings.TrimSpace(item)
		if item == "" {
			continue
		}
		idx, found := byID[item]
		if !found {
			idx, found = byName[strings.ToLower(item)]
		}
		if !found {
			gr.logger.Printf("GenerateRecommendation: %q is not in the catalog, skipping", item)
			continue
		}
		if _, dup := seen[idx]; dup {
			continue
		}
		seen[idx] = struct{}{}
		owned = append(owned, entries[idx])
	}
	return owned
}

// ground runs one retrieval round per context. Retrieval failures switch to the ungrounded mode;
// only caller cancellation is returned as an error.
func (gr GenerateRecommendationImpl) ground(ctx context.Context, contexts []string, owned []domain.CatalogEntry) (grounding, error) {
	if len(owned) == 0 {
		return grounding{mode: domain.GroundingMode_Ungrounded, reason: domain.UngroundedReason_NoCandidates}, nil
	}

	allowed := make([]string, len(owned))
	names := make(map[string]string, len(owned))
	for i, e := range owned {
		allowed[i] = e.ID
		names[e.ID] = e.PrimaryName()
	}

	chosen := make(map[string]struct{}, len(contexts))
	rounds := make([]groundingRound, 0, len(contexts))
	picked := 0
	for _, c := range contexts {
		pool := make([]string, 0, len(allowed))
		for _, id := range allowed {
			if _, taken := chosen[id]; !taken {
				pool = append(pool, id)
			}
		}
		if len(pool) == 0 {
			pool = allowed
		}

		shortlist, err := gr.retrieve(ctx, c+" appropriate drink", pool)
		if err != nil {
			if ctxErr := ctx.Err(); ctxErr != nil {
				return grounding{}, ctxErr
			}
			gr.logger.Printf("GenerateRecommendation: retrieval failed for context %q, continuing ungrounded: %v", c, err)
			return grounding{mode: domain.GroundingMode_Ungrounded, reason: domain.UngroundedReason_RetrievalFailed}, nil
		}

		round := groundingRound{Context: c, Candidates: make([]string, 0, len(shortlist))}
		for _, s := range shortlist {
			round.Candidates = append(round.Candidates, names[s.Record.ID])
		}
		if len(shortlist) > 0 {
			pick := shortlist[0].Record.ID
			chosen[pick] = struct{}{}
			round.Pick = names[pick]
			picked++
		}
		rounds = append(rounds, round)
	}

	// The owned entries exist in the catalog but none of them is indexed yet.
	if picked == 0 {
		return grounding{mode: domain.GroundingMode_Ungrounded, reason: domain.UngroundedReason_NoCandidates}, nil
	}

	return grounding{mode: domain.GroundingMode_Grounded, rounds: rounds}, nil
}

func (gr GenerateRecommendationImpl) retrieve(ctx context.Context, query string, pool []string) ([]domain.ScoredRecord, error) {
	if gr.settings.RetrievalTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, gr.settings.RetrievalTimeout)
		defer cancel()
	}
	shortlist, err := gr.retriever.Retrieve(ctx, query, gr.settings.ShortlistSize, domain.SearchFilter{AllowedIDs: pool}, true)
	if err != nil {
		return nil, err
	}

	// Results outside the pool would break the no-duplicate guarantee.
	allowed := domain.SearchFilter{AllowedIDs: pool}.AllowedSet()
	filtered := shortlist[:0:0]
	for _, s := range shortlist {
		if _, ok := allowed[s.Record.ID]; ok {
			filtered = append(filtered, s)
		}
	}
	return filtered, nil
}

// generatedItem is one entry of the generator's JSON answer.
type generatedItem struct {
	Name   string `json:"name"`
	Tag    string `json:"tag"`
	Reason string `json:"reason"`
}

type generatedAnswer struct {
	Recommendation []generatedItem `json:"recommendation"`
}

// generate issues the single generation call and validates its answer.
func (gr GenerateRecommendationImpl) generate(
	ctx context.Context,
	req RecommendationRequest,
	contexts []string,
	owned []domain.CatalogEntry,
	g grounding,
) ([]generatedItem, error) {
	messages, err := buildRecommendationMessages(req, contexts, owned, g)
	if err != nil {
		return nil, fmt.Errorf("failed to build prompt: %w", err)
	}

	if gr.settings.GenerationTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, gr.settings.GenerationTimeout)
		defer cancel()
	}

	resp, err := gr.llmClient.Chat(ctx, domain.LLMChatRequest{
		Model:          gr.settings.Model,
		Messages:       messages,
		Temperature:    common.Ptr(1.0),
		TopP:           common.Ptr(1.0),
		MaxTokens:      common.Ptr(2048),
		ResponseFormat: domain.LLMResponseFormat_JSONObject,
	})
	if err != nil {
		if errors.Is(err, context.Canceled) {
			return nil, err
		}
		return nil, domain.NewGenerationErr("recommendation generation failed", err)
	}

	RecordLLMTokensUsed(ctx, resp.Usage.PromptTokens, resp.Usage.CompletionTokens)

	return parseGeneratedAnswer(resp.Content, len(contexts))
}

// parseGeneratedAnswer decodes the answer and requires exactly one named item per context.
func parseGeneratedAnswer(content string, contexts int) ([]generatedItem, error) {
	start, end := strings.Index(content, "{"), strings.LastIndex(content, "}")
	if start < 0 || end < start {
		return nil, domain.NewGenerationErr("recommendation answer is not a JSON object", nil)
	}

	var answer generatedAnswer
	if err := json.Unmarshal([]byte(content[start:end+1]), &answer); err != nil {
		return nil, domain.NewGenerationErr("recommendation answer is malformed", err)
	}

	if len(answer.Recommendation) != contexts {
		return nil, domain.NewGenerationErr(
			fmt.Sprintf("expected %d recommendations, got %d", contexts, len(answer.Recommendation)), nil,
		)
	}
	for i, item := range answer.Recommendation {
		if strings.TrimSpace(item.Name) == "" {
			return nil, domain.NewGenerationErr(fmt.Sprintf("recommendation %d has no name", i+1), nil)
		}
		answer.Recommendation[i].Name = strings.TrimSpace(item.Name)
	}
	return answer.Recommendation, nil
}

//go:embed prompts/recommendation.yml
var recommendationPrompt embed.FS

// buildRecommendationMessages fills the embedded prompt for one request.
func buildRecommendationMessages(
	req RecommendationRequest,
	contexts []string,
	owned []domain.CatalogEntry,
	g grounding,
) ([]domain.LLMChatMessage, error) {
	ownedText := ownedCocktailsText(req.CocktailList, owned)

	groundingText := "none"
	if g.mode == domain.GroundingMode_Grounded {
		encoded, err := toon.MarshalString(g.rounds, toon.WithLengthMarkers(true))
		if err != nil {
			return nil, fmt.Errorf("failed to marshal grounding: %w", err)
		}
		groundingText = encoded
	}

	persona := strings.TrimSpace(req.Persona)
	if persona == "" {
		persona = "not provided"
	}

	file, err := recommendationPrompt.Open("prompts/recommendation.yml")
	if err != nil {
		return nil, fmt.Errorf("failed to open recommendation prompt: %w", err)
	}
	defer file.Close() //nolint:errcheck

	messages := []domain.LLMChatMessage{}
	if err := yaml.NewDecoder(file).Decode(&messages); err != nil {
		return nil, fmt.Errorf("failed to decode recommendation prompt: %w", err)
	}

	quoted := make([]string, len(contexts))
	for i, c := range contexts {
		quoted[i] = strconv.Quote(c)
	}

	for i, msg := range messages {
		msg.Content = fmt.Sprintf(
			msg.Content,
			strings.Join(quoted, ", "),
			persona,
			ownedText,
			groundingText,
		)
		messages[i] = msg
	}
	return messages, nil
}

// ownedCocktailsText lists the owned catalog names, or the raw request list when nothing matched the catalog.
func ownedCocktailsText(list []string, owned []domain.CatalogEntry) string {
	names := make([]string, 0, len(list))
	if len(owned) > 0 {
		for _, e := range owned {
			names = append(names, strings.Join(e.DisplayNames(), " / "))
		}
	} else {
		for _, item := range list {
			if item = strings.TrimSpace(item); item != "" {
				names = append(names, item)
			}
		}
	}
	if len(names) == 0 {
		return "none"
	}
	return strings.Join(names, ", ")
}

// InitGenerateRecommendation initializes the GenerateRecommendation use case.
type InitGenerateRecommendation struct {
	Logger            *log.Logger                `resolve:""`
	Catalog           domain.CatalogReader       `resolve:""`
	Retriever         domain.CandidateRetriever  `resolve:""`
	LLMClient         domain.LLMClient           `resolve:""`
	TimeProvider      domain.CurrentTimeProvider `resolve:""`
	Model             string                     `config:"LLM_RECOMMENDATION_MODEL"`
	RetrievalTimeout  time.Duration              `config:"RETRIEVAL_TIMEOUT" default:"5s"`
	GenerationTimeout time.Duration              `config:"GENERATION_TIMEOUT" default:"60s"`
	MatchThreshold    string                     `config:"NAME_MATCH_THRESHOLD" default:"0.75"`
}

// Initialize registers the GenerateRecommendation use case implementation.
func (i InitGenerateRecommendation) Initialize(ctx context.Context) (context.Context, error) {
	if strings.TrimSpace(i.Model) == "" {
		return ctx, domain.NewConfigurationErr("LLM_RECOMMENDATION_MODEL is required")
	}
	threshold, err := strconv.ParseFloat(i.MatchThreshold, 64)
	if err != nil || threshold <= 0 || threshold > 1 {
		return ctx, domain.NewConfigurationErr(fmt.Sprintf("NAME_MATCH_THRESHOLD must be a number within (0, 1], got %q", i.MatchThreshold))
	}

	depend.Register[GenerateRecommendation](NewGenerateRecommendationImpl(
		i.Catalog, i.Retriever, i.LLMClient, i.TimeProvider, i.Logger,
		RecommendationSettings{
			Model:             i.Model,
			ShortlistSize:     DefaultShortlistSize,
			RetrievalTimeout:  i.RetrievalTimeout,
			GenerationTimeout: i.GenerationTimeout,
			MatchThreshold:    threshold,
		},
	))
	return ctx, nil
}
