package modelrunner

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"

	"github.com/cleitonmarx/symbiont-ai-mixby/internal/domain"
	"github.com/cleitonmarx/symbiont-ai-mixby/internal/telemetry"
	"github.com/cleitonmarx/symbiont/depend"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// EmbeddingGenerator formats texts the way a given embedding model expects them.
type EmbeddingGenerator interface {
	// GenerateIndexingPrompt creates the prompt used to embed a catalog document.
	GenerateIndexingPrompt(text string) string
	// GenerateSearchPrompt creates the prompt used to embed a search query.
	GenerateSearchPrompt(query string) string
}

// EmbeddingFactory provides a method to get an EmbeddingGenerator based on the model name.
type EmbeddingFactory interface {
	// Get returns an EmbeddingGenerator for the specified model name.
	Get(model string) EmbeddingGenerator
}

type embeddingFactory struct{}

func (f embeddingFactory) Get(model string) EmbeddingGenerator {
	if strings.Contains(model, "embeddinggemma") {
		return gemmaEmbedding{}
	}
	return defaultEmbeddingGenerator{}
}

// gemmaEmbedding uses the task prefixes EmbeddingGemma was trained with.
type gemmaEmbedding struct{}

func (gemmaEmbedding) GenerateIndexingPrompt(text string) string {
	return fmt.Sprintf("title: none | text: %s", text)
}

func (gemmaEmbedding) GenerateSearchPrompt(query string) string {
	return fmt.Sprintf("task: search result | query: %s", query)
}

// defaultEmbeddingGenerator sends texts unchanged.
type defaultEmbeddingGenerator struct{}

func (defaultEmbeddingGenerator) GenerateIndexingPrompt(text string) string {
	return text
}

func (defaultEmbeddingGenerator) GenerateSearchPrompt(query string) string {
	return query
}

// EmbeddingClient adapts DRMAPIClient to domain.EmbeddingService.
// Embed is used for queries and EmbedBatch for catalog documents.
type EmbeddingClient struct {
	client    DRMAPIClient
	model     string
	generator EmbeddingGenerator
}

// NewEmbeddingClientAdapter creates a new adapter for model.
func NewEmbeddingClientAdapter(client DRMAPIClient, model string) EmbeddingClient {
	return EmbeddingClient{
		client:    client,
		model:     model,
		generator: embeddingFactory{}.Get(model),
	}
}

// Embed implements domain.EmbeddingService.
func (a EmbeddingClient) Embed(ctx context.Context, text string) (domain.EmbeddingVector, error) {
	spanCtx, span := telemetry.Start(ctx, trace.WithAttributes(
		attribute.String("embedding.model", a.model),
	))
	defer span.End()

	resp, err := a.client.Embeddings(spanCtx, EmbeddingsRequest{
		Model: a.model,
		Input: a.generator.GenerateSearchPrompt(text),
	})
	if telemetry.RecordErrorAndStatus(span, err) {
		return domain.EmbeddingVector{}, err
	}
	if len(resp.Data) == 0 {
		err := errors.New("no embedding data in response")
		telemetry.RecordErrorAndStatus(span, err)
		return domain.EmbeddingVector{}, err
	}
	return domain.EmbeddingVector{
		Vector:      resp.Data[0].Embedding,
		TotalTokens: resp.Usage.TotalTokens,
	}, nil
}

// EmbedBatch implements domain.EmbeddingService. Vectors are returned in input order.
func (a EmbeddingClient) EmbedBatch(ctx context.Context, texts []string) ([]domain.EmbeddingVector, error) {
	spanCtx, span := telemetry.Start(ctx, trace.WithAttributes(
		attribute.String("embedding.model", a.model),
		attribute.Int("embedding.batch_size", len(texts)),
	))
	defer span.End()

	if len(texts) == 0 {
		return []domain.EmbeddingVector{}, nil
	}

	inputs := make([]string, len(texts))
	for i, t := range texts {
		inputs[i] = a.generator.GenerateIndexingPrompt(t)
	}

	resp, err := a.client.Embeddings(spanCtx, EmbeddingsRequest{Model: a.model, Input: inputs})
	if telemetry.RecordErrorAndStatus(span, err) {
		return nil, err
	}
	if len(resp.Data) != len(texts) {
		err := fmt.Errorf("expected %d embeddings, got %d", len(texts), len(resp.Data))
		telemetry.RecordErrorAndStatus(span, err)
		return nil, err
	}

	out := make([]domain.EmbeddingVector, len(texts))
	seen := make([]bool, len(texts))
	for _, d := range resp.Data {
		if d.Index < 0 || d.Index >= len(texts) || seen[d.Index] {
			err := fmt.Errorf("unexpected embedding index %d", d.Index)
			telemetry.RecordErrorAndStatus(span, err)
			return nil, err
		}
		seen[d.Index] = true
		out[d.Index] = domain.EmbeddingVector{Vector: d.Embedding}
	}
	if len(out) > 0 {
		out[0].TotalTokens = resp.Usage.TotalTokens
	}
	return out, nil
}

// InitEmbeddingClient initializes the domain.EmbeddingService dependency.
type InitEmbeddingClient struct {
	Logger         *log.Logger  `resolve:""`
	HttpClient     *http.Client `resolve:""`
	LLMHost        string       `config:"LLM_MODEL_HOST"`
	APIKey         string       `config:"LLM_API_KEY" default:"-"`
	EmbeddingsPath string       `config:"LLM_EMBEDDINGS_PATH" default:"/v1/embeddings"`
	Model          string       `config:"LLM_EMBEDDING_MODEL"`
}

// Initialize registers the embedding client.
func (i InitEmbeddingClient) Initialize(ctx context.Context) (context.Context, error) {
	if i.LLMHost == "" {
		return ctx, domain.NewConfigurationErr("LLM_MODEL_HOST is required")
	}
	if i.Model == "" {
		return ctx, domain.NewConfigurationErr("LLM_EMBEDDING_MODEL is required")
	}
	client := NewDRMAPIClient(i.LLMHost, apiKey(i.APIKey), i.HttpClient).WithEmbeddingsPath(i.EmbeddingsPath)
	depend.Register[domain.EmbeddingService](NewEmbeddingClientAdapter(client, i.Model))
	i.Logger.Printf("InitEmbeddingClient: model=%s path=%s", i.Model, i.EmbeddingsPath)
	return ctx, nil
}
