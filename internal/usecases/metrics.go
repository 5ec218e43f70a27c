package usecases

import (
	"context"

	"github.com/cleitonmarx/symbiont-ai-mixby/internal/domain"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

var (
	meter                    = otel.Meter("usecases")
	LLMTokensUsed            metric.Int64Counter
	RecommendationsGenerated metric.Int64Counter
	UnresolvedNames          metric.Int64Counter
	IndexRebuilds            metric.Int64Counter
)

func init() {
	var err error
	// Tokens consumed by LLM (input + output)
	LLMTokensUsed, err = meter.Int64Counter(
		"llm_tokens_used_total",
		metric.WithDescription("Total LLM tokens consumed"),
	)
	if err != nil {
		panic(err)
	}

	RecommendationsGenerated, err = meter.Int64Counter(
		"recommendations_generated_total",
		metric.WithDescription("Recommendations generated by kind and grounding mode"),
	)
	if err != nil {
		panic(err)
	}

	// Generated names that could not be snapped to a catalog entry
	UnresolvedNames, err = meter.Int64Counter(
		"recommendation_unresolved_names_total",
		metric.WithDescription("Generated cocktail names left unresolved"),
	)
	if err != nil {
		panic(err)
	}

	IndexRebuilds, err = meter.Int64Counter(
		"vector_index_rebuilds_total",
		metric.WithDescription("Vector index rebuild attempts by outcome"),
	)
	if err != nil {
		panic(err)
	}
}

// RecordLLMTokensUsed records the number of tokens used in an LLM chat operation.
func RecordLLMTokensUsed(ctx context.Context, promptTokens, completionTokens int) {
	LLMTokensUsed.Add(ctx, int64(promptTokens), metric.WithAttributes(
		attribute.String("token_type", "prompt"),
	))
	LLMTokensUsed.Add(ctx, int64(completionTokens), metric.WithAttributes(
		attribute.String("token_type", "completion"),
	))
}

// RecordLLMTokensEmbedding records the number of tokens used in an embedding operation.
func RecordLLMTokensEmbedding(ctx context.Context, totalTokens int) {
	LLMTokensUsed.Add(ctx, int64(totalTokens), metric.WithAttributes(
		attribute.String("token_type", "embedding"),
	))
}

// RecordRecommendation records a generated recommendation and its unresolved names.
func RecordRecommendation(ctx context.Context, rec domain.Recommendation) {
	RecommendationsGenerated.Add(ctx, 1, metric.WithAttributes(
		attribute.String("kind", string(rec.Kind)),
		attribute.String("grounding", string(rec.Grounding)),
		attribute.String("ungrounded_reason", rec.UngroundedReason),
	))
	if unresolved := rec.UnresolvedCount(); unresolved > 0 {
		UnresolvedNames.Add(ctx, int64(unresolved), metric.WithAttributes(
			attribute.String("kind", string(rec.Kind)),
		))
	}
}

// RecordIndexRebuild records the outcome of a rebuild request.
func RecordIndexRebuild(ctx context.Context, outcome string) {
	IndexRebuilds.Add(ctx, 1, metric.WithAttributes(
		attribute.String("outcome", outcome),
	))
}
