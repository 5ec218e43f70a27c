package usecases

import (
	"context"
	"fmt"
	"log"
	"sync"

	"github.com/cleitonmarx/symbiont-ai-mixby/internal/domain"
	"github.com/cleitonmarx/symbiont-ai-mixby/internal/telemetry"
	"github.com/cleitonmarx/symbiont/depend"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// DefaultEmbeddingBatchSize is how many catalog entries are embedded per request.
const DefaultEmbeddingBatchSize = 100

// RebuildResult reports what a rebuild did.
type RebuildResult struct {
	Rebuilt bool
	Count   int
}

// RebuildIndex is the use case interface for syncing the vector index with the catalog.
type RebuildIndex interface {
	// Execute re-embeds the whole catalog. Without force it is a no-op on an initialized index.
	Execute(ctx context.Context, force bool) (RebuildResult, error)
	// ExecuteFrom force-rebuilds the index from the entries of catalog instead of the served one.
	ExecuteFrom(ctx context.Context, catalog domain.CatalogReader) (RebuildResult, error)
}

// RebuildIndexImpl is the implementation of the RebuildIndex use case.
type RebuildIndexImpl struct {
	catalog   domain.CatalogReader
	embedder  domain.EmbeddingService
	index     domain.VectorIndex
	batchSize int
	logger    *log.Logger
	mu        *sync.Mutex
}

// NewRebuildIndexImpl creates a new instance of RebuildIndexImpl.
func NewRebuildIndexImpl(
	catalog domain.CatalogReader,
	embedder domain.EmbeddingService,
	index domain.VectorIndex,
	batchSize int,
	logger *log.Logger,
) RebuildIndexImpl {
	if batchSize <= 0 {
		batchSize = DefaultEmbeddingBatchSize
	}
	return RebuildIndexImpl{
		catalog:   catalog,
		embedder:  embedder,
		index:     index,
		batchSize: batchSize,
		logger:    logger,
		mu:        &sync.Mutex{},
	}
}

// Execute implements RebuildIndex. Concurrent rebuilds run one after the other.
func (ri RebuildIndexImpl) Execute(ctx context.Context, force bool) (RebuildResult, error) {
	spanCtx, span := telemetry.Start(ctx, trace.WithAttributes(
		attribute.Bool("force", force),
	))
	defer span.End()

	ri.mu.Lock()
	defer ri.mu.Unlock()

	if !force {
		initialized, err := ri.index.IsInitialized(spanCtx)
		if telemetry.RecordErrorAndStatus(span, err) {
			RecordIndexRebuild(spanCtx, "failed")
			return RebuildResult{}, fmt.Errorf("failed to check vector index: %w", err)
		}
		if initialized {
			count, err := ri.index.Count(spanCtx)
			if telemetry.RecordErrorAndStatus(span, err) {
				RecordIndexRebuild(spanCtx, "failed")
				return RebuildResult{}, fmt.Errorf("failed to count vector index: %w", err)
			}
			RecordIndexRebuild(spanCtx, "skipped")
			return RebuildResult{Rebuilt: false, Count: count}, nil
		}
	}

	return ri.replace(spanCtx, span, ri.catalog)
}

// ExecuteFrom implements RebuildIndex.
func (ri RebuildIndexImpl) ExecuteFrom(ctx context.Context, catalog domain.CatalogReader) (RebuildResult, error) {
	spanCtx, span := telemetry.Start(ctx, trace.WithAttributes(
		attribute.Bool("force", true),
		attribute.Bool("staged", true),
	))
	defer span.End()

	ri.mu.Lock()
	defer ri.mu.Unlock()

	return ri.replace(spanCtx, span, catalog)
}

// replace embeds every entry of catalog and swaps the index contents. Callers hold ri.mu.
func (ri RebuildIndexImpl) replace(spanCtx context.Context, span trace.Span, catalog domain.CatalogReader) (RebuildResult, error) {
	records, err := ri.buildRecords(spanCtx, catalog)
	if telemetry.RecordErrorAndStatus(span, err) {
		RecordIndexRebuild(spanCtx, "failed")
		return RebuildResult{}, err
	}

	err = ri.index.Replace(spanCtx, records)
	if telemetry.RecordErrorAndStatus(span, err) {
		RecordIndexRebuild(spanCtx, "failed")
		return RebuildResult{}, fmt.Errorf("failed to replace vector index: %w", err)
	}

	span.SetAttributes(attribute.Int("records", len(records)))
	RecordIndexRebuild(spanCtx, "rebuilt")
	ri.logger.Printf("RebuildIndex: indexed %d catalog entries", len(records))
	return RebuildResult{Rebuilt: true, Count: len(records)}, nil
}

// buildRecords embeds every catalog entry in batches.
func (ri RebuildIndexImpl) buildRecords(ctx context.Context, catalog domain.CatalogReader) ([]domain.EmbeddingRecord, error) {
	entries, err := catalog.ListEntries(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list catalog entries: %w", err)
	}

	records := make([]domain.EmbeddingRecord, 0, len(entries))
	tokens := 0
	for start := 0; start < len(entries); start += ri.batchSize {
		batch := entries[start:min(start+ri.batchSize, len(entries))]

		texts := make([]string, len(batch))
		for i, e := range batch {
			texts[i] = e.EmbeddingText()
		}

		vectors, err := ri.embedder.EmbedBatch(ctx, texts)
		if err != nil {
			return nil, fmt.Errorf("failed to embed entries %d-%d: %w", start, start+len(batch)-1, err)
		}
		if len(vectors) != len(batch) {
			return nil, fmt.Errorf("embedding service returned %d vectors for %d entries", len(vectors), len(batch))
		}

		for i, e := range batch {
			tokens += vectors[i].TotalTokens
			records = append(records, domain.EmbeddingRecord{
				ID:         e.ID,
				Vector:     vectors[i].Vector,
				Metadata:   e.Metadata(),
				SourceText: texts[i],
			})
		}
	}

	RecordLLMTokensEmbedding(ctx, tokens)
	return records, nil
}

// InitRebuildIndex registers the RebuildIndex use case and brings the vector index up to date at startup.
type InitRebuildIndex struct {
	Logger    *log.Logger             `resolve:""`
	Catalog   domain.CatalogReader    `resolve:""`
	Embedder  domain.EmbeddingService `resolve:""`
	Index     domain.VectorIndex      `resolve:""`
	BatchSize int                     `config:"EMBEDDING_BATCH_SIZE" default:"100"`
}

// Initialize registers the RebuildIndex use case implementation and runs a non-forced rebuild.
func (i InitRebuildIndex) Initialize(ctx context.Context) (context.Context, error) {
	if i.BatchSize <= 0 {
		return ctx, domain.NewConfigurationErr("EMBEDDING_BATCH_SIZE must be greater than 0")
	}

	rebuild := NewRebuildIndexImpl(i.Catalog, i.Embedder, i.Index, i.BatchSize, i.Logger)
	res, err := rebuild.Execute(ctx, false)
	if err != nil {
		return ctx, fmt.Errorf("initial vector index build: %w", err)
	}
	if !res.Rebuilt {
		i.Logger.Printf("InitRebuildIndex: vector index already holds %d records, skipping build", res.Count)
	}

	depend.Register[RebuildIndex](rebuild)
	return ctx, nil
}
