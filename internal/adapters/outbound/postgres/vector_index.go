package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"sync"

	"github.com/Masterminds/squirrel"
	"github.com/cleitonmarx/symbiont-ai-mixby/internal/common"
	"github.com/cleitonmarx/symbiont-ai-mixby/internal/domain"
	"github.com/cleitonmarx/symbiont-ai-mixby/internal/telemetry"
	"github.com/cleitonmarx/symbiont/depend"
	"github.com/pgvector/pgvector-go"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// MaxDimensions is the largest vector pgvector stores in a vector column.
const MaxDimensions = 16000

var (
	embeddingFields = []string{
		"id",
		"embedding",
		"source_text",
		"code",
		"korean_name",
		"english_name",
		"tag1",
		"tag2",
	}
)

// VectorIndex implements domain.VectorIndex with pgvector.
// Similarity is 1 minus the cosine distance (<=>).
type VectorIndex struct {
	db *sql.DB
	sb squirrel.StatementBuilderType

	mu         sync.RWMutex
	collection string
}

// NewVectorIndex creates a new instance of VectorIndex.
func NewVectorIndex(db *sql.DB) *VectorIndex {
	return &VectorIndex{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar).RunWith(db),
	}
}

// Initialize creates the collection row if it does not exist yet.
func (vi *VectorIndex) Initialize(ctx context.Context, collection string) error {
	spanCtx, span := telemetry.Start(ctx, trace.WithAttributes(attribute.String("collection", collection)))
	defer span.End()

	if collection == "" {
		err := domain.NewValidationErr("collection name is required")
		telemetry.RecordErrorAndStatus(span, err)
		return err
	}

	_, err := vi.sb.
		Insert("vector_collections").
		Columns("name").
		Values(collection).
		Suffix("ON CONFLICT (name) DO NOTHING").
		ExecContext(spanCtx)
	if telemetry.RecordErrorAndStatus(span, err) {
		return err
	}

	vi.mu.Lock()
	vi.collection = collection
	vi.mu.Unlock()
	return nil
}

// Add inserts records into the collection.
func (vi *VectorIndex) Add(ctx context.Context, records []domain.EmbeddingRecord) error {
	spanCtx, span := telemetry.Start(ctx, trace.WithAttributes(attribute.Int("records", len(records))))
	defer span.End()

	collection, err := vi.currentCollection()
	if telemetry.RecordErrorAndStatus(span, err) {
		return err
	}
	if err := checkRecordDimensions(records); telemetry.RecordErrorAndStatus(span, err) {
		return err
	}

	err = insertRecords(spanCtx, vi.sb, collection, records)
	if telemetry.RecordErrorAndStatus(span, err) {
		return err
	}
	return nil
}

// Replace deletes and re-inserts the collection in one transaction.
// Concurrent searches keep seeing the previous rows until the commit.
func (vi *VectorIndex) Replace(ctx context.Context, records []domain.EmbeddingRecord) error {
	spanCtx, span := telemetry.Start(ctx, trace.WithAttributes(attribute.Int("records", len(records))))
	defer span.End()

	collection, err := vi.currentCollection()
	if telemetry.RecordErrorAndStatus(span, err) {
		return err
	}
	if err := checkRecordDimensions(records); telemetry.RecordErrorAndStatus(span, err) {
		return err
	}

	err = withTx(spanCtx, vi.db, func(runner squirrel.BaseRunner) error {
		sb := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar).RunWith(runner)
		if _, err := sb.Delete("catalog_embeddings").
			Where(squirrel.Eq{"collection": collection}).
			ExecContext(spanCtx); err != nil {
			return err
		}
		return insertRecords(spanCtx, sb, collection, records)
	})
	if telemetry.RecordErrorAndStatus(span, err) {
		return err
	}
	return nil
}

// Search returns the k records closest to query among the eligible ones.
func (vi *VectorIndex) Search(ctx context.Context, query []float64, k int, filter domain.SearchFilter) ([]domain.ScoredRecord, error) {
	spanCtx, span := telemetry.Start(ctx, trace.WithAttributes(
		attribute.Int("k", k),
		attribute.Bool("restricted", filter.Restricted()),
	))
	defer span.End()

	collection, err := vi.currentCollection()
	if telemetry.RecordErrorAndStatus(span, err) {
		return nil, err
	}
	if k <= 0 {
		err := domain.NewValidationErr("k must be greater than 0")
		telemetry.RecordErrorAndStatus(span, err)
		return nil, err
	}
	if err := checkDimensions(len(query)); telemetry.RecordErrorAndStatus(span, err) {
		return nil, err
	}
	if filter.Restricted() && len(filter.AllowedIDs) == 0 {
		return []domain.ScoredRecord{}, nil
	}

	vec := pgvector.NewVector(common.ToFloat32(query))
	qry := vi.sb.
		Select(embeddingFields...).
		Column(squirrel.Expr("1 - (embedding <=> ?) AS similarity", vec)).
		From("catalog_embeddings").
		Where(squirrel.Eq{"collection": collection})

	if filter.Restricted() {
		qry = qry.Where(squirrel.Eq{"id": filter.AllowedIDs})
	}

	qry = qry.
		OrderByClause(squirrel.Expr("embedding <=> ?", vec)).
		OrderBy("id").
		Limit(uint64(k))

	rows, err := qry.QueryContext(spanCtx)
	if telemetry.RecordErrorAndStatus(span, err) {
		return nil, err
	}
	defer rows.Close() //nolint:errcheck

	results := []domain.ScoredRecord{}
	for rows.Next() {
		var (
			r         domain.ScoredRecord
			embedding pgvector.Vector
		)
		err := rows.Scan(
			&r.Record.ID,
			&embedding,
			&r.Record.SourceText,
			&r.Record.Metadata.Code,
			&r.Record.Metadata.KoreanName,
			&r.Record.Metadata.EnglishName,
			&r.Record.Metadata.Tag1,
			&r.Record.Metadata.Tag2,
			&r.Similarity,
		)
		if telemetry.RecordErrorAndStatus(span, err) {
			return nil, err
		}
		r.Record.Vector = common.ToFloat64(embedding.Slice())
		results = append(results, r)
	}
	if err := rows.Err(); telemetry.RecordErrorAndStatus(span, err) {
		return nil, err
	}

	span.SetAttributes(attribute.Int("results", len(results)))
	return results, nil
}

// Count returns the number of records in the collection.
func (vi *VectorIndex) Count(ctx context.Context) (int, error) {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	collection, err := vi.currentCollection()
	if telemetry.RecordErrorAndStatus(span, err) {
		return 0, err
	}

	var count int
	err = vi.sb.
		Select("COUNT(*)").
		From("catalog_embeddings").
		Where(squirrel.Eq{"collection": collection}).
		QueryRowContext(spanCtx).
		Scan(&count)
	if telemetry.RecordErrorAndStatus(span, err) {
		return 0, err
	}
	return count, nil
}

// Clear removes every record of the collection.
func (vi *VectorIndex) Clear(ctx context.Context) error {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	collection, err := vi.currentCollection()
	if telemetry.RecordErrorAndStatus(span, err) {
		return err
	}

	_, err = vi.sb.
		Delete("catalog_embeddings").
		Where(squirrel.Eq{"collection": collection}).
		ExecContext(spanCtx)
	if telemetry.RecordErrorAndStatus(span, err) {
		return err
	}
	return nil
}

// IsInitialized reports whether the collection holds at least one record.
func (vi *VectorIndex) IsInitialized(ctx context.Context) (bool, error) {
	if _, err := vi.currentCollection(); err != nil {
		return false, nil
	}
	count, err := vi.Count(ctx)
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (vi *VectorIndex) currentCollection() (string, error) {
	vi.mu.RLock()
	defer vi.mu.RUnlock()
	if vi.collection == "" {
		return "", domain.NewValidationErr("vector index is not initialized")
	}
	return vi.collection, nil
}

func checkDimensions(n int) error {
	if n > MaxDimensions {
		return domain.NewValidationErr(fmt.Sprintf("vector has %d dimensions, at most %d are supported", n, MaxDimensions))
	}
	return nil
}

func checkRecordDimensions(records []domain.EmbeddingRecord) error {
	for _, r := range records {
		if err := checkDimensions(len(r.Vector)); err != nil {
			return fmt.Errorf("record %s: %w", r.ID, err)
		}
	}
	return nil
}

func insertRecords(ctx context.Context, sb squirrel.StatementBuilderType, collection string, records []domain.EmbeddingRecord) error {
	if len(records) == 0 {
		return nil
	}

	qry := sb.
		Insert("catalog_embeddings").
		Columns(append([]string{"collection"}, embeddingFields...)...)

	for _, r := range records {
		qry = qry.Values(
			collection,
			r.ID,
			pgvector.NewVector(common.ToFloat32(r.Vector)),
			r.SourceText,
			r.Metadata.Code,
			r.Metadata.KoreanName,
			r.Metadata.EnglishName,
			r.Metadata.Tag1,
			r.Metadata.Tag2,
		)
	}

	if _, err := qry.ExecContext(ctx); err != nil {
		return fmt.Errorf("insert embeddings: %w", err)
	}
	return nil
}

// InitVectorIndex is responsible for initializing the pgvector index dependency.
type InitVectorIndex struct {
	DB         *sql.DB `resolve:""`
	Collection string  `config:"VECTOR_COLLECTION" default:"cocktails"`
}

// Initialize attaches to the collection and registers the domain.VectorIndex.
func (i InitVectorIndex) Initialize(ctx context.Context) (context.Context, error) {
	index := NewVectorIndex(i.DB)
	if err := index.Initialize(ctx, i.Collection); err != nil {
		return ctx, fmt.Errorf("initialize vector collection %s: %w", i.Collection, err)
	}
	depend.Register[domain.VectorIndex](index)
	return ctx, nil
}
