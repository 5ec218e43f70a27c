package usecases

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/cleitonmarx/symbiont-ai-mixby/internal/domain"
	"github.com/cleitonmarx/symbiont-ai-mixby/internal/telemetry"
	"github.com/cleitonmarx/symbiont/depend"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

const (
	// DefaultSearchResults is used when the caller does not ask for a result count.
	DefaultSearchResults = 10
	// MaxSearchResults bounds a single search.
	MaxSearchResults = 50
)

// SearchCatalog is the use case interface for semantic catalog search.
type SearchCatalog interface {
	// Query returns up to n entries similar to query. A non-nil codes list restricts the search
	// to those entries and must name at least one code; useMMR diversifies the results.
	Query(ctx context.Context, query string, n int, codes []string, useMMR bool) ([]domain.RetrievedItem, error)
}

// SearchCatalogImpl is the implementation of the SearchCatalog use case.
type SearchCatalogImpl struct {
	retriever domain.CandidateRetriever
	timeout   time.Duration
}

// NewSearchCatalogImpl creates a new instance of SearchCatalogImpl.
func NewSearchCatalogImpl(retriever domain.CandidateRetriever, timeout time.Duration) SearchCatalogImpl {
	return SearchCatalogImpl{
		retriever: retriever,
		timeout:   timeout,
	}
}

// Query implements SearchCatalog.
func (sc SearchCatalogImpl) Query(ctx context.Context, query string, n int, codes []string, useMMR bool) ([]domain.RetrievedItem, error) {
	spanCtx, span := telemetry.Start(ctx, trace.WithAttributes(
		attribute.Int("n", n),
		attribute.Int("codes", len(codes)),
		attribute.Bool("mmr", useMMR),
	))
	defer span.End()

	query = strings.TrimSpace(query)
	if err := validateSearchParams(query, n); telemetry.RecordErrorAndStatus(span, err) {
		return nil, err
	}

	filter, err := codeFilter(codes)
	if telemetry.RecordErrorAndStatus(span, err) {
		return nil, err
	}

	if sc.timeout > 0 {
		var cancel context.CancelFunc
		spanCtx, cancel = context.WithTimeout(spanCtx, sc.timeout)
		defer cancel()
	}

	records, err := sc.retriever.Retrieve(spanCtx, query, n, filter, useMMR)
	if telemetry.RecordErrorAndStatus(span, err) {
		return nil, fmt.Errorf("failed to search catalog: %w", err)
	}

	items := make([]domain.RetrievedItem, len(records))
	for i, r := range records {
		items[i] = domain.RetrievedItem{
			Metadata:   r.Record.Metadata,
			Similarity: r.Similarity,
		}
	}
	return items, nil
}

// codeFilter turns the requested codes into a search filter. Nil codes leave the search unrestricted.
func codeFilter(codes []string) (domain.SearchFilter, error) {
	if codes == nil {
		return domain.SearchFilter{}, nil
	}
	filter := domain.SearchFilter{AllowedIDs: []string{}}
	for _, code := range codes {
		if code = strings.TrimSpace(code); code != "" {
			filter.AllowedIDs = append(filter.AllowedIDs, code)
		}
	}
	if len(filter.AllowedIDs) == 0 {
		return domain.SearchFilter{}, domain.NewValidationErr("codes must list at least one code")
	}
	return filter, nil
}

func validateSearchParams(query string, n int) error {
	if query == "" {
		return domain.NewValidationErr("query cannot be empty")
	}
	if n <= 0 || n > MaxSearchResults {
		return domain.NewValidationErr(fmt.Sprintf("n must be between 1 and %d", MaxSearchResults))
	}
	return nil
}

// InitSearchCatalog initializes the SearchCatalog use case.
type InitSearchCatalog struct {
	Retriever domain.CandidateRetriever `resolve:""`
	Timeout   time.Duration             `config:"RETRIEVAL_TIMEOUT" default:"5s"`
}

// Initialize registers the SearchCatalog use case implementation.
func (i InitSearchCatalog) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[SearchCatalog](NewSearchCatalogImpl(i.Retriever, i.Timeout))
	return ctx, nil
}
