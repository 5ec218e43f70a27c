package domain

import "context"

// EmbeddingRecord is the vector representation of one catalog entry.
// Its ID always equals the CatalogEntry.ID it was built from.
type EmbeddingRecord struct {
	ID         string
	Vector     []float64
	Metadata   EntryMetadata
	SourceText string
}

// ScoredRecord is a record returned by a similarity search.
// Similarity is 1 minus the cosine distance to the query.
type ScoredRecord struct {
	Record     EmbeddingRecord
	Similarity float64
}

// RetrievedItem is the display form of a search hit.
type RetrievedItem struct {
	Metadata   EntryMetadata
	Similarity float64
}

// SearchFilter restricts which records are eligible in a search.
type SearchFilter struct {
	// AllowedIDs limits the search to these record ids when non-nil.
	// A non-nil empty slice makes every record ineligible.
	AllowedIDs []string
}

// Restricted reports whether the filter limits eligibility.
func (f SearchFilter) Restricted() bool {
	return f.AllowedIDs != nil
}

// AllowedSet returns the allowed ids as a set, or nil for an unrestricted filter.
func (f SearchFilter) AllowedSet() map[string]struct{} {
	if !f.Restricted() {
		return nil
	}
	set := make(map[string]struct{}, len(f.AllowedIDs))
	for _, id := range f.AllowedIDs {
		set[id] = struct{}{}
	}
	return set
}

// VectorIndex stores embedding records and answers nearest-neighbour queries by cosine distance.
// Every operation other than Initialize and IsInitialized requires the index to be initialized first.
type VectorIndex interface {
	// Initialize creates the named collection or attaches to it if it already exists.
	Initialize(ctx context.Context, collection string) error
	// Add appends records. Callers guarantee unique ids.
	Add(ctx context.Context, records []EmbeddingRecord) error
	// Replace atomically swaps the collection contents for the given records.
	Replace(ctx context.Context, records []EmbeddingRecord) error
	// Search returns up to k eligible records ordered by descending similarity.
	Search(ctx context.Context, query []float64, k int, filter SearchFilter) ([]ScoredRecord, error)
	// Count returns the number of records in the collection.
	Count(ctx context.Context) (int, error)
	// Clear removes every record from the collection.
	Clear(ctx context.Context) error
	// IsInitialized reports whether the collection exists and holds at least one record.
	IsInitialized(ctx context.Context) (bool, error)
}

// CandidateRetriever finds catalog candidates relevant to a free-text query.
type CandidateRetriever interface {
	// Retrieve embeds the query, searches the index among the eligible records and returns
	// up to n candidates. When diversify is set the candidates are re-ranked with MMR.
	Retrieve(ctx context.Context, query string, n int, filter SearchFilter, diversify bool) ([]ScoredRecord, error)
}
