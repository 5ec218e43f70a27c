package domain

import (
	"context"
	"fmt"
	"strings"
)

// Ingredient is one line of a cocktail recipe.
type Ingredient struct {
	Name   string
	Code   string
	Amount string
	Unit   string
}

// CatalogEntry represents a cocktail known to the catalog.
// Entries are validated when the catalog is loaded and never mutated afterwards.
type CatalogEntry struct {
	ID           string
	KoreanName   string
	EnglishName  string
	Tags         []string
	Ingredients  []Ingredient
	Instructions []string
}

// DisplayNames returns the non-empty display names of the entry, korean name first.
func (e CatalogEntry) DisplayNames() []string {
	names := make([]string, 0, 2)
	if n := strings.TrimSpace(e.KoreanName); n != "" {
		names = append(names, n)
	}
	if n := strings.TrimSpace(e.EnglishName); n != "" {
		names = append(names, n)
	}
	return names
}

// PrimaryName returns the name used when the entry is presented to a user.
func (e CatalogEntry) PrimaryName() string {
	names := e.DisplayNames()
	if len(names) == 0 {
		return e.ID
	}
	return names[0]
}

// Tag returns the tag at position i or an empty string.
func (e CatalogEntry) Tag(i int) string {
	if i < 0 || i >= len(e.Tags) {
		return ""
	}
	return e.Tags[i]
}

// Metadata returns the denormalized view of the entry stored next to its vector.
func (e CatalogEntry) Metadata() EntryMetadata {
	return EntryMetadata{
		Code:        e.ID,
		KoreanName:  e.KoreanName,
		EnglishName: e.EnglishName,
		Tag1:        e.Tag(0),
		Tag2:        e.Tag(1),
	}
}

// EmbeddingText builds the text that represents the entry in the vector index.
func (e CatalogEntry) EmbeddingText() string {
	parts := []string{
		fmt.Sprintf("Cocktail name: %s", e.KoreanName),
		fmt.Sprintf("English name: %s", e.EnglishName),
		fmt.Sprintf("Tags: %s, %s", e.Tag(0), e.Tag(1)),
	}

	if len(e.Ingredients) > 0 {
		names := make([]string, 0, len(e.Ingredients))
		for _, ing := range e.Ingredients {
			names = append(names, ing.Name)
		}
		parts = append(parts, "Ingredients: "+strings.Join(names, ", "))
	}

	if len(e.Instructions) > 0 {
		parts = append(parts, "Instructions: "+strings.Join(e.Instructions, " "))
	}

	return strings.Join(parts, " | ")
}

// EntryMetadata is the display data returned by the vector index without a second catalog lookup.
type EntryMetadata struct {
	Code        string
	KoreanName  string
	EnglishName string
	Tag1        string
	Tag2        string
}

// CatalogReader provides read access to the cocktail catalog.
type CatalogReader interface {
	// ListEntries returns every entry of the catalog in a stable order.
	ListEntries(ctx context.Context) ([]CatalogEntry, error)
	// FindEntry returns the entry with the given id and whether it exists.
	FindEntry(ctx context.Context, id string) (CatalogEntry, bool, error)
}

// CatalogReloader replaces the catalog contents from its source in two steps,
// so the new entries can be indexed before any reader sees them.
type CatalogReloader interface {
	// Stage reads and validates the source again without changing the served entries.
	Stage(ctx context.Context) (StagedCatalog, error)
}

// StagedCatalog is a validated catalog version that is not served yet.
type StagedCatalog interface {
	CatalogReader
	// Len returns the number of staged entries.
	Len() int
	// Commit atomically makes the staged entries the served ones.
	Commit()
}
