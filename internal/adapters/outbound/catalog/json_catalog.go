package catalog

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"
	"slices"
	"strings"
	"sync/atomic"

	"github.com/cleitonmarx/symbiont-ai-mixby/internal/domain"
	"github.com/cleitonmarx/symbiont-ai-mixby/internal/telemetry"
	"github.com/cleitonmarx/symbiont/depend"
	"github.com/go-playground/validator/v10"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// flexString accepts a JSON string or number. Recipe codes appear as both.
type flexString string

func (f *flexString) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*f = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*f = flexString(strings.TrimSpace(s))
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("expected string or number, got %s", data)
	}
	*f = flexString(n.String())
	return nil
}

type ingredientDTO struct {
	Name   string     `json:"name" validate:"required"`
	Code   flexString `json:"code"`
	Amount flexString `json:"amount"`
	Unit   string     `json:"unit"`
}

type entryDTO struct {
	Code         flexString      `json:"code" validate:"required"`
	KoreanName   string          `json:"korean_name" validate:"required_without_all=EnglishName Name"`
	EnglishName  string          `json:"english_name"`
	Name         string          `json:"name"`
	Tag1         string          `json:"tag1"`
	Tag2         string          `json:"tag2"`
	Ingredients  []ingredientDTO `json:"ingredients" validate:"dive"`
	Instructions []string        `json:"instructions"`
}

func (d entryDTO) toDomain() domain.CatalogEntry {
	english := d.EnglishName
	if strings.TrimSpace(english) == "" {
		english = d.Name
	}

	e := domain.CatalogEntry{
		ID:           string(d.Code),
		KoreanName:   strings.TrimSpace(d.KoreanName),
		EnglishName:  strings.TrimSpace(english),
		Instructions: d.Instructions,
	}
	for _, t := range []string{d.Tag1, d.Tag2} {
		if t = strings.TrimSpace(t); t != "" {
			e.Tags = append(e.Tags, t)
		}
	}
	for _, ing := range d.Ingredients {
		e.Ingredients = append(e.Ingredients, domain.Ingredient{
			Name:   ing.Name,
			Code:   string(ing.Code),
			Amount: string(ing.Amount),
			Unit:   ing.Unit,
		})
	}
	return e
}

type snapshot struct {
	entries []domain.CatalogEntry
	byID    map[string]int
}

func (s *snapshot) list() []domain.CatalogEntry {
	return slices.Clone(s.entries)
}

func (s *snapshot) find(id string) (domain.CatalogEntry, bool) {
	i, ok := s.byID[id]
	if !ok {
		return domain.CatalogEntry{}, false
	}
	return s.entries[i], true
}

// JSONCatalog serves the catalog from a JSON file of recipes.
// A committed Stage swaps the whole entry list at once; readers never see a partial catalog.
type JSONCatalog struct {
	path     string
	validate *validator.Validate
	current  atomic.Pointer[snapshot]
}

// NewJSONCatalog loads the catalog file at path.
func NewJSONCatalog(path string) (*JSONCatalog, error) {
	c := &JSONCatalog{
		path:     path,
		validate: validator.New(),
	}
	snap, err := c.load()
	if err != nil {
		return nil, err
	}
	c.current.Store(snap)
	return c, nil
}

// ListEntries implements domain.CatalogReader.
func (c *JSONCatalog) ListEntries(ctx context.Context) ([]domain.CatalogEntry, error) {
	return c.current.Load().list(), nil
}

// FindEntry implements domain.CatalogReader.
func (c *JSONCatalog) FindEntry(ctx context.Context, id string) (domain.CatalogEntry, bool, error) {
	entry, ok := c.current.Load().find(id)
	return entry, ok, nil
}

// Stage implements domain.CatalogReloader. The served entries change only on Commit.
func (c *JSONCatalog) Stage(ctx context.Context) (domain.StagedCatalog, error) {
	_, span := telemetry.Start(ctx, trace.WithAttributes(attribute.String("catalog.path", c.path)))
	defer span.End()

	snap, err := c.load()
	if telemetry.RecordErrorAndStatus(span, err) {
		return nil, err
	}
	span.SetAttributes(attribute.Int("catalog.entries", len(snap.entries)))
	return stagedCatalog{owner: c, snap: snap}, nil
}

// stagedCatalog serves a loaded snapshot that its owner does not serve yet.
type stagedCatalog struct {
	owner *JSONCatalog
	snap  *snapshot
}

func (s stagedCatalog) ListEntries(context.Context) ([]domain.CatalogEntry, error) {
	return s.snap.list(), nil
}

func (s stagedCatalog) FindEntry(_ context.Context, id string) (domain.CatalogEntry, bool, error) {
	entry, ok := s.snap.find(id)
	return entry, ok, nil
}

func (s stagedCatalog) Len() int {
	return len(s.snap.entries)
}

func (s stagedCatalog) Commit() {
	s.owner.current.Store(s.snap)
}

func (c *JSONCatalog) load() (*snapshot, error) {
	raw, err := os.ReadFile(c.path)
	if err != nil {
		return nil, fmt.Errorf("read catalog file: %w", err)
	}
	return c.parse(raw)
}

func (c *JSONCatalog) parse(raw []byte) (*snapshot, error) {
	var dtos []entryDTO
	if err := json.Unmarshal(raw, &dtos); err != nil {
		return nil, fmt.Errorf("parse catalog file: %w", err)
	}

	snap := &snapshot{
		entries: make([]domain.CatalogEntry, 0, len(dtos)),
		byID:    make(map[string]int, len(dtos)),
	}
	var errs []error
	for i, dto := range dtos {
		if err := c.validate.Struct(dto); err != nil {
			errs = append(errs, fmt.Errorf("entry %d: %w", i, err))
			continue
		}
		entry := dto.toDomain()
		if _, dup := snap.byID[entry.ID]; dup {
			errs = append(errs, fmt.Errorf("entry %d: duplicate code %q", i, entry.ID))
			continue
		}
		snap.byID[entry.ID] = len(snap.entries)
		snap.entries = append(snap.entries, entry)
	}
	if len(errs) > 0 {
		return nil, domain.NewValidationErr(errors.Join(errs...).Error())
	}
	return snap, nil
}

// InitCatalog loads the JSON catalog and registers it as domain.CatalogReader and domain.CatalogReloader.
type InitCatalog struct {
	Logger *log.Logger `resolve:""`
	File   string      `config:"CATALOG_FILE"`
}

// Initialize loads the catalog file.
func (i InitCatalog) Initialize(ctx context.Context) (context.Context, error) {
	if i.File == "" {
		return ctx, domain.NewConfigurationErr("CATALOG_FILE is required")
	}
	c, err := NewJSONCatalog(i.File)
	if err != nil {
		return ctx, domain.NewConfigurationErr(fmt.Sprintf("load catalog %s: %v", i.File, err))
	}

	depend.Register[domain.CatalogReader](c)
	depend.Register[domain.CatalogReloader](c)
	i.Logger.Printf("InitCatalog: loaded %d entries from %s", len(c.current.Load().entries), i.File)
	return ctx, nil
}
