package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// RecommendationKind selects which set of contexts a recommendation covers.
type RecommendationKind string

const (
	RecommendationKind_Default   RecommendationKind = "default"
	RecommendationKind_Feeling   RecommendationKind = "feeling"
	RecommendationKind_Situation RecommendationKind = "situation"
)

var (
	feelingContexts   = []string{"happy", "tired", "angry"}
	situationContexts = []string{"busy", "relaxed", "travel"}
)

// Validate checks that the kind is one of the supported values.
func (k RecommendationKind) Validate() error {
	switch k {
	case RecommendationKind_Default, RecommendationKind_Feeling, RecommendationKind_Situation:
		return nil
	}
	return NewValidationErr("invalid recommendation kind: " + string(k))
}

// Conditions carries the user situation used by the default recommendation kind.
type Conditions struct {
	Season    string
	TimeOfDay string
	Weather   string
}

// Contexts returns the ordered contexts a recommendation of this kind is made for.
// The default kind takes its contexts from the given conditions.
func (k RecommendationKind) Contexts(c Conditions) ([]string, error) {
	switch k {
	case RecommendationKind_Feeling:
		return append([]string(nil), feelingContexts...), nil
	case RecommendationKind_Situation:
		return append([]string(nil), situationContexts...), nil
	case RecommendationKind_Default:
		contexts := []string{
			strings.TrimSpace(c.Season),
			strings.TrimSpace(c.TimeOfDay),
			strings.TrimSpace(c.Weather),
		}
		for _, ctx := range contexts {
			if ctx == "" {
				return nil, NewValidationErr("season, time and weather are required")
			}
		}
		return contexts, nil
	}
	return nil, k.Validate()
}

// GroundingMode tells whether a recommendation was generated from retrieved catalog candidates.
type GroundingMode string

const (
	GroundingMode_Grounded   GroundingMode = "grounded"
	GroundingMode_Ungrounded GroundingMode = "ungrounded"
)

const (
	UngroundedReason_NoCandidates    = "no_candidates"
	UngroundedReason_RetrievalFailed = "retrieval_failed"
)

// NameMatchMethod identifies which resolution step snapped a generated name onto the catalog.
type NameMatchMethod string

const (
	NameMatchMethod_Exact           NameMatchMethod = "exact"
	NameMatchMethod_CaseInsensitive NameMatchMethod = "case_insensitive"
	NameMatchMethod_Substring       NameMatchMethod = "substring"
	NameMatchMethod_Fuzzy           NameMatchMethod = "fuzzy"
	NameMatchMethod_Unresolved      NameMatchMethod = "unresolved"
)

// RecommendedItem is one pick of a recommendation.
type RecommendedItem struct {
	Context     string
	Name        string
	Tag         string
	Reason      string
	CatalogID   string
	Matched     bool
	MatchMethod NameMatchMethod
}

// Recommendation is the reconciled answer for one request.
type Recommendation struct {
	ID               uuid.UUID
	Kind             RecommendationKind
	Grounding        GroundingMode
	UngroundedReason string
	Items            []RecommendedItem
	Model            string
	GeneratedAt      time.Time
}

// UnresolvedCount returns how many items could not be snapped to a catalog entry.
func (r Recommendation) UnresolvedCount() int {
	count := 0
	for _, item := range r.Items {
		if !item.Matched {
			count++
		}
	}
	return count
}
