package http

import (
	"encoding/json"
	"strings"
	"time"

	openapi_types "github.com/oapi-codegen/runtime/types"
)

// ErrorCode is the machine-readable error code of an ErrorResp.
type ErrorCode string

const (
	BADREQUEST    ErrorCode = "BAD_REQUEST"
	NOTFOUND      ErrorCode = "NOT_FOUND"
	BADGATEWAY    ErrorCode = "BAD_GATEWAY"
	INTERNALERROR ErrorCode = "INTERNAL_ERROR"
)

// Error is the body of an error response.
type Error struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
}

// ErrorResp wraps an Error.
type ErrorResp struct {
	Error Error `json:"error"`
}

// CocktailList accepts either a JSON array of strings or a single comma separated string.
type CocktailList []string

// UnmarshalJSON implements json.Unmarshaler.
func (l *CocktailList) UnmarshalJSON(data []byte) error {
	var list []string
	if err := json.Unmarshal(data, &list); err == nil {
		*l = list
		return nil
	}

	var joined string
	if err := json.Unmarshal(data, &joined); err != nil {
		return err
	}
	*l = CocktailList{}
	for _, item := range strings.Split(joined, ",") {
		if item = strings.TrimSpace(item); item != "" {
			*l = append(*l, item)
		}
	}
	return nil
}

// RecommendationRequestBody is the body of the recommendation endpoints.
// Season, Time and Weather are only read by the default kind.
type RecommendationRequestBody struct {
	Persona      string       `json:"persona"`
	CocktailList CocktailList `json:"cocktail_list"`
	Season       string       `json:"season,omitempty"`
	Time         string       `json:"time,omitempty"`
	Weather      string       `json:"weather,omitempty"`
}

// TastingCode accepts a catalog code written either as a JSON string or a JSON number.
type TastingCode string

// UnmarshalJSON implements json.Unmarshaler.
func (c *TastingCode) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*c = TastingCode(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*c = TastingCode(n.String())
	return nil
}

// UserDataItem describes the user asking for a persona.
type UserDataItem struct {
	Name          string `json:"name"`
	Gender        string `json:"gender"`
	FavoriteTaste string `json:"favoriteTaste"`
}

// TastingDataItem is one tasting card. Ratings range from 0 to 6.
type TastingDataItem struct {
	Code      TastingCode `json:"code"`
	DrinkDate string      `json:"drinkDate"`
	Eval      int         `json:"eval"`
	Sweetness int         `json:"sweetness"`
	Sourness  int         `json:"sourness"`
	Alcohol   int         `json:"alcohol"`
}

// PersonaRequestBody is the body of the persona endpoint. Only the first user_data item is used.
type PersonaRequestBody struct {
	UserData    []UserDataItem     `json:"user_data"`
	TastingData *[]TastingDataItem `json:"tasting_data"`
}

// PersonaResp is the response of the persona endpoint.
type PersonaResp struct {
	Persona         string   `json:"persona"`
	MatchedTastings int      `json:"matched_tastings"`
	SkippedCodes    []string `json:"skipped_codes"`
	Model           string   `json:"model"`
}

// RecommendationItem is one pick of a RecommendationResp.
type RecommendationItem struct {
	Context     string `json:"context"`
	Name        string `json:"name"`
	Tag         string `json:"tag"`
	Reason      string `json:"reason"`
	Code        string `json:"code,omitempty"`
	Matched     bool   `json:"matched"`
	MatchMethod string `json:"match_method"`
}

// RecommendationResp is the response of the recommendation endpoints.
type RecommendationResp struct {
	Id               openapi_types.UUID   `json:"id"`
	Kind             string               `json:"kind"`
	Grounding        string               `json:"grounding"`
	UngroundedReason string               `json:"ungrounded_reason,omitempty"`
	Model            string               `json:"model"`
	GeneratedAt      time.Time            `json:"generated_at"`
	Recommendation   []RecommendationItem `json:"recommendation"`
}

// SearchItem is one hit of a semantic catalog search.
type SearchItem struct {
	Code            string  `json:"code"`
	KoreanName      string  `json:"korean_name"`
	EnglishName     string  `json:"english_name"`
	Tag1            string  `json:"tag1"`
	Tag2            string  `json:"tag2"`
	SimilarityScore float64 `json:"similarity_score"`
}

// SearchResp is the response of the catalog search endpoint.
type SearchResp struct {
	Items []SearchItem `json:"items"`
}

// RebuildResp is the response of the index rebuild endpoint.
type RebuildResp struct {
	Rebuilt bool `json:"rebuilt"`
	Count   int  `json:"count"`
}

// HealthResp is the response of the health endpoint.
type HealthResp struct {
	Status string `json:"status"`
}
