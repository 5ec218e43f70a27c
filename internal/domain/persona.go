package domain

import (
	"strconv"
	"strings"
)

// UserProfile is the self-description a user gives before any tasting.
type UserProfile struct {
	Name          string
	Gender        string
	FavoriteTaste string
}

// Rating is a 0 to 6 satisfaction score given on a tasting card.
type Rating int

var ratingLabels = [...]string{
	"very dissatisfied",
	"mostly dissatisfied",
	"slightly dissatisfied",
	"neutral",
	"slightly satisfied",
	"mostly satisfied",
	"very satisfied",
}

// Label returns the wording of r, or its number when r is off the scale.
func (r Rating) Label() string {
	if r < 0 || int(r) >= len(ratingLabels) {
		return strconv.Itoa(int(r))
	}
	return ratingLabels[r]
}

// TastingNote records how a user rated one catalog cocktail.
type TastingNote struct {
	Code      string
	DrinkDate string
	Overall   Rating
	Sweetness Rating
	Sourness  Rating
	Alcohol   Rating
}

// Describe renders the note as one bracketed line with the entry's name and tags.
func (n TastingNote) Describe(entry CatalogEntry) string {
	fields := []string{
		entry.PrimaryName(),
		n.DrinkDate,
		entry.Tag(0),
		entry.Tag(1),
		n.Overall.Label(),
		n.Sweetness.Label(),
		n.Sourness.Label(),
		n.Alcohol.Label(),
	}
	return "[" + strings.Join(fields, ", ") + "]"
}

// Persona is the short taste summary fed to every recommendation request.
type Persona struct {
	Summary string
	// MatchedNotes counts the tasting notes whose code exists in the catalog.
	MatchedNotes int
	// SkippedCodes lists the tasting codes unknown to the catalog, in request order.
	SkippedCodes []string
	Model        string
}
