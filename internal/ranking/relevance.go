// Package ranking scores TheMealDB records against a search query.
package ranking

import (
	"strings"

	"github.com/windoze95/recipefinder-api/internal/providers"
)

// Score weights.
const (
	NameExact      = 100
	NamePrefix     = 80
	NameWord       = 60
	NameSubstring  = 40
	IngredientHit  = 50
	IngredientPart = 30
	FacetExact     = 40
	FacetPart      = 20
)

// Score returns the additive relevance of m for query. Comparisons are
// case-insensitive. A score of 0 means no match signal at all.
//
// Category and area are scored with two independent checks, so an exact
// match earns FacetExact + FacetPart.
func Score(m providers.Meal, query string) int {
	q := strings.ToLower(query)
	if q == "" {
		return 0
	}
	name := strings.ToLower(m.Name)
	score := 0

	switch {
	case name == q:
		score += NameExact
	case strings.HasPrefix(name, q):
		score += NamePrefix
	case strings.Contains(name, " "+q+" "),
		strings.Contains(name, q+" "),
		strings.Contains(name, " "+q):
		score += NameWord
	case strings.Contains(name, q):
		score += NameSubstring
	}

	for _, raw := range m.Ingredients {
		ingredient := strings.ToLower(raw)
		if ingredient == q {
			score += IngredientHit
		} else if strings.Contains(ingredient, q) {
			score += IngredientPart
		}
	}

	score += facet(m.Category, q)
	score += facet(m.Area, q)

	return score
}

func facet(value, q string) int {
	v := strings.ToLower(value)
	score := 0
	if v == q {
		score += FacetExact
	}
	if strings.Contains(v, q) {
		score += FacetPart
	}
	return score
}
