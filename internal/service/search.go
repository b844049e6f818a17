package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/windoze95/recipefinder-api/internal/config"
	"github.com/windoze95/recipefinder-api/internal/models"
	"github.com/windoze95/recipefinder-api/internal/normalize"
	"github.com/windoze95/recipefinder-api/internal/providers"
)

// Result count bounds shared by every search surface.
const (
	// DefaultResultCount is used when SearchOptions.To is not positive.
	DefaultResultCount = 20
	// MaxResultCount is the largest To a caller may ask for.
	MaxResultCount = 100
)

// SearchOptions tunes a single search call.
type SearchOptions struct {
	// To is the maximum number of results.
	To int
}

// SearchService runs recipe searches against whichever provider the
// configured credentials select.
type SearchService struct {
	Edamam      providers.EdamamSearcher
	Spoonacular providers.SpoonacularSearcher
	MealDB      providers.MealCatalog
	provider    string
}

// NewSearchService creates a new SearchService. The provider is chosen once
// from creds and never changes for the lifetime of the service.
func NewSearchService(creds config.Credentials, edamam providers.EdamamSearcher, spoonacular providers.SpoonacularSearcher, mealDB providers.MealCatalog) *SearchService {
	return &SearchService{
		Edamam:      edamam,
		Spoonacular: spoonacular,
		MealDB:      mealDB,
		provider:    creds.ActiveProvider(),
	}
}

// NewSearchServiceFromSet wires a SearchService to a provider set.
func NewSearchServiceFromSet(cfg *config.Config, set *providers.Set) *SearchService {
	return NewSearchService(cfg.Credentials(), set.Edamam, set.Spoonacular, set.MealDB)
}

// ActiveProvider returns "primary", "secondary", or "fallback".
func (s *SearchService) ActiveProvider() string {
	return s.provider
}

// Search returns up to opts.To normalized recipes for query.
//
// The keyed providers return their failures; the fallback provider never
// does and degrades to fewer (possibly zero) results instead.
func (s *SearchService) Search(ctx context.Context, query string, opts SearchOptions) ([]models.Recipe, error) {
	query = strings.TrimSpace(query)
	to := opts.To
	if to <= 0 {
		to = DefaultResultCount
	}
	if query == "" {
		return []models.Recipe{}, nil
	}

	switch s.provider {
	case config.ProviderPrimary:
		return s.searchEdamam(ctx, query, to)
	case config.ProviderSecondary:
		return s.searchSpoonacular(ctx, query, to)
	}
	return s.searchFallback(ctx, query, to), nil
}

func (s *SearchService) searchEdamam(ctx context.Context, query string, to int) ([]models.Recipe, error) {
	raw, err := s.Edamam.Search(ctx, query, to)
	if err != nil {
		return nil, fmt.Errorf("edamam search failed: %w", err)
	}
	recipes := make([]models.Recipe, 0, len(raw))
	for _, r := range raw {
		recipes = append(recipes, normalize.Edamam(r))
	}
	return capUnique(recipes, to), nil
}

func (s *SearchService) searchSpoonacular(ctx context.Context, query string, to int) ([]models.Recipe, error) {
	raw, err := s.Spoonacular.Search(ctx, query, to)
	if err != nil {
		return nil, fmt.Errorf("spoonacular search failed: %w", err)
	}
	recipes := make([]models.Recipe, 0, len(raw))
	for _, r := range raw {
		recipes = append(recipes, normalize.Spoonacular(r))
	}
	return capUnique(recipes, to), nil
}

// capUnique keeps the provider's order, drops repeated URIs, and stops at to.
func capUnique(recipes []models.Recipe, to int) []models.Recipe {
	seen := make(map[string]struct{}, len(recipes))
	out := make([]models.Recipe, 0, min(len(recipes), to))
	for _, r := range recipes {
		if len(out) == to {
			break
		}
		if _, dup := seen[r.URI]; dup {
			continue
		}
		seen[r.URI] = struct{}{}
		out = append(out, r)
	}
	return out
}
