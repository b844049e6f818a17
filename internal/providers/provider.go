package providers

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/windoze95/recipefinder-api/internal/config"
)

// MealCatalog is the free fallback provider (TheMealDB). None of its
// operations return an error: failures arrive as an Empty result.
type MealCatalog interface {
	SearchByName(ctx context.Context, name string) Result[[]Meal]
	SearchByFirstLetter(ctx context.Context, letter string) Result[[]Meal]
	LookupByID(ctx context.Context, id string) Result[Meal]
	Random(ctx context.Context) Result[Meal]
	Categories(ctx context.Context) Result[[]Category]
	ListByType(ctx context.Context, listType ListType) Result[[]ListEntry]
	FilterByIngredient(ctx context.Context, ingredient string) Result[[]Meal]
	FilterByCategory(ctx context.Context, category string) Result[[]Meal]
	FilterByArea(ctx context.Context, area string) Result[[]Meal]
}

// EdamamSearcher is the primary keyed provider.
type EdamamSearcher interface {
	Search(ctx context.Context, query string, to int) ([]EdamamRecipe, error)
}

// SpoonacularSearcher is the secondary keyed provider.
type SpoonacularSearcher interface {
	Search(ctx context.Context, query string, to int) ([]SpoonacularRecipe, error)
}

// Set bundles one client per upstream provider.
type Set struct {
	Edamam      *EdamamClient
	Spoonacular *SpoonacularClient
	MealDB      *MealDBClient
}

// NewSet builds every provider client from the app config. Keyed clients are
// constructed even without credentials; the search service decides which
// one is used.
func NewSet(cfg *config.Config) *Set {
	endpoints := cfg.Providers
	if endpoints == nil {
		endpoints = config.DefaultProviders()
	}
	httpClient := NewHTTPClient(endpoints.Timeout)
	creds := cfg.Credentials()

	return &Set{
		Edamam:      NewEdamamClient(endpoints.Edamam.BaseURL, creds.EdamamAppID, creds.EdamamAppKey, httpClient),
		Spoonacular: NewSpoonacularClient(endpoints.Spoonacular.BaseURL, creds.SpoonacularKey, httpClient),
		MealDB:      NewMealDBClient(endpoints.MealDB.BaseURL, endpoints.MealDB.IngredientImageBase, httpClient),
	}
}

// NewHTTPClient returns the client shared by all providers.
func NewHTTPClient(timeout time.Duration) *http.Client {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &http.Client{Timeout: timeout}
}

// getJSON issues a GET and decodes a 200 response body into out.
func getJSON(ctx context.Context, client *http.Client, name, rawURL string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return fmt.Errorf("failed to create %s request: %w", name, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("%s request failed: %w", name, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read %s response: %w", name, err)
	}

	if resp.StatusCode != http.StatusOK {
		return &StatusError{Provider: name, StatusCode: resp.StatusCode, Body: truncate(string(body), 200)}
	}

	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("failed to parse %s response: %w", name, err)
	}
	return nil
}

// StatusError is returned when an upstream answers with a non-200 status.
type StatusError struct {
	Provider   string
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s API returned status %d: %s", e.Provider, e.StatusCode, e.Body)
}

// decodeCollection decodes a JSON array. Anything that is not an array
// (missing, null, a string sentinel) reports ok=false without an error.
func decodeCollection[T any](raw json.RawMessage) (items []T, ok bool, err error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || trimmed[0] != '[' {
		return nil, false, nil
	}
	if err := json.Unmarshal(trimmed, &items); err != nil {
		return nil, false, err
	}
	if items == nil {
		items = []T{}
	}
	return items, true, nil
}

func buildURL(base, path string, params url.Values) string {
	if len(params) == 0 {
		return base + path
	}
	return base + path + "?" + params.Encode()
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
