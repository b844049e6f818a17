package providers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"strconv"
	"strings"
)

// SpoonacularRecipe is a raw complexSearch result with recipe information.
type SpoonacularRecipe struct {
	ID                   int64                   `json:"id"`
	Title                string                  `json:"title"`
	Image                string                  `json:"image"`
	Nutrition            *SpoonacularNutrition   `json:"nutrition"`
	ExtendedIngredients  []SpoonacularIngredient `json:"extendedIngredients"`
	SourceURL            string                  `json:"sourceUrl"`
	SpoonacularSourceURL string                  `json:"spoonacularSourceUrl"`
	Servings             *float64                `json:"servings"`
	ReadyInMinutes       *float64                `json:"readyInMinutes"`
}

// SpoonacularNutrition holds the nutrient breakdown.
type SpoonacularNutrition struct {
	Nutrients []SpoonacularNutrient `json:"nutrients"`
}

// SpoonacularNutrient is one nutrient line.
type SpoonacularNutrient struct {
	Name   string  `json:"name"`
	Amount float64 `json:"amount"`
	Unit   string  `json:"unit"`
}

// SpoonacularIngredient is one extended ingredient.
type SpoonacularIngredient struct {
	Original string `json:"original"`
}

type spoonacularResponse struct {
	Results json.RawMessage `json:"results"`
}

// SpoonacularClient searches the Spoonacular recipe API.
type SpoonacularClient struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

// NewSpoonacularClient creates a Spoonacular client.
func NewSpoonacularClient(baseURL, apiKey string, httpClient *http.Client) *SpoonacularClient {
	return &SpoonacularClient{
		baseURL:    strings.TrimRight(baseURL, "/"),
		apiKey:     apiKey,
		httpClient: httpClient,
	}
}

// Search runs complexSearch with addRecipeInformation so a single request
// carries ingredients and timings.
func (c *SpoonacularClient) Search(ctx context.Context, query string, to int) ([]SpoonacularRecipe, error) {
	params := url.Values{}
	params.Set("query", query)
	params.Set("number", strconv.Itoa(to))
	params.Set("addRecipeInformation", "true")
	params.Set("apiKey", c.apiKey)

	var resp spoonacularResponse
	if err := getJSON(ctx, c.httpClient, "spoonacular", buildURL(c.baseURL, "/recipes/complexSearch", params), &resp); err != nil {
		return nil, err
	}

	results, _, err := decodeCollection[SpoonacularRecipe](resp.Results)
	if err != nil {
		return nil, err
	}
	return results, nil
}
