package providers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"strconv"
	"strings"
)

// EdamamRecipe is a raw Edamam recipe record.
type EdamamRecipe struct {
	URI             string   `json:"uri"`
	Label           string   `json:"label"`
	Image           string   `json:"image"`
	Calories        float64  `json:"calories"`
	IngredientLines []string `json:"ingredientLines"`
	URL             string   `json:"url"`
	Yield           *float64 `json:"yield"`
	TotalTime       *float64 `json:"totalTime"`
}

type edamamResponse struct {
	Hits json.RawMessage `json:"hits"`
}

type edamamHit struct {
	Recipe EdamamRecipe `json:"recipe"`
}

// EdamamClient searches the Edamam recipe API.
type EdamamClient struct {
	baseURL    string
	appID      string
	appKey     string
	httpClient *http.Client
}

// NewEdamamClient creates an Edamam client.
func NewEdamamClient(baseURL, appID, appKey string, httpClient *http.Client) *EdamamClient {
	return &EdamamClient{
		baseURL:    strings.TrimRight(baseURL, "/"),
		appID:      appID,
		appKey:     appKey,
		httpClient: httpClient,
	}
}

// Search returns up to `to` recipes in Edamam's relevance order. Transport
// and status failures are returned to the caller.
func (c *EdamamClient) Search(ctx context.Context, query string, to int) ([]EdamamRecipe, error) {
	params := url.Values{}
	params.Set("q", query)
	params.Set("app_id", c.appID)
	params.Set("app_key", c.appKey)
	params.Set("to", strconv.Itoa(to))

	var resp edamamResponse
	if err := getJSON(ctx, c.httpClient, "edamam", buildURL(c.baseURL, "/search", params), &resp); err != nil {
		return nil, err
	}

	hits, _, err := decodeCollection[edamamHit](resp.Hits)
	if err != nil {
		return nil, err
	}

	recipes := make([]EdamamRecipe, 0, len(hits))
	for _, hit := range hits {
		recipes = append(recipes, hit.Recipe)
	}
	return recipes, nil
}
