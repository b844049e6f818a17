package mcp

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/windoze95/recipefinder-api/internal/config"
	"github.com/windoze95/recipefinder-api/internal/kvstore"
	"github.com/windoze95/recipefinder-api/internal/providers"
	"github.com/windoze95/recipefinder-api/internal/repository"
	"github.com/windoze95/recipefinder-api/internal/service"
	"github.com/windoze95/recipefinder-api/internal/testutil"
)

func newTestServer(edamam *testutil.MockEdamamSearcher) *Server {
	store := kvstore.NewMemory()
	return NewServer(&service.Services{
		Search: service.NewSearchService(
			config.Credentials{EdamamAppID: "id", EdamamAppKey: "key"},
			edamam, &testutil.MockSpoonacularSearcher{}, &testutil.MockMealCatalog{},
		),
		Guard:       service.NewQueryGuard(false),
		Favorites:   service.NewFavoritesService(repository.NewFavoritesRepository(store)),
		Preferences: service.NewPreferencesService(repository.NewPreferencesRepository(store)),
	})
}

func callTool(name string, args map[string]interface{}) mcp.CallToolRequest {
	return mcp.CallToolRequest{
		Params: mcp.CallToolParams{
			Name:      name,
			Arguments: args,
		},
	}
}

func resultJSON(t *testing.T, result *mcp.CallToolResult) map[string]interface{} {
	t.Helper()
	require.NotNil(t, result)
	require.False(t, result.IsError, "unexpected tool error")
	require.Len(t, result.Content, 1)
	text, ok := result.Content[0].(mcp.TextContent)
	require.True(t, ok, "content should be text")

	var out map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(text.Text), &out))
	return out
}

func TestSearchRecipes(t *testing.T) {
	var gotTo int
	s := newTestServer(&testutil.MockEdamamSearcher{
		SearchFunc: func(ctx context.Context, query string, to int) ([]providers.EdamamRecipe, error) {
			gotTo = to
			return []providers.EdamamRecipe{{URI: "edamam-1", Label: "Lemon Chicken"}}, nil
		},
	})

	result, err := s.handleSearchRecipes(context.Background(), callTool("search_recipes", map[string]interface{}{
		"query": "chicken",
		"to":    float64(5),
	}))
	require.NoError(t, err)

	out := resultJSON(t, result)
	assert.Equal(t, 5, gotTo)
	assert.Equal(t, config.ProviderPrimary, out["provider"])
	assert.Equal(t, float64(1), out["count"])
}

func TestSearchRecipes_InvalidArguments(t *testing.T) {
	s := newTestServer(&testutil.MockEdamamSearcher{})

	for _, args := range []map[string]interface{}{
		nil,
		{"query": "   "},
		{"query": "chicken", "to": float64(0)},
		{"query": "chicken", "to": float64(500)},
	} {
		result, err := s.handleSearchRecipes(context.Background(), callTool("search_recipes", args))
		require.NoError(t, err)
		assert.True(t, result.IsError, "args %v should be rejected", args)
	}
}

func TestSearchRecipes_UpstreamError(t *testing.T) {
	s := newTestServer(&testutil.MockEdamamSearcher{})

	result, err := s.handleSearchRecipes(context.Background(), callTool("search_recipes", map[string]interface{}{"query": "chicken"}))
	require.NoError(t, err)
	assert.True(t, result.IsError)
}

func TestGetActiveProvider(t *testing.T) {
	s := newTestServer(&testutil.MockEdamamSearcher{})

	result, err := s.handleGetActiveProvider(context.Background(), callTool("get_active_provider", nil))
	require.NoError(t, err)
	assert.Equal(t, config.ProviderPrimary, resultJSON(t, result)["provider"])
}

func TestListFavorites(t *testing.T) {
	s := newTestServer(&testutil.MockEdamamSearcher{})
	_, err := s.services.Favorites.Add(context.Background(), testutil.TestRecipe("themealdb-52772", "Teriyaki Chicken Casserole"))
	require.NoError(t, err)

	result, err := s.handleListFavorites(context.Background(), callTool("list_favorites", nil))
	require.NoError(t, err)

	out := resultJSON(t, result)
	assert.Equal(t, float64(1), out["count"])
	favorites, ok := out["favorites"].([]interface{})
	require.True(t, ok)
	assert.Equal(t, "themealdb-52772", favorites[0].(map[string]interface{})["uri"])
}
