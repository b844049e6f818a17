package mcp

import (
	"github.com/mark3labs/mcp-go/mcp"
)

// searchRecipesTool returns the tool definition for search_recipes
func searchRecipesTool() mcp.Tool {
	return mcp.Tool{
		Name:        "search_recipes",
		Description: "Search recipes by dish name, ingredient, category, or cuisine. Results are normalized and ranked.",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"query": map[string]interface{}{
					"type":        "string",
					"description": "Free-text search, e.g. 'chicken' or 'italian'",
				},
				"to": map[string]interface{}{
					"type":        "integer",
					"description": "Maximum number of results (1-100)",
					"default":     20,
					"minimum":     1,
					"maximum":     100,
				},
			},
			Required: []string{"query"},
		},
	}
}

// getActiveProviderTool returns the tool definition for get_active_provider
func getActiveProviderTool() mcp.Tool {
	return mcp.Tool{
		Name:        "get_active_provider",
		Description: "Report which recipe provider searches use: primary, secondary, or fallback",
		InputSchema: mcp.ToolInputSchema{
			Type:       "object",
			Properties: map[string]interface{}{},
		},
	}
}

// listFavoritesTool returns the tool definition for list_favorites
func listFavoritesTool() mcp.Tool {
	return mcp.Tool{
		Name:        "list_favorites",
		Description: "List the bookmarked recipes in the order they were added",
		InputSchema: mcp.ToolInputSchema{
			Type:       "object",
			Properties: map[string]interface{}{},
		},
	}
}
