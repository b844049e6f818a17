package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/windoze95/recipefinder-api/internal/logger"
	"github.com/windoze95/recipefinder-api/internal/service"
	"go.uber.org/zap"
)

// handleSearchRecipes handles the search_recipes tool invocation
func (s *Server) handleSearchRecipes(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args, _ := request.Params.Arguments.(map[string]interface{})

	query, err := s.services.Guard.Check(getStringDefault(args, "query", ""))
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	to := getIntDefault(args, "to", service.DefaultResultCount)
	if to < 1 || to > service.MaxResultCount {
		return mcp.NewToolResultError(fmt.Sprintf("to must be between 1 and %d", service.MaxResultCount)), nil
	}

	results, err := s.services.Search.Search(ctx, query, service.SearchOptions{To: to})
	if err != nil {
		logger.FromContext(ctx).Error("mcp search failed", zap.String("query", query), zap.Error(err))
		return mcp.NewToolResultError("failed to fetch recipes: " + err.Error()), nil
	}

	return mcp.NewToolResultText(formatJSON(map[string]interface{}{
		"provider": s.services.Search.ActiveProvider(),
		"query":    query,
		"count":    len(results),
		"results":  results,
	})), nil
}

// handleGetActiveProvider handles the get_active_provider tool invocation
func (s *Server) handleGetActiveProvider(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return mcp.NewToolResultText(formatJSON(map[string]interface{}{
		"provider": s.services.Search.ActiveProvider(),
	})), nil
}

// handleListFavorites handles the list_favorites tool invocation
func (s *Server) handleListFavorites(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	favorites, err := s.services.Favorites.List(ctx)
	if err != nil {
		return mcp.NewToolResultError("favorites are unavailable: " + err.Error()), nil
	}
	return mcp.NewToolResultText(formatJSON(map[string]interface{}{
		"count":     len(favorites),
		"favorites": favorites,
	})), nil
}

// formatJSON formats a map as indented JSON
func formatJSON(data map[string]interface{}) string {
	bytes, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return fmt.Sprintf("%v", data)
	}
	return string(bytes)
}

// getIntDefault extracts an integer parameter with a default value
func getIntDefault(args map[string]interface{}, key string, defaultValue int) int {
	if val, ok := args[key].(float64); ok {
		return int(val)
	}
	if val, ok := args[key].(int); ok {
		return val
	}
	return defaultValue
}

// getStringDefault extracts a string parameter with a default value
func getStringDefault(args map[string]interface{}, key string, defaultValue string) string {
	if val, ok := args[key].(string); ok {
		return val
	}
	return defaultValue
}
