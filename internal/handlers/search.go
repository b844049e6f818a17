package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/windoze95/recipefinder-api/internal/logger"
	"github.com/windoze95/recipefinder-api/internal/service"
	"go.uber.org/zap"
)

// SearchHandler handles recipe search requests.
type SearchHandler struct {
	Service *service.SearchService
	Guard   *service.QueryGuard
}

// NewSearchHandler creates a new SearchHandler.
func NewSearchHandler(searchService *service.SearchService, guard *service.QueryGuard) *SearchHandler {
	return &SearchHandler{Service: searchService, Guard: guard}
}

// SearchRecipes handles GET /v1/recipes/search?q=...&to=20
func (h *SearchHandler) SearchRecipes(c *gin.Context) {
	query, err := h.Guard.Check(c.Query("q"))
	if err != nil {
		msg := err.Error()
		if errors.Is(err, service.ErrEmptyQuery) {
			msg = "Query parameter 'q' is required"
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": msg})
		return
	}

	to, err := parseToParam(c.Query("to"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	results, err := h.Service.Search(c.Request.Context(), query, service.SearchOptions{To: to})
	if err != nil {
		logger.FromContext(c.Request.Context()).Error("failed to search recipes", zap.String("query", query), zap.Error(err))
		c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to fetch recipes"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"provider": h.Service.ActiveProvider(),
		"results":  results,
	})
}

// ActiveProvider handles GET /v1/providers/active
func (h *SearchHandler) ActiveProvider(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"provider": h.Service.ActiveProvider()})
}
