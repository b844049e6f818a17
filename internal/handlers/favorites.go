package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/windoze95/recipefinder-api/internal/logger"
	"github.com/windoze95/recipefinder-api/internal/models"
	"github.com/windoze95/recipefinder-api/internal/repository"
	"github.com/windoze95/recipefinder-api/internal/service"
	"go.uber.org/zap"
)

// FavoritesHandler handles favorites requests.
type FavoritesHandler struct {
	Service *service.FavoritesService
}

// NewFavoritesHandler creates a new FavoritesHandler.
func NewFavoritesHandler(favoritesService *service.FavoritesService) *FavoritesHandler {
	return &FavoritesHandler{Service: favoritesService}
}

// ListFavorites handles GET /v1/favorites
func (h *FavoritesHandler) ListFavorites(c *gin.Context) {
	favorites, err := h.Service.List(c.Request.Context())
	if err != nil {
		h.internalError(c, "failed to list favorites", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"favorites": favorites})
}

// AddFavorite handles POST /v1/favorites
func (h *FavoritesHandler) AddFavorite(c *gin.Context) {
	var recipe models.Recipe
	if err := c.ShouldBindJSON(&recipe); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	favorites, err := h.Service.Add(c.Request.Context(), recipe)
	if errors.Is(err, repository.ErrInvalidRecipe) {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err != nil {
		h.internalError(c, "failed to add favorite", err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"favorites": favorites})
}

// RemoveFavorite handles DELETE /v1/favorites/:uri
func (h *FavoritesHandler) RemoveFavorite(c *gin.Context) {
	favorites, err := h.Service.Remove(c.Request.Context(), c.Param("uri"))
	if err != nil {
		h.internalError(c, "failed to remove favorite", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"favorites": favorites})
}

// IsFavorite handles GET /v1/favorites/:uri
func (h *FavoritesHandler) IsFavorite(c *gin.Context) {
	ok, err := h.Service.IsFavorite(c.Request.Context(), c.Param("uri"))
	if err != nil {
		h.internalError(c, "failed to read favorites", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"favorite": ok})
}

// ClearFavorites handles DELETE /v1/favorites
func (h *FavoritesHandler) ClearFavorites(c *gin.Context) {
	if err := h.Service.Clear(c.Request.Context()); err != nil {
		h.internalError(c, "failed to clear favorites", err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *FavoritesHandler) internalError(c *gin.Context, msg string, err error) {
	logger.FromContext(c.Request.Context()).Error(msg, zap.Error(err))
	c.JSON(http.StatusInternalServerError, gin.H{"error": "Favorites are unavailable"})
}
