package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/windoze95/recipefinder-api/internal/logger"
	"github.com/windoze95/recipefinder-api/internal/middleware"
	"github.com/windoze95/recipefinder-api/internal/service"
	"go.uber.org/zap"
)

// PreferencesHandler handles UI preference requests.
type PreferencesHandler struct {
	Service *service.PreferencesService
}

// NewPreferencesHandler creates a new PreferencesHandler.
func NewPreferencesHandler(preferencesService *service.PreferencesService) *PreferencesHandler {
	return &PreferencesHandler{Service: preferencesService}
}

// GetDarkMode handles GET /v1/preferences/dark-mode
func (h *PreferencesHandler) GetDarkMode(c *gin.Context) {
	state, err := h.Service.DarkMode(c.Request.Context(), middleware.PrefersDarkScheme(c))
	if err != nil {
		logger.FromContext(c.Request.Context()).Error("failed to load dark mode", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Preferences are unavailable"})
		return
	}
	c.JSON(http.StatusOK, state)
}

// SetDarkMode handles PUT /v1/preferences/dark-mode
func (h *PreferencesHandler) SetDarkMode(c *gin.Context) {
	var body struct {
		DarkMode *bool `json:"dark_mode" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Field 'dark_mode' is required"})
		return
	}

	state, err := h.Service.SetDarkMode(c.Request.Context(), *body.DarkMode)
	if err != nil {
		logger.FromContext(c.Request.Context()).Error("failed to save dark mode", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Preferences are unavailable"})
		return
	}
	c.JSON(http.StatusOK, state)
}
