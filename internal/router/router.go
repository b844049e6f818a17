package router

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/windoze95/recipefinder-api/internal/config"
	"github.com/windoze95/recipefinder-api/internal/handlers"
	"github.com/windoze95/recipefinder-api/internal/kvstore"
	"github.com/windoze95/recipefinder-api/internal/logger"
	"github.com/windoze95/recipefinder-api/internal/middleware"
	"github.com/windoze95/recipefinder-api/internal/providers"
	"github.com/windoze95/recipefinder-api/internal/service"
	"github.com/windoze95/recipefinder-api/internal/ws"
)

// SetupRouter sets up the Gin router.
func SetupRouter(cfg *config.Config, store kvstore.Store, set *providers.Set) *gin.Engine {
	// Create default Gin router
	r := gin.Default()

	// Favorite URIs are sent path-escaped and may contain slashes.
	r.UseRawPath = true

	corsConfig := cors.DefaultConfig()
	if len(cfg.EnvVars.AllowedOrigins) == 0 {
		corsConfig.AllowAllOrigins = true
	} else {
		corsConfig.AllowOrigins = cfg.EnvVars.AllowedOrigins
	}
	corsConfig.AllowHeaders = append(corsConfig.AllowHeaders, logger.RequestIDHeader, middleware.ColorSchemeHint)
	corsConfig.ExposeHeaders = []string{logger.RequestIDHeader}
	r.Use(cors.New(corsConfig))

	// Add request ID middleware for request correlation
	r.Use(logger.RequestIDMiddleware())
	r.Use(middleware.ClientHints())

	// Ping route for testing
	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"message": "pong",
		})
	})

	services := service.NewServices(cfg, store, set)

	searchHandler := handlers.NewSearchHandler(services.Search, services.Guard)
	mealsHandler := handlers.NewMealsHandler(services.Search.MealDB)
	imageHandler := handlers.NewImageHandler(set.MealDB)
	favoritesHandler := handlers.NewFavoritesHandler(services.Favorites)
	preferencesHandler := handlers.NewPreferencesHandler(services.Preferences)

	searchLimit := middleware.RateLimitByIP(cfg.EnvVars.SearchRPS, cfg.EnvVars.SearchBurst, time.Minute, 10*time.Minute)

	api := r.Group("/v1")
	{
		// Search routes
		api.GET("/recipes/search", searchLimit, searchHandler.SearchRecipes)
		api.GET("/providers/active", searchHandler.ActiveProvider)

		// TheMealDB passthroughs
		api.GET("/meals/random", mealsHandler.RandomMeal)
		api.GET("/meals/categories", mealsHandler.Categories)
		api.GET("/meals/list/:type", mealsHandler.ListByType)
		api.GET("/meals/filter", searchLimit, mealsHandler.Filter)
		api.GET("/meals/:meal_id", mealsHandler.GetMeal)

		// Image URL helpers
		api.GET("/images/thumbnail", imageHandler.Thumbnail)
		api.GET("/images/ingredients/:name", imageHandler.IngredientImage)

		// Favorites
		api.GET("/favorites", favoritesHandler.ListFavorites)
		api.POST("/favorites", favoritesHandler.AddFavorite)
		api.DELETE("/favorites", favoritesHandler.ClearFavorites)
		api.GET("/favorites/:uri", favoritesHandler.IsFavorite)
		api.DELETE("/favorites/:uri", favoritesHandler.RemoveFavorite)

		// Preferences
		api.GET("/preferences/dark-mode", preferencesHandler.GetDarkMode)
		api.PUT("/preferences/dark-mode", preferencesHandler.SetDarkMode)
	}

	// WebSocket search sessions
	hub := ws.NewHub()
	go hub.Run()
	sessionHandler := ws.NewSessionHandler(hub, services.Search, services.Guard, services.Favorites, cfg.EnvVars.AllowedOrigins)
	r.GET("/v1/ws/session", searchLimit, sessionHandler.HandleSession)

	return r
}
