package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/windoze95/recipefinder-api/internal/models"
	"github.com/windoze95/recipefinder-api/internal/normalize"
	"github.com/windoze95/recipefinder-api/internal/providers"
	"github.com/windoze95/recipefinder-api/internal/repository"
)

// MealsHandler exposes single TheMealDB operations.
type MealsHandler struct {
	Catalog providers.MealCatalog
}

// NewMealsHandler creates a new MealsHandler.
func NewMealsHandler(catalog providers.MealCatalog) *MealsHandler {
	return &MealsHandler{Catalog: catalog}
}

// RandomMeal handles GET /v1/meals/random
func (h *MealsHandler) RandomMeal(c *gin.Context) {
	h.respondMeal(c, h.Catalog.Random(c.Request.Context()), repository.NewNotFoundError("No random meal available"))
}

// GetMeal handles GET /v1/meals/:meal_id
func (h *MealsHandler) GetMeal(c *gin.Context) {
	id := c.Param("meal_id")
	if id == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid meal ID"})
		return
	}
	h.respondMeal(c, h.Catalog.LookupByID(c.Request.Context(), id), repository.NewNotFoundError("Meal not found"))
}

// Categories handles GET /v1/meals/categories
func (h *MealsHandler) Categories(c *gin.Context) {
	res := h.Catalog.Categories(c.Request.Context())
	categories := res.Value()
	if categories == nil {
		categories = []providers.Category{}
	}
	c.JSON(http.StatusOK, gin.H{"categories": categories})
}

// ListByType handles GET /v1/meals/list/:type
func (h *MealsHandler) ListByType(c *gin.Context) {
	listType, ok := providers.ParseListType(c.Param("type"))
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "List type must be category, area, or ingredient"})
		return
	}

	res := h.Catalog.ListByType(c.Request.Context(), listType)
	names := make([]string, 0, len(res.Value()))
	for _, entry := range res.Value() {
		names = append(names, entry.Name())
	}
	c.JSON(http.StatusOK, gin.H{"type": listType, "names": names})
}

// Filter handles GET /v1/meals/filter?ingredient=|category=|area=
func (h *MealsHandler) Filter(c *gin.Context) {
	ctx := c.Request.Context()
	ingredient, category, area := c.Query("ingredient"), c.Query("category"), c.Query("area")

	set := 0
	for _, v := range []string{ingredient, category, area} {
		if v != "" {
			set++
		}
	}
	if set != 1 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Exactly one of 'ingredient', 'category', or 'area' is required"})
		return
	}

	var res providers.Result[[]providers.Meal]
	switch {
	case ingredient != "":
		res = h.Catalog.FilterByIngredient(ctx, ingredient)
	case category != "":
		res = h.Catalog.FilterByCategory(ctx, category)
	default:
		res = h.Catalog.FilterByArea(ctx, area)
	}

	c.JSON(http.StatusOK, gin.H{"results": normalizeMeals(res.Value())})
}

func (h *MealsHandler) respondMeal(c *gin.Context, res providers.Result[providers.Meal], notFound repository.NotFoundError) {
	if !res.OK() {
		c.JSON(http.StatusNotFound, gin.H{"error": notFound.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"recipe": normalize.Meal(res.Value())})
}

func normalizeMeals(meals []providers.Meal) []models.Recipe {
	recipes := make([]models.Recipe, 0, len(meals))
	for _, m := range meals {
		recipes = append(recipes, normalize.Meal(m))
	}
	return recipes
}
