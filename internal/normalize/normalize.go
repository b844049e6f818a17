// Package normalize maps raw provider records into models.Recipe. Every
// function is pure; missing fields become zero values, never nil slices.
package normalize

import (
	"fmt"
	"strings"

	"github.com/asaskevich/govalidator"
	"github.com/windoze95/recipefinder-api/internal/models"
	"github.com/windoze95/recipefinder-api/internal/providers"
)

// URI prefixes for providers whose native ids are not globally unique.
const (
	SpoonacularPrefix = "spoonacular-"
	MealDBPrefix      = "themealdb-"
)

// Edamam maps an Edamam record. Ingredient lines are already joined by the
// provider.
func Edamam(r providers.EdamamRecipe) models.Recipe {
	ingredients := r.IngredientLines
	if ingredients == nil {
		ingredients = []string{}
	}
	return models.Recipe{
		URI:         r.URI,
		Label:       r.Label,
		Image:       absoluteURL(r.Image),
		Calories:    nonNegative(r.Calories),
		Ingredients: ingredients,
		URL:         absoluteURL(r.URL),
		Yield:       r.Yield,
		TotalTime:   r.TotalTime,
	}
}

// Spoonacular maps a Spoonacular complexSearch record.
func Spoonacular(r providers.SpoonacularRecipe) models.Recipe {
	image := r.Image
	if image == "" {
		image = fmt.Sprintf("https://spoonacular.com/recipeImages/%d-556x370.jpg", r.ID)
	}

	var calories float64
	if r.Nutrition != nil {
		for _, n := range r.Nutrition.Nutrients {
			if n.Name == "Calories" {
				calories = n.Amount
				break
			}
		}
	}

	ingredients := make([]string, 0, len(r.ExtendedIngredients))
	for _, ing := range r.ExtendedIngredients {
		ingredients = append(ingredients, ing.Original)
	}

	url := r.SourceURL
	if url == "" {
		url = r.SpoonacularSourceURL
	}

	return models.Recipe{
		URI:         fmt.Sprintf("%s%d", SpoonacularPrefix, r.ID),
		Label:       r.Title,
		Image:       absoluteURL(image),
		Calories:    nonNegative(calories),
		Ingredients: ingredients,
		URL:         absoluteURL(url),
		Yield:       r.Servings,
		TotalTime:   r.ReadyInMinutes,
	}
}

// Meal maps a TheMealDB record without a relevance score.
func Meal(m providers.Meal) models.Recipe {
	url := m.Source
	if url == "" {
		url = m.Youtube
	}
	return models.Recipe{
		URI:          MealDBPrefix + m.ID,
		Label:        m.Name,
		Image:        absoluteURL(m.Thumb),
		Calories:     0,
		Ingredients:  MealIngredients(m),
		URL:          absoluteURL(url),
		Instructions: m.Instructions,
		Category:     m.Category,
		Cuisine:      m.Area,
	}
}

// ScoredMeal maps a TheMealDB record and attaches its relevance score.
func ScoredMeal(m providers.Meal, score int) models.Recipe {
	r := Meal(m)
	r.RelevanceScore = &score
	return r
}

// MealIngredients joins the sparse ingredient/measure slots into
// "<measure> <ingredient>" lines in slot order, skipping blank slots.
func MealIngredients(m providers.Meal) []string {
	ingredients := []string{}
	for i := 0; i < providers.MaxIngredientSlots; i++ {
		ing := strings.TrimSpace(m.Ingredients[i])
		if ing == "" {
			continue
		}
		if measure := strings.TrimSpace(m.Measures[i]); measure != "" {
			ing = measure + " " + ing
		}
		ingredients = append(ingredients, ing)
	}
	return ingredients
}

func absoluteURL(s string) string {
	s = strings.TrimSpace(s)
	if s == "" || !govalidator.IsRequestURL(s) {
		return ""
	}
	return s
}

func nonNegative(f float64) float64 {
	if f < 0 {
		return 0
	}
	return f
}
