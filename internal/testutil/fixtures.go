package testutil

import (
	"github.com/windoze95/recipefinder-api/internal/models"
	"github.com/windoze95/recipefinder-api/internal/providers"
)

// TestMeal creates a fully detailed TheMealDB record.
func TestMeal(id, name, category, area string, ingredients ...string) providers.Meal {
	m := providers.Meal{
		ID:           id,
		Name:         name,
		Category:     category,
		Area:         area,
		Instructions: "Cook " + name + " until done.",
		Thumb:        "https://www.themealdb.com/images/media/meals/" + id + ".jpg",
		Source:       "https://example.com/meals/" + id,
	}
	copy(m.Ingredients[:], ingredients)
	for i := range ingredients {
		m.Measures[i] = "1 cup"
	}
	return m
}

// TestMealStub creates a record shaped like a filter.php entry: id, name,
// and thumbnail only.
func TestMealStub(id, name string) providers.Meal {
	return providers.Meal{
		ID:    id,
		Name:  name,
		Thumb: "https://www.themealdb.com/images/media/meals/" + id + ".jpg",
	}
}

// TestCategories returns a realistic slice of categories.php.
func TestCategories() []providers.Category {
	return []providers.Category{
		{ID: "1", Name: "Beef"},
		{ID: "2", Name: "Chicken"},
		{ID: "3", Name: "Dessert"},
		{ID: "4", Name: "Seafood"},
		{ID: "5", Name: "Vegetarian"},
	}
}

// TestRecipe creates a normalized recipe.
func TestRecipe(uri, label string) models.Recipe {
	return models.Recipe{
		URI:         uri,
		Label:       label,
		Image:       "https://example.com/" + uri + ".jpg",
		Calories:    420,
		Ingredients: []string{"1 cup flour", "2 eggs"},
		URL:         "https://example.com/recipes/" + uri,
	}
}
