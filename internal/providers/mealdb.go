package providers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/windoze95/recipefinder-api/internal/logger"
	"go.uber.org/zap"
)

// MaxIngredientSlots is the number of strIngredientN/strMeasureN pairs a
// TheMealDB record carries.
const MaxIngredientSlots = 20

// ListType selects the list.php variant.
type ListType string

// ListType values accepted by TheMealDB.
const (
	ListCategory   ListType = "c"
	ListArea       ListType = "a"
	ListIngredient ListType = "i"
)

// ParseListType maps a human name to a ListType.
func ParseListType(name string) (ListType, bool) {
	switch strings.ToLower(name) {
	case "category", "categories", "c":
		return ListCategory, true
	case "area", "areas", "a":
		return ListArea, true
	case "ingredient", "ingredients", "i":
		return ListIngredient, true
	}
	return "", false
}

// Meal is a raw TheMealDB record. Filter endpoints only fill ID, Name, and
// Thumb; search and lookup fill everything.
type Meal struct {
	ID           string
	Name         string
	Category     string
	Area         string
	Instructions string
	Thumb        string
	Tags         string
	Youtube      string
	Source       string
	Ingredients  [MaxIngredientSlots]string
	Measures     [MaxIngredientSlots]string
}

// UnmarshalJSON reads the flat strXxx layout, treating null as "".
func (m *Meal) UnmarshalJSON(data []byte) error {
	var raw map[string]interface{}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	str := func(key string) string {
		switch v := raw[key].(type) {
		case string:
			return v
		case float64:
			return fmt.Sprintf("%.0f", v)
		}
		return ""
	}

	m.ID = str("idMeal")
	m.Name = str("strMeal")
	m.Category = str("strCategory")
	m.Area = str("strArea")
	m.Instructions = str("strInstructions")
	m.Thumb = str("strMealThumb")
	m.Tags = str("strTags")
	m.Youtube = str("strYoutube")
	m.Source = str("strSource")
	for i := 0; i < MaxIngredientSlots; i++ {
		m.Ingredients[i] = str(fmt.Sprintf("strIngredient%d", i+1))
		m.Measures[i] = str(fmt.Sprintf("strMeasure%d", i+1))
	}
	return nil
}

// HasDetails reports whether the record came from a full lookup rather
// than a filter endpoint.
func (m Meal) HasDetails() bool {
	return m.Instructions != ""
}

// Category is an entry of categories.php.
type Category struct {
	ID          string `json:"idCategory"`
	Name        string `json:"strCategory"`
	Thumb       string `json:"strCategoryThumb"`
	Description string `json:"strCategoryDescription"`
}

// ListEntry is an entry of list.php. Only the field matching the list type
// is populated.
type ListEntry struct {
	Category    string `json:"strCategory,omitempty"`
	Area        string `json:"strArea,omitempty"`
	Ingredient  string `json:"strIngredient,omitempty"`
	Description string `json:"strDescription,omitempty"`
}

// Name returns whichever name field is set.
func (e ListEntry) Name() string {
	switch {
	case e.Area != "":
		return e.Area
	case e.Category != "":
		return e.Category
	}
	return e.Ingredient
}

type mealsResponse struct {
	Meals json.RawMessage `json:"meals"`
}

type categoriesResponse struct {
	Categories json.RawMessage `json:"categories"`
}

// MealDBClient talks to TheMealDB's JSON API.
type MealDBClient struct {
	baseURL             string
	ingredientImageBase string
	httpClient          *http.Client
}

// NewMealDBClient creates a TheMealDB client.
func NewMealDBClient(baseURL, ingredientImageBase string, httpClient *http.Client) *MealDBClient {
	return &MealDBClient{
		baseURL:             strings.TrimRight(baseURL, "/"),
		ingredientImageBase: strings.TrimRight(ingredientImageBase, "/"),
		httpClient:          httpClient,
	}
}

// SearchByName runs search.php?s=.
func (c *MealDBClient) SearchByName(ctx context.Context, name string) Result[[]Meal] {
	return c.meals(ctx, "search by name", "/search.php", url.Values{"s": {name}})
}

// SearchByFirstLetter runs search.php?f=.
func (c *MealDBClient) SearchByFirstLetter(ctx context.Context, letter string) Result[[]Meal] {
	return c.meals(ctx, "search by letter", "/search.php", url.Values{"f": {letter}})
}

// LookupByID runs lookup.php?i= and returns the first meal.
func (c *MealDBClient) LookupByID(ctx context.Context, id string) Result[Meal] {
	return first(c.meals(ctx, "lookup by id", "/lookup.php", url.Values{"i": {id}}))
}

// Random runs random.php.
func (c *MealDBClient) Random(ctx context.Context) Result[Meal] {
	return first(c.meals(ctx, "random meal", "/random.php", nil))
}

// Categories runs categories.php.
func (c *MealDBClient) Categories(ctx context.Context) Result[[]Category] {
	var resp categoriesResponse
	if err := getJSON(ctx, c.httpClient, "mealdb", buildURL(c.baseURL, "/categories.php", nil), &resp); err != nil {
		return failed[[]Category](ctx, "categories", err)
	}
	return collection[Category](ctx, "categories", resp.Categories)
}

// ListByType runs list.php?<type>=list.
func (c *MealDBClient) ListByType(ctx context.Context, listType ListType) Result[[]ListEntry] {
	op := "list " + string(listType)
	var resp mealsResponse
	params := url.Values{string(listType): {"list"}}
	if err := getJSON(ctx, c.httpClient, "mealdb", buildURL(c.baseURL, "/list.php", params), &resp); err != nil {
		return failed[[]ListEntry](ctx, op, err)
	}
	return collection[ListEntry](ctx, op, resp.Meals)
}

// FilterByIngredient runs filter.php?i=.
func (c *MealDBClient) FilterByIngredient(ctx context.Context, ingredient string) Result[[]Meal] {
	return c.meals(ctx, "filter by ingredient", "/filter.php", url.Values{"i": {ingredient}})
}

// FilterByCategory runs filter.php?c=.
func (c *MealDBClient) FilterByCategory(ctx context.Context, category string) Result[[]Meal] {
	return c.meals(ctx, "filter by category", "/filter.php", url.Values{"c": {category}})
}

// FilterByArea runs filter.php?a=.
func (c *MealDBClient) FilterByArea(ctx context.Context, area string) Result[[]Meal] {
	return c.meals(ctx, "filter by area", "/filter.php", url.Values{"a": {area}})
}

func (c *MealDBClient) meals(ctx context.Context, op, path string, params url.Values) Result[[]Meal] {
	var resp mealsResponse
	if err := getJSON(ctx, c.httpClient, "mealdb", buildURL(c.baseURL, path, params), &resp); err != nil {
		return failed[[]Meal](ctx, op, err)
	}
	return collection[Meal](ctx, op, resp.Meals)
}

func collection[T any](ctx context.Context, op string, raw json.RawMessage) Result[[]T] {
	items, ok, err := decodeCollection[T](raw)
	if err != nil {
		return failed[[]T](ctx, op, err)
	}
	if !ok {
		return Empty[[]T](nil)
	}
	return Ok(items)
}

func failed[T any](ctx context.Context, op string, err error) Result[T] {
	logger.FromContext(ctx).Warn("mealdb request failed",
		zap.String("operation", op),
		zap.String("provider", "themealdb"),
		zap.Error(err),
	)
	return Empty[T](err)
}

func first(r Result[[]Meal]) Result[Meal] {
	if !r.OK() || len(r.Value()) == 0 {
		return Empty[Meal](r.Err())
	}
	return Ok(r.Value()[0])
}
