package testutil

import (
	"context"
	"fmt"
	"sync"

	"github.com/windoze95/recipefinder-api/internal/providers"
)

// --- MockMealCatalog ---

// MockMealCatalog is a mock implementation of providers.MealCatalog. Every
// call is recorded as "<Operation>:<argument>".
type MockMealCatalog struct {
	SearchByNameFunc        func(ctx context.Context, name string) providers.Result[[]providers.Meal]
	SearchByFirstLetterFunc func(ctx context.Context, letter string) providers.Result[[]providers.Meal]
	LookupByIDFunc          func(ctx context.Context, id string) providers.Result[providers.Meal]
	RandomFunc              func(ctx context.Context) providers.Result[providers.Meal]
	CategoriesFunc          func(ctx context.Context) providers.Result[[]providers.Category]
	ListByTypeFunc          func(ctx context.Context, listType providers.ListType) providers.Result[[]providers.ListEntry]
	FilterByIngredientFunc  func(ctx context.Context, ingredient string) providers.Result[[]providers.Meal]
	FilterByCategoryFunc    func(ctx context.Context, category string) providers.Result[[]providers.Meal]
	FilterByAreaFunc        func(ctx context.Context, area string) providers.Result[[]providers.Meal]

	mu    sync.Mutex
	calls []string
}

func (m *MockMealCatalog) record(op, arg string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls = append(m.calls, op+":"+arg)
}

// Calls returns the recorded calls in completion order.
func (m *MockMealCatalog) Calls() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]string, len(m.calls))
	copy(out, m.calls)
	return out
}

// CallCount counts recorded calls for op.
func (m *MockMealCatalog) CallCount(op string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	n := 0
	for _, c := range m.calls {
		if len(c) > len(op) && c[:len(op)+1] == op+":" {
			n++
		}
	}
	return n
}

func (m *MockMealCatalog) SearchByName(ctx context.Context, name string) providers.Result[[]providers.Meal] {
	m.record("SearchByName", name)
	if m.SearchByNameFunc != nil {
		return m.SearchByNameFunc(ctx, name)
	}
	return providers.Empty[[]providers.Meal](fmt.Errorf("SearchByName not configured"))
}

func (m *MockMealCatalog) SearchByFirstLetter(ctx context.Context, letter string) providers.Result[[]providers.Meal] {
	m.record("SearchByFirstLetter", letter)
	if m.SearchByFirstLetterFunc != nil {
		return m.SearchByFirstLetterFunc(ctx, letter)
	}
	return providers.Empty[[]providers.Meal](fmt.Errorf("SearchByFirstLetter not configured"))
}

func (m *MockMealCatalog) LookupByID(ctx context.Context, id string) providers.Result[providers.Meal] {
	m.record("LookupByID", id)
	if m.LookupByIDFunc != nil {
		return m.LookupByIDFunc(ctx, id)
	}
	return providers.Empty[providers.Meal](fmt.Errorf("LookupByID not configured"))
}

func (m *MockMealCatalog) Random(ctx context.Context) providers.Result[providers.Meal] {
	m.record("Random", "")
	if m.RandomFunc != nil {
		return m.RandomFunc(ctx)
	}
	return providers.Empty[providers.Meal](fmt.Errorf("Random not configured"))
}

func (m *MockMealCatalog) Categories(ctx context.Context) providers.Result[[]providers.Category] {
	m.record("Categories", "")
	if m.CategoriesFunc != nil {
		return m.CategoriesFunc(ctx)
	}
	return providers.Empty[[]providers.Category](fmt.Errorf("Categories not configured"))
}

func (m *MockMealCatalog) ListByType(ctx context.Context, listType providers.ListType) providers.Result[[]providers.ListEntry] {
	m.record("ListByType", string(listType))
	if m.ListByTypeFunc != nil {
		return m.ListByTypeFunc(ctx, listType)
	}
	return providers.Empty[[]providers.ListEntry](fmt.Errorf("ListByType not configured"))
}

func (m *MockMealCatalog) FilterByIngredient(ctx context.Context, ingredient string) providers.Result[[]providers.Meal] {
	m.record("FilterByIngredient", ingredient)
	if m.FilterByIngredientFunc != nil {
		return m.FilterByIngredientFunc(ctx, ingredient)
	}
	return providers.Empty[[]providers.Meal](fmt.Errorf("FilterByIngredient not configured"))
}

func (m *MockMealCatalog) FilterByCategory(ctx context.Context, category string) providers.Result[[]providers.Meal] {
	m.record("FilterByCategory", category)
	if m.FilterByCategoryFunc != nil {
		return m.FilterByCategoryFunc(ctx, category)
	}
	return providers.Empty[[]providers.Meal](fmt.Errorf("FilterByCategory not configured"))
}

func (m *MockMealCatalog) FilterByArea(ctx context.Context, area string) providers.Result[[]providers.Meal] {
	m.record("FilterByArea", area)
	if m.FilterByAreaFunc != nil {
		return m.FilterByAreaFunc(ctx, area)
	}
	return providers.Empty[[]providers.Meal](fmt.Errorf("FilterByArea not configured"))
}

// --- MockEdamamSearcher ---

// MockEdamamSearcher is a mock implementation of providers.EdamamSearcher.
type MockEdamamSearcher struct {
	SearchFunc func(ctx context.Context, query string, to int) ([]providers.EdamamRecipe, error)
}

func (m *MockEdamamSearcher) Search(ctx context.Context, query string, to int) ([]providers.EdamamRecipe, error) {
	if m.SearchFunc != nil {
		return m.SearchFunc(ctx, query, to)
	}
	return nil, fmt.Errorf("Search not configured")
}

// --- MockSpoonacularSearcher ---

// MockSpoonacularSearcher is a mock implementation of providers.SpoonacularSearcher.
type MockSpoonacularSearcher struct {
	SearchFunc func(ctx context.Context, query string, to int) ([]providers.SpoonacularRecipe, error)
}

func (m *MockSpoonacularSearcher) Search(ctx context.Context, query string, to int) ([]providers.SpoonacularRecipe, error) {
	if m.SearchFunc != nil {
		return m.SearchFunc(ctx, query, to)
	}
	return nil, fmt.Errorf("Search not configured")
}
