package providers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

const chickenCurryJSON = `{
	"idMeal": "52795",
	"strMeal": "Chicken Handi",
	"strCategory": "Chicken",
	"strArea": "Indian",
	"strInstructions": "Take a large pot.",
	"strMealThumb": "https://www.themealdb.com/images/media/meals/wyxwsp1486979827.jpg",
	"strYoutube": "https://www.youtube.com/watch?v=IO0issT0Rmc",
	"strSource": null,
	"strIngredient1": "Chicken",
	"strIngredient2": "Onion",
	"strIngredient3": "",
	"strIngredient4": null,
	"strMeasure1": "1.2 kg",
	"strMeasure2": "5 thinly sliced ",
	"strMeasure3": "",
	"strMeasure4": null
}`

func newMealDBTestServer(t *testing.T, routes map[string]string) *MealDBClient {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		key := r.URL.Path + "?" + r.URL.RawQuery
		body, ok := routes[key]
		if !ok {
			http.Error(w, "unexpected "+key, http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return NewMealDBClient(srv.URL+"/api/json/v1/1", "https://img.example.com/ingredients", NewHTTPClient(2*time.Second))
}

func TestMeal_UnmarshalJSON(t *testing.T) {
	client := newMealDBTestServer(t, map[string]string{
		"/api/json/v1/1/lookup.php?i=52795": `{"meals":[` + chickenCurryJSON + `]}`,
	})

	res := client.LookupByID(context.Background(), "52795")
	if !res.OK() {
		t.Fatalf("LookupByID should succeed, err = %v", res.Err())
	}
	meal := res.Value()
	if meal.ID != "52795" || meal.Name != "Chicken Handi" {
		t.Errorf("meal = %q/%q, want 52795/Chicken Handi", meal.ID, meal.Name)
	}
	if meal.Area != "Indian" || meal.Category != "Chicken" {
		t.Errorf("area/category = %q/%q", meal.Area, meal.Category)
	}
	if meal.Source != "" {
		t.Errorf("null strSource should decode to empty, got %q", meal.Source)
	}
	if meal.Ingredients[0] != "Chicken" || meal.Measures[1] != "5 thinly sliced " {
		t.Errorf("ingredient slots decoded incorrectly: %q / %q", meal.Ingredients[0], meal.Measures[1])
	}
	if meal.Ingredients[3] != "" {
		t.Errorf("null ingredient slot should be empty, got %q", meal.Ingredients[3])
	}
	if !meal.HasDetails() {
		t.Error("meal with instructions should report HasDetails")
	}
}

func TestMealDB_NullMealsIsEmptyWithoutError(t *testing.T) {
	client := newMealDBTestServer(t, map[string]string{
		"/api/json/v1/1/search.php?s=zzz": `{"meals":null}`,
	})

	res := client.SearchByName(context.Background(), "zzz")
	if res.OK() {
		t.Fatal("null meals should be Empty")
	}
	if res.Failed() {
		t.Errorf("null meals should not count as a failure, err = %v", res.Err())
	}
}

func TestMealDB_StringSentinelIsEmpty(t *testing.T) {
	client := newMealDBTestServer(t, map[string]string{
		"/api/json/v1/1/filter.php?i=xyz": `{"meals":"no data found"}`,
	})

	res := client.FilterByIngredient(context.Background(), "xyz")
	if res.OK() || res.Failed() {
		t.Errorf("string sentinel should be Empty without error, ok=%v err=%v", res.OK(), res.Err())
	}
}

func TestMealDB_ServerErrorIsFailedEmpty(t *testing.T) {
	client := newMealDBTestServer(t, map[string]string{})

	res := client.FilterByArea(context.Background(), "Italian")
	if res.OK() {
		t.Fatal("500 response should be Empty")
	}
	if !res.Failed() {
		t.Error("500 response should be reported as a failure")
	}
	if len(res.Value()) != 0 {
		t.Errorf("failed result should carry no data, got %d meals", len(res.Value()))
	}
}

func TestMealDB_UnreachableIsFailedEmpty(t *testing.T) {
	client := NewMealDBClient("http://127.0.0.1:1", "", NewHTTPClient(time.Second))

	res := client.Categories(context.Background())
	if !res.Failed() {
		t.Error("unreachable upstream should be a failed Empty")
	}
}

func TestMealDB_Categories(t *testing.T) {
	client := newMealDBTestServer(t, map[string]string{
		"/api/json/v1/1/categories.php?": `{"categories":[{"idCategory":"1","strCategory":"Beef"},{"idCategory":"2","strCategory":"Chicken"}]}`,
	})

	res := client.Categories(context.Background())
	if !res.OK() {
		t.Fatalf("Categories failed: %v", res.Err())
	}
	if got := len(res.Value()); got != 2 {
		t.Fatalf("len(categories) = %d, want 2", got)
	}
	if res.Value()[1].Name != "Chicken" {
		t.Errorf("categories[1] = %q, want Chicken", res.Value()[1].Name)
	}
}

func TestMealDB_ListByType(t *testing.T) {
	client := newMealDBTestServer(t, map[string]string{
		"/api/json/v1/1/list.php?a=list": `{"meals":[{"strArea":"American"},{"strArea":"British"}]}`,
	})

	res := client.ListByType(context.Background(), ListArea)
	if !res.OK() {
		t.Fatalf("ListByType failed: %v", res.Err())
	}
	if res.Value()[0].Name() != "American" {
		t.Errorf("Name() = %q, want American", res.Value()[0].Name())
	}
}

func TestMealDB_RandomAndLookupEmpty(t *testing.T) {
	client := newMealDBTestServer(t, map[string]string{
		"/api/json/v1/1/random.php?":    `{"meals":[]}`,
		"/api/json/v1/1/lookup.php?i=1": `{"meals":null}`,
	})

	if res := client.Random(context.Background()); res.OK() {
		t.Error("Random with an empty array should be Empty")
	}
	if res := client.LookupByID(context.Background(), "1"); res.OK() || res.Failed() {
		t.Error("LookupByID with null meals should be Empty without error")
	}
}

func TestMealDB_QueryEscaping(t *testing.T) {
	client := newMealDBTestServer(t, map[string]string{
		"/api/json/v1/1/filter.php?c=Side+%26+Starter": `{"meals":[{"idMeal":"1","strMeal":"Chips"}]}`,
	})

	res := client.FilterByCategory(context.Background(), "Side & Starter")
	if !res.OK() || len(res.Value()) != 1 {
		t.Fatalf("FilterByCategory = ok:%v len:%d err:%v", res.OK(), len(res.Value()), res.Err())
	}
	if res.Value()[0].HasDetails() {
		t.Error("filter record should not report HasDetails")
	}
}

func TestParseListType(t *testing.T) {
	tests := map[string]ListType{
		"category":   ListCategory,
		"Area":       ListArea,
		"ingredient": ListIngredient,
		"i":          ListIngredient,
	}
	for in, want := range tests {
		got, ok := ParseListType(in)
		if !ok || got != want {
			t.Errorf("ParseListType(%q) = %q, %v; want %q", in, got, ok, want)
		}
	}
	if _, ok := ParseListType("glaze"); ok {
		t.Error("ParseListType(\"glaze\") should fail")
	}
}
