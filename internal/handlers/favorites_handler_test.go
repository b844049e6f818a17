package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/windoze95/recipefinder-api/internal/kvstore"
	"github.com/windoze95/recipefinder-api/internal/middleware"
	"github.com/windoze95/recipefinder-api/internal/repository"
	"github.com/windoze95/recipefinder-api/internal/service"
)

const edamamURI = "http://www.edamam.com/ontologies/edamam.owl#recipe_b79327d05b8e5b838ad6cfd9576b30b6"

func newFavoritesRouter() *gin.Engine {
	store := kvstore.NewMemory()
	favorites := NewFavoritesHandler(service.NewFavoritesService(repository.NewFavoritesRepository(store)))
	preferences := NewPreferencesHandler(service.NewPreferencesService(repository.NewPreferencesRepository(store)))

	r := gin.New()
	r.UseRawPath = true
	r.GET("/favorites", favorites.ListFavorites)
	r.POST("/favorites", favorites.AddFavorite)
	r.DELETE("/favorites", favorites.ClearFavorites)
	r.GET("/favorites/:uri", favorites.IsFavorite)
	r.DELETE("/favorites/:uri", favorites.RemoveFavorite)
	r.GET("/preferences/dark-mode", preferences.GetDarkMode)
	r.PUT("/preferences/dark-mode", preferences.SetDarkMode)
	return r
}

func send(r *gin.Engine, method, target, body string, headers ...string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestFavorites_Lifecycle(t *testing.T) {
	r := newFavoritesRouter()
	escaped := "/favorites/" + url.PathEscape(edamamURI)

	w := send(r, "GET", "/favorites", "")
	if w.Code != http.StatusOK || w.Body.String() != `{"favorites":[]}` {
		t.Fatalf("empty list = %d %s", w.Code, w.Body.String())
	}

	w = send(r, "POST", "/favorites", `{"uri":"`+edamamURI+`","label":"Chicken Vesuvio","image":"https://edamam-product-images.s3.amazonaws.com/a.jpg","calories":4228.04,"ingredients":["1/2 cup olive oil"],"url":"http://www.seriouseats.com/recipes/2011/12/chicken-vesuvio-recipe.html"}`)
	if w.Code != http.StatusCreated {
		t.Fatalf("add status = %d, want %d. body: %s", w.Code, http.StatusCreated, w.Body.String())
	}

	w = send(r, "GET", escaped, "")
	if w.Body.String() != `{"favorite":true}` {
		t.Errorf("is favorite = %s", w.Body.String())
	}

	w = send(r, "DELETE", escaped, "")
	if w.Code != http.StatusOK || w.Body.String() != `{"favorites":[]}` {
		t.Errorf("remove = %d %s", w.Code, w.Body.String())
	}

	w = send(r, "GET", escaped, "")
	if w.Body.String() != `{"favorite":false}` {
		t.Errorf("is favorite after remove = %s", w.Body.String())
	}
}

func TestFavorites_AddInvalid(t *testing.T) {
	r := newFavoritesRouter()

	for _, body := range []string{`not json`, `{"label":"No uri"}`, `{"uri":"x","label":""}`} {
		if w := send(r, "POST", "/favorites", body); w.Code != http.StatusBadRequest {
			t.Errorf("body %s: status = %d, want %d", body, w.Code, http.StatusBadRequest)
		}
	}
}

func TestFavorites_Clear(t *testing.T) {
	r := newFavoritesRouter()
	send(r, "POST", "/favorites", `{"uri":"themealdb-52772","label":"Teriyaki Chicken Casserole"}`)
	send(r, "POST", "/favorites", `{"uri":"spoonacular-1","label":"Garlic Pasta"}`)

	var body struct {
		Favorites []map[string]interface{} `json:"favorites"`
	}
	json.Unmarshal(send(r, "GET", "/favorites", "").Body.Bytes(), &body)
	if len(body.Favorites) != 2 {
		t.Fatalf("favorites = %d, want 2", len(body.Favorites))
	}

	if w := send(r, "DELETE", "/favorites", ""); w.Code != http.StatusNoContent {
		t.Errorf("clear status = %d, want %d", w.Code, http.StatusNoContent)
	}
	if w := send(r, "GET", "/favorites", ""); w.Body.String() != `{"favorites":[]}` {
		t.Errorf("after clear = %s", w.Body.String())
	}
}

func TestDarkMode(t *testing.T) {
	r := newFavoritesRouter()

	w := send(r, "GET", "/preferences/dark-mode", "", middleware.ColorSchemeHint, `"dark"`)
	if w.Body.String() != `{"dark_mode":true,"source":"system"}` {
		t.Errorf("system dark = %s", w.Body.String())
	}

	if w := send(r, "PUT", "/preferences/dark-mode", `{}`); w.Code != http.StatusBadRequest {
		t.Errorf("missing field status = %d, want %d", w.Code, http.StatusBadRequest)
	}

	w = send(r, "PUT", "/preferences/dark-mode", `{"dark_mode":false}`)
	if w.Code != http.StatusOK {
		t.Fatalf("put status = %d, want %d", w.Code, http.StatusOK)
	}

	w = send(r, "GET", "/preferences/dark-mode", "", middleware.ColorSchemeHint, `"dark"`)
	if w.Body.String() != `{"dark_mode":false,"source":"stored"}` {
		t.Errorf("stored light = %s", w.Body.String())
	}
}
