package router

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/windoze95/recipefinder-api/internal/config"
	"github.com/windoze95/recipefinder-api/internal/kvstore"
	"github.com/windoze95/recipefinder-api/internal/logger"
	"github.com/windoze95/recipefinder-api/internal/middleware"
	"github.com/windoze95/recipefinder-api/internal/providers"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	cfg := &config.Config{Providers: config.DefaultProviders()}
	cfg.EnvVars.SearchRPS = 100
	cfg.EnvVars.SearchBurst = 100
	cfg.EnvVars.AllowedOrigins = []string{"http://localhost:3000"}
	return SetupRouter(cfg, kvstore.NewMemory(), providers.NewSet(cfg))
}

func TestPing(t *testing.T) {
	r := newTestRouter(t)

	req := httptest.NewRequest("GET", "/ping", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("status = %d, want %d", w.Code, http.StatusOK)
	}
	if w.Header().Get(logger.RequestIDHeader) == "" {
		t.Error("response should carry a request id")
	}
	if w.Header().Get("Accept-CH") != middleware.ColorSchemeHint {
		t.Errorf("Accept-CH = %q", w.Header().Get("Accept-CH"))
	}
}

func TestActiveProvider_NoCredentials(t *testing.T) {
	r := newTestRouter(t)

	req := httptest.NewRequest("GET", "/v1/providers/active", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var body map[string]string
	json.Unmarshal(w.Body.Bytes(), &body)
	if body["provider"] != config.ProviderFallback {
		t.Errorf("provider = %q, want fallback", body["provider"])
	}
}

func TestFavoritesRoutes_EscapedURI(t *testing.T) {
	r := newTestRouter(t)

	body := `{"uri":"http://www.edamam.com/ontologies/edamam.owl#recipe_abc","label":"Chicken Vesuvio"}`
	req := httptest.NewRequest("POST", "/v1/favorites", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusCreated {
		t.Fatalf("add status = %d, want %d. body: %s", w.Code, http.StatusCreated, w.Body.String())
	}

	req = httptest.NewRequest("GET", "/v1/favorites/http:%2F%2Fwww.edamam.com%2Fontologies%2Fedamam.owl%23recipe_abc", nil)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Body.String() != `{"favorite":true}` {
		t.Errorf("is favorite = %d %s", w.Code, w.Body.String())
	}
}

func TestSearch_EmptyQueryRejected(t *testing.T) {
	r := newTestRouter(t)

	req := httptest.NewRequest("GET", "/v1/recipes/search?q=", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want %d", w.Code, http.StatusBadRequest)
	}
}

func TestIngredientImage_UsesConfiguredBase(t *testing.T) {
	cfg := &config.Config{Providers: config.DefaultProviders()}
	cfg.Providers.MealDB.IngredientImageBase = "https://cdn.example.com/ingredients/"
	cfg.EnvVars.SearchRPS = 100
	cfg.EnvVars.SearchBurst = 100
	r := SetupRouter(cfg, kvstore.NewMemory(), providers.NewSet(cfg))

	req := httptest.NewRequest("GET", "/v1/images/ingredients/Garam%20Masala?size=large", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var body map[string]string
	json.Unmarshal(w.Body.Bytes(), &body)
	if want := "https://cdn.example.com/ingredients/garam_masala-large.png"; body["url"] != want {
		t.Errorf("url = %q, want %q", body["url"], want)
	}
}
