package service

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/windoze95/recipefinder-api/internal/kvstore"
	"github.com/windoze95/recipefinder-api/internal/models"
	"github.com/windoze95/recipefinder-api/internal/repository"
	"github.com/windoze95/recipefinder-api/internal/testutil"
)

func newTestFavoritesService() *FavoritesService {
	return NewFavoritesService(repository.NewFavoritesRepository(kvstore.NewMemory()))
}

func TestFavoritesService_AddNotifies(t *testing.T) {
	svc := newTestFavoritesService()

	var mu sync.Mutex
	var got [][]string
	svc.OnChange(func(favorites []models.Recipe) {
		mu.Lock()
		defer mu.Unlock()
		got = append(got, models.URIs(favorites))
	})

	ctx := context.Background()
	if _, err := svc.Add(ctx, testutil.TestRecipe("a", "Apple Pie")); err != nil {
		t.Fatalf("Add error: %v", err)
	}
	if _, err := svc.Add(ctx, testutil.TestRecipe("b", "Banana Bread")); err != nil {
		t.Fatalf("Add error: %v", err)
	}
	if _, err := svc.Remove(ctx, "a"); err != nil {
		t.Fatalf("Remove error: %v", err)
	}
	if err := svc.Clear(ctx); err != nil {
		t.Fatalf("Clear error: %v", err)
	}

	if len(got) != 4 {
		t.Fatalf("notifications = %d, want 4", len(got))
	}
	if len(got[1]) != 2 || got[2][0] != "b" || len(got[3]) != 0 {
		t.Errorf("notifications = %v", got)
	}
}

func TestFavoritesService_IsFavorite(t *testing.T) {
	svc := newTestFavoritesService()
	ctx := context.Background()

	if _, err := svc.Add(ctx, testutil.TestRecipe("themealdb-52772", "Teriyaki")); err != nil {
		t.Fatalf("Add error: %v", err)
	}
	ok, err := svc.IsFavorite(ctx, "themealdb-52772")
	if err != nil || !ok {
		t.Errorf("IsFavorite = %v, %v; want true, nil", ok, err)
	}
	ok, _ = svc.IsFavorite(ctx, "themealdb-1")
	if ok {
		t.Error("IsFavorite(unknown) = true")
	}
}

func TestValidateFavorite(t *testing.T) {
	valid := testutil.TestRecipe("edamam-1", "Lemon Chicken")

	tests := []struct {
		name    string
		mutate  func(r *models.Recipe)
		wantErr bool
	}{
		{"valid", func(r *models.Recipe) {}, false},
		{"no image or url", func(r *models.Recipe) { r.Image, r.URL = "", "" }, false},
		{"blank uri", func(r *models.Recipe) { r.URI = "  " }, true},
		{"blank label", func(r *models.Recipe) { r.Label = "" }, true},
		{"bad image", func(r *models.Recipe) { r.Image = "not a url" }, true},
		{"bad url", func(r *models.Recipe) { r.URL = "see the blog post" }, true},
	}
	for _, tt := range tests {
		r := valid
		tt.mutate(&r)
		err := ValidateFavorite(r)
		if tt.wantErr {
			if !errors.Is(err, repository.ErrInvalidRecipe) {
				t.Errorf("%s: err = %v, want ErrInvalidRecipe", tt.name, err)
			}
		} else if err != nil {
			t.Errorf("%s: unexpected error %v", tt.name, err)
		}
	}
}

func TestFavoritesService_InvalidDoesNotNotify(t *testing.T) {
	svc := newTestFavoritesService()
	called := false
	svc.OnChange(func([]models.Recipe) { called = true })

	if _, err := svc.Add(context.Background(), models.Recipe{URI: "x"}); err == nil {
		t.Fatal("expected validation error")
	}
	if called {
		t.Error("listener ran for a rejected favorite")
	}
}
