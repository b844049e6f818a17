package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	"github.com/windoze95/recipefinder-api/internal/kvstore"
	"github.com/windoze95/recipefinder-api/internal/logger"
	"github.com/windoze95/recipefinder-api/internal/models"
	"go.uber.org/zap"
)

// FavoritesKey is the store key holding the favorites JSON array.
const FavoritesKey = "recipeFavorites"

// FavoritesRepository keeps the favorite recipes as one JSON array that is
// rewritten on every mutation.
type FavoritesRepository struct {
	Store kvstore.Store
	mu    sync.Mutex
}

// NewFavoritesRepository creates a new FavoritesRepository.
func NewFavoritesRepository(store kvstore.Store) *FavoritesRepository {
	return &FavoritesRepository{Store: store}
}

// List returns the favorites in insertion order.
func (r *FavoritesRepository) List(ctx context.Context) ([]models.Recipe, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.load(ctx)
}

// Add appends recipe unless a favorite with the same uri exists, and returns
// the resulting list.
func (r *FavoritesRepository) Add(ctx context.Context, recipe models.Recipe) ([]models.Recipe, error) {
	if strings.TrimSpace(recipe.URI) == "" {
		return nil, fmt.Errorf("%w: uri is required", ErrInvalidRecipe)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	favorites, err := r.load(ctx)
	if err != nil {
		return nil, err
	}
	for _, f := range favorites {
		if f.URI == recipe.URI {
			return favorites, nil
		}
	}

	favorites = append(favorites, recipe)
	if err := r.save(ctx, favorites); err != nil {
		return nil, err
	}
	return favorites, nil
}

// Remove drops the favorite with uri, if any, and returns the resulting list.
func (r *FavoritesRepository) Remove(ctx context.Context, uri string) ([]models.Recipe, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	favorites, err := r.load(ctx)
	if err != nil {
		return nil, err
	}

	kept := favorites[:0]
	for _, f := range favorites {
		if f.URI != uri {
			kept = append(kept, f)
		}
	}
	if len(kept) == len(favorites) {
		return favorites, nil
	}

	if err := r.save(ctx, kept); err != nil {
		return nil, err
	}
	return kept, nil
}

// Contains reports whether uri is a favorite.
func (r *FavoritesRepository) Contains(ctx context.Context, uri string) (bool, error) {
	favorites, err := r.List(ctx)
	if err != nil {
		return false, err
	}
	for _, f := range favorites {
		if f.URI == uri {
			return true, nil
		}
	}
	return false, nil
}

// Clear removes every favorite.
func (r *FavoritesRepository) Clear(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := r.Store.Delete(ctx, FavoritesKey); err != nil {
		return fmt.Errorf("failed to clear favorites: %w", err)
	}
	return nil
}

// load reads the stored array. A missing or corrupt value reads as empty.
func (r *FavoritesRepository) load(ctx context.Context) ([]models.Recipe, error) {
	raw, found, err := r.Store.Get(ctx, FavoritesKey)
	if err != nil {
		return nil, fmt.Errorf("failed to load favorites: %w", err)
	}
	favorites := []models.Recipe{}
	if !found || raw == "" {
		return favorites, nil
	}
	if err := json.Unmarshal([]byte(raw), &favorites); err != nil {
		logger.FromContext(ctx).Warn("discarding unreadable favorites", zap.Error(err))
		return []models.Recipe{}, nil
	}
	if favorites == nil {
		favorites = []models.Recipe{}
	}
	return favorites, nil
}

func (r *FavoritesRepository) save(ctx context.Context, favorites []models.Recipe) error {
	data, err := json.Marshal(favorites)
	if err != nil {
		return fmt.Errorf("failed to encode favorites: %w", err)
	}
	if err := r.Store.Set(ctx, FavoritesKey, string(data)); err != nil {
		return fmt.Errorf("failed to save favorites: %w", err)
	}
	return nil
}
