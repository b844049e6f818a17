package service

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/asaskevich/govalidator"
	"github.com/windoze95/recipefinder-api/internal/logger"
	"github.com/windoze95/recipefinder-api/internal/models"
	"github.com/windoze95/recipefinder-api/internal/repository"
	"go.uber.org/zap"
)

// FavoritesListener receives the full favorites list after each change.
type FavoritesListener func(favorites []models.Recipe)

// FavoritesService manages the bookmarked recipes.
type FavoritesService struct {
	Repo repository.FavoritesRepo

	mu        sync.RWMutex
	listeners []FavoritesListener
}

// NewFavoritesService creates a new FavoritesService.
func NewFavoritesService(repo repository.FavoritesRepo) *FavoritesService {
	return &FavoritesService{Repo: repo}
}

// OnChange registers fn to run after every successful mutation.
func (s *FavoritesService) OnChange(fn FavoritesListener) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listeners = append(s.listeners, fn)
}

// List returns all favorites.
func (s *FavoritesService) List(ctx context.Context) ([]models.Recipe, error) {
	return s.Repo.List(ctx)
}

// Add validates and stores recipe.
func (s *FavoritesService) Add(ctx context.Context, recipe models.Recipe) ([]models.Recipe, error) {
	if err := ValidateFavorite(recipe); err != nil {
		return nil, err
	}
	favorites, err := s.Repo.Add(ctx, recipe)
	if err != nil {
		return nil, err
	}
	logger.FromContext(ctx).Info("favorite added", zap.String("uri", recipe.URI))
	s.notify(favorites)
	return favorites, nil
}

// Remove deletes the favorite with uri.
func (s *FavoritesService) Remove(ctx context.Context, uri string) ([]models.Recipe, error) {
	favorites, err := s.Repo.Remove(ctx, uri)
	if err != nil {
		return nil, err
	}
	logger.FromContext(ctx).Info("favorite removed", zap.String("uri", uri))
	s.notify(favorites)
	return favorites, nil
}

// IsFavorite reports whether uri is bookmarked.
func (s *FavoritesService) IsFavorite(ctx context.Context, uri string) (bool, error) {
	return s.Repo.Contains(ctx, uri)
}

// Clear removes every favorite.
func (s *FavoritesService) Clear(ctx context.Context) error {
	if err := s.Repo.Clear(ctx); err != nil {
		return err
	}
	s.notify([]models.Recipe{})
	return nil
}

func (s *FavoritesService) notify(favorites []models.Recipe) {
	s.mu.RLock()
	listeners := make([]FavoritesListener, len(s.listeners))
	copy(listeners, s.listeners)
	s.mu.RUnlock()

	for _, fn := range listeners {
		fn(favorites)
	}
}

// ValidateFavorite checks the fields a favorite needs to be displayed again.
func ValidateFavorite(recipe models.Recipe) error {
	if strings.TrimSpace(recipe.URI) == "" {
		return fmt.Errorf("%w: uri is required", repository.ErrInvalidRecipe)
	}
	if strings.TrimSpace(recipe.Label) == "" {
		return fmt.Errorf("%w: label is required", repository.ErrInvalidRecipe)
	}
	if recipe.Image != "" && !govalidator.IsURL(recipe.Image) {
		return fmt.Errorf("%w: image must be a URL", repository.ErrInvalidRecipe)
	}
	if recipe.URL != "" && !govalidator.IsURL(recipe.URL) {
		return fmt.Errorf("%w: url must be a URL", repository.ErrInvalidRecipe)
	}
	return nil
}
