package repository

import (
	"context"

	"github.com/windoze95/recipefinder-api/internal/models"
)

// FavoritesRepo is the interface for favorites repository operations.
type FavoritesRepo interface {
	List(ctx context.Context) ([]models.Recipe, error)
	Add(ctx context.Context, recipe models.Recipe) ([]models.Recipe, error)
	Remove(ctx context.Context, uri string) ([]models.Recipe, error)
	Contains(ctx context.Context, uri string) (bool, error)
	Clear(ctx context.Context) error
}

// PreferencesRepo is the interface for preference repository operations.
type PreferencesRepo interface {
	DarkMode(ctx context.Context) (value bool, found bool, err error)
	SetDarkMode(ctx context.Context, enabled bool) error
}
