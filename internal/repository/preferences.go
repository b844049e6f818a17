package repository

import (
	"context"
	"fmt"
	"strconv"

	"github.com/windoze95/recipefinder-api/internal/kvstore"
)

// DarkModeKey is the store key for the dark mode flag.
const DarkModeKey = "darkMode"

// PreferencesRepository stores UI preferences.
type PreferencesRepository struct {
	Store kvstore.Store
}

// NewPreferencesRepository creates a new PreferencesRepository.
func NewPreferencesRepository(store kvstore.Store) *PreferencesRepository {
	return &PreferencesRepository{Store: store}
}

// DarkMode returns the stored flag. found is false when nothing usable is
// stored.
func (r *PreferencesRepository) DarkMode(ctx context.Context) (bool, bool, error) {
	raw, found, err := r.Store.Get(ctx, DarkModeKey)
	if err != nil {
		return false, false, fmt.Errorf("failed to load dark mode: %w", err)
	}
	if !found {
		return false, false, nil
	}
	enabled, err := strconv.ParseBool(raw)
	if err != nil {
		return false, false, nil
	}
	return enabled, true, nil
}

// SetDarkMode stores "true" or "false".
func (r *PreferencesRepository) SetDarkMode(ctx context.Context, enabled bool) error {
	if err := r.Store.Set(ctx, DarkModeKey, strconv.FormatBool(enabled)); err != nil {
		return fmt.Errorf("failed to save dark mode: %w", err)
	}
	return nil
}
