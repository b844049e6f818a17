package service

import (
	"context"

	"github.com/windoze95/recipefinder-api/internal/repository"
)

// Dark mode sources.
const (
	DarkModeStored = "stored"
	DarkModeSystem = "system"
)

// DarkModeState is the resolved dark mode flag and where it came from.
type DarkModeState struct {
	Enabled bool   `json:"dark_mode"`
	Source  string `json:"source"`
}

// PreferencesService resolves UI preferences.
type PreferencesService struct {
	Repo repository.PreferencesRepo
}

// NewPreferencesService creates a new PreferencesService.
func NewPreferencesService(repo repository.PreferencesRepo) *PreferencesService {
	return &PreferencesService{Repo: repo}
}

// DarkMode returns the stored flag, or systemPrefersDark when none is stored.
func (s *PreferencesService) DarkMode(ctx context.Context, systemPrefersDark bool) (DarkModeState, error) {
	enabled, found, err := s.Repo.DarkMode(ctx)
	if err != nil {
		return DarkModeState{}, err
	}
	if !found {
		return DarkModeState{Enabled: systemPrefersDark, Source: DarkModeSystem}, nil
	}
	return DarkModeState{Enabled: enabled, Source: DarkModeStored}, nil
}

// SetDarkMode stores the flag.
func (s *PreferencesService) SetDarkMode(ctx context.Context, enabled bool) (DarkModeState, error) {
	if err := s.Repo.SetDarkMode(ctx, enabled); err != nil {
		return DarkModeState{}, err
	}
	return DarkModeState{Enabled: enabled, Source: DarkModeStored}, nil
}
