package service

import (
	"github.com/windoze95/recipefinder-api/internal/config"
	"github.com/windoze95/recipefinder-api/internal/kvstore"
	"github.com/windoze95/recipefinder-api/internal/providers"
	"github.com/windoze95/recipefinder-api/internal/repository"
)

// Services bundles the services shared by the HTTP and MCP entry points.
type Services struct {
	Search      *SearchService
	Guard       *QueryGuard
	Favorites   *FavoritesService
	Preferences *PreferencesService
}

// NewServices wires every service to one store and one provider set.
func NewServices(cfg *config.Config, store kvstore.Store, set *providers.Set) *Services {
	return &Services{
		Search:      NewSearchServiceFromSet(cfg, set),
		Guard:       NewQueryGuard(cfg.EnvVars.BlockProfaneQueries),
		Favorites:   NewFavoritesService(repository.NewFavoritesRepository(store)),
		Preferences: NewPreferencesService(repository.NewPreferencesRepository(store)),
	}
}
