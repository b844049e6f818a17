package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// EndpointConfig holds the base URL of a single upstream provider.
type EndpointConfig struct {
	BaseURL string `yaml:"base_url"`
}

// MealDBConfig holds the TheMealDB endpoints.
type MealDBConfig struct {
	BaseURL             string `yaml:"base_url"`
	IngredientImageBase string `yaml:"ingredient_image_base"`
}

// Providers is the upstream endpoint configuration loaded from YAML.
type Providers struct {
	Edamam      EndpointConfig `yaml:"edamam"`
	Spoonacular EndpointConfig `yaml:"spoonacular"`
	MealDB      MealDBConfig   `yaml:"mealdb"`
	Timeout     time.Duration  `yaml:"timeout"`
}

// DefaultProviders returns the public production endpoints.
func DefaultProviders() *Providers {
	return &Providers{
		Edamam:      EndpointConfig{BaseURL: "https://api.edamam.com"},
		Spoonacular: EndpointConfig{BaseURL: "https://api.spoonacular.com"},
		MealDB: MealDBConfig{
			BaseURL:             "https://www.themealdb.com/api/json/v1/1",
			IngredientImageBase: "https://www.themealdb.com/images/ingredients",
		},
		Timeout: 10 * time.Second,
	}
}

// LoadProviders reads a YAML provider file. Keys missing from the file keep
// their DefaultProviders value.
func LoadProviders(path string) (*Providers, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read providers file: %w", err)
	}

	providers := DefaultProviders()
	if err := yaml.Unmarshal(data, providers); err != nil {
		return nil, fmt.Errorf("failed to parse providers YAML: %w", err)
	}
	if providers.Timeout <= 0 {
		return nil, fmt.Errorf("providers timeout must be positive, got %s", providers.Timeout)
	}

	return providers, nil
}
