package config

import (
	"fmt"
	"reflect"

	"github.com/caarlos0/env/v11"
)

// Provider names reported by ActiveProvider.
const (
	ProviderPrimary   = "primary"
	ProviderSecondary = "secondary"
	ProviderFallback  = "fallback"
)

// Config holds the application configuration.
type Config struct {
	EnvVars   EnvVars    `json:"env"`
	Providers *Providers `json:"-"`
}

// EnvVars holds environment variables read by the application.
// Fields tagged `optional:"true"` are skipped by CheckConfigEnvFields.
type EnvVars struct {
	Port                string   `env:"PORT" envDefault:"8080"`
	EdamamAppID         string   `env:"EDAMAM_APP_ID" optional:"true"`
	EdamamAppKey        string   `env:"EDAMAM_APP_KEY" optional:"true"`
	SpoonacularKey      string   `env:"SPOONACULAR_API_KEY" optional:"true"`
	StoreBackend        string   `env:"STORE_BACKEND" envDefault:"sqlite"`
	DatabaseUrl         string   `env:"DATABASE_URL" optional:"true"`
	SQLitePath          string   `env:"SQLITE_PATH" envDefault:"recipefinder.db" optional:"true"`
	RedisURL            string   `env:"REDIS_URL" optional:"true"`
	AWSRegion           string   `env:"AWS_REGION" optional:"true"`
	AWSAccessKeyID      string   `env:"AWS_ACCESS_KEY_ID" optional:"true"`
	AWSSecretAccessKey  string   `env:"AWS_SECRET_ACCESS_KEY" optional:"true"`
	S3Bucket            string   `env:"S3_BUCKET" optional:"true"`
	S3Prefix            string   `env:"S3_PREFIX" envDefault:"recipefinder/" optional:"true"`
	ProvidersFile       string   `env:"PROVIDERS_FILE" optional:"true"`
	SearchRPS           float64  `env:"SEARCH_RPS" envDefault:"5"`
	SearchBurst         int      `env:"SEARCH_BURST" envDefault:"10"`
	BlockProfaneQueries bool     `env:"BLOCK_PROFANE_QUERIES" envDefault:"false" optional:"true"`
	AllowedOrigins      []string `env:"ALLOWED_ORIGINS" envSeparator:"," envDefault:"http://localhost:3000"`
}

// Credentials are the upstream API keys that decide which recipe provider
// a search runs against. The zero value selects the free fallback provider.
type Credentials struct {
	EdamamAppID    string
	EdamamAppKey   string
	SpoonacularKey string
}

// ActiveProvider reports which provider these credentials select.
func (c Credentials) ActiveProvider() string {
	if c.EdamamAppID != "" && c.EdamamAppKey != "" {
		return ProviderPrimary
	}
	if c.SpoonacularKey != "" {
		return ProviderSecondary
	}
	return ProviderFallback
}

// LoadConfig parses environment variables into the Config struct and loads
// the provider endpoints, overlaying PROVIDERS_FILE when it is set.
func LoadConfig() (*Config, error) {
	var config Config
	if err := env.Parse(&config.EnvVars); err != nil {
		return nil, err
	}

	providers := DefaultProviders()
	if config.EnvVars.ProvidersFile != "" {
		loaded, err := LoadProviders(config.EnvVars.ProvidersFile)
		if err != nil {
			return nil, err
		}
		providers = loaded
	}
	config.Providers = providers

	return &config, nil
}

// Credentials extracts the provider credentials from the environment.
func (c *Config) Credentials() Credentials {
	return Credentials{
		EdamamAppID:    c.EnvVars.EdamamAppID,
		EdamamAppKey:   c.EnvVars.EdamamAppKey,
		SpoonacularKey: c.EnvVars.SpoonacularKey,
	}
}

// CheckConfigEnvFields validates that all required EnvVars fields are set,
// plus the fields the selected store backend depends on.
func (c *Config) CheckConfigEnvFields() error {
	if err := checkFieldsRecursive(reflect.ValueOf(c.EnvVars)); err != nil {
		return err
	}

	switch c.EnvVars.StoreBackend {
	case "postgres":
		if c.EnvVars.DatabaseUrl == "" {
			return fmt.Errorf("$DatabaseUrl must be set for the postgres store")
		}
	case "redis":
		if c.EnvVars.RedisURL == "" {
			return fmt.Errorf("$RedisURL must be set for the redis store")
		}
	case "s3":
		if c.EnvVars.S3Bucket == "" || c.EnvVars.AWSRegion == "" {
			return fmt.Errorf("$S3Bucket and $AWSRegion must be set for the s3 store")
		}
	}
	return nil
}

func checkFieldsRecursive(v reflect.Value) error {
	if v.Kind() == reflect.Ptr {
		v = v.Elem()
	}
	for i := 0; i < v.NumField(); i++ {
		field := v.Field(i)
		fieldType := v.Type().Field(i)
		if fieldType.Tag.Get("optional") == "true" {
			continue
		}
		if field.IsZero() {
			return fmt.Errorf("$%s must be set", fieldType.Name)
		}
		if field.Kind() == reflect.Struct {
			if err := checkFieldsRecursive(field); err != nil {
				return err
			}
		}
	}
	return nil
}
