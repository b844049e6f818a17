package db

import (
	"fmt"
	"time"

	"github.com/windoze95/recipefinder-api/internal/config"
	"github.com/windoze95/recipefinder-api/internal/logger"
	"github.com/windoze95/recipefinder-api/internal/models"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// Supported gorm dialects.
const (
	DialectPostgres = "postgres"
	DialectSQLite   = "sqlite"
)

// New opens the database selected by STORE_BACKEND and migrates it.
func New(cfg *config.Config) (*gorm.DB, error) {
	switch cfg.EnvVars.StoreBackend {
	case DialectPostgres:
		return connectToDatabaseWithRetry(cfg.EnvVars.DatabaseUrl, time.Minute)
	case DialectSQLite:
		return OpenSQLite(cfg.EnvVars.SQLitePath)
	}
	return nil, fmt.Errorf("store backend %q is not a database", cfg.EnvVars.StoreBackend)
}

// OpenSQLite opens (or creates) a sqlite database file and migrates it.
func OpenSQLite(path string) (*gorm.DB, error) {
	logger.Get().Info("opening sqlite database", zap.String("path", path))
	database, err := gorm.Open(sqlite.Open(path), gormConfig())
	if err != nil {
		return nil, fmt.Errorf("could not open sqlite database: %w", err)
	}
	return database, Migrate(database)
}

// connectToDatabaseWithRetry connects to postgres and retries until timeout.
func connectToDatabaseWithRetry(databaseURL string, timeout time.Duration) (*gorm.DB, error) {
	logger.Get().Info("connecting to database")
	var database *gorm.DB
	var err error

	start := time.Now()
	for {
		database, err = gorm.Open(postgres.Open(databaseURL), gormConfig())
		if err == nil {
			break
		}
		if time.Since(start) > timeout {
			return nil, fmt.Errorf("could not connect to database after %s: %w", timeout, err)
		}
		logger.Get().Warn("could not connect to database, retrying...", zap.Error(err))
		time.Sleep(5 * time.Second)
	}

	return database, Migrate(database)
}

// Migrate creates or updates the key_values table.
func Migrate(database *gorm.DB) error {
	if err := database.AutoMigrate(&models.KeyValue{}); err != nil {
		return fmt.Errorf("failed to migrate key_values: %w", err)
	}
	return nil
}

func gormConfig() *gorm.Config {
	return &gorm.Config{Logger: gormlogger.Default.LogMode(gormlogger.Silent)}
}
