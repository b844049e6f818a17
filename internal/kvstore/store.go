// Package kvstore is the string key-value storage behind favorites and
// preferences. Backends: in-process memory, gorm (sqlite or postgres),
// redis, and S3.
package kvstore

import (
	"context"
	"errors"
	"fmt"

	"github.com/windoze95/recipefinder-api/internal/config"
	"github.com/windoze95/recipefinder-api/internal/db"
	"github.com/windoze95/recipefinder-api/internal/s3"
)

// Backend names accepted by STORE_BACKEND.
const (
	BackendMemory   = "memory"
	BackendSQLite   = "sqlite"
	BackendPostgres = "postgres"
	BackendRedis    = "redis"
	BackendS3       = "s3"
)

// ErrUnknownBackend is returned by New for an unrecognized STORE_BACKEND.
var ErrUnknownBackend = errors.New("unknown store backend")

// Store persists string values by key. Get reports found=false for a key
// that was never set or has been deleted.
type Store interface {
	Get(ctx context.Context, key string) (value string, found bool, err error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
	Close() error
}

// New opens the backend named by cfg.EnvVars.StoreBackend.
func New(ctx context.Context, cfg *config.Config) (Store, error) {
	switch cfg.EnvVars.StoreBackend {
	case BackendMemory:
		return NewMemory(), nil
	case BackendSQLite, BackendPostgres:
		database, err := db.New(cfg)
		if err != nil {
			return nil, err
		}
		return NewGorm(database), nil
	case BackendRedis:
		return NewRedis(ctx, cfg.EnvVars.RedisURL)
	case BackendS3:
		client, err := s3.New(ctx, cfg)
		if err != nil {
			return nil, err
		}
		return NewS3(client), nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownBackend, cfg.EnvVars.StoreBackend)
}
