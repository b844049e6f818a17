package kvstore

import (
	"context"
	"errors"
	"fmt"

	"github.com/windoze95/recipefinder-api/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Gorm stores values in the key_values table.
type Gorm struct {
	DB *gorm.DB
}

// NewGorm wraps an opened and migrated database.
func NewGorm(database *gorm.DB) *Gorm {
	return &Gorm{DB: database}
}

func (g *Gorm) Get(ctx context.Context, key string) (string, bool, error) {
	var row models.KeyValue
	err := g.DB.WithContext(ctx).Where("key = ?", key).First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("failed to read key %q: %w", key, err)
	}
	return row.Value, true, nil
}

func (g *Gorm) Set(ctx context.Context, key, value string) error {
	row := models.KeyValue{Key: key, Value: value}
	err := g.DB.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&row).Error
	if err != nil {
		return fmt.Errorf("failed to write key %q: %w", key, err)
	}
	return nil
}

func (g *Gorm) Delete(ctx context.Context, key string) error {
	if err := g.DB.WithContext(ctx).Where("key = ?", key).Delete(&models.KeyValue{}).Error; err != nil {
		return fmt.Errorf("failed to delete key %q: %w", key, err)
	}
	return nil
}

func (g *Gorm) Close() error {
	sqlDB, err := g.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
