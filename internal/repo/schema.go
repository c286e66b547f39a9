package repo

import (
	"context"
	"fmt"

	"github.com/shaiso/superheroes/internal/domain"
)

// AutoMigrate синхронизирует таблицы heroes, powers и hero_powers с моделями.
//
// Это не система миграций: таблицы и колонки только создаются,
// существующие данные не трогаются.
func AutoMigrate(ctx context.Context, db *DB) error {
	if err := db.Gorm.WithContext(ctx).AutoMigrate(
		&domain.Hero{},
		&domain.Power{},
		&domain.HeroPower{},
	); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}
	return nil
}
