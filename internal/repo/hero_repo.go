package repo

import (
	"context"
	"fmt"

	"github.com/shaiso/superheroes/internal/domain"
	"gorm.io/gorm"
)

// HeroRepo — репозиторий для работы с heroes.
type HeroRepo struct {
	db *gorm.DB
}

// NewHeroRepo создаёт новый HeroRepo.
func NewHeroRepo(db *DB) *HeroRepo {
	return &HeroRepo{db: db.Gorm}
}

// Create создаёт нового героя. ID назначается базой.
func (r *HeroRepo) Create(ctx context.Context, hero *domain.Hero) error {
	if err := hero.Validate(); err != nil {
		return err
	}
	if err := r.db.WithContext(ctx).Omit("HeroPowers").Create(hero).Error; err != nil {
		return fmt.Errorf("insert hero: %w", err)
	}
	return nil
}

// GetByID возвращает героя вместе с его HeroPowers и вложенными Power.
func (r *HeroRepo) GetByID(ctx context.Context, id int64) (*domain.Hero, error) {
	var hero domain.Hero
	err := r.db.WithContext(ctx).
		Preload("HeroPowers", func(db *gorm.DB) *gorm.DB {
			return db.Order("hero_powers.id ASC")
		}).
		Preload("HeroPowers.Power").
		First(&hero, id).Error
	if err != nil {
		return nil, notFound(err, "get hero by id")
	}
	return &hero, nil
}

// List возвращает всех героев в порядке создания.
func (r *HeroRepo) List(ctx context.Context) ([]domain.Hero, error) {
	var heroes []domain.Hero
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&heroes).Error; err != nil {
		return nil, fmt.Errorf("list heroes: %w", err)
	}
	return heroes, nil
}
