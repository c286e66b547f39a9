package repo

import (
	"context"
	"errors"
	"fmt"

	"github.com/shaiso/superheroes/internal/domain"
	"gorm.io/gorm"
)

// HeroPowerRepo — репозиторий для работы с hero_powers.
type HeroPowerRepo struct {
	db *gorm.DB
}

// NewHeroPowerRepo создаёт новый HeroPowerRepo.
func NewHeroPowerRepo(db *DB) *HeroPowerRepo {
	return &HeroPowerRepo{db: db.Gorm}
}

// Create создаёт связь героя со способностью.
//
// Существование героя и способности проверяется в той же транзакции,
// что и вставка: ссылка на несуществующую запись возвращает
// *ReferenceError (errors.Is(err, ErrInvalidReference)), даже если
// СУБД не проверяет внешние ключи. После вставки заполняются
// hp.Hero и hp.Power.
func (r *HeroPowerRepo) Create(ctx context.Context, hp *domain.HeroPower) error {
	if err := hp.Validate(); err != nil {
		return err
	}

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var hero domain.Hero
		if err := tx.First(&hero, hp.HeroID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return &ReferenceError{Entity: "Hero", ID: hp.HeroID}
			}
			return fmt.Errorf("check hero: %w", err)
		}

		var power domain.Power
		if err := tx.First(&power, hp.PowerID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return &ReferenceError{Entity: "Power", ID: hp.PowerID}
			}
			return fmt.Errorf("check power: %w", err)
		}

		hp.Hero = nil
		hp.Power = nil
		if err := tx.Omit("Hero", "Power").Create(hp).Error; err != nil {
			if isForeignKeyViolation(err) {
				return fmt.Errorf("insert hero power: %w", ErrInvalidReference)
			}
			return fmt.Errorf("insert hero power: %w", err)
		}

		hp.Hero = &hero
		hp.Power = &power
		return nil
	})
	return err
}

// List возвращает все связи с вложенными Hero и Power.
func (r *HeroPowerRepo) List(ctx context.Context) ([]domain.HeroPower, error) {
	var hps []domain.HeroPower
	err := r.db.WithContext(ctx).
		Preload("Hero").
		Preload("Power").
		Order("id ASC").
		Find(&hps).Error
	if err != nil {
		return nil, fmt.Errorf("list hero powers: %w", err)
	}
	return hps, nil
}
