package repo

import (
	"context"
	"errors"
	"fmt"

	"github.com/shaiso/superheroes/internal/domain"
	"gorm.io/gorm"
)

// PowerRepo — репозиторий для работы с powers.
type PowerRepo struct {
	db *gorm.DB
}

// NewPowerRepo создаёт новый PowerRepo.
func NewPowerRepo(db *DB) *PowerRepo {
	return &PowerRepo{db: db.Gorm}
}

// Create создаёт новую способность.
// Доменные правила проверяет хук domain.Power.BeforeSave.
func (r *PowerRepo) Create(ctx context.Context, power *domain.Power) error {
	err := r.db.WithContext(ctx).Omit("HeroPowers").Create(power).Error
	if err != nil {
		if errors.Is(err, domain.ErrValidation) {
			return err
		}
		return fmt.Errorf("insert power: %w", err)
	}
	return nil
}

// GetByID возвращает способность по ID.
func (r *PowerRepo) GetByID(ctx context.Context, id int64) (*domain.Power, error) {
	var power domain.Power
	if err := r.db.WithContext(ctx).First(&power, id).Error; err != nil {
		return nil, notFound(err, "get power by id")
	}
	return &power, nil
}

// List возвращает все способности в порядке создания.
func (r *PowerRepo) List(ctx context.Context) ([]domain.Power, error) {
	var powers []domain.Power
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&powers).Error; err != nil {
		return nil, fmt.Errorf("list powers: %w", err)
	}
	return powers, nil
}

// UpdateDescription меняет описание способности.
//
// Чтение и запись выполняются в одной транзакции. Если новое описание
// не проходит валидацию, транзакция откатывается и в базе остаётся
// прежнее значение.
func (r *PowerRepo) UpdateDescription(ctx context.Context, id int64, description string) (*domain.Power, error) {
	var power domain.Power

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&power, id).Error; err != nil {
			return notFound(err, "get power for update")
		}

		power.Description = description
		return tx.Model(&power).Select("description").Updates(&power).Error
	})
	if err != nil {
		if errors.Is(err, ErrNotFound) || errors.Is(err, domain.ErrValidation) {
			return nil, err
		}
		return nil, fmt.Errorf("update power description: %w", err)
	}
	return &power, nil
}
