package domain

import (
	"fmt"
	"unicode/utf8"

	"gorm.io/gorm"
)

// MinDescriptionLength — минимальная длина описания способности.
const MinDescriptionLength = 20

// Power — способность, которой может владеть герой.
type Power struct {
	// ID — идентификатор, назначается базой данных.
	ID int64 `gorm:"primaryKey"`

	// Name — название способности. Обязательное.
	Name string `gorm:"not null"`

	// Description — описание способности.
	// Обязательное, не короче MinDescriptionLength символов.
	Description string `gorm:"not null"`

	// HeroPowers — герои, владеющие способностью.
	HeroPowers []HeroPower `gorm:"foreignKey:PowerID"`
}

// TableName задаёт имя таблицы.
func (Power) TableName() string {
	return "powers"
}

// Validate проверяет поля способности.
func (p *Power) Validate() error {
	if p.Name == "" {
		return &ValidationError{Field: "name", Message: "name must be present"}
	}
	if utf8.RuneCountInString(p.Description) < MinDescriptionLength {
		return &ValidationError{
			Field:   "description",
			Message: fmt.Sprintf("description must be present and at least %d characters long", MinDescriptionLength),
		}
	}
	return nil
}

// BeforeSave вызывается gorm перед INSERT и UPDATE.
// Ошибка валидации откатывает транзакцию записи.
func (p *Power) BeforeSave(_ *gorm.DB) error {
	return p.Validate()
}
