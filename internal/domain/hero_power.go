package domain

// HeroPower — связь героя со способностью.
//
// Это many-to-many связь с атрибутом: Strength описывает,
// насколько сильно герой владеет способностью.
type HeroPower struct {
	// ID — идентификатор, назначается базой данных.
	ID int64 `gorm:"primaryKey"`

	// Strength — сила владения (например, "Strong", "Average"). Обязательное.
	Strength string `gorm:"not null"`

	// HeroID — ссылка на героя.
	HeroID int64 `gorm:"column:hero_id;not null;index"`

	// PowerID — ссылка на способность.
	PowerID int64 `gorm:"column:power_id;not null;index"`

	// Hero и Power заполняются только при явной загрузке.
	Hero  *Hero  `gorm:"foreignKey:HeroID"`
	Power *Power `gorm:"foreignKey:PowerID"`
}

// TableName задаёт имя таблицы.
func (HeroPower) TableName() string {
	return "hero_powers"
}

// Validate проверяет обязательные поля связи.
func (hp *HeroPower) Validate() error {
	if hp.Strength == "" {
		return &ValidationError{Field: "strength", Message: "strength must be present"}
	}
	if hp.HeroID <= 0 {
		return &ValidationError{Field: "hero_id", Message: "hero_id must be present"}
	}
	if hp.PowerID <= 0 {
		return &ValidationError{Field: "power_id", Message: "power_id must be present"}
	}
	return nil
}
