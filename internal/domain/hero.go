package domain

// Hero — супергерой.
//
// Hero владеет набором HeroPower: через них герой связан со способностями
// (Power) и силой владения каждой из них.
type Hero struct {
	// ID — идентификатор, назначается базой данных.
	ID int64 `gorm:"primaryKey"`

	// Name — настоящее имя героя. Обязательное.
	Name string `gorm:"not null"`

	// SuperName — псевдоним героя (например, "Ms. Marvel"). Обязательный.
	SuperName string `gorm:"column:super_name;not null"`

	// HeroPowers — связи героя со способностями.
	// Заполняется только при явной загрузке (preload).
	HeroPowers []HeroPower `gorm:"foreignKey:HeroID"`
}

// TableName задаёт имя таблицы (gorm по умолчанию склоняет "hero" в "heros").
func (Hero) TableName() string {
	return "heroes"
}

// Validate проверяет обязательные поля героя.
func (h *Hero) Validate() error {
	if h.Name == "" {
		return &ValidationError{Field: "name", Message: "name must be present"}
	}
	if h.SuperName == "" {
		return &ValidationError{Field: "super_name", Message: "super_name must be present"}
	}
	return nil
}
