// Package domain содержит модели предметной области.
//
// Модели:
//   - Hero      — герой (имя и псевдоним)
//   - Power     — способность (название и описание)
//   - HeroPower — связь героя со способностью с атрибутом strength
//
// Модели размечены тегами gorm и отображаются на таблицы
// heroes, powers и hero_powers.
package domain
