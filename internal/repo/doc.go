// Package repo реализует хранение героев, способностей и связей между ними.
//
// Хранилище выбирается по URI: PostgreSQL (pgxpool, поверх которого
// открывается gorm) или файл SQLite (по умолчанию app.db).
// Все записи выполняются через gorm; одна запись — одна транзакция.
package repo
