package repo

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// Общие ошибки репозиториев.
var (
	// ErrNotFound — запись не найдена в БД.
	ErrNotFound = errors.New("not found")

	// ErrInvalidReference — внешний ключ ссылается на несуществующую запись.
	ErrInvalidReference = errors.New("invalid reference")
)

// ReferenceError уточняет, какая именно ссылка битая.
type ReferenceError struct {
	// Entity — "Hero" или "Power".
	Entity string
	ID     int64
}

func (e *ReferenceError) Error() string {
	return fmt.Sprintf("%s not found", e.Entity)
}

func (e *ReferenceError) Unwrap() error {
	return ErrInvalidReference
}

// pgForeignKeyViolation — SQLSTATE нарушения внешнего ключа.
const pgForeignKeyViolation = "23503"

// isForeignKeyViolation распознаёт нарушение FK независимо от диалекта.
func isForeignKeyViolation(err error) bool {
	if errors.Is(err, gorm.ErrForeignKeyViolated) {
		return true
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgForeignKeyViolation {
		return true
	}
	return false
}

// notFound переводит gorm.ErrRecordNotFound в ErrNotFound.
func notFound(err error, op string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return fmt.Errorf("%s: %w", op, err)
}
