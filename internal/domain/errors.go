package domain

import "errors"

// ErrValidation — общая причина всех ошибок валидации.
// Позволяет проверять errors.Is(err, ErrValidation).
var ErrValidation = errors.New("validation failed")

// ValidationError — нарушение доменного правила для конкретного поля.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}
