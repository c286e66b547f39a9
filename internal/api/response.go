package api

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/shaiso/superheroes/internal/domain"
	"github.com/shaiso/superheroes/internal/repo"
)

// Тексты ошибок, которые видит клиент.
const (
	MsgHeroNotFound            = "Hero not found"
	MsgPowerNotFound           = "Power not found"
	MsgHeroFieldsRequired      = "Name and Super Name are required"
	MsgPowerFieldsRequired     = "Name and Description are required"
	MsgHeroPowerFieldsRequired = "Strength, Power ID, and Hero ID are required"
	MsgInvalidBody             = "invalid request body"
	MsgValidationErrors        = "validation errors"
	MsgInternalError           = "internal server error"
)

// ErrorResponse — ответ с одной ошибкой.
type ErrorResponse struct {
	Error string `json:"error"`
}

// ErrorsResponse — ответ со списком ошибок валидации.
type ErrorsResponse struct {
	Errors []string `json:"errors"`
}

// JSON отправляет JSON ответ с отступами.
func JSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.Encode(data)
}

// Success отправляет 200 с данными.
func Success(w http.ResponseWriter, data any) {
	JSON(w, http.StatusOK, data)
}

// Created отправляет 201 с созданным ресурсом.
func Created(w http.ResponseWriter, data any) {
	JSON(w, http.StatusCreated, data)
}

// Error отправляет {"error": message}.
func Error(w http.ResponseWriter, status int, message string) {
	JSON(w, status, ErrorResponse{Error: message})
}

// BadRequest отправляет ошибку 400.
func BadRequest(w http.ResponseWriter, message string) {
	Error(w, http.StatusBadRequest, message)
}

// ValidationFailed отправляет 400 {"errors": [...]}.
func ValidationFailed(w http.ResponseWriter, messages ...string) {
	JSON(w, http.StatusBadRequest, ErrorsResponse{Errors: messages})
}

// NotFound отправляет ошибку 404.
func NotFound(w http.ResponseWriter, message string) {
	Error(w, http.StatusNotFound, message)
}

// InternalError логирует причину и отправляет ошибку 500.
func InternalError(w http.ResponseWriter, logger *slog.Logger, err error) {
	logger.Error("internal error", "error", err)
	Error(w, http.StatusInternalServerError, MsgInternalError)
}

// HandleRepoError преобразует ошибку репозитория в HTTP ответ.
// Возвращает false, если err == nil и ответ ещё не отправлен.
func HandleRepoError(w http.ResponseWriter, logger *slog.Logger, err error, notFoundMsg string) bool {
	if err == nil {
		return false
	}

	if errors.Is(err, repo.ErrNotFound) {
		NotFound(w, notFoundMsg)
		return true
	}

	var verr *domain.ValidationError
	if errors.As(err, &verr) {
		ValidationFailed(w, verr.Message)
		return true
	}

	var refErr *repo.ReferenceError
	if errors.As(err, &refErr) {
		BadRequest(w, refErr.Error())
		return true
	}
	if errors.Is(err, repo.ErrInvalidReference) {
		BadRequest(w, MsgValidationErrors)
		return true
	}

	InternalError(w, logger, err)
	return true
}

// decodeJSON разбирает тело запроса в v.
// Неизвестные поля и поля не того типа — ошибка.
func decodeJSON(r *http.Request, v any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return err
	}
	if dec.More() {
		return errors.New("unexpected data after JSON body")
	}
	return nil
}
