package api

import (
	"net/http"

	"github.com/shaiso/superheroes/internal/domain"
	"github.com/shaiso/superheroes/internal/mq"
)

// ListPowers возвращает список всех способностей.
// GET /powers
func (h *Handler) ListPowers(w http.ResponseWriter, r *http.Request) {
	powers, err := h.powers.List(r.Context())
	if HandleRepoError(w, h.logger, err, "") {
		return
	}

	result := make([]PowerResponse, len(powers))
	for i, p := range powers {
		result[i] = PowerFromDomain(p)
	}

	Success(w, result)
}

// GetPower возвращает способность по ID.
// GET /powers/{id}
func (h *Handler) GetPower(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		NotFound(w, MsgPowerNotFound)
		return
	}

	power, err := h.powers.GetByID(r.Context(), id)
	if HandleRepoError(w, h.logger, err, MsgPowerNotFound) {
		return
	}

	Success(w, PowerFromDomain(*power))
}

// CreatePower создаёт новую способность.
// POST /powers
func (h *Handler) CreatePower(w http.ResponseWriter, r *http.Request) {
	var req CreatePowerRequest
	if err := decodeJSON(r, &req); err != nil {
		BadRequest(w, MsgInvalidBody)
		return
	}

	if req.Name == "" || req.Description == "" {
		BadRequest(w, MsgPowerFieldsRequired)
		return
	}

	power := &domain.Power{
		Name:        req.Name,
		Description: req.Description,
	}

	if err := h.powers.Create(r.Context(), power); err != nil {
		HandleRepoError(w, h.logger, err, "")
		return
	}

	resp := PowerFromDomain(*power)
	h.publish(r.Context(), mq.EventPowerCreated, resp)
	Created(w, resp)
}

// UpdatePower меняет описание способности.
// PATCH /powers/{id}
//
// Порядок проверок: существование способности (404), наличие
// description в теле (400 "validation errors"), доменные правила
// при сохранении (400 со списком ошибок, изменение откатывается).
func (h *Handler) UpdatePower(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		NotFound(w, MsgPowerNotFound)
		return
	}

	_, err := h.powers.GetByID(r.Context(), id)
	if HandleRepoError(w, h.logger, err, MsgPowerNotFound) {
		return
	}

	var req UpdatePowerRequest
	if err := decodeJSON(r, &req); err != nil {
		BadRequest(w, MsgInvalidBody)
		return
	}

	if req.Description == "" {
		ValidationFailed(w, MsgValidationErrors)
		return
	}

	power, err := h.powers.UpdateDescription(r.Context(), id, req.Description)
	if HandleRepoError(w, h.logger, err, MsgPowerNotFound) {
		return
	}

	resp := PowerFromDomain(*power)
	h.publish(r.Context(), mq.EventPowerUpdated, resp)
	Success(w, resp)
}
