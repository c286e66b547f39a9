package api

import (
	"net/http"

	"github.com/shaiso/superheroes/internal/domain"
	"github.com/shaiso/superheroes/internal/mq"
)

// ListHeroPowers возвращает все связи героев со способностями.
// GET /hero_powers
func (h *Handler) ListHeroPowers(w http.ResponseWriter, r *http.Request) {
	hps, err := h.heroPowers.List(r.Context())
	if HandleRepoError(w, h.logger, err, "") {
		return
	}

	result := make([]HeroPowerResponse, len(hps))
	for i, hp := range hps {
		result[i] = HeroPowerFromDomain(hp)
	}

	Success(w, result)
}

// CreateHeroPower связывает героя со способностью.
// POST /hero_powers
//
// hero_id и power_id должны ссылаться на существующие записи,
// иначе 400 {"error": "Hero not found"} / {"error": "Power not found"}.
func (h *Handler) CreateHeroPower(w http.ResponseWriter, r *http.Request) {
	var req CreateHeroPowerRequest
	if err := decodeJSON(r, &req); err != nil {
		BadRequest(w, MsgInvalidBody)
		return
	}

	if req.Strength == "" || req.PowerID == 0 || req.HeroID == 0 {
		BadRequest(w, MsgHeroPowerFieldsRequired)
		return
	}

	hp := &domain.HeroPower{
		Strength: req.Strength,
		HeroID:   req.HeroID,
		PowerID:  req.PowerID,
	}

	if err := h.heroPowers.Create(r.Context(), hp); err != nil {
		HandleRepoError(w, h.logger, err, "")
		return
	}

	resp := HeroPowerFromDomain(*hp)
	h.publish(r.Context(), mq.EventHeroPowerCreated, resp)
	Created(w, resp)
}
