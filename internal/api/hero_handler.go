package api

import (
	"net/http"
	"strconv"

	"github.com/shaiso/superheroes/internal/domain"
	"github.com/shaiso/superheroes/internal/mq"
)

// ListHeroes возвращает список всех героев.
// GET /heroes
func (h *Handler) ListHeroes(w http.ResponseWriter, r *http.Request) {
	heroes, err := h.heroes.List(r.Context())
	if HandleRepoError(w, h.logger, err, "") {
		return
	}

	result := make([]HeroResponse, len(heroes))
	for i, hero := range heroes {
		result[i] = HeroFromDomain(hero)
	}

	Success(w, result)
}

// GetHero возвращает героя вместе с его способностями.
// GET /heroes/{id}
func (h *Handler) GetHero(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		NotFound(w, MsgHeroNotFound)
		return
	}

	hero, err := h.heroes.GetByID(r.Context(), id)
	if HandleRepoError(w, h.logger, err, MsgHeroNotFound) {
		return
	}

	Success(w, HeroDetailFromDomain(*hero))
}

// CreateHero создаёт нового героя.
// POST /heroes
func (h *Handler) CreateHero(w http.ResponseWriter, r *http.Request) {
	var req CreateHeroRequest
	if err := decodeJSON(r, &req); err != nil {
		BadRequest(w, MsgInvalidBody)
		return
	}

	if req.Name == "" || req.SuperName == "" {
		BadRequest(w, MsgHeroFieldsRequired)
		return
	}

	hero := &domain.Hero{
		Name:      req.Name,
		SuperName: req.SuperName,
	}

	if err := h.heroes.Create(r.Context(), hero); err != nil {
		HandleRepoError(w, h.logger, err, "")
		return
	}

	resp := HeroDetailFromDomain(*hero)
	h.publish(r.Context(), mq.EventHeroCreated, resp)
	Created(w, resp)
}

// pathID разбирает {id} из пути. Нечисловой id равнозначен отсутствующему.
func pathID(r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}
