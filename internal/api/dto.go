package api

import (
	"github.com/shaiso/superheroes/internal/domain"
)

// Hero DTOs

// CreateHeroRequest — запрос на создание героя.
type CreateHeroRequest struct {
	Name      string `json:"name"`
	SuperName string `json:"super_name"`
}

// HeroResponse — герой в списке.
type HeroResponse struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	SuperName string `json:"super_name"`
}

// HeroDetailResponse — герой со способностями.
type HeroDetailResponse struct {
	ID         int64                     `json:"id"`
	Name       string                    `json:"name"`
	SuperName  string                    `json:"super_name"`
	HeroPowers []HeroPowerOfHeroResponse `json:"hero_powers"`
}

// HeroFromDomain конвертирует domain.Hero в HeroResponse.
func HeroFromDomain(h domain.Hero) HeroResponse {
	return HeroResponse{
		ID:        h.ID,
		Name:      h.Name,
		SuperName: h.SuperName,
	}
}

// HeroDetailFromDomain конвертирует domain.Hero вместе с HeroPowers.
func HeroDetailFromDomain(h domain.Hero) HeroDetailResponse {
	hps := make([]HeroPowerOfHeroResponse, len(h.HeroPowers))
	for i, hp := range h.HeroPowers {
		hps[i] = HeroPowerOfHeroFromDomain(hp)
	}
	return HeroDetailResponse{
		ID:         h.ID,
		Name:       h.Name,
		SuperName:  h.SuperName,
		HeroPowers: hps,
	}
}

// Power DTOs

// CreatePowerRequest — запрос на создание способности.
type CreatePowerRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// UpdatePowerRequest — запрос на изменение способности.
// Изменять можно только описание.
type UpdatePowerRequest struct {
	Description string `json:"description"`
}

// PowerResponse — ответ со способностью.
type PowerResponse struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// PowerFromDomain конвертирует domain.Power в PowerResponse.
func PowerFromDomain(p domain.Power) PowerResponse {
	return PowerResponse{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
	}
}

// HeroPower DTOs

// CreateHeroPowerRequest — запрос на создание связи.
type CreateHeroPowerRequest struct {
	Strength string `json:"strength"`
	PowerID  int64  `json:"power_id"`
	HeroID   int64  `json:"hero_id"`
}

// HeroPowerResponse — связь с вложенными героем и способностью.
type HeroPowerResponse struct {
	ID       int64          `json:"id"`
	Strength string         `json:"strength"`
	HeroID   int64          `json:"hero_id"`
	PowerID  int64          `json:"power_id"`
	Hero     *HeroResponse  `json:"hero,omitempty"`
	Power    *PowerResponse `json:"power,omitempty"`
}

// HeroPowerOfHeroResponse — связь внутри героя: без обратной ссылки на героя.
type HeroPowerOfHeroResponse struct {
	ID       int64          `json:"id"`
	Strength string         `json:"strength"`
	HeroID   int64          `json:"hero_id"`
	PowerID  int64          `json:"power_id"`
	Power    *PowerResponse `json:"power,omitempty"`
}

// HeroPowerFromDomain конвертирует domain.HeroPower в HeroPowerResponse.
func HeroPowerFromDomain(hp domain.HeroPower) HeroPowerResponse {
	resp := HeroPowerResponse{
		ID:       hp.ID,
		Strength: hp.Strength,
		HeroID:   hp.HeroID,
		PowerID:  hp.PowerID,
	}
	if hp.Hero != nil {
		hero := HeroFromDomain(*hp.Hero)
		resp.Hero = &hero
	}
	if hp.Power != nil {
		power := PowerFromDomain(*hp.Power)
		resp.Power = &power
	}
	return resp
}

// HeroPowerOfHeroFromDomain конвертирует domain.HeroPower для вложения в героя.
func HeroPowerOfHeroFromDomain(hp domain.HeroPower) HeroPowerOfHeroResponse {
	resp := HeroPowerOfHeroResponse{
		ID:       hp.ID,
		Strength: hp.Strength,
		HeroID:   hp.HeroID,
		PowerID:  hp.PowerID,
	}
	if hp.Power != nil {
		power := PowerFromDomain(*hp.Power)
		resp.Power = &power
	}
	return resp
}
