package api

import (
	"fmt"
	"net/http"
	"time"

	"github.com/shaiso/superheroes/internal/telemetry"
)

var startTime = time.Now()

// RegisterRoutes регистрирует все маршруты API.
// metrics может быть nil.
func (h *Handler) RegisterRoutes(mux *http.ServeMux, metrics *telemetry.HTTPMetrics) {
	middlewares := []Middleware{
		Recovery(h.logger),
		RequestID(h.logger),
		Logging(),
	}
	if metrics != nil {
		middlewares = append(middlewares, metrics.Middleware)
	}
	chain := Chain(middlewares...)

	mux.Handle("GET /{$}", chain(http.HandlerFunc(h.Index)))
	mux.HandleFunc("GET /healthz", h.Health)

	// Heroes
	mux.Handle("GET /heroes", chain(http.HandlerFunc(h.ListHeroes)))
	mux.Handle("POST /heroes", chain(http.HandlerFunc(h.CreateHero)))
	mux.Handle("GET /heroes/{id}", chain(http.HandlerFunc(h.GetHero)))

	// Powers
	mux.Handle("GET /powers", chain(http.HandlerFunc(h.ListPowers)))
	mux.Handle("POST /powers", chain(http.HandlerFunc(h.CreatePower)))
	mux.Handle("GET /powers/{id}", chain(http.HandlerFunc(h.GetPower)))
	mux.Handle("PATCH /powers/{id}", chain(http.HandlerFunc(h.UpdatePower)))

	// Hero powers
	mux.Handle("GET /hero_powers", chain(http.HandlerFunc(h.ListHeroPowers)))
	mux.Handle("POST /hero_powers", chain(http.HandlerFunc(h.CreateHeroPower)))
}

// Index отдаёт HTML заглушку корня.
// GET /
func (h *Handler) Index(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	fmt.Fprint(w, "<h1>Code Challenge</h1>")
}

// Health проверяет базу и отвечает "ok <uptime>".
// GET /healthz
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	if h.db != nil {
		if err := h.db.Ping(r.Context()); err != nil {
			h.logger.Warn("health check failed", "error", err)
			w.WriteHeader(http.StatusServiceUnavailable)
			fmt.Fprintf(w, "database unavailable")
			return
		}
	}
	w.WriteHeader(http.StatusOK)
	fmt.Fprintf(w, "ok %s", time.Since(startTime))
}
