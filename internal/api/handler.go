package api

import (
	"context"
	"log/slog"

	"github.com/shaiso/superheroes/internal/domain"
	"github.com/shaiso/superheroes/internal/mq"
)

// HeroStore — хранилище героев (реализация: repo.HeroRepo).
type HeroStore interface {
	List(ctx context.Context) ([]domain.Hero, error)
	GetByID(ctx context.Context, id int64) (*domain.Hero, error)
	Create(ctx context.Context, hero *domain.Hero) error
}

// PowerStore — хранилище способностей (реализация: repo.PowerRepo).
type PowerStore interface {
	List(ctx context.Context) ([]domain.Power, error)
	GetByID(ctx context.Context, id int64) (*domain.Power, error)
	Create(ctx context.Context, power *domain.Power) error
	UpdateDescription(ctx context.Context, id int64, description string) (*domain.Power, error)
}

// HeroPowerStore — хранилище связей (реализация: repo.HeroPowerRepo).
type HeroPowerStore interface {
	List(ctx context.Context) ([]domain.HeroPower, error)
	Create(ctx context.Context, hp *domain.HeroPower) error
}

// Publisher — получатель событий об изменениях (реализация: mq.Publisher).
type Publisher interface {
	PublishEvent(ctx context.Context, eventType mq.EventType, payload any) error
}

// Pinger проверяет доступность базы для /healthz.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Handler — главный обработчик API с зависимостями.
type Handler struct {
	heroes     HeroStore
	powers     PowerStore
	heroPowers HeroPowerStore
	publisher  Publisher
	db         Pinger
	logger     *slog.Logger
}

// Config — конфигурация для создания Handler.
type Config struct {
	Heroes     HeroStore
	Powers     PowerStore
	HeroPowers HeroPowerStore

	// Publisher — может быть nil, тогда события не публикуются.
	Publisher Publisher

	// DB — может быть nil, тогда /healthz не проверяет базу.
	DB Pinger

	Logger *slog.Logger
}

// NewHandler создаёт новый Handler.
func NewHandler(cfg Config) *Handler {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &Handler{
		heroes:     cfg.Heroes,
		powers:     cfg.Powers,
		heroPowers: cfg.HeroPowers,
		publisher:  cfg.Publisher,
		db:         cfg.DB,
		logger:     logger,
	}
}

// publish отправляет событие. Ошибка публикации только логируется:
// запись в базу уже зафиксирована и ответ клиенту не меняется.
func (h *Handler) publish(ctx context.Context, eventType mq.EventType, payload any) {
	if h.publisher == nil {
		return
	}
	if err := h.publisher.PublishEvent(ctx, eventType, payload); err != nil {
		h.logger.Warn("failed to publish event", "type", eventType, "error", err)
	}
}
