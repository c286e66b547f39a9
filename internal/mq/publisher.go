package mq

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	amqp "github.com/rabbitmq/amqp091-go"
)

// EventType — тип события, он же routing key.
type EventType string

// Типы событий.
const (
	EventHeroCreated      EventType = "hero.created"
	EventPowerCreated     EventType = "power.created"
	EventPowerUpdated     EventType = "power.updated"
	EventHeroPowerCreated EventType = "hero_power.created"
)

// Message — конверт события.
type Message struct {
	// ID — уникальный идентификатор сообщения.
	ID string `json:"id"`

	// Type — тип события.
	Type EventType `json:"type"`

	// Payload — сериализованная сущность в том же виде, что отдаёт API.
	Payload json.RawMessage `json:"payload"`

	// Timestamp — время создания события.
	Timestamp time.Time `json:"timestamp"`
}

// NewMessage упаковывает payload в конверт с новым ID.
func NewMessage(eventType EventType, payload any) (*Message, error) {
	raw, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("marshal payload: %w", err)
	}
	return &Message{
		ID:        uuid.New().String(),
		Type:      eventType,
		Payload:   raw,
		Timestamp: time.Now().UTC(),
	}, nil
}

// Publisher публикует события в ExchangeEvents.
type Publisher struct {
	conn   *Connection
	logger *slog.Logger
}

// NewPublisher создаёт новый Publisher.
func NewPublisher(conn *Connection, logger *slog.Logger) *Publisher {
	return &Publisher{conn: conn, logger: logger}
}

// PublishEvent публикует событие eventType с payload.
func (p *Publisher) PublishEvent(ctx context.Context, eventType EventType, payload any) error {
	msg, err := NewMessage(eventType, payload)
	if err != nil {
		return err
	}

	body, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("marshal message: %w", err)
	}

	return p.conn.WithChannel(func(ch *amqp.Channel) error {
		err := ch.PublishWithContext(ctx,
			ExchangeEvents,    // exchange
			string(eventType), // routing key
			false,             // mandatory
			false,             // immediate
			amqp.Publishing{
				ContentType:  "application/json",
				DeliveryMode: amqp.Persistent,
				MessageId:    msg.ID,
				Timestamp:    msg.Timestamp,
				Type:         string(eventType),
				Body:         body,
			},
		)
		if err != nil {
			return fmt.Errorf("publish %s: %w", eventType, err)
		}

		p.logger.Debug("published event", "type", eventType, "message_id", msg.ID)
		return nil
	})
}
