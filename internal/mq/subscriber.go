package mq

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	amqp "github.com/rabbitmq/amqp091-go"
)

// Handler обрабатывает одно событие.
type Handler func(ctx context.Context, msg *Message) error

// Subscriber читает события из временной очереди,
// привязанной к ExchangeEvents по шаблону routing key.
type Subscriber struct {
	conn    *Connection
	logger  *slog.Logger
	pattern string
	handler Handler
}

// NewSubscriber создаёт Subscriber. Пустой pattern означает "#" (все события).
func NewSubscriber(conn *Connection, logger *slog.Logger, pattern string, handler Handler) *Subscriber {
	if pattern == "" {
		pattern = "#"
	}
	return &Subscriber{
		conn:    conn,
		logger:  logger,
		pattern: pattern,
		handler: handler,
	}
}

// Run читает события до отмены ctx. После разрыва соединения
// очередь объявляется заново.
func (s *Subscriber) Run(ctx context.Context) error {
	for {
		deliveries, err := s.subscribe()
		if err != nil {
			s.logger.Warn("subscribe failed", "pattern", s.pattern, "error", err)
			if err := s.conn.waitReconnect(ctx); err != nil {
				return err
			}
			continue
		}

		err = s.process(ctx, deliveries)
		if ctx.Err() != nil {
			return ctx.Err()
		}
		s.logger.Warn("deliveries closed, resubscribing", "error", err)
		if err := s.conn.waitReconnect(ctx); err != nil {
			return err
		}
	}
}

func (s *Subscriber) subscribe() (<-chan amqp.Delivery, error) {
	var deliveries <-chan amqp.Delivery

	err := s.conn.WithChannel(func(ch *amqp.Channel) error {
		if err := declareExchange(ch); err != nil {
			return err
		}

		q, err := ch.QueueDeclare(
			"",    // name (генерирует сервер)
			false, // durable
			true,  // delete when unused
			true,  // exclusive
			false, // no-wait
			nil,   // arguments
		)
		if err != nil {
			return fmt.Errorf("declare queue: %w", err)
		}

		if err := ch.QueueBind(q.Name, s.pattern, ExchangeEvents, false, nil); err != nil {
			return fmt.Errorf("bind queue %s: %w", q.Name, err)
		}

		deliveries, err = ch.Consume(
			q.Name, // queue
			"",     // consumer tag
			true,   // auto-ack: очередь временная, повторная доставка не нужна
			true,   // exclusive
			false,  // no-local
			false,  // no-wait
			nil,    // args
		)
		if err != nil {
			return fmt.Errorf("consume: %w", err)
		}
		return nil
	})
	return deliveries, err
}

func (s *Subscriber) process(ctx context.Context, deliveries <-chan amqp.Delivery) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case d, ok := <-deliveries:
			if !ok {
				return errors.New("deliveries channel closed")
			}

			msg, err := DecodeMessage(d.Body)
			if err != nil {
				s.logger.Error("failed to decode event", "error", err, "body", string(d.Body))
				continue
			}
			if err := s.handler(ctx, msg); err != nil {
				s.logger.Error("event handler failed", "type", msg.Type, "id", msg.ID, "error", err)
			}
		}
	}
}

// DecodeMessage разбирает тело AMQP сообщения.
func DecodeMessage(body []byte) (*Message, error) {
	var msg Message
	if err := json.Unmarshal(body, &msg); err != nil {
		return nil, fmt.Errorf("unmarshal message: %w", err)
	}
	if msg.Type == "" {
		return nil, errors.New("message type is empty")
	}
	return &msg, nil
}
