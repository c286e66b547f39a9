package mq

import (
	"fmt"

	amqp "github.com/rabbitmq/amqp091-go"
)

// ExchangeEvents — topic exchange для событий об изменениях.
// Routing key совпадает с типом события ("hero.created", ...).
const ExchangeEvents = "superheroes.events"

// SetupTopology объявляет exchange событий. Идемпотентна.
func SetupTopology(conn *Connection) error {
	return conn.WithChannel(declareExchange)
}

func declareExchange(ch *amqp.Channel) error {
	err := ch.ExchangeDeclare(
		ExchangeEvents, // name
		"topic",        // type
		true,           // durable
		false,          // auto-deleted
		false,          // internal
		false,          // no-wait
		nil,            // arguments
	)
	if err != nil {
		return fmt.Errorf("declare exchange %s: %w", ExchangeEvents, err)
	}
	return nil
}
