// Package mq публикует события об изменениях в RabbitMQ.
//
// Топология: один topic exchange superheroes.events, routing key равен
// типу события. Publisher используется API после успешных записей,
// Subscriber — командой CLI "events watch".
package mq
