// Package cli реализует инструмент командной строки superheroes.
//
// # Обзор
//
// CLI работает с API по HTTP и не импортирует api/repo/domain.
// Исключение — events watch: она читает события напрямую из RabbitMQ
// через пакет mq.
//
// # Ключевые компоненты
//
// ## Client
//
// HTTP-клиент для API. Ответы API не завёрнуты в конверт, ошибки
// приходят как {"error": "..."} или {"errors": [...]} и превращаются
// в *APIError.
//
//	client := cli.NewClient("http://localhost:5555")
//	heroes, err := client.ListHeroes()
//
// ## Output
//
// Таблицы (text/tabwriter) по умолчанию, JSON с флагом --json.
// Данные — в stdout, сообщения — в stderr.
//
// ## Commands
//
//   - hero: list, show, create
//   - power: list, show, create, update
//   - hero-power: list, create
//   - seed
//   - events: watch
//
// Корневая команда собирается в NewRootCmd (root.go).
package cli
