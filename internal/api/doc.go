// Package api содержит HTTP API сервер.
//
// Структура:
//   - handler.go            — Handler с DI (хранилища, publisher, logger)
//   - routes.go             — регистрация маршрутов, / и /healthz
//   - middleware.go         — middleware (recovery, request id, logging)
//   - response.go           — JSON-ответы и преобразование ошибок
//   - dto.go                — Data Transfer Objects (request/response)
//   - hero_handler.go       — обработчики для /heroes
//   - power_handler.go      — обработчики для /powers
//   - hero_power_handler.go — обработчики для /hero_powers
//
// Ошибки отдаются как {"error": "..."} или {"errors": ["..."]}.
package api
