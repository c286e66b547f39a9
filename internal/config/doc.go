// Package config загружает конфигурацию сервиса.
//
// Значения по умолчанию перекрываются YAML файлом (CONFIG_FILE),
// а тот — переменными окружения.
package config
