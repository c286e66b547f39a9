package config

import (
	"fmt"
	"time"
)

// Config — конфигурация процесса superheroes-api.
type Config struct {
	// APIPort — порт HTTP сервера.
	APIPort int `koanf:"api_port"`

	// DBURI — строка подключения к базе.
	// postgres://... для PostgreSQL, sqlite:///file.db для файла SQLite.
	DBURI string `koanf:"db_uri"`

	// DBMaxConns — размер пула соединений PostgreSQL.
	DBMaxConns int32 `koanf:"db_max_conns"`

	// DBAutoMigrate — создавать недостающие таблицы при старте.
	DBAutoMigrate bool `koanf:"db_auto_migrate"`

	// DBLogQueries — логировать SQL запросы.
	DBLogQueries bool `koanf:"db_log_queries"`

	// LogLevel: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// LogFormat: json или text.
	LogFormat string `koanf:"log_format"`

	// AMQPURL — адрес RabbitMQ для событий об изменениях.
	// Пустой — события не публикуются.
	AMQPURL string `koanf:"amqp_url"`

	// ShutdownTimeoutSec — время на graceful shutdown.
	ShutdownTimeoutSec int `koanf:"shutdown_timeout_sec"`
}

// New возвращает конфигурацию по умолчанию.
func New() *Config {
	return &Config{
		APIPort:            5555,
		DBURI:              "sqlite:///app.db",
		DBMaxConns:         10,
		DBAutoMigrate:      true,
		LogLevel:           "info",
		LogFormat:          "json",
		ShutdownTimeoutSec: 10,
	}
}

// Addr — адрес для http.Server.
func (c *Config) Addr() string {
	return fmt.Sprintf(":%d", c.APIPort)
}

// ShutdownTimeout — ShutdownTimeoutSec как time.Duration.
func (c *Config) ShutdownTimeout() time.Duration {
	return time.Duration(c.ShutdownTimeoutSec) * time.Second
}

// Validate проверяет значения после загрузки.
func (c *Config) Validate() error {
	if c.APIPort <= 0 || c.APIPort > 65535 {
		return fmt.Errorf("%w: api_port %d out of range", ErrInvalidConfig, c.APIPort)
	}
	if c.DBURI == "" {
		return fmt.Errorf("%w: db_uri must not be empty", ErrInvalidConfig)
	}
	if c.LogFormat != "json" && c.LogFormat != "text" {
		return fmt.Errorf("%w: log_format must be json or text, got %q", ErrInvalidConfig, c.LogFormat)
	}
	if c.ShutdownTimeoutSec <= 0 {
		return fmt.Errorf("%w: shutdown_timeout_sec must be positive", ErrInvalidConfig)
	}
	return nil
}
