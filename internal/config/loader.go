package config

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// FileEnv — переменная окружения с путём к YAML файлу конфигурации.
const FileEnv = "CONFIG_FILE"

// knownKeys — ключи конфигурации, которые читаются из окружения.
// Остальные переменные окружения игнорируются.
var knownKeys = map[string]struct{}{
	"api_port":             {},
	"db_uri":               {},
	"db_max_conns":         {},
	"db_auto_migrate":      {},
	"db_log_queries":       {},
	"log_level":            {},
	"log_format":           {},
	"amqp_url":             {},
	"shutdown_timeout_sec": {},
}

// Load собирает Config из слоёв (по возрастанию приоритета):
//  1. значения по умолчанию (New)
//  2. YAML файл, если задан CONFIG_FILE
//  3. переменные окружения: API_PORT, DB_URI, LOG_LEVEL, ...
func Load(_ context.Context) (*Config, error) {
	k := koanf.New(".")

	if path := os.Getenv(FileEnv); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("%w: read %s: %v", ErrLoadConfig, path, err)
		}
	}

	envProvider := env.Provider("", ".", func(s string) string {
		key := strings.ToLower(s)
		if _, ok := knownKeys[key]; !ok {
			return ""
		}
		return key
	})
	if err := k.Load(envProvider, nil); err != nil {
		return nil, fmt.Errorf("%w: env: %v", ErrLoadConfig, err)
	}

	cfg := New()
	if err := k.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, fmt.Errorf("%w: unmarshal: %v", ErrLoadConfig, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
