// Package config manages the service configuration.
//
// It reads an optional YAML file, an optional `.env` file and the
// process environment, loads them into structured Go types (struct), and
// validates that required values are present so they can be reused
// across the application runtime.
//
// Responsibilities:
//   - Apply defaults for everything that has a sane default.
//   - Overlay an optional YAML file, then CHANNELD_-prefixed env vars.
//   - Validate required values so the app fails fast on bad/missing config.
//   - Provide sane defaults for optional config blocks (e.g. observability).
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	// Side-effect import: if a `.env` file exists, it gets loaded into
	// the process env before any env var is read.
	_ "github.com/joho/godotenv/autoload"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

/*
	Layers, lowest precedence first:

	1. defaults (below)
	2. YAML file at $CHANNELD_CONFIG_FILE, or ./config.yaml when it exists
	3. environment variables prefixed CHANNELD_, where "__" separates levels:
	   CHANNELD_DATABASE__SSL_MODE -> database.ssl_mode -> Config.Database.SSLMode
*/

const (
	envPrefix       = "CHANNELD_"
	configFileEnv   = "CHANNELD_CONFIG_FILE"
	defaultFilePath = "config.yaml"
	serviceName     = "channeld"
)

// Config is the root configuration object for the application.
//
// Observability is a pointer because it is optional. If not provided,
// defaults are injected at load time.
type Config struct {
	Primary       Primary              `koanf:"primary" validate:"required"`
	Server        ServerConfig         `koanf:"server" validate:"required"`
	Database      DatabaseConfig       `koanf:"database" validate:"required"`
	Observability *ObservabilityConfig `koanf:"observability"`
}

// Primary holds top-level information about the runtime environment.
type Primary struct {
	Env string `koanf:"env" validate:"required"`
}

// ServerConfig groups settings for the HTTP server runtime.
// Timeouts are in seconds.
type ServerConfig struct {
	Port               string   `koanf:"port" validate:"required"`
	ReadTimeout        int      `koanf:"read_timeout" validate:"required"`
	WriteTimeout       int      `koanf:"write_timeout" validate:"required"`
	IdleTimeout        int      `koanf:"idle_timeout" validate:"required"`
	CORSAllowedOrigins []string `koanf:"cors_allowed_origins"`

	// RateLimit is the sustained number of requests per second allowed per
	// client IP. 0 disables rate limiting.
	RateLimit float64 `koanf:"rate_limit" validate:"gte=0"`
}

// DatabaseConfig contains PostgreSQL connection parameters and pool tuning.
// Lifetimes are in seconds.
type DatabaseConfig struct {
	Host            string `koanf:"host" validate:"required"`
	Port            int    `koanf:"port" validate:"required"`
	User            string `koanf:"user" validate:"required"`
	Password        string `koanf:"password" validate:"required"`
	Name            string `koanf:"name" validate:"required"`
	SSLMode         string `koanf:"ssl_mode" validate:"required,oneof=disable allow prefer require verify-ca verify-full"`
	MaxConns        int    `koanf:"max_conns" validate:"required,gt=0"`
	MinConns        int    `koanf:"min_conns" validate:"gte=0,ltefield=MaxConns"`
	ConnMaxLifetime int    `koanf:"conn_max_lifetime" validate:"required"`
	ConnMaxIdleTime int    `koanf:"conn_max_idle_time" validate:"required"`
}

func defaults() map[string]any {
	d := map[string]any{
		"primary.env":                 "local",
		"server.port":                 "80",
		"server.read_timeout":         30,
		"server.write_timeout":        30,
		"server.idle_timeout":         60,
		"server.rate_limit":           0,
		"database.port":               5432,
		"database.ssl_mode":           "disable",
		"database.max_conns":          16,
		"database.min_conns":          2,
		"database.conn_max_lifetime":  3600,
		"database.conn_max_idle_time": 300,
	}
	for key, value := range observabilityDefaults() {
		d[key] = value
	}
	return d
}

// LoadConfig loads configuration from defaults, an optional YAML file and
// environment variables, unmarshals it into Config, validates it, applies
// observability defaults, and returns the resulting config.
func LoadConfig() (*Config, error) {
	k := koanf.New(".")

	for key, value := range defaults() {
		if err := k.Set(key, value); err != nil {
			return nil, fmt.Errorf("could not set default %s: %w", key, err)
		}
	}

	if path, ok := configFilePath(); ok {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("could not load config file %s: %w", path, err)
		}
	}

	err := k.Load(env.Provider(envPrefix, ".", func(s string) string {
		return strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(s, envPrefix)), "__", ".")
	}), nil)
	if err != nil {
		return nil, fmt.Errorf("could not load env variables: %w", err)
	}

	mainConfig := &Config{}
	if err := k.Unmarshal("", mainConfig); err != nil {
		return nil, fmt.Errorf("could not unmarshal main config: %w", err)
	}

	if mainConfig.Observability == nil {
		mainConfig.Observability = DefaultObservabilityConfig()
	}

	// Service name and environment always follow the primary config so
	// logs and traces are labelled consistently.
	mainConfig.Observability.ServiceName = serviceName
	mainConfig.Observability.Environment = mainConfig.Primary.Env

	if err := validator.New().Struct(mainConfig); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	if err := mainConfig.Observability.Validate(); err != nil {
		return nil, fmt.Errorf("invalid observability config: %w", err)
	}

	return mainConfig, nil
}

// configFilePath returns the YAML file to load, if any. An explicitly
// configured path must exist; the default path is used only when present.
func configFilePath() (string, bool) {
	if path := os.Getenv(configFileEnv); path != "" {
		return path, true
	}
	if _, err := os.Stat(defaultFilePath); err != nil {
		return "", false
	}
	return defaultFilePath, true
}
