// Package config loads application configuration: hardcoded defaults, then a
// YAML file, then environment overrides, highest last.
package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/rawbytes"
	"github.com/knadh/koanf/v2"
)

// #region types

// ServerConfig holds the HTTP listener settings.
type ServerConfig struct {
	Host            string        `koanf:"host"`
	Port            int           `koanf:"port"`
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout"`
}

// DBConfig holds the SQLite location.
type DBConfig struct {
	Path string `koanf:"path"`
}

// CoachConfig holds the optional upstream digest endpoint. An empty endpoint
// keeps the coach local-only.
type CoachConfig struct {
	Endpoint string        `koanf:"endpoint"`
	APIKey   string        `koanf:"api_key"`
	Timeout  time.Duration `koanf:"timeout"`
}

// LoggingConfig selects the zap profile.
type LoggingConfig struct {
	Level       string `koanf:"level"`
	Development bool   `koanf:"development"`
}

// Config is the root configuration tree.
type Config struct {
	Server  ServerConfig  `koanf:"server"`
	DB      DBConfig      `koanf:"db"`
	Coach   CoachConfig   `koanf:"coach"`
	Logging LoggingConfig `koanf:"logging"`
}

// #endregion

// #region load

// Load reads configuration. Precedence, highest to lowest:
//  1. Environment variables (MOMENTUM_SERVER_PORT, MOMENTUM_DB_PATH, ...)
//  2. YAML file at configPath, when it exists
//  3. Defaults
func Load(configPath string) (Config, error) {
	k := koanf.New(".")

	if configPath != "" {
		content, err := os.ReadFile(configPath)
		if err != nil && !os.IsNotExist(err) {
			return Config{}, fmt.Errorf("read config file: %w", err)
		}
		if err == nil {
			if err := k.Load(rawbytes.Provider(content), yaml.Parser()); err != nil {
				return Config{}, fmt.Errorf("parse config file %s: %w", configPath, err)
			}
		}
	}

	// MOMENTUM_SERVER_PORT -> server.port, MOMENTUM_COACH_API_KEY -> coach.api_key.
	// Split on the first underscore after the prefix: section, then field name.
	if err := k.Load(env.Provider("MOMENTUM_", ".", func(s string) string {
		lower := strings.ToLower(strings.TrimPrefix(s, "MOMENTUM_"))
		parts := strings.SplitN(lower, "_", 2)
		if len(parts) == 1 {
			return lower
		}
		return parts[0] + "." + parts[1]
	}), nil); err != nil {
		return Config{}, fmt.Errorf("load environment: %w", err)
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	applyDefaults(&cfg)
	return cfg, nil
}

func applyDefaults(cfg *Config) {
	if cfg.Server.Host == "" {
		cfg.Server.Host = "127.0.0.1"
	}
	if cfg.Server.Port == 0 {
		cfg.Server.Port = 8090
	}
	if cfg.Server.ShutdownTimeout == 0 {
		cfg.Server.ShutdownTimeout = 10 * time.Second
	}
	if cfg.DB.Path == "" {
		cfg.DB.Path = "momentum.db"
	}
	if cfg.Coach.Timeout == 0 {
		cfg.Coach.Timeout = 15 * time.Second
	}
	if cfg.Logging.Level == "" {
		cfg.Logging.Level = "info"
	}
}

// #endregion
