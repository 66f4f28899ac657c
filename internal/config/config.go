// Package config loads service configuration from YAML.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

var validate = validator.New()

type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Log       LogConfig       `yaml:"log"`
	Storage   StorageConfig   `yaml:"storage"`
	Generator GeneratorConfig `yaml:"generator"`
}

type ServerConfig struct {
	Addr string `yaml:"addr" validate:"required"`
}

type LogConfig struct {
	Level string `yaml:"level" validate:"oneof=debug info warn error"`
}

type StorageConfig struct {
	Kind string `yaml:"kind" validate:"oneof=fs badger memory"`
	Path string `yaml:"path" validate:"required_unless=Kind memory"`
}

type GeneratorConfig struct {
	MaxRegenerations  int `yaml:"max_regenerations" validate:"gte=0,lte=1000"`
	PlacementAttempts int `yaml:"placement_attempts" validate:"gte=1,lte=10000"`
	// Seed fixes the generated level sequence; 0 seeds from the clock.
	Seed int64 `yaml:"seed"`
}

func Default() Config {
	return Config{
		Server:  ServerConfig{Addr: ":8080"},
		Log:     LogConfig{Level: "info"},
		Storage: StorageConfig{Kind: "fs", Path: "./data"},
		Generator: GeneratorConfig{
			MaxRegenerations:  10,
			PlacementAttempts: 50,
		},
	}
}

// Load reads path over the defaults. An empty path returns the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, cfg.Validate()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, cfg.Validate()
}

func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

// SlogLevel maps the configured level name, defaulting to info.
func (c LogConfig) SlogLevel() slog.Level {
	switch strings.ToLower(c.Level) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	}
	return slog.LevelInfo
}
