// Package config loads process settings for the cmd/* programs.
package config

import (
	"strings"

	"github.com/go-faster/errors"
	"github.com/ilyakaznacheev/cleanenv"

	"github.com/sghaida/oofix/logger"
	"github.com/sghaida/oofix/serrors"
)

// Config holds the settings shared by the demo programs.
type Config struct {
	// Environment picks the logger preset (development or production).
	Environment string `env:"OOFIX_ENVIRONMENT" env-default:"production" yaml:"environment"`
	// ReportFormat picks the report generator wired at startup (pdf or csv).
	ReportFormat string `env:"OOFIX_REPORT_FORMAT" env-default:"pdf" yaml:"reportFormat"`
}

// Load reads the configuration from the environment.
func Load() (*Config, error) {
	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, errors.Wrap(err, "read env config")
	}

	return finish(&cfg)
}

// LoadFile reads a YAML file, then lets the environment override it.
func LoadFile(path string) (*Config, error) {
	var cfg Config
	if err := cleanenv.ReadConfig(path, &cfg); err != nil {
		return nil, errors.Wrapf(err, "read config %q", path)
	}

	return finish(&cfg)
}

func finish(cfg *Config) (*Config, error) {
	cfg.Environment = strings.TrimSpace(cfg.Environment)
	cfg.ReportFormat = strings.ToLower(strings.TrimSpace(cfg.ReportFormat))

	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "validate config")
	}

	return cfg, nil
}

// Validate checks field values without touching the environment.
func (c *Config) Validate() error {
	switch c.Environment {
	case logger.DevelopmentEnvironment, logger.ProductionEnvironment:
	default:
		return serrors.With(serrors.ErrInvalidArgument, "unknown environment %q", c.Environment)
	}
	if c.ReportFormat == "" {
		return serrors.With(serrors.ErrInvalidArgument, "report format cannot be empty")
	}

	return nil
}
