// SPDX-License-Identifier: MIT

// Package config loads the lvforecast CLI settings: process environment via
// envconfig and forecast job files via YAML.
package config

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"

	"github.com/katalvlaran/lvforecast/internal/logging"
)

// EnvPrefix namespaces every environment variable read by LoadEnv.
const EnvPrefix = "LVFORECAST"

// Env holds settings taken from LVFORECAST_* environment variables.
type Env struct {
	LogLevel       string `envconfig:"LOG_LEVEL" default:"info"`
	LogDevelopment bool   `envconfig:"LOG_DEV" default:"false"`
	Output         string `envconfig:"OUTPUT" default:""` // report path; empty means stdout
}

// LoadEnv loads configuration from environment variables.
func LoadEnv() (*Env, error) {
	var env Env
	if err := envconfig.Process(EnvPrefix, &env); err != nil {
		return nil, fmt.Errorf("failed to load environment: %w", err)
	}

	return &env, nil
}

// LoadEnvOrDefault loads configuration from environment or returns defaults.
func LoadEnvOrDefault() *Env {
	env, err := LoadEnv()
	if err != nil {
		return DefaultEnv()
	}

	return env
}

// DefaultEnv returns the values LoadEnv uses when nothing is set.
func DefaultEnv() *Env {
	return &Env{
		LogLevel:       "info",
		LogDevelopment: false,
		Output:         "",
	}
}

// Logging maps the environment onto a logger configuration.
func (e *Env) Logging() logging.Config {
	cfg := logging.DefaultConfig()
	if e.LogDevelopment {
		cfg = logging.DevelopmentConfig()
	}
	if e.LogLevel != "" {
		cfg.Level = e.LogLevel
	}

	return cfg
}
