// Package config loads cellfix settings from the environment.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
	"go.uber.org/zap/zapcore"
)

// Log formats.
const (
	FormatConsole = "console"
	FormatJSON    = "json"
)

// Output modes.
const (
	OutputText = "text"
	OutputYAML = "yaml"
)

// Config controls logging, fixture inputs and output rendering.
type Config struct {
	LogLevel       string `env:"CELLFIX_LOG_LEVEL"        envDefault:"info"`
	LogFormat      string `env:"CELLFIX_LOG_FORMAT"       envDefault:"console"`
	InputsPath     string `env:"CELLFIX_INPUTS"`
	Output         string `env:"CELLFIX_OUTPUT"           envDefault:"text"`
	ValidateNaNInf bool   `env:"CELLFIX_VALIDATE_NAN_INF" envDefault:"true"`
}

// Load parses the environment. Values are not validated so that callers
// can apply overrides first; call Validate once they are settled.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}

	return cfg, nil
}

// Validate rejects unknown enum values.
func (c Config) Validate() error {
	if _, err := c.Level(); err != nil {
		return err
	}
	switch c.LogFormat {
	case FormatConsole, FormatJSON:
	default:
		return fmt.Errorf("invalid log format %q (want %s or %s)", c.LogFormat, FormatConsole, FormatJSON)
	}
	switch c.Output {
	case OutputText, OutputYAML:
	default:
		return fmt.Errorf("invalid output %q (want %s or %s)", c.Output, OutputText, OutputYAML)
	}

	return nil
}

// Level parses LogLevel into a zap level.
func (c Config) Level() (zapcore.Level, error) {
	lvl, err := zapcore.ParseLevel(c.LogLevel)
	if err != nil {
		return lvl, fmt.Errorf("invalid log level %q: %w", c.LogLevel, err)
	}

	return lvl, nil
}
