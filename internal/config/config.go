package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/ilyakaznacheev/cleanenv"
)

var ErrInvalidLogLevel = errors.New("invalid log level")

// Config holds runtime settings for the terminal client.
// Inline keeps the board in the normal screen buffer instead of the alternate one.
type Config struct {
	LogLevel  string `yaml:"log-level" env:"TICTACTOE_LOG_LEVEL" env-default:"info"`
	LogFile   string `yaml:"log-file" env:"TICTACTOE_LOG_FILE"`
	Inline    bool   `yaml:"inline" env:"TICTACTOE_INLINE"`
	HideScore bool   `yaml:"hide-score" env:"TICTACTOE_HIDE_SCORE"`
}

// Load reads the config file at path, or only the environment when path is empty.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	var err error
	if path != "" {
		err = cleanenv.ReadConfig(path, cfg)
	} else {
		err = cleanenv.ReadEnv(cfg)
	}
	if err != nil {
		return nil, fmt.Errorf("unable to load config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks values cleanenv cannot check on its own.
func (c *Config) Validate() error {
	switch strings.ToLower(c.LogLevel) {
	case "debug", "info", "warn", "error":
		return nil
	default:
		return fmt.Errorf("%w: %q", ErrInvalidLogLevel, c.LogLevel)
	}
}
