package config

import (
	"ctchen222/Tic-Tac-Toe-AI/internal/bot"
	"ctchen222/Tic-Tac-Toe-AI/internal/validator"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	LogLevel  string      `yaml:"log-level" env:"TTT_LOG_LEVEL" env-default:"info" validate:"oneof=debug info warn error"`
	PlayerX   string      `yaml:"player-x" env:"TTT_PLAYER_X" validate:"omitempty,oneof=random greedy human minmax"`
	PlayerO   string      `yaml:"player-o" env:"TTT_PLAYER_O" validate:"omitempty,oneof=random greedy human minmax"`
	Rounds    int         `yaml:"rounds" env:"TTT_ROUNDS" env-default:"1" validate:"min=1"`
	Seed      uint64      `yaml:"seed" env:"TTT_SEED" env-default:"0"`
	Greedy    bot.Weights `yaml:"greedy"`
	Telemetry Telemetry   `yaml:"telemetry"`
}

type Telemetry struct {
	Enabled      bool   `yaml:"enabled" env:"TTT_TELEMETRY_ENABLED" env-default:"false"`
	Endpoint     string `yaml:"endpoint" env:"TTT_OTLP_ENDPOINT" env-default:"localhost:4317" validate:"hostname_port"`
	StdoutTraces bool   `yaml:"stdout-traces" env:"TTT_STDOUT_TRACES" env-default:"false"`
}

// Load reads the YAML file at path and applies environment overrides. A
// missing file is not an error: defaults and the environment are used.
func Load(path string) (*Config, error) {
	config := &Config{}

	var err error
	if _, statErr := os.Stat(path); errors.Is(statErr, os.ErrNotExist) {
		err = cleanenv.ReadEnv(config)
	} else {
		err = cleanenv.ReadConfig(path, config)
	}
	if err != nil {
		return nil, fmt.Errorf("unable to load config %s: %w", path, err)
	}

	if err := validator.Struct(config); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return config, nil
}

// MustLoad - load all configurations in config.yml file.
func MustLoad(path string) *Config {
	config, err := Load(path)
	if err != nil {
		panic(err)
	}
	return config
}

// Level maps LogLevel onto slog.
func (that *Config) Level() slog.Level {
	switch that.LogLevel {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
