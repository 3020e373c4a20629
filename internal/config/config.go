// internal/config/config.go
//
// Runtime configuration for the unscramble binary.
//
// Sources, lowest to highest precedence:
//   1. Defaults (Default()).
//   2. Optional YAML file passed to Load.
//   3. Environment variables (a `.env` file is loaded by main beforehand):
//        UNSCRAMBLE_MAX_ROUNDS, UNSCRAMBLE_SCORE_INCREASE, UNSCRAMBLE_SEED,
//        UNSCRAMBLE_DAILY_SALT, WORDS_FILE, LOG_LEVEL, LOG_PRETTY
//
// The merged result is checked with validator struct tags.

package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/robalobadob/unscramble/internal/game"
)

// Config is the full runtime configuration.
type Config struct {
	Game  GameConfig  `yaml:"game"`
	Words WordsConfig `yaml:"words"`
	Log   LogConfig   `yaml:"log"`
}

// GameConfig bounds a game and seeds its random source.
type GameConfig struct {
	MaxRounds     int    `yaml:"max_rounds" validate:"min=1"`
	ScoreIncrease int    `yaml:"score_increase" validate:"min=1"`
	Seed          uint64 `yaml:"seed"`       // 0 = random
	DailySalt     string `yaml:"daily_salt"` // non-empty = same word order for everyone on a date
}

// WordsConfig locates the word pool.
type WordsConfig struct {
	File string `yaml:"file"` // empty = embedded default list
}

// LogConfig controls zerolog output.
type LogConfig struct {
	Level  string `yaml:"level" validate:"oneof=trace debug info warn error fatal panic disabled"`
	Pretty bool   `yaml:"pretty"`
}

// Settings converts the game section for game.New.
func (c *GameConfig) Settings() game.Settings {
	return game.Settings{MaxRounds: c.MaxRounds, ScoreIncrease: c.ScoreIncrease}
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Game: GameConfig{
			MaxRounds:     game.DefaultMaxRounds,
			ScoreIncrease: game.DefaultScoreIncrease,
		},
		Log: LogConfig{Level: "info"},
	}
}

// Load merges defaults, the YAML file at path (skipped when path is empty)
// and environment overrides, then validates the result.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, err
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("config: parse %s: %w", path, err)
		}
	}

	if err := applyEnv(cfg); err != nil {
		return nil, err
	}
	if err := validate.Struct(cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return cfg, nil
}

// applyEnv overlays environment variables onto cfg.
func applyEnv(cfg *Config) error {
	var errs []error
	envInt := func(key string, dst *int) {
		if v := os.Getenv(key); v != "" {
			n, err := strconv.Atoi(v)
			if err != nil {
				errs = append(errs, fmt.Errorf("config: %s: %w", key, err))
				return
			}
			*dst = n
		}
	}
	envString := func(key string, dst *string) {
		if v := os.Getenv(key); v != "" {
			*dst = v
		}
	}

	envInt("UNSCRAMBLE_MAX_ROUNDS", &cfg.Game.MaxRounds)
	envInt("UNSCRAMBLE_SCORE_INCREASE", &cfg.Game.ScoreIncrease)
	envString("UNSCRAMBLE_DAILY_SALT", &cfg.Game.DailySalt)
	envString("WORDS_FILE", &cfg.Words.File)
	envString("LOG_LEVEL", &cfg.Log.Level)

	if v := os.Getenv("UNSCRAMBLE_SEED"); v != "" {
		n, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			errs = append(errs, fmt.Errorf("config: UNSCRAMBLE_SEED: %w", err))
		} else {
			cfg.Game.Seed = n
		}
	}
	if v := os.Getenv("LOG_PRETTY"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			errs = append(errs, fmt.Errorf("config: LOG_PRETTY: %w", err))
		} else {
			cfg.Log.Pretty = b
		}
	}
	return errors.Join(errs...)
}
