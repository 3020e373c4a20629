package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robalobadob/unscramble/internal/game"
)

// Tests here use t.Setenv and so cannot run in parallel.

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, Default(), cfg)
	assert.Equal(t, game.DefaultSettings(), cfg.Game.Settings())
}

func TestLoad_ValidConfig(t *testing.T) {
	path := writeConfig(t, `
game:
  max_rounds: 5
  score_increase: 50
  seed: 1234
  daily_salt: "pepper"
words:
  file: "/tmp/words.txt"
log:
  level: debug
  pretty: true
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 5, cfg.Game.MaxRounds)
	assert.Equal(t, 50, cfg.Game.ScoreIncrease)
	assert.Equal(t, uint64(1234), cfg.Game.Seed)
	assert.Equal(t, "pepper", cfg.Game.DailySalt)
	assert.Equal(t, "/tmp/words.txt", cfg.Words.File)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.True(t, cfg.Log.Pretty)
}

func TestLoad_PartialConfigKeepsDefaults(t *testing.T) {
	path := writeConfig(t, "game:\n  max_rounds: 3\n")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 3, cfg.Game.MaxRounds)
	assert.Equal(t, game.DefaultScoreIncrease, cfg.Game.ScoreIncrease)
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := writeConfig(t, "game:\n  max_rounds: 3\n")
	t.Setenv("UNSCRAMBLE_MAX_ROUNDS", "7")
	t.Setenv("UNSCRAMBLE_SCORE_INCREASE", "5")
	t.Setenv("UNSCRAMBLE_SEED", "99")
	t.Setenv("UNSCRAMBLE_DAILY_SALT", "salt")
	t.Setenv("WORDS_FILE", "words.txt")
	t.Setenv("LOG_LEVEL", "warn")
	t.Setenv("LOG_PRETTY", "true")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 7, cfg.Game.MaxRounds)
	assert.Equal(t, 5, cfg.Game.ScoreIncrease)
	assert.Equal(t, uint64(99), cfg.Game.Seed)
	assert.Equal(t, "salt", cfg.Game.DailySalt)
	assert.Equal(t, "words.txt", cfg.Words.File)
	assert.Equal(t, "warn", cfg.Log.Level)
	assert.True(t, cfg.Log.Pretty)
}

func TestLoad_BadEnv(t *testing.T) {
	t.Setenv("UNSCRAMBLE_MAX_ROUNDS", "ten")
	t.Setenv("LOG_PRETTY", "maybe")

	cfg, err := Load("")
	require.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "UNSCRAMBLE_MAX_ROUNDS")
	assert.Contains(t, err.Error(), "LOG_PRETTY")
}

func TestLoad_ValidationFails(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"Zero rounds", "game:\n  max_rounds: -1\n"},
		{"Negative increase", "game:\n  score_increase: -20\n"},
		{"Unknown log level", "log:\n  level: loud\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.content))
			require.Error(t, err)
			var verrs validator.ValidationErrors
			assert.ErrorAs(t, err, &verrs)
		})
	}
}

func TestLoad_FileNotFound(t *testing.T) {
	cfg, err := Load("/nonexistent/path/config.yaml")
	assert.Error(t, err)
	assert.Nil(t, cfg)
}

func TestLoad_InvalidYAML(t *testing.T) {
	cfg, err := Load(writeConfig(t, "game: [unclosed"))
	assert.Error(t, err)
	assert.Nil(t, cfg)
}
