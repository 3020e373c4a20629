// main.go
//
// Entry point for the unscramble game.
// Wiring: .env → config → logging → word pool → session → console driver.
// Commands are read from stdin; snapshots are written to stdout as JSON lines
// and logs go to stderr.

package main

import (
	"flag"
	"math/rand/v2"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/unscramble/internal/config"
	"github.com/robalobadob/unscramble/internal/console"
	"github.com/robalobadob/unscramble/internal/daily"
	"github.com/robalobadob/unscramble/internal/game"
	"github.com/robalobadob/unscramble/internal/words"
)

func main() {
	configPath := flag.String("config", "", "path to YAML config file")
	flag.Parse()

	_ = godotenv.Load()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}
	setupLogging(cfg.Log)

	pool, err := words.Load(cfg.Words.File)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load word pool")
	}

	session, err := game.New(pool, cfg.Game.Settings(),
		game.WithRand(newRand(cfg.Game)),
		game.WithLogger(log.Logger),
	)
	if err != nil {
		log.Fatal().Err(err).Int("words", pool.Len()).Msg("cannot start game")
	}
	log.Info().
		Str("session", session.ID()).
		Int("max_rounds", cfg.Game.MaxRounds).
		Int("words", pool.Len()).
		Msg("game started")

	if err := console.Run(os.Stdin, os.Stdout, session); err != nil {
		log.Fatal().Err(err).Msg("console exited")
	}
}

func setupLogging(c config.LogConfig) {
	if lvl, err := zerolog.ParseLevel(c.Level); err == nil {
		zerolog.SetGlobalLevel(lvl)
	}
	if c.Pretty {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})
	} else {
		log.Logger = zerolog.New(os.Stderr).With().Timestamp().Logger()
	}
}

// newRand picks the session's random source: daily when a salt is set,
// fixed when a seed is set, otherwise random.
func newRand(c config.GameConfig) *rand.Rand {
	switch {
	case c.DailySalt != "":
		return daily.Rand(time.Now(), c.DailySalt)
	case c.Seed != 0:
		return rand.New(rand.NewPCG(c.Seed, ^c.Seed))
	default:
		return nil
	}
}
