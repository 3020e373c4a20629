package game

import (
	"errors"
	"fmt"
)

var (
	ErrEmptyPool       = errors.New("game: word pool is empty")
	ErrPoolTooSmall    = errors.New("game: word pool is smaller than max rounds")
	ErrInvalidSettings = errors.New("game: max rounds and score increase must be positive")
	ErrPoolExhausted   = errors.New("game: no unused words left")
)

// ConfigurationError reports a pool or settings combination that cannot run a game.
type ConfigurationError struct {
	Err       error
	PoolSize  int
	MaxRounds int
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("%v (pool size %d, max rounds %d)", e.Err, e.PoolSize, e.MaxRounds)
}

func (e *ConfigurationError) Unwrap() error { return e.Err }

// DegenerateWordError reports a word whose letters cannot be rearranged into
// a different string.
type DegenerateWordError struct {
	Word string
}

func (e *DegenerateWordError) Error() string {
	return fmt.Sprintf("game: word %q cannot be scrambled", e.Word)
}
