// internal/game/types.go
//
// Core type definitions for the unscramble session.
// Defines:
//   - State: which phase of the game the session is in.
//   - Settings: round limit and score increment for one game.
//   - Snapshot: immutable view of the session handed to observers.
//   - Session: the mutable state holder.

package game

import (
	"math/rand/v2"

	"github.com/rs/zerolog"

	"github.com/robalobadob/unscramble/internal/words"
)

// State is the session's phase.
//   - "not_started":    constructed but no word picked yet (never observed after New).
//   - "in_round":       a scrambled word is on display.
//   - "round_feedback": in a round, and the last submitted guess was wrong.
//   - "game_over":      the final round was completed; only Reset leaves this state.
type State string

const (
	StateNotStarted    State = "not_started"
	StateInRound       State = "in_round"
	StateRoundFeedback State = "round_feedback"
	StateGameOver      State = "game_over"
)

// Default game settings.
const (
	DefaultMaxRounds     = 10
	DefaultScoreIncrease = 20
)

// Settings bounds one game.
type Settings struct {
	MaxRounds     int // Words presented per game.
	ScoreIncrease int // Points per correct guess.
}

// DefaultSettings returns 10 rounds at 20 points each.
func DefaultSettings() Settings {
	return Settings{MaxRounds: DefaultMaxRounds, ScoreIncrease: DefaultScoreIncrease}
}

// Snapshot is a read-only copy of the session state taken after a mutation.
type Snapshot struct {
	SessionID    string `json:"session_id"`
	Scrambled    string `json:"scrambled"`
	Score        int    `json:"score"`
	Round        int    `json:"round"` // 1-indexed; equals the number of words used.
	MaxRounds    int    `json:"max_rounds"`
	PendingGuess string `json:"pending_guess"`
	State        State  `json:"state"`
	IsGuessWrong bool   `json:"is_guess_wrong"`
	IsGameOver   bool   `json:"is_game_over"`
}

// Session holds a single game. It is not safe for concurrent use; the owner
// serializes calls.
type Session struct {
	id       string
	pool     words.Pool
	settings Settings
	rng      *rand.Rand
	log      zerolog.Logger

	used      map[string]struct{} // words presented this game
	order     []string            // used words in selection order
	current   string              // answer for the active round
	scrambled string              // permutation of current, never equal to it
	score     int
	pending   string
	state     State

	observers []*observer
}

type observer struct {
	fn func(Snapshot)
}
