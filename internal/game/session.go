// internal/game/session.go
//
// Public operations of a game session.
//
// State transitions:
//   - New / Reset              → in_round
//   - Submit (correct)         → in_round, or game_over after the last round
//   - Submit (wrong)           → round_feedback (score and round unchanged)
//   - Skip                     → in_round, or game_over after the last round
//   - game_over is terminal except for Reset.
//
// Every mutating call ends by emitting a Snapshot to subscribed observers.

package game

import (
	"math/rand/v2"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/robalobadob/unscramble/internal/words"
)

// Option customizes a Session at construction.
type Option func(*Session)

// WithRand sets the random source used for word selection and shuffling.
func WithRand(r *rand.Rand) Option {
	return func(s *Session) { s.rng = r }
}

// WithLogger sets the session logger. A "session" field is added.
func WithLogger(l zerolog.Logger) Option {
	return func(s *Session) { s.log = l }
}

// WithID overrides the generated session ID.
func WithID(id string) Option {
	return func(s *Session) { s.id = id }
}

// New validates pool and settings, then starts the first round.
//
// Errors:
//   - *ConfigurationError wrapping ErrInvalidSettings, ErrEmptyPool or ErrPoolTooSmall.
//   - *DegenerateWordError for a pool word that cannot be scrambled.
func New(pool words.Pool, settings Settings, opts ...Option) (*Session, error) {
	if err := validate(pool, settings); err != nil {
		return nil, err
	}

	s := &Session{
		pool:     pool,
		settings: settings,
		log:      zerolog.Nop(),
		used:     make(map[string]struct{}, settings.MaxRounds),
		state:    StateNotStarted,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.id == "" {
		s.id = uuid.NewString()
	}
	if s.rng == nil {
		s.rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	s.log = s.log.With().Str("session", s.id).Logger()

	s.Reset()
	return s, nil
}

func validate(pool words.Pool, settings Settings) error {
	cfgErr := func(err error) error {
		return &ConfigurationError{Err: err, PoolSize: pool.Len(), MaxRounds: settings.MaxRounds}
	}
	switch {
	case settings.MaxRounds < 1 || settings.ScoreIncrease < 1:
		return cfgErr(ErrInvalidSettings)
	case pool.Len() == 0:
		return cfgErr(ErrEmptyPool)
	case pool.Len() < settings.MaxRounds:
		return cfgErr(ErrPoolTooSmall)
	}
	for i := 0; i < pool.Len(); i++ {
		if w := pool.At(i); words.IsDegenerate(w) {
			return &DegenerateWordError{Word: w}
		}
	}
	return nil
}

// Reset starts a new game: used words, score and flags are cleared and a
// fresh word is picked.
func (s *Session) Reset() {
	clear(s.used)
	s.order = s.order[:0]
	s.current, s.scrambled, s.pending = "", "", ""
	s.score = 0
	s.state = StateNotStarted

	if err := s.nextRound(); err != nil {
		s.abort(err)
	}
	s.log.Debug().Msg("game reset")
	s.emit()
}

// UpdateGuess records the player's in-progress input. It does not validate.
func (s *Session) UpdateGuess(text string) {
	s.pending = text
	s.emit()
}

// Submit checks the pending guess against the current word, ignoring case.
// A match scores and advances; a miss flags the round as wrong. The pending
// guess is cleared either way. It reports whether the guess matched.
func (s *Session) Submit() bool {
	defer s.emit()
	guess := s.pending
	s.pending = ""

	if s.state == StateGameOver {
		return false
	}
	if !strings.EqualFold(strings.TrimSpace(guess), s.current) {
		s.state = StateRoundFeedback
		s.log.Debug().Str("guess", guess).Msg("wrong guess")
		return false
	}

	s.score += s.settings.ScoreIncrease
	s.log.Debug().Int("score", s.score).Msg("correct guess")
	s.advance()
	return true
}

// Skip moves to the next round without changing the score.
func (s *Session) Skip() {
	defer s.emit()
	s.pending = ""

	if s.state == StateGameOver {
		return
	}
	s.log.Debug().Int("round", len(s.used)).Msg("word skipped")
	s.advance()
}

// Subscribe registers fn to receive a Snapshot after every mutating call.
// The returned func removes it.
func (s *Session) Subscribe(fn func(Snapshot)) (unsubscribe func()) {
	o := &observer{fn: fn}
	s.observers = append(s.observers, o)
	return func() {
		for i, x := range s.observers {
			if x == o {
				s.observers = append(s.observers[:i], s.observers[i+1:]...)
				return
			}
		}
	}
}

func (s *Session) emit() {
	if len(s.observers) == 0 {
		return
	}
	snap := s.Snapshot()
	for _, o := range append([]*observer(nil), s.observers...) {
		o.fn(snap)
	}
}

// Snapshot returns the current state as a value.
func (s *Session) Snapshot() Snapshot {
	return Snapshot{
		SessionID:    s.id,
		Scrambled:    s.scrambled,
		Score:        s.score,
		Round:        len(s.used),
		MaxRounds:    s.settings.MaxRounds,
		PendingGuess: s.pending,
		State:        s.state,
		IsGuessWrong: s.state == StateRoundFeedback,
		IsGameOver:   s.state == StateGameOver,
	}
}

// ID returns the session identifier.
func (s *Session) ID() string { return s.id }

// State returns the current phase.
func (s *Session) State() State { return s.state }

// Answer returns the unscrambled word of the current round.
func (s *Session) Answer() string { return s.current }

// UsedWords returns the words presented this game in selection order.
func (s *Session) UsedWords() []string {
	return append([]string(nil), s.order...)
}
