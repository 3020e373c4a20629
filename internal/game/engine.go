// internal/game/engine.go
//
// Round mechanics for a single unscramble session.
// Responsibilities:
//   - Pick the next word uniformly from the words not yet used this game.
//   - Scramble a word into a permutation that differs from it.
//   - Advance to the next round or end the game once every round is used.
//
// Notes:
//   - The round number is len(used); there is no separate counter to drift.
//   - Selection never retries: it samples the remaining subset directly, so
//     running out of words is an explicit ErrPoolExhausted.

package game

import (
	"math/rand/v2"

	"github.com/robalobadob/unscramble/internal/words"
)

// maxShuffleAttempts bounds random shuffles before falling back to a swap.
const maxShuffleAttempts = 32

// pickWord draws from the unused words and marks the result as used.
func (s *Session) pickWord() (string, error) {
	remaining := make([]string, 0, s.pool.Len()-len(s.used))
	for i := 0; i < s.pool.Len(); i++ {
		w := s.pool.At(i)
		if _, ok := s.used[w]; !ok {
			remaining = append(remaining, w)
		}
	}
	if len(remaining) == 0 {
		return "", ErrPoolExhausted
	}

	w := remaining[s.rng.IntN(len(remaining))]
	s.used[w] = struct{}{}
	s.order = append(s.order, w)
	return w, nil
}

// nextRound picks and scrambles a fresh word and puts the session in a round.
func (s *Session) nextRound() error {
	w, err := s.pickWord()
	if err != nil {
		return err
	}
	scrambled, err := scramble(s.rng, w)
	if err != nil {
		return err
	}
	s.current, s.scrambled = w, scrambled
	s.state = StateInRound
	s.log.Debug().Int("round", len(s.used)).Str("scrambled", scrambled).Msg("round started")
	return nil
}

// advance moves past the current round: game over once MaxRounds words have
// been used, otherwise a new word. The current word stays on display at game over.
func (s *Session) advance() {
	if len(s.used) >= s.settings.MaxRounds {
		s.state = StateGameOver
		s.log.Debug().Int("score", s.score).Msg("game over")
		return
	}
	if err := s.nextRound(); err != nil {
		s.abort(err)
	}
}

// abort ends the game after a selection failure New should have ruled out.
func (s *Session) abort(err error) {
	s.log.Error().Err(err).Int("used", len(s.used)).Msg("cannot start round, ending game")
	s.state = StateGameOver
}

// scramble returns a random permutation of word that differs from it.
// Degenerate words have no such permutation.
func scramble(rng *rand.Rand, word string) (string, error) {
	if words.IsDegenerate(word) {
		return "", &DegenerateWordError{Word: word}
	}

	runes := []rune(word)
	for range maxShuffleAttempts {
		rng.Shuffle(len(runes), func(i, j int) { runes[i], runes[j] = runes[j], runes[i] })
		if s := string(runes); s != word {
			return s, nil
		}
	}

	// Swapping the first differing neighbours always yields a new string.
	runes = []rune(word)
	for i := 1; i < len(runes); i++ {
		if runes[i] != runes[i-1] {
			runes[i], runes[i-1] = runes[i-1], runes[i]
			break
		}
	}
	return string(runes), nil
}
