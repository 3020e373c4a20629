// internal/words/words.go
//
// Word pool management for the game session.
//
// Responsibilities:
//   - Build an immutable, normalized Pool from any list of words.
//   - Load the pool from a file (WORDS_FILE) or fall back to the embedded default.
//   - Flag degenerate words that can never be scrambled into a different string.
//
// Word rules:
//   • Words are trimmed and lowercased.
//   • Only alphabetic a–z words are accepted by Load.
//   • Duplicates collapse to their first occurrence; order is preserved.

package words

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/robalobadob/unscramble/assets"
)

// ErrNoWords is returned by Load when no usable word survives filtering.
var ErrNoWords = errors.New("words: pool is empty")

// Pool is an immutable ordered sequence of distinct lowercase words.
// The zero value is an empty pool.
type Pool struct {
	list []string
	set  map[string]struct{}
}

// NewPool normalizes list into a Pool. Blank entries and duplicates are dropped.
func NewPool(list []string) Pool {
	p := Pool{
		list: make([]string, 0, len(list)),
		set:  make(map[string]struct{}, len(list)),
	}
	for _, w := range list {
		w = normalize(w)
		if w == "" {
			continue
		}
		if _, dup := p.set[w]; dup {
			continue
		}
		p.set[w] = struct{}{}
		p.list = append(p.list, w)
	}
	return p
}

// Len reports the number of distinct words.
func (p Pool) Len() int { return len(p.list) }

// At returns the i-th word in pool order.
func (p Pool) At(i int) string { return p.list[i] }

// Words returns a copy of the pool in order.
func (p Pool) Words() []string {
	out := make([]string, len(p.list))
	copy(out, p.list)
	return out
}

// Contains reports whether w (case-insensitive) is in the pool.
func (p Pool) Contains(w string) bool {
	_, ok := p.set[normalize(w)]
	return ok
}

// IsDegenerate reports whether w has no permutation different from itself:
// empty, a single rune, or one rune repeated.
func IsDegenerate(w string) bool {
	runes := []rune(w)
	for i := 1; i < len(runes); i++ {
		if runes[i] != runes[0] {
			return false
		}
	}
	return true
}

// Load builds a pool from path, one word per line, or from the embedded
// default list when path is empty. Non-alphabetic and degenerate words are
// skipped with a warning.
func Load(path string) (Pool, error) {
	var (
		raw []string
		err error
	)
	if path == "" {
		raw, err = assets.DefaultWords()
	} else {
		raw, err = readWordFile(path)
	}
	if err != nil {
		return Pool{}, fmt.Errorf("words: load %q: %w", path, err)
	}

	kept := make([]string, 0, len(raw))
	for _, w := range raw {
		w = normalize(w)
		switch {
		case !isAlpha(w):
			log.Warn().Str("word", w).Msg("skipping non-alphabetic word")
		case IsDegenerate(w):
			log.Warn().Str("word", w).Msg("skipping word that cannot be scrambled")
		default:
			kept = append(kept, w)
		}
	}

	p := NewPool(kept)
	if p.Len() == 0 {
		return Pool{}, ErrNoWords
	}
	log.Debug().Int("words", p.Len()).Str("source", sourceName(path)).Msg("word pool loaded")
	return p, nil
}

// readWordFile loads one word per line, skipping blanks and '#' comments.
func readWordFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var out []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		out = append(out, line)
	}
	return out, sc.Err()
}

func normalize(w string) string { return strings.ToLower(strings.TrimSpace(w)) }

// isAlpha reports whether s is non-empty and all lowercase ASCII letters.
func isAlpha(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < 'a' || r > 'z' {
			return false
		}
	}
	return true
}

func sourceName(path string) string {
	if path == "" {
		return "embedded"
	}
	return path
}
