package console

import (
	"bufio"
	"bytes"
	"errors"
	"math/rand/v2"
	"strings"
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robalobadob/unscramble/internal/game"
	"github.com/robalobadob/unscramble/internal/words"
)

func newSession(t *testing.T, list []string, maxRounds int) *game.Session {
	t.Helper()
	s, err := game.New(
		words.NewPool(list),
		game.Settings{MaxRounds: maxRounds, ScoreIncrease: 20},
		game.WithRand(rand.New(rand.NewPCG(1, 2))),
		game.WithID("console"),
	)
	require.NoError(t, err)
	return s
}

func decode(t *testing.T, out *bytes.Buffer) []game.Snapshot {
	t.Helper()
	var snaps []game.Snapshot
	sc := bufio.NewScanner(out)
	for sc.Scan() {
		var snap game.Snapshot
		require.NoError(t, json.Unmarshal(sc.Bytes(), &snap))
		snaps = append(snaps, snap)
	}
	require.NoError(t, sc.Err())
	return snaps
}

func TestRun_Commands(t *testing.T) {
	t.Parallel()

	s := newSession(t, []string{"cat", "dog", "fox"}, 2)
	answer := s.Answer()

	in := strings.NewReader("\nwrong\ntype " + answer + "\nsubmit\nskip\nreset\nquit\nskip\n")
	var out bytes.Buffer
	require.NoError(t, Run(in, &out, s))

	snaps := decode(t, &out)
	// initial, wrong (type+submit), type, submit, skip, reset
	require.Len(t, snaps, 7)

	assert.Equal(t, "console", snaps[0].SessionID)
	assert.Equal(t, 1, snaps[0].Round)

	assert.Equal(t, "wrong", snaps[1].PendingGuess)
	assert.True(t, snaps[2].IsGuessWrong)

	assert.Equal(t, answer, snaps[3].PendingGuess)
	assert.Equal(t, 20, snaps[4].Score)
	assert.Equal(t, 2, snaps[4].Round)
	assert.Empty(t, snaps[4].PendingGuess)

	assert.True(t, snaps[5].IsGameOver)
	assert.Equal(t, 20, snaps[5].Score)

	assert.Equal(t, game.StateInRound, snaps[6].State)
	assert.Equal(t, 0, snaps[6].Score)
}

func TestRun_UnsubscribesOnReturn(t *testing.T) {
	t.Parallel()

	s := newSession(t, []string{"cat", "dog"}, 2)
	var out bytes.Buffer
	require.NoError(t, Run(strings.NewReader(""), &out, s))
	n := out.Len()

	s.Skip()
	assert.Equal(t, n, out.Len())
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func TestRun_WriteError(t *testing.T) {
	t.Parallel()

	s := newSession(t, []string{"cat", "dog"}, 2)
	err := Run(strings.NewReader("skip\n"), failingWriter{}, s)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "disk full")
}
