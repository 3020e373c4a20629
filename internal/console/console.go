// internal/console/console.go
//
// Line-oriented driver for a game session.
//
// Input, one command per line:
//   type <text>   set the pending guess without submitting
//   submit        submit the pending guess
//   skip          skip the current word
//   reset         start a new game
//   quit          stop reading
//   anything else is typed and submitted as a guess; blank lines are ignored.
//
// Output: the snapshot at start and after every mutating call, one JSON
// object per line.

package console

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/goccy/go-json"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/unscramble/internal/game"
)

// Session is the part of *game.Session the driver uses.
type Session interface {
	UpdateGuess(text string)
	Submit() bool
	Skip()
	Reset()
	Snapshot() game.Snapshot
	Subscribe(fn func(game.Snapshot)) (unsubscribe func())
}

// Run reads commands from in until EOF or "quit", writing snapshots to out.
func Run(in io.Reader, out io.Writer, s Session) error {
	enc := json.NewEncoder(out)
	var writeErr error
	write := func(snap game.Snapshot) {
		if writeErr == nil {
			writeErr = enc.Encode(snap)
		}
	}

	unsubscribe := s.Subscribe(write)
	defer unsubscribe()

	write(s.Snapshot())

	sc := bufio.NewScanner(in)
	for sc.Scan() && writeErr == nil {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}

		cmd, arg, _ := strings.Cut(line, " ")
		switch strings.ToLower(cmd) {
		case "quit":
			log.Debug().Msg("console: quit")
			return writeErr
		case "type":
			s.UpdateGuess(strings.TrimSpace(arg))
		case "submit":
			s.Submit()
		case "skip":
			s.Skip()
		case "reset":
			s.Reset()
		default:
			s.UpdateGuess(line)
			s.Submit()
		}
	}
	if writeErr != nil {
		return fmt.Errorf("console: write snapshot: %w", writeErr)
	}
	return sc.Err()
}
