// internal/daily/daily.go
//
// Daily mode: every player who shares a salt gets the same word order on a
// given UTC date. The date key is MACed with keyed BLAKE2b and the first
// eight bytes become the seed for the session's random source.

package daily

import (
	"encoding/binary"
	"math/rand/v2"
	"time"

	"golang.org/x/crypto/blake2b"
)

// DateKey returns YYYY-MM-DD in UTC.
func DateKey(t time.Time) string {
	return t.UTC().Format("2006-01-02")
}

// Seed returns a deterministic seed for date under salt.
func Seed(date time.Time, salt string) uint64 {
	// Keys longer than blake2b.Size are rejected, so hash long salts down first.
	key := []byte(salt)
	if len(key) > blake2b.Size {
		sum := blake2b.Sum512(key)
		key = sum[:]
	}
	h, err := blake2b.New256(key)
	if err != nil {
		// Unreachable: key length is bounded above.
		panic(err)
	}
	h.Write([]byte(DateKey(date)))
	return binary.BigEndian.Uint64(h.Sum(nil)[:8])
}

// Rand returns a random source seeded for date under salt.
func Rand(date time.Time, salt string) *rand.Rand {
	s := Seed(date, salt)
	return rand.New(rand.NewPCG(s, ^s))
}
