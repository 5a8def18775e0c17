// Package daily picks a deterministic secret per calendar day, so every
// player (and every rerun) gets the same word for a given date.
package daily

import (
	"encoding/binary"
	"time"

	"golang.org/x/crypto/blake2b"

	"github.com/robalobadob/wordle/apps/go-solver/internal/words"
)

// DefaultSalt is used when no DAILY_SALT is configured.
const DefaultSalt = "local_dev_salt"

// DateKey returns YYYY-MM-DD in UTC.
func DateKey(t time.Time) string {
	return t.UTC().Format("2006-01-02")
}

// WordIndex returns a deterministic index for a date: a BLAKE2b-256 keyed by
// the hashed salt over YYYY-MM-DD, reduced mod answersLen.
func WordIndex(date time.Time, salt string, answersLen int) int {
	if answersLen <= 0 {
		return 0
	}
	key := blake2b.Sum256([]byte(salt))
	h, err := blake2b.New256(key[:])
	if err != nil {
		// 32-byte keys are always accepted.
		panic(err)
	}
	h.Write([]byte(DateKey(date)))
	sum := h.Sum(nil)
	// take first 8 bytes to uint64 for modulus distribution
	n := binary.BigEndian.Uint64(sum[:8])
	return int(n % uint64(answersLen))
}

// Secret returns the dictionary word for date.
func Secret(d *words.Dictionary, date time.Time, salt string) string {
	return d.At(WordIndex(date, salt, d.Len()))
}
