// internal/daily/daily.go
//
// Deterministic "word of the day" selection.
// The date and a server salt are hashed with HMAC-SHA256 and turned into a
// fixed uniform value, which is fed to the same floor/scale selection used for
// random rounds. Everyone playing on the same UTC date gets the same word.

package daily

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/binary"
	"time"

	"github.com/robalobadob/hangman/internal/hangman"
	"github.com/robalobadob/hangman/internal/words"
)

// DateKey returns YYYY-MM-DD in UTC.
func DateKey(t time.Time) string {
	return t.UTC().Format("2006-01-02")
}

// Uniform returns a generator that always yields the value derived from
// HMAC(salt, YYYY-MM-DD). The value is in [0, 1).
func Uniform(date time.Time, salt string) hangman.Uniform {
	h := hmac.New(sha256.New, []byte(salt))
	h.Write([]byte(DateKey(date)))
	sum := h.Sum(nil)
	// top 53 bits fill a float64 mantissa exactly
	n := binary.BigEndian.Uint64(sum[:8]) >> 11
	u := float64(n) / (1 << 53)
	return func() float64 { return u }
}

// Word returns the day's word from l.
func Word(l *words.List, date time.Time, salt string) string {
	return l.Random(Uniform(date, salt))
}
