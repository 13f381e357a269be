// internal/hangman/letters.go
//
// Display buffer helpers for a hangman round.
// Responsibilities:
//   - Render a display buffer back into a string (Stringify).
//   - Build a blank display of a given length (CreateBlankWordArray, BlankWordArrayOf).
//   - Detect whether every position has been revealed (IsWordSolved).
//
// Notes:
//   - Blank generation is lenient: bad lengths yield an empty buffer, never an error.
//   - IsWordSolved is strict: a nil buffer is rejected with ErrTypeMismatch.

package hangman

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

// Placeholder marks a position that has not been guessed yet.
const Placeholder = "_"

// ErrTypeMismatch is returned when a helper receives input of the wrong shape.
var ErrTypeMismatch = errors.New("hangman: type mismatch")

// Stringify concatenates the display buffer in order.
// A nil or empty buffer yields "".
func Stringify(letters []string) string {
	return strings.Join(letters, "")
}

// CreateBlankWordArray returns length placeholders.
// Zero or negative lengths produce an empty (non-nil) slice.
func CreateBlankWordArray(length int) []string {
	if length <= 0 {
		return []string{}
	}
	out := make([]string, length)
	for i := range out {
		out[i] = Placeholder
	}
	return out
}

// BlankWordArrayOf is the loosely typed form of CreateBlankWordArray, for a
// length whose type is not known statically.
//
// Any integer kind, or a float with no fractional part, is used as the length.
// Everything else (nil, strings, booleans, maps, structs, fractional floats) yields
// an empty slice, as do lengths above 65536.
func BlankWordArrayOf(v any) []string {
	switch n := v.(type) {
	case int:
		return CreateBlankWordArray(clampInt64(int64(n)))
	case int8:
		return CreateBlankWordArray(int(n))
	case int16:
		return CreateBlankWordArray(int(n))
	case int32:
		return CreateBlankWordArray(int(n))
	case int64:
		return CreateBlankWordArray(clampInt64(n))
	case uint:
		return CreateBlankWordArray(clampUint64(uint64(n)))
	case uint8:
		return CreateBlankWordArray(int(n))
	case uint16:
		return CreateBlankWordArray(int(n))
	case uint32:
		return CreateBlankWordArray(clampUint64(uint64(n)))
	case uint64:
		return CreateBlankWordArray(clampUint64(n))
	case float32:
		return blankFromFloat(float64(n))
	case float64:
		return blankFromFloat(n)
	default:
		return []string{}
	}
}

// maxBlankLength bounds lengths taken from untyped input.
const maxBlankLength = 1 << 16

func blankFromFloat(f float64) []string {
	if math.IsNaN(f) || math.IsInf(f, 0) || f != math.Trunc(f) || f > maxBlankLength {
		return []string{}
	}
	return CreateBlankWordArray(int(f))
}

func clampInt64(n int64) int {
	if n > maxBlankLength {
		return 0
	}
	return int(n)
}

func clampUint64(n uint64) int {
	if n > maxBlankLength {
		return 0
	}
	return int(n)
}

// IsWordSolved reports whether no position holds the placeholder.
// An empty buffer is solved. A nil buffer is an error.
func IsWordSolved(letters []string) (bool, error) {
	if letters == nil {
		return false, fmt.Errorf("is word solved: nil display: %w", ErrTypeMismatch)
	}
	for _, l := range letters {
		if l == Placeholder {
			return false, nil
		}
	}
	return true, nil
}
