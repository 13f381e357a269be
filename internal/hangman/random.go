// internal/hangman/random.go
//
// Random word selection with an injectable generator.

package hangman

import (
	"errors"
	"math"
	"math/rand/v2"
)

// Uniform returns values in [0, 1).
type Uniform func() float64

// ErrEmptyWordList is returned when there is nothing to choose from.
var ErrEmptyWordList = errors.New("hangman: empty word list")

// RandomlySelectWord picks words[floor(random() * len(words))].
// A nil generator uses math/rand/v2.
func RandomlySelectWord(words []string, random Uniform) (string, error) {
	if len(words) == 0 {
		return "", ErrEmptyWordList
	}
	if random == nil {
		random = rand.Float64
	}
	i := int(math.Floor(random() * float64(len(words))))
	// Keep generators that break the [0,1) contract inside the list.
	if i < 0 {
		i = 0
	}
	if i >= len(words) {
		i = len(words) - 1
	}
	return words[i], nil
}
