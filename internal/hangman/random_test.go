package hangman

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// sequence returns a generator that yields vals in order.
func sequence(vals ...float64) Uniform {
	i := 0
	return func() float64 {
		v := vals[i]
		i++
		return v
	}
}

func TestRandomlySelectWord(t *testing.T) {
	t.Parallel()

	words := []string{"first", "second", "third"}

	t.Run("middle word", func(t *testing.T) {
		t.Parallel()
		got, err := RandomlySelectWord(words, func() float64 { return 0.5 })
		require.NoError(t, err)
		assert.Equal(t, "second", got)
	})

	t.Run("any word in the list", func(t *testing.T) {
		t.Parallel()
		rnd := sequence(0, 0.5, 0.9999)
		for _, want := range words {
			got, err := RandomlySelectWord(words, rnd)
			require.NoError(t, err)
			assert.Equal(t, want, got)
		}
	})

	t.Run("out of range generator is clamped", func(t *testing.T) {
		t.Parallel()
		got, err := RandomlySelectWord(words, func() float64 { return 1 })
		require.NoError(t, err)
		assert.Equal(t, "third", got)

		got, err = RandomlySelectWord(words, func() float64 { return -0.2 })
		require.NoError(t, err)
		assert.Equal(t, "first", got)
	})

	t.Run("default generator", func(t *testing.T) {
		t.Parallel()
		got, err := RandomlySelectWord(words, nil)
		require.NoError(t, err)
		assert.Contains(t, words, got)
	})

	t.Run("empty list", func(t *testing.T) {
		t.Parallel()
		_, err := RandomlySelectWord(nil, nil)
		assert.ErrorIs(t, err, ErrEmptyWordList)
	})
}
