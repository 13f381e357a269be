package hangman

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStringify(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		letters []string
		want    string
	}{
		{name: "word", letters: []string{"h", "e", "l", "l", "o"}, want: "hello"},
		{name: "keeps case", letters: []string{"H", "e", "l", "l", "o"}, want: "Hello"},
		{name: "keeps whitespace", letters: strings.Split("Hello world", ""), want: "Hello world"},
		{name: "multi-character entries", letters: []string{"He", "ll", "o"}, want: "Hello"},
		{name: "empty", letters: []string{}, want: ""},
		{name: "nil", letters: nil, want: ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, Stringify(tt.letters))
		})
	}
}

func TestCreateBlankWordArray(t *testing.T) {
	t.Parallel()

	got := CreateBlankWordArray(10)
	assert.Len(t, got, 10)
	assert.Equal(t, []string{"_", "_", "_", "_", "_", "_", "_", "_", "_", "_"}, got)
	for _, l := range got {
		assert.Equal(t, Placeholder, l)
	}

	zero := CreateBlankWordArray(0)
	assert.NotNil(t, zero)
	assert.Empty(t, zero)

	assert.Empty(t, CreateBlankWordArray(-3))
}

func TestBlankWordArrayOf(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input any
		want  int
	}{
		{name: "absent", input: nil, want: 0},
		{name: "string", input: "hello", want: 0},
		{name: "map", input: map[string]any{}, want: 0},
		{name: "struct", input: struct{}{}, want: 0},
		{name: "bool", input: true, want: 0},
		{name: "fractional float", input: 2.5, want: 0},
		{name: "int", input: 4, want: 4},
		{name: "uint8", input: uint8(3), want: 3},
		{name: "int64", input: int64(2), want: 2},
		{name: "json number", input: float64(5), want: 5},
		{name: "negative", input: -1, want: 0},
		{name: "huge", input: uint64(1) << 40, want: 0},
		{name: "huge int", input: 1 << 50, want: 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := BlankWordArrayOf(tt.input)
			require.NotNil(t, got)
			assert.Len(t, got, tt.want)
		})
	}
}

func TestIsWordSolved(t *testing.T) {
	t.Parallel()

	solved, err := IsWordSolved(strings.Split("a_b", ""))
	require.NoError(t, err)
	assert.False(t, solved)

	solved, err = IsWordSolved(strings.Split("abc", ""))
	require.NoError(t, err)
	assert.True(t, solved)

	solved, err = IsWordSolved([]string{})
	require.NoError(t, err)
	assert.True(t, solved, "empty display is vacuously solved")

	_, err = IsWordSolved(nil)
	assert.ErrorIs(t, err, ErrTypeMismatch)
}
