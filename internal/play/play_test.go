package play

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robalobadob/hangman/internal/game"
	"github.com/robalobadob/hangman/internal/hangman"
)

func TestRun_Win(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	con := hangman.NewConsole(strings.NewReader("c\nab\nc\nx\na\nt\n"), &out, "")
	g := game.New("cat", 6)

	require.NoError(t, Run(context.Background(), con, g))
	assert.True(t, g.Won)
	assert.Equal(t, 1, g.Misses)

	want := strings.Join([]string{
		"The word has 3 letters.",
		"___",
		"Misses left: 6",
		"c__",
		"Misses left: 6",
		"Please enter exactly one letter.",
		`You already guessed "c".`,
		`No "x" in the word.`,
		"c__",
		"Misses left: 5",
		"ca_",
		"Misses left: 5",
		"cat",
		`You got it! The word was "cat".`,
		"",
	}, "\n")
	assert.Equal(t, want, out.String())
}

func TestRun_Lose(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	con := hangman.NewConsole(strings.NewReader("x\ny\n"), &out, "")
	g := game.New("dog", 2)

	require.NoError(t, Run(context.Background(), con, g))
	assert.Equal(t, game.StateLost, g.State())
	assert.True(t, strings.HasSuffix(out.String(), "Out of guesses. The word was \"dog\".\n"))
}

func TestRun_InputClosed(t *testing.T) {
	t.Parallel()

	con := hangman.NewConsole(strings.NewReader("d\n"), &bytes.Buffer{}, "")
	err := Run(context.Background(), con, game.New("dog", 6))
	assert.ErrorIs(t, err, ErrAborted)
}

func TestRun_Cancelled(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	con := hangman.NewConsole(strings.NewReader("d\n"), &bytes.Buffer{}, "")
	err := Run(ctx, con, game.New("dog", 6))
	assert.ErrorIs(t, err, context.Canceled)
}
