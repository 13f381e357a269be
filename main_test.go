package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// wordsFile holds the single-word list every command test runs against.
// words.Init loads once per process, so all tests share it.
var wordsFile string

func TestMain(m *testing.M) {
	dir, err := os.MkdirTemp("", "hangman-cmd")
	if err != nil {
		panic(err)
	}
	wordsFile = filepath.Join(dir, "words.txt")
	if err := os.WriteFile(wordsFile, []byte("# test list\nab\n"), 0o600); err != nil {
		panic(err)
	}
	os.Setenv("WORDS_FILE", wordsFile)

	code := m.Run()
	os.RemoveAll(dir)
	os.Exit(code)
}

func execute(t *testing.T, in string, args ...string) (string, error) {
	t.Helper()
	// flag variables keep their values between Execute calls
	logLevel, playDaily, playMaxMisses, wordsList, statsLimit = "", false, -1, false, 10

	var out bytes.Buffer
	rootCmd.SetIn(strings.NewReader(in))
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	if !strings.Contains(strings.Join(args, " "), "--log-level") {
		args = append(args, "--log-level", "warn")
	}
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestWordsCommand(t *testing.T) {
	t.Setenv("HANGMAN_DB", "")

	out, err := execute(t, "", "words", "--list")
	require.NoError(t, err)
	assert.Equal(t, "1 words ("+wordsFile+")\nab\n", out)
}

func TestStatsCommand(t *testing.T) {
	t.Setenv("HANGMAN_DB", "")
	_, err := execute(t, "", "stats")
	assert.ErrorContains(t, err, "HANGMAN_DB")

	t.Setenv("HANGMAN_DB", filepath.Join(t.TempDir(), "h.db"))
	out, err := execute(t, "", "stats")
	require.NoError(t, err)
	assert.Equal(t, "played: 0  won: 0\n", out)
}

func TestBadLogLevel(t *testing.T) {
	t.Setenv("HANGMAN_DB", "")
	_, err := execute(t, "", "stats", "--log-level", "loud")
	assert.ErrorContains(t, err, "log level")
}

func TestPlayCommand_WinIsRecorded(t *testing.T) {
	t.Setenv("HANGMAN_DB", filepath.Join(t.TempDir(), "h.db"))
	t.Setenv("HANGMAN_MAX_MISSES", "")

	out, err := execute(t, "x\na\nb\n", "play")
	require.NoError(t, err)
	assert.Contains(t, out, "The word has 2 letters.")
	assert.Contains(t, out, "Misses left: 6")
	assert.Contains(t, out, `You got it! The word was "ab".`)

	out, err = execute(t, "", "stats")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "played: 1  won: 1\nbest win: 1 misses\n"), out)
}

func TestPlayCommand_MaxMissesFlagOverridesEnv(t *testing.T) {
	t.Setenv("HANGMAN_DB", "")
	t.Setenv("HANGMAN_MAX_MISSES", "6")

	out, err := execute(t, "z\n", "play", "--max-misses", "1")
	require.NoError(t, err)
	assert.Contains(t, out, "Misses left: 1")
	assert.Contains(t, out, `Out of guesses. The word was "ab".`)
}

func TestPlayCommand_DailyReplayRefused(t *testing.T) {
	t.Setenv("HANGMAN_DB", filepath.Join(t.TempDir(), "h.db"))

	out, err := execute(t, "a\nb\n", "play", "--daily")
	require.NoError(t, err)
	assert.Contains(t, out, `You got it! The word was "ab".`)

	_, err = execute(t, "a\nb\n", "play", "--daily")
	assert.ErrorContains(t, err, "already played")
}

func TestPlayCommand_AbandonedDailyUsesUpTheDay(t *testing.T) {
	t.Setenv("HANGMAN_DB", filepath.Join(t.TempDir(), "h.db"))

	out, err := execute(t, "", "play", "--daily")
	require.NoError(t, err)
	assert.Contains(t, out, `Bye! The word was "ab".`)

	_, err = execute(t, "a\nb\n", "play", "--daily")
	assert.ErrorContains(t, err, "already played")

	out, err = execute(t, "", "stats")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "played: 1  won: 0\n"), out)
}
