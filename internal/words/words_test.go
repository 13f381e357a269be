package words

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Embedded(t *testing.T) {
	t.Parallel()

	l, err := Load("")
	require.NoError(t, err)
	assert.Greater(t, l.Len(), 10)
	assert.Contains(t, l.Words(), "ice cream", "inner whitespace is kept")
	assert.Contains(t, l.Words(), "New York", "case is kept")
}

func TestLoad_File(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "words.txt")
	content := "# comment\n  Gopher  \n\nsnake_case\nhot dog\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	l, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"Gopher", "hot dog"}, l.Words())
}

func TestLoad_Errors(t *testing.T) {
	t.Parallel()

	_, err := Load(filepath.Join(t.TempDir(), "missing.txt"))
	assert.Error(t, err)

	empty := filepath.Join(t.TempDir(), "empty.txt")
	require.NoError(t, os.WriteFile(empty, []byte("# nothing\n\n"), 0o600))
	_, err = Load(empty)
	assert.ErrorIs(t, err, ErrEmpty)
}

func TestList_Random(t *testing.T) {
	t.Parallel()

	l, err := New([]string{"first", "second", "third"})
	require.NoError(t, err)

	assert.Equal(t, "first", l.Random(func() float64 { return 0 }))
	assert.Equal(t, "second", l.Random(func() float64 { return 0.5 }))
	assert.Equal(t, "third", l.Random(func() float64 { return 0.9999 }))
	assert.Contains(t, l.Words(), l.Random(nil))
}

func TestList_WordsIsACopy(t *testing.T) {
	t.Parallel()

	l, err := New([]string{"one"})
	require.NoError(t, err)
	ws := l.Words()
	ws[0] = "changed"
	assert.Equal(t, []string{"one"}, l.Words())
}

func TestInit(t *testing.T) {
	require.NoError(t, Init(""))
	require.NotNil(t, Default())
	assert.Equal(t, Default().Len(), Stats())
}
