// internal/words/words.go
//
// Provides word list management for the game engine.
//
// Responsibilities:
//   - Load the candidate list from a file or fall back to the embedded default.
//   - Drop entries that can never be solved (containing the placeholder).
//   - Supply utility functions like Random and Stats.
//
// Initialization behavior (Init):
//   1. If a path is given (WORDS_FILE), load one word per line from it.
//   2. Otherwise use assets/words.txt.
//
// Constraints:
//   • Words are case-sensitive and may contain inner whitespace.
//   • Lines are trimmed; blank lines and "#" comments are skipped.
//   • The package-level list is initialized once (sync.Once).

package words

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/robalobadob/hangman/assets"
	"github.com/robalobadob/hangman/internal/hangman"
)

// ErrEmpty is returned when a source yields no usable words.
var ErrEmpty = errors.New("words: list is empty")

// List is an ordered, non-empty set of candidate words.
type List struct {
	words []string
}

// New builds a List from raw entries, applying the same filtering as file loading.
func New(entries []string) (*List, error) {
	out := make([]string, 0, len(entries))
	for _, e := range entries {
		if w, ok := normalize(e); ok {
			out = append(out, w)
		}
	}
	if len(out) == 0 {
		return nil, ErrEmpty
	}
	return &List{words: out}, nil
}

// Load reads path, or the embedded default list when path is empty.
func Load(path string) (*List, error) {
	if path == "" {
		raw, err := assets.WordList()
		if err != nil {
			return nil, fmt.Errorf("read embedded words: %w", err)
		}
		return New(raw)
	}
	raw, err := readWordFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	l, err := New(raw)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return l, nil
}

// readWordFile loads one entry per line, skipping comments.
func readWordFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	var out []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		if strings.HasPrefix(strings.TrimSpace(sc.Text()), "#") {
			continue
		}
		out = append(out, sc.Text())
	}
	return out, sc.Err()
}

// normalize trims a raw entry and rejects blanks and words containing the
// placeholder, which could never be reported as solved.
func normalize(s string) (string, bool) {
	w := strings.TrimSpace(s)
	if w == "" || strings.Contains(w, hangman.Placeholder) {
		return "", false
	}
	return w, true
}

// Words returns a copy of the list.
func (l *List) Words() []string {
	return append([]string(nil), l.words...)
}

// Len reports the number of words.
func (l *List) Len() int { return len(l.words) }

// Random picks a word using rnd (nil means the default generator).
func (l *List) Random(rnd hangman.Uniform) string {
	// The list is never empty, so selection cannot fail.
	w, _ := hangman.RandomlySelectWord(l.words, rnd)
	return w
}

// --- package-level default list ---

var (
	initOnce   sync.Once
	defaultLst *List
	initialErr error
)

// Init loads the package-level list exactly once.
func Init(path string) error {
	initOnce.Do(func() {
		defaultLst, initialErr = Load(path)
	})
	return initialErr
}

// Default returns the list loaded by Init, or nil before a successful Init.
func Default() *List {
	return defaultLst
}

// Stats returns the number of loaded words in the default list.
func Stats() int {
	if defaultLst == nil {
		return 0
	}
	return defaultLst.Len()
}
