// assets/embed.go
//
// Files compiled into the binary: the default word list and the SQLite
// migrations for the result history.

package assets

import (
	"bufio"
	"embed"
	"io/fs"
	"strings"
)

//go:embed words.txt sql/*.sql
var FS embed.FS

// readLines returns the non-blank, non-comment lines of an embedded file.
// Surrounding whitespace is trimmed; case and inner spaces are kept.
func readLines(name string) ([]string, error) {
	f, err := FS.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var out []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		s := strings.TrimSpace(sc.Text())
		if s == "" || strings.HasPrefix(s, "#") {
			continue
		}
		out = append(out, s)
	}
	return out, sc.Err()
}

// WordList returns the embedded default word list.
func WordList() ([]string, error) {
	return readLines("words.txt")
}

// Migrations exposes the embedded sql directory.
func Migrations() fs.FS {
	sub, _ := fs.Sub(FS, "sql")
	return sub
}
