// internal/hangman/console.go
//
// Line-oriented console I/O for the game loop.
// Responsibilities:
//   - Print: write one line of text, unmodified.
//   - AskForALetter: block until the player enters a line and return it raw.

package hangman

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

// DefaultPrompt is written before each read by StdConsole.
const DefaultPrompt = "Guess a letter: "

// Console couples a line reader with an output writer.
type Console struct {
	in     *bufio.Reader
	out    io.Writer
	prompt string
}

// NewConsole builds a Console. An empty prompt disables prompting.
func NewConsole(in io.Reader, out io.Writer, prompt string) *Console {
	return &Console{in: bufio.NewReader(in), out: out, prompt: prompt}
}

// StdConsole binds the process's standard input and output.
func StdConsole() *Console {
	return NewConsole(os.Stdin, os.Stdout, DefaultPrompt)
}

// Print writes text followed by a single newline.
func (c *Console) Print(text string) error {
	if _, err := io.WriteString(c.out, text+"\n"); err != nil {
		return fmt.Errorf("print: %w", err)
	}
	return nil
}

// AskForALetter reads one line of input and returns it without the line
// terminator. The value is otherwise untouched: no trimming, no case change,
// no length check.
func (c *Console) AskForALetter() (string, error) {
	if c.prompt != "" {
		if _, err := io.WriteString(c.out, c.prompt); err != nil {
			return "", fmt.Errorf("prompt: %w", err)
		}
	}
	line, err := c.in.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return line, nil
		}
		return "", err
	}
	line = strings.TrimSuffix(line, "\n")
	return strings.TrimSuffix(line, "\r"), nil
}
