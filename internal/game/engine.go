// internal/game/engine.go
//
// Core engine for a single hangman round.
// Responsibilities:
//   - Create rounds with a blank display sized to the answer.
//   - Validate and apply single-letter guesses.
//   - Track state transitions: playing → won/lost.
//
// Notes:
//   - Matching is case-sensitive and works on runes, so multi-byte letters
//     occupy one display position.
//   - Whitespace in the answer is revealed when the round starts.

package game

import (
	"errors"
	"time"
	"unicode"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/robalobadob/hangman/internal/hangman"
)

// DefaultMaxMisses is used when a caller passes a negative limit.
const DefaultMaxMisses = 6

var (
	ErrRoundFinished  = errors.New("round finished")
	ErrInvalidGuess   = errors.New("guess must be a single character")
	ErrAlreadyGuessed = errors.New("letter already guessed")
)

// New constructs a round for answer. A negative maxMisses selects DefaultMaxMisses.
func New(answer string, maxMisses int) *Round {
	if maxMisses < 0 {
		maxMisses = DefaultMaxMisses
	}
	display := hangman.CreateBlankWordArray(utf8.RuneCountInString(answer))
	i := 0
	for _, r := range answer {
		if unicode.IsSpace(r) {
			display[i] = string(r)
		}
		i++
	}
	g := &Round{
		ID:        uuid.NewString(),
		Mode:      ModeRandom,
		Answer:    answer,
		Display:   display,
		Guessed:   []string{},
		MaxMisses: maxMisses,
		StartedAt: time.Now().UTC(),
	}
	g.settle()
	return g
}

// ApplyGuess reveals every position matching letter.
// Returns whether the letter was in the answer and the state after the guess.
//
// Invalid and repeated guesses return an error and leave the round unchanged.
func (g *Round) ApplyGuess(letter string) (bool, State, error) {
	if g.Finished {
		return false, g.State(), ErrRoundFinished
	}
	if utf8.RuneCountInString(letter) != 1 || letter == hangman.Placeholder {
		return false, g.State(), ErrInvalidGuess
	}
	for _, l := range g.Guessed {
		if l == letter {
			return false, g.State(), ErrAlreadyGuessed
		}
	}
	g.Guessed = append(g.Guessed, letter)

	want, _ := utf8.DecodeRuneInString(letter)
	hit := false
	i := 0
	for _, r := range g.Answer {
		if r == want {
			g.Display[i] = letter
			hit = true
		}
		i++
	}
	if !hit {
		g.Misses++
	}
	g.settle()
	return hit, g.State(), nil
}

// settle updates Finished/Won from the display and miss count.
func (g *Round) settle() {
	// Display is never nil, so the error case cannot occur.
	solved, _ := hangman.IsWordSolved(g.Display)
	switch {
	case solved:
		g.Finished, g.Won = true, true
	case g.MaxMisses > 0 && g.Misses >= g.MaxMisses:
		g.Finished = true
	}
}

// State reports the coarse round state.
func (g *Round) State() State {
	if g.Finished {
		if g.Won {
			return StateWon
		}
		return StateLost
	}
	return StatePlaying
}

// Progress renders the display buffer as a string.
func (g *Round) Progress() string {
	return hangman.Stringify(g.Display)
}

// MissesLeft reports remaining wrong guesses, or -1 when unlimited.
func (g *Round) MissesLeft() int {
	if g.MaxMisses == 0 {
		return -1
	}
	return g.MaxMisses - g.Misses
}
