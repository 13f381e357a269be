// internal/game/types.go
//
// Core type definitions for the hangman round engine.
// Defines:
//   - State: coarse round status (playing/won/lost).
//   - Mode:  how the answer was chosen (random/daily).
//   - Round: state for a single in-progress or finished round.

package game

import "time"

// State is the coarse status reported after each guess.
type State string

const (
	StatePlaying State = "playing"
	StateWon     State = "won"
	StateLost    State = "lost"
)

// Mode records how the answer was picked.
type Mode string

const (
	ModeRandom Mode = "random"
	ModeDaily  Mode = "daily"
)

// Round holds the state of a single hangman round.
type Round struct {
	ID        string    // Unique round identifier (uuid).
	Mode      Mode      // random or daily.
	Date      string    // YYYY-MM-DD for daily rounds, empty otherwise.
	Answer    string    // The target word, case preserved.
	Display   []string  // One entry per rune of Answer: placeholder or revealed letter.
	Guessed   []string  // Letters guessed so far, in order.
	Misses    int       // Wrong guesses.
	MaxMisses int       // Misses allowed before the round is lost; 0 means unlimited.
	Finished  bool      // True once the round is over (won or lost).
	Won       bool      // True if the round finished with the word solved.
	StartedAt time.Time // When the round was created.
}
