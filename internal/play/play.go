// internal/play/play.go
//
// Console game loop: prompt for letters, reveal them, report the outcome.
// Everything the player sees goes through hangman.Console, so the loop can be
// driven from any reader/writer pair.

package play

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/rs/zerolog/log"

	"github.com/robalobadob/hangman/internal/game"
	"github.com/robalobadob/hangman/internal/hangman"
)

// ErrAborted is returned when input ends before the round is over.
var ErrAborted = errors.New("input closed before the round finished")

// Run plays g to completion on con.
func Run(ctx context.Context, con *hangman.Console, g *game.Round) error {
	if err := con.Print(fmt.Sprintf("The word has %d letters.", len(g.Display))); err != nil {
		return err
	}
	if err := show(con, g); err != nil {
		return err
	}

	for !g.Finished {
		if err := ctx.Err(); err != nil {
			return err
		}
		letter, err := con.AskForALetter()
		if errors.Is(err, io.EOF) {
			return ErrAborted
		}
		if err != nil {
			return fmt.Errorf("read guess: %w", err)
		}

		hit, st, err := g.ApplyGuess(letter)
		switch {
		case errors.Is(err, game.ErrInvalidGuess):
			if err := con.Print("Please enter exactly one letter."); err != nil {
				return err
			}
			continue
		case errors.Is(err, game.ErrAlreadyGuessed):
			if err := con.Print(fmt.Sprintf("You already guessed %q.", letter)); err != nil {
				return err
			}
			continue
		case err != nil:
			return err
		}
		log.Debug().Str("gameId", g.ID).Str("letter", letter).Bool("hit", hit).Str("state", string(st)).Msg("guess")

		if !hit {
			if err := con.Print(fmt.Sprintf("No %q in the word.", letter)); err != nil {
				return err
			}
		}
		if err := show(con, g); err != nil {
			return err
		}
	}

	if g.Won {
		return con.Print(fmt.Sprintf("You got it! The word was %q.", g.Answer))
	}
	return con.Print(fmt.Sprintf("Out of guesses. The word was %q.", g.Answer))
}

// show prints the display buffer and, when limited, the remaining misses.
func show(con *hangman.Console, g *game.Round) error {
	if err := con.Print(hangman.Stringify(g.Display)); err != nil {
		return err
	}
	if left := g.MissesLeft(); left >= 0 && !g.Finished {
		return con.Print(fmt.Sprintf("Misses left: %d", left))
	}
	return nil
}
