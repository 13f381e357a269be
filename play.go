package main

import (
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/robalobadob/hangman/internal/daily"
	"github.com/robalobadob/hangman/internal/game"
	"github.com/robalobadob/hangman/internal/hangman"
	"github.com/robalobadob/hangman/internal/play"
	"github.com/robalobadob/hangman/internal/stats"
)

var (
	playDaily     bool
	playMaxMisses int
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play one round in the terminal",
	Args:  cobra.NoArgs,
	RunE:  runPlay,
}

func init() {
	playCmd.Flags().BoolVar(&playDaily, "daily", false, "play today's word instead of a random one")
	playCmd.Flags().IntVar(&playMaxMisses, "max-misses", -1, "wrong guesses allowed, 0 for unlimited (overrides HANGMAN_MAX_MISSES)")
}

func runPlay(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	list, err := loadWords()
	if err != nil {
		return err
	}
	history, err := openHistory()
	if err != nil {
		return err
	}
	if history != nil {
		defer history.Close()
	}

	maxMisses := cfg.MaxMisses
	if playMaxMisses >= 0 {
		maxMisses = playMaxMisses
	}

	now := time.Now()
	var g *game.Round
	if playDaily {
		date := daily.DateKey(now)
		if history != nil {
			played, err := history.PlayedDaily(ctx, date)
			if err != nil {
				return err
			}
			if played {
				return fmt.Errorf("daily word for %s already played", date)
			}
		}
		g = game.New(daily.Word(list, now, cfg.DailySalt), maxMisses)
		g.Mode, g.Date = game.ModeDaily, date
	} else {
		g = game.New(list.Random(nil), maxMisses)
	}
	log.Debug().Str("gameId", g.ID).Str("mode", string(g.Mode)).Msg("round started")

	// A daily round counts as played (and lost) from the moment it starts.
	if history != nil && g.Mode == game.ModeDaily {
		if err := history.Record(ctx, stats.FromRound(g, time.Now())); err != nil {
			return err
		}
	}

	con := hangman.NewConsole(cmd.InOrStdin(), cmd.OutOrStdout(), hangman.DefaultPrompt)
	if err := play.Run(ctx, con, g); err != nil {
		if !errors.Is(err, play.ErrAborted) {
			return err
		}
		_ = con.Print("")
		_ = con.Print(fmt.Sprintf("Bye! The word was %q.", g.Answer))
		return nil
	}

	if history != nil {
		if err := history.Record(ctx, stats.FromRound(g, time.Now())); err != nil {
			log.Warn().Err(err).Str("gameId", g.ID).Msg("record result")
		}
	}
	return nil
}
