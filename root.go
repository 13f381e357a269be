package main

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/robalobadob/hangman/internal/config"
	"github.com/robalobadob/hangman/internal/stats"
	"github.com/robalobadob/hangman/internal/words"
)

var (
	cfg      config.Config
	logLevel string
)

// rootCmd is the application entry point.
var rootCmd = &cobra.Command{
	Use:   "hangman",
	Short: "Console word-guessing game",
	Long: `Guess the hidden word one letter at a time before you run out of misses.

Run "hangman play" for a console round, or "hangman serve" to play over HTTP.`,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		c, err := config.Load()
		if err != nil {
			return err
		}
		cfg = c
		if logLevel != "" {
			cfg.LogLevel = logLevel
		}
		return setupLogging(cfg.LogLevel)
	},
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level (overrides LOG_LEVEL)")
	rootCmd.AddCommand(playCmd, serveCmd, wordsCmd, statsCmd)
}

// setupLogging sends zerolog output to stderr so stdout stays the game transcript.
func setupLogging(level string) error {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		return fmt.Errorf("log level: %w", err)
	}
	zerolog.SetGlobalLevel(lvl)
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	return nil
}

// loadWords initialises the shared word list from cfg.
func loadWords() (*words.List, error) {
	if err := words.Init(cfg.WordsFile); err != nil {
		return nil, fmt.Errorf("load word list: %w", err)
	}
	log.Debug().Int("words", words.Stats()).Str("file", cfg.WordsFile).Msg("word list loaded")
	return words.Default(), nil
}

// openHistory opens the result history, or returns nil when HANGMAN_DB is unset.
func openHistory() (*stats.Store, error) {
	if cfg.DBPath == "" {
		return nil, nil
	}
	h, err := stats.Open(cfg.DBPath)
	if err != nil {
		return nil, fmt.Errorf("open history: %w", err)
	}
	return h, nil
}
