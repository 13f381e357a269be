package main

import (
	"os/signal"
	"syscall"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/robalobadob/hangman/internal/httpserver"
	"github.com/robalobadob/hangman/internal/store"
)

var servePort string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve rounds over HTTP",
	Args:  cobra.NoArgs,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().StringVar(&servePort, "port", "", "listen port (overrides PORT)")
}

func runServe(cmd *cobra.Command, _ []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

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

	srv := httpserver.New(httpserver.Options{
		Store:        store.NewMemoryStore(),
		Words:        list,
		History:      history,
		MaxMisses:    cfg.MaxMisses,
		DailySalt:    cfg.DailySalt,
		ClientOrigin: cfg.ClientOrigin,
	})
	port := cfg.Port
	if servePort != "" {
		port = servePort
	}
	log.Info().Str("port", port).Bool("history", history != nil).Msg("starting hangman server")
	return srv.Start(ctx, ":"+port)
}
