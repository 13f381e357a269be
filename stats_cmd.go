package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var statsLimit int

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show the result history (requires HANGMAN_DB)",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		history, err := openHistory()
		if err != nil {
			return err
		}
		if history == nil {
			return errors.New("no history configured; set HANGMAN_DB")
		}
		defer history.Close()

		sum, err := history.Summarize(cmd.Context())
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "played: %d  won: %d\n", sum.Played, sum.Won)
		if sum.BestMisses >= 0 {
			fmt.Fprintf(out, "best win: %d misses\n", sum.BestMisses)
		}

		recent, err := history.Recent(cmd.Context(), statsLimit)
		if err != nil {
			return err
		}
		for _, r := range recent {
			result := "lost"
			if r.Won {
				result = "won"
			}
			fmt.Fprintf(out, "%s  %-6s  %-4s  %q  guesses=%d misses=%d\n",
				r.CreatedAt.Format("2006-01-02 15:04"), r.Mode, result, r.Answer, r.Guesses, r.Misses)
		}
		return nil
	},
}

func init() {
	statsCmd.Flags().IntVar(&statsLimit, "limit", 10, "number of recent rounds to list")
}
