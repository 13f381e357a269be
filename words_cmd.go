package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var wordsList bool

var wordsCmd = &cobra.Command{
	Use:   "words",
	Short: "Report the loaded word list",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		list, err := loadWords()
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		src := cfg.WordsFile
		if src == "" {
			src = "embedded"
		}
		fmt.Fprintf(out, "%d words (%s)\n", list.Len(), src)
		if wordsList {
			for _, w := range list.Words() {
				fmt.Fprintln(out, w)
			}
		}
		return nil
	},
}

func init() {
	wordsCmd.Flags().BoolVar(&wordsList, "list", false, "print every word")
}
