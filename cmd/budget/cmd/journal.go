package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var journalCategory string

var journalCmd = &cobra.Command{
	Use:   "journal <script.yaml>",
	Short: "Apply a script and list the entries recorded in the journal store",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		book, cleanup, err := loadAndApply(cmd.Context(), args[0])
		defer cleanup()
		if err != nil {
			return err
		}

		entries, err := book.Journal(cmd.Context(), journalCategory)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		for _, e := range entries {
			fmt.Fprintf(out, "%s  %-12s %-23s %10s\n", e.ID, e.Category, e.Description, e.Amount.StringFixed(2))
		}
		return nil
	},
}

func init() {
	journalCmd.Flags().StringVar(&journalCategory, "category", "", "only list entries of this category")
	rootCmd.AddCommand(journalCmd)
}
