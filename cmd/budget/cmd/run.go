package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var runNoChart bool

var runCmd = &cobra.Command{
	Use:   "run <script.yaml>",
	Short: "Apply a script and print every category statement and the spend chart",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		book, cleanup, err := loadAndApply(cmd.Context(), args[0])
		defer cleanup()
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		for _, c := range book.Categories() {
			fmt.Fprintln(out, c.String())
			fmt.Fprintln(out)
		}
		if !runNoChart {
			fmt.Fprintln(out, book.SpendChart())
		}
		return nil
	},
}

func init() {
	runCmd.Flags().BoolVar(&runNoChart, "no-chart", false, "print statements only")
	rootCmd.AddCommand(runCmd)
}
