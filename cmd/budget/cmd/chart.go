package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var chartCmd = &cobra.Command{
	Use:   "chart <script.yaml>",
	Short: "Apply a script and print the spend chart",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		book, cleanup, err := loadAndApply(cmd.Context(), args[0])
		defer cleanup()
		if err != nil {
			return err
		}

		fmt.Fprintln(cmd.OutOrStdout(), book.SpendChart())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(chartCmd)
}
