package main

import (
	"os"

	"github.com/sheikh-saqib/budget-ledger/cmd/budget/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
