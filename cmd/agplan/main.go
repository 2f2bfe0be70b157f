package main

import (
	"fmt"
	"os"

	"github.com/tbickford/agplan/internal/cli"
	"github.com/tbickford/agplan/internal/plan"
	"github.com/tbickford/agplan/internal/tui"
)

func main() {
	// If no args, launch TUI; otherwise route to CLI
	if len(os.Args) == 1 {
		if err := tui.Run(plan.DefaultWorkspace); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	} else {
		if err := cli.Execute(); err != nil {
			os.Exit(1)
		}
	}
}
