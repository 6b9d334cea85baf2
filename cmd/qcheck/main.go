package main

import (
	"os"

	"github.com/spf13/cobra"

	"qcheck/internal/interfaces/cli/migrate"
	"qcheck/internal/interfaces/cli/server"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "qcheck",
		Short: "qcheck - factory quality checklist service",
		Long:  `qcheck runs quality inspection checklists on the factory floor: start and submit checklists, track action plans for NOK points, and serve quality statistics.`,
	}

	rootCmd.AddCommand(
		server.NewCommand(),
		migrate.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
