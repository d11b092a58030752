package main

import (
	"os"

	"github.com/spf13/cobra"

	"ministryshare/internal/interfaces/cli/migrate"
	"ministryshare/internal/interfaces/cli/server"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "ministryshare",
		Short: "MinistryShare - church resource sharing platform",
		Long:  `MinistryShare lets churches catalog their music and library resources and lend them to one another.`,
	}

	rootCmd.AddCommand(
		server.NewCommand(),
		migrate.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
