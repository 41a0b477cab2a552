package main

import (
	"os"

	"github.com/spf13/cobra"

	"secretsanta/internal/interfaces/cli/migrate"
	"secretsanta/internal/interfaces/cli/server"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "secretsanta",
		Short: "Secret Santa - pool notifications service",
		Long:  `Secret Santa serves the pool manage pages and sends the matching, reminder and link emails.`,
	}

	rootCmd.AddCommand(
		server.NewCommand(),
		migrate.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
