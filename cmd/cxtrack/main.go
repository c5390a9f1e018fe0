package main

import (
	"os"

	"github.com/spf13/cobra"

	"cxtrack/internal/interfaces/cli/migrate"
	"cxtrack/internal/interfaces/cli/server"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "cxtrack",
		Short: "cxtrack - multi-tenant CRM entitlement service",
		Long:  `cxtrack resolves per-organization module visibility, plan entitlements, free-trial windows, and member permissions for the CRM frontend.`,
	}

	rootCmd.AddCommand(
		server.NewCommand(),
		migrate.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
