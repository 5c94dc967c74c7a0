package main

import (
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "tenantgatectl",
	Short: "Run and manage the tenantgate server",
	Long: `tenantgatectl runs the tenantgate API server and manages its
database, administrators, companies and seed documents.`,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func main() {
	Execute()
}
