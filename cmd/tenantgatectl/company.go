package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// companyCmd represents the company command
var companyCmd = &cobra.Command{
	Use:   "company",
	Short: "Manage companies",
	Long:  `Manage companies.`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("error: Command 'company' requires a subcommand (create)")
		fmt.Println()
		_ = cmd.Help()
		os.Exit(1)
	},
}

func init() {
	rootCmd.AddCommand(companyCmd)
}
