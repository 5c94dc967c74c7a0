package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"tenantgate/pkg/db"
	gormstore "tenantgate/pkg/server/store/gorm"
)

// companyCreateCmd represents the company create command
var companyCreateCmd = &cobra.Command{
	Use:   "create [name]",
	Short: "Create a company",
	Long: `Create a company.

The company id is output to STDOUT; pass it to the user endpoints or to
'tenantgatectl seed' documents to provision owners.

Example:
  tenantgatectl company create Acme`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		name := args[0]

		database, err := db.Connect(db.Config{})
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to connect to DB: %v\n", err)
			os.Exit(1)
		}

		companies := gormstore.NewCompaniesStore(database)
		company, err := companies.CreateCompany(name)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to create company: %v\n", err)
			os.Exit(1)
		}

		fmt.Fprintf(os.Stderr, "Created company '%s'\n", name)
		fmt.Println(company.ID)
	},
}

func init() {
	companyCmd.AddCommand(companyCreateCmd)
}
