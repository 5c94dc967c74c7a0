package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gorm.io/gorm"

	"tenantgate/pkg/db"
	"tenantgate/pkg/seed"
	gormstore "tenantgate/pkg/server/store/gorm"
)

// seedLoadCmd represents the seed load command
var seedLoadCmd = &cobra.Command{
	Use:   "load <file>",
	Short: "Apply a seed document",
	Long: `Apply a seed document.

Creates the document's administrators, companies and owners. Entries
that already exist are skipped, so re-applying a document is safe. The
API keys of newly created users are output to STDOUT.

Example:
  tenantgatectl seed load bootstrap.yml`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		database, err := db.Connect(db.Config{})
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to connect to DB: %v\n", err)
			os.Exit(1)
		}

		if err := loadSeedFromPath(database, args[0]); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to apply seed document: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	seedCmd.AddCommand(seedLoadCmd)
}

func loadSeedFromPath(database *gorm.DB, path string) error {
	doc, err := seed.ParseFile(path)
	if err != nil {
		return err
	}

	companies := gormstore.NewCompaniesStore(database)
	users := gormstore.NewUsersStore(database)

	result, err := seed.Apply(doc, companies, users)
	if err != nil {
		return err
	}

	fmt.Fprintf(os.Stderr, "Seed applied: %d created, %d skipped\n", result.Created, result.Skipped)
	for email, apiKey := range result.APIKeys {
		fmt.Printf("API key for %s: %s\n", email, apiKey)
	}
	return nil
}
