package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"tenantgate/pkg/db"
	"tenantgate/pkg/server/store"
	gormstore "tenantgate/pkg/server/store/gorm"
)

// adminCreateCmd represents the admin create command
var adminCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create an administrator",
	Long: `Create an administrator.

Administrators belong to no company and may manage all companies and
their users. The new administrator's API key is output to STDOUT; it
cannot be recovered later.

Example:
  tenantgatectl admin create --name Root --email root@example.com`,
	Run: func(cmd *cobra.Command, args []string) {
		name, _ := cmd.Flags().GetString("name")
		email, _ := cmd.Flags().GetString("email")

		apiKey, err := createAdministrator(name, email)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to create administrator: %v\n", err)
			os.Exit(1)
		}

		fmt.Fprintf(os.Stderr, "Created administrator '%s'\n", email)
		fmt.Printf("API key for %s: %s\n", email, apiKey)
	},
}

func init() {
	adminCmd.AddCommand(adminCreateCmd)
	adminCreateCmd.Flags().StringP("name", "n", "", "Administrator display name")
	adminCreateCmd.Flags().StringP("email", "e", "", "Administrator email (login)")
	_ = adminCreateCmd.MarkFlagRequired("name")
	_ = adminCreateCmd.MarkFlagRequired("email")
}

func createAdministrator(name, email string) (string, error) {
	database, err := db.Connect(db.Config{})
	if err != nil {
		return "", err
	}

	users := gormstore.NewUsersStore(database)
	_, apiKey, err := users.CreateAdministrator(store.Profile{Name: name, Email: email})
	if err != nil {
		if errors.Is(err, store.ErrDuplicateEmail) {
			return "", fmt.Errorf("a user with email '%s' already exists", email)
		}
		return "", err
	}
	return apiKey, nil
}
