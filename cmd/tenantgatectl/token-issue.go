package main

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"tenantgate/pkg/config"
	"tenantgate/pkg/db"
	"tenantgate/pkg/rbac"
	"tenantgate/pkg/server/store"
	gormstore "tenantgate/pkg/server/store/gorm"
	"tenantgate/pkg/token"
)

// tokenIssueCmd represents the token issue command
var tokenIssueCmd = &cobra.Command{
	Use:   "issue EMAIL",
	Short: "Issue an access token for a user",
	Long: `Issue an access token for a user.

Mints a signed access token for the user with the given email, without
going through the /authenticate endpoint. Requires TENANTGATE_TOKEN_KEY
to hold the same signing key as the server.

Example:
  tenantgatectl token issue root@example.com`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		raw, err := issueToken(args[0])
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to issue token: %v\n", err)
			os.Exit(1)
		}
		fmt.Println(raw)
	},
}

func init() {
	tokenCmd.AddCommand(tokenIssueCmd)
}

func issueToken(email string) (string, error) {
	key, err := token.KeyFromEnv()
	if err != nil {
		return "", err
	}

	cfg, err := config.Load()
	if err != nil {
		return "", err
	}

	signer, err := token.NewSigner(key, cfg.TokenLifetime())
	if err != nil {
		return "", err
	}

	database, err := db.Connect(db.Config{})
	if err != nil {
		return "", err
	}

	users := gormstore.NewUsersStore(database)
	user, err := users.FetchUserByEmail(email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return "", fmt.Errorf("no user with email '%s'", email)
		}
		return "", err
	}

	principal, err := rbac.NewPrincipal(user.ID, user.Email, user.Role, user.CompanyID)
	if err != nil {
		return "", err
	}
	return signer.Issue(principal, time.Now())
}
