package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"tenantgate/pkg/token"
)

// tokenGenerateCmd represents the token generate command
var tokenGenerateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a token signing key",
	Long: `
Generate a token signing key

Use this command to generate a new Base64-encoded 256 bit key for signing
access tokens. Once generated, this key should be placed into the
environment of the tenantgate server.

Example:

$ export TENANTGATE_TOKEN_KEY="$(tenantgatectl token generate)"
`,
	Run: func(cmd *cobra.Command, args []string) {
		key, err := token.GenerateKey()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to generate key: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("%s", key)
	},
}

func init() {
	tokenCmd.AddCommand(tokenGenerateCmd)
}
