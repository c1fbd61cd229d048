// storectl is the operator CLI: account management against the same
// database the server uses.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "storectl",
	Short: "Storefront operator CLI",
	Long: `storectl manages storefront accounts from the command line.

It connects to the same database as the server, so changes are visible
immediately. Configuration is read from config/config.yaml with the same
environment-variable overrides the server honors.`,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
