package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	host       string
	adminEmail string
)

var rootCmd = &cobra.Command{
	Use:   "baba-cli",
	Short: "A CLI to interact with the baba-elite server",
	Long: `A command-line interface for making requests to the various endpoints
of the baba-elite application.`,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&host, "host", "http://localhost:8080", "The host address of the server")
	rootCmd.PersistentFlags().StringVar(&adminEmail, "admin-email", "", "Email sent as X-User-Email on admin endpoints")
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Whoops. There was an error while executing your command '%s'", err)
		os.Exit(1)
	}
}

func main() {
	Execute()
}
