// corusctl is an operator CLI for the Corus API. It drives the same client
// package the site uses, so fallback behavior and admin auth can be exercised
// from a terminal.
package main

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"corus-backend/internal/client"

	"github.com/spf13/cobra"
)

var (
	flagBaseURL string
	flagToken   string
	flagMock    bool
	flagTimeout time.Duration

	api client.API
)

var rootCmd = &cobra.Command{
	Use:   "corusctl",
	Short: "Operator CLI for the Corus API",
	Long: `corusctl talks to the Corus backend through the shared API client.

Public reads fall back to the bundled dataset when the backend is down, so
the CLI always prints something; admin commands need a token (--token or
CORUS_API_TOKEN) or a prior login on the same invocation.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if flagMock {
			api = client.NewMock(0)
			return nil
		}
		baseURL := flagBaseURL
		if baseURL == "" {
			baseURL = os.Getenv("CORUS_API_URL")
		}
		if baseURL == "" {
			baseURL = "http://localhost:8080"
		}
		token := flagToken
		if token == "" {
			token = os.Getenv("CORUS_API_TOKEN")
		}
		live, err := client.New(client.Config{
			BaseURL: baseURL,
			Token:   token,
			Timeout: flagTimeout,
		})
		if err != nil {
			return err
		}
		api = live
		return nil
	},
}

func main() {
	rootCmd.PersistentFlags().StringVar(&flagBaseURL, "base-url", "", "API origin (default CORUS_API_URL or http://localhost:8080)")
	rootCmd.PersistentFlags().StringVar(&flagToken, "token", "", "bearer token for admin commands (default CORUS_API_TOKEN)")
	rootCmd.PersistentFlags().BoolVar(&flagMock, "mock", false, "use the offline mock client instead of the live API")
	rootCmd.PersistentFlags().DurationVar(&flagTimeout, "timeout", 0, "per-request timeout (default 30s)")

	rootCmd.AddCommand(menusCmd, solutionsCmd, industriesCmd, blogsCmd, caseStudiesCmd, statsCmd, slotsCmd)
	rootCmd.AddCommand(loginCmd, dashboardCmd, subscribersCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func printJSON(v interface{}) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(out))
	return nil
}
