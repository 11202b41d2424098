package cmd

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/saint0x/tutorialmaker/pkg/server"
	"github.com/spf13/cobra"
)

var checkServer string

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Check that a tutorialmaker service is running",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		client := &http.Client{Timeout: 10 * time.Second}
		resp, err := client.Get(strings.TrimSuffix(checkServer, "/") + server.HealthPath)
		if err != nil {
			return fmt.Errorf("server is not running: %w", err)
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			return fmt.Errorf("server returned non-OK status: %d", resp.StatusCode)
		}

		fmt.Fprintln(cmd.OutOrStdout(), "Server is running!")
		return nil
	},
}

func init() {
	checkCmd.Flags().StringVar(&checkServer, "server", "http://localhost:8080", "Base URL of the service")
	rootCmd.AddCommand(checkCmd)
}
