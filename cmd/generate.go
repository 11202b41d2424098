package cmd

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/saint0x/tutorialmaker/pkg/server"
	"github.com/saint0x/tutorialmaker/pkg/tutorial"
	"github.com/spf13/cobra"
)

const remoteTimeout = 5 * time.Minute

var generateServer string

var generateCmd = &cobra.Command{
	Use:   "generate <repository-url>",
	Short: "Generate a tutorial and print it to stdout",
	Long: `Generate a tutorial for a GitHub repository.

By default the pipeline runs in this process and needs the same credentials
as serve. With --server the request is sent to a running service instead.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var (
			res *tutorial.Result
			err error
		)
		if generateServer != "" {
			res, err = generateRemote(generateServer, args[0])
		} else {
			res, err = generateLocal(cmd, args[0])
		}
		if err != nil {
			return err
		}

		fmt.Fprintln(cmd.OutOrStdout(), res.Tutorial)
		return nil
	},
}

func init() {
	generateCmd.Flags().StringVar(&generateServer, "server", "", "Base URL of a running tutorialmaker service")
	rootCmd.AddCommand(generateCmd)
}

func generateLocal(cmd *cobra.Command, repoURL string) (*tutorial.Result, error) {
	env, logger, err := loadEnvironment()
	if err != nil {
		return nil, err
	}
	pipeline, err := newPipeline(env, logger)
	if err != nil {
		return nil, err
	}
	return pipeline.Run(cmd.Context(), repoURL)
}

func generateRemote(baseURL, repoURL string) (*tutorial.Result, error) {
	data, err := json.Marshal(server.GenerateRequest{URL: repoURL})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	client := &http.Client{Timeout: remoteTimeout}
	endpoint := strings.TrimSuffix(baseURL, "/") + server.GeneratePath
	resp, err := client.Post(endpoint, "application/json", bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to reach server: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		var e server.ErrorBody
		if err := json.Unmarshal(body, &e); err != nil || e.Error.Message == "" {
			return nil, fmt.Errorf("server returned error status %d: %s", resp.StatusCode, string(body))
		}
		if e.Error.Kind != "" {
			return nil, fmt.Errorf("%s (%s)", e.Error.Message, e.Error.Kind)
		}
		return nil, fmt.Errorf("%s", e.Error.Message)
	}

	var res tutorial.Result
	if err := json.Unmarshal(body, &res); err != nil {
		return nil, fmt.Errorf("failed to parse server response: %w", err)
	}
	return &res, nil
}
