package cmd

import (
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/saint0x/tutorialmaker/pkg/ai"
	"github.com/saint0x/tutorialmaker/pkg/config"
	"github.com/saint0x/tutorialmaker/pkg/github"
	"github.com/saint0x/tutorialmaker/pkg/log"
	"github.com/saint0x/tutorialmaker/pkg/tutorial"
	"github.com/spf13/cobra"
)

const githubTimeout = 30 * time.Second

var (
	buildVersion = "dev"
	buildCommit  = "unknown"
	buildDate    = "unknown"
)

var (
	configPath string
	debug      bool
)

var rootCmd = &cobra.Command{
	Use:   "tutorialmaker",
	Short: "Generate beginner tutorials for public GitHub repositories",
	Long: `tutorialmaker reads the top-level layout and README of a GitHub repository
and asks a language model to write a beginner-friendly tutorial about it.

Examples:
	# Run the HTTP service
	tutorialmaker serve

	# Generate a tutorial locally
	tutorialmaker generate https://github.com/octocat/Hello-World

	# Ask a running service instead
	tutorialmaker generate --server http://localhost:8080 https://github.com/octocat/Hello-World

Configuration:
	Credentials come from GITHUB_ACCESS_TOKEN and ANTHROPIC_API_KEY (or
	OPENAI_API_KEY with TUTORIALMAKER_PROVIDER=openai). Other settings may be
	placed in a YAML file passed with --config or $TUTORIALMAKER_CONFIG.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to a YAML config file")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "Enable debug logging (prints every GitHub API call)")
}

// SetBuildInfo records values injected with -ldflags
func SetBuildInfo(version, commit, date string) {
	if version != "" {
		buildVersion = version
	}
	if commit != "" {
		buildCommit = commit
	}
	if date != "" {
		buildDate = date
	}

	rootCmd.Version = fmt.Sprintf("%s (%s) %s", buildVersion, buildCommit, buildDate)
	rootCmd.SetVersionTemplate("{{.Version}}\n")
}

// Main runs the CLI and returns the process exit code
func Main() int {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

// Execute runs the CLI and exits the process
func Execute() {
	os.Exit(Main())
}

// loadEnvironment reads configuration and builds the logger it asks for
func loadEnvironment() (*config.Environment, *log.Logger, error) {
	env, err := config.Load(configPath)
	if err != nil {
		return nil, nil, fmt.Errorf("environment validation failed: %w", err)
	}
	logger := log.New(debug || env.Debug)
	logger.Debug("Provider: %s, max tokens: %d, temperature: %v",
		env.Provider, env.Generation.MaxTokens, env.Generation.Temperature)
	return env, logger, nil
}

// newPipeline wires the GitHub and generation clients into a pipeline
func newPipeline(env *config.Environment, logger *log.Logger) (*tutorial.Pipeline, error) {
	gh, err := github.New(logger, env.GitHubToken,
		github.WithBaseURL(env.GitHubAPIURL),
		github.WithHTTPClient(&http.Client{Timeout: githubTimeout}),
		github.WithVerbose(logger.IsDebug()),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create github client: %w", err)
	}

	backend, err := ai.NewBackend(env.Backend())
	if err != nil {
		return nil, fmt.Errorf("failed to create generation backend: %w", err)
	}
	gen, err := ai.New(logger, backend, env.Generation)
	if err != nil {
		return nil, fmt.Errorf("failed to create generator: %w", err)
	}

	return tutorial.New(logger, gh, gen, tutorial.WithMaxPromptBytes(env.MaxPromptBytes))
}
