package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/saint0x/tutorialmaker/pkg/ai"
)

// Environment holds validated process configuration. It is built once at
// startup and never mutated afterwards.
type Environment struct {
	GitHubToken    string
	GitHubAPIURL   string
	Provider       string
	APIKey         string
	Model          string
	BaseURL        string
	Generation     ai.Settings
	MaxPromptBytes int
	Port           string
	Debug          bool
}

// Backend returns the generation backend settings
func (e *Environment) Backend() ai.BackendConfig {
	return ai.BackendConfig{
		Provider: e.Provider,
		APIKey:   e.APIKey,
		Model:    e.Model,
		BaseURL:  e.BaseURL,
	}
}

// Load reads defaults, then the optional YAML file at path (or
// $TUTORIALMAKER_CONFIG), then environment variables, and validates the
// result. Missing credentials are an error.
func Load(path string) (*Environment, error) {
	if path == "" {
		path = os.Getenv(ConfigEnv)
	}
	file, err := LoadFile(path)
	if err != nil {
		return nil, err
	}

	env := &Environment{
		GitHubToken:    firstEnv("GITHUB_ACCESS_TOKEN", "GITHUB_TOKEN"),
		GitHubAPIURL:   firstNonEmpty(os.Getenv("GITHUB_API_URL"), file.GitHubAPIURL),
		Provider:       firstNonEmpty(os.Getenv("TUTORIALMAKER_PROVIDER"), file.Provider, ai.ProviderAnthropic),
		Model:          firstNonEmpty(os.Getenv("TUTORIALMAKER_MODEL"), file.Model),
		Generation:     ai.DefaultSettings(),
		MaxPromptBytes: file.MaxPromptBytes,
		Port:           firstNonEmpty(os.Getenv("PORT"), file.Port, "8080"),
		Debug:          os.Getenv("DEBUG") == "true" || file.Debug,
	}
	if file.MaxTokens > 0 {
		env.Generation.MaxTokens = file.MaxTokens
	}
	if file.Temperature != nil {
		env.Generation.Temperature = *file.Temperature
	}
	if v := os.Getenv("TUTORIALMAKER_MAX_PROMPT_BYTES"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			return nil, fmt.Errorf("TUTORIALMAKER_MAX_PROMPT_BYTES must be a non-negative integer, got %q", v)
		}
		env.MaxPromptBytes = n
	}

	switch env.Provider {
	case ai.ProviderAnthropic:
		env.APIKey = firstEnv("ANTHROPIC_API_KEY", "CLAUDE_API_KEY")
		env.BaseURL = firstNonEmpty(os.Getenv("ANTHROPIC_BASE_URL"), file.AnthropicBaseURL)
	case ai.ProviderOpenAI:
		env.APIKey = firstEnv("OPENAI_API_KEY")
		env.BaseURL = firstNonEmpty(os.Getenv("OPENAI_BASE_URL"), file.OpenAIBaseURL)
	default:
		return nil, fmt.Errorf("unknown provider %q (want %s or %s)", env.Provider, ai.ProviderAnthropic, ai.ProviderOpenAI)
	}

	if err := env.Validate(); err != nil {
		return nil, err
	}
	return env, nil
}

// Validate checks that both credentials are present and values are sane
func (e *Environment) Validate() error {
	if e.GitHubToken == "" {
		return fmt.Errorf("GITHUB_ACCESS_TOKEN (or GITHUB_TOKEN) not configured")
	}
	if e.APIKey == "" {
		switch e.Provider {
		case ai.ProviderOpenAI:
			return fmt.Errorf("OPENAI_API_KEY not configured")
		default:
			return fmt.Errorf("ANTHROPIC_API_KEY (or CLAUDE_API_KEY) not configured")
		}
	}
	if e.Generation.MaxTokens <= 0 {
		return fmt.Errorf("max_tokens must be positive, got %d", e.Generation.MaxTokens)
	}
	if e.Generation.Temperature < 0 || e.Generation.Temperature > 2 {
		return fmt.Errorf("temperature must be between 0 and 2, got %v", e.Generation.Temperature)
	}
	if e.MaxPromptBytes < 0 {
		return fmt.Errorf("max_prompt_bytes must not be negative, got %d", e.MaxPromptBytes)
	}
	return nil
}

func firstEnv(keys ...string) string {
	for _, k := range keys {
		if v := strings.TrimSpace(os.Getenv(k)); v != "" {
			return v
		}
	}
	return ""
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
