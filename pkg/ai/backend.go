package ai

import (
	"fmt"

	"github.com/saint0x/tutorialmaker/pkg/anthropic"
	"github.com/saint0x/tutorialmaker/pkg/openai"
)

const (
	ProviderAnthropic = "anthropic"
	ProviderOpenAI    = "openai"
)

// BackendConfig selects and configures a generation service
type BackendConfig struct {
	Provider string
	APIKey   string
	Model    string
	BaseURL  string
}

// NewBackend builds the backend named by cfg.Provider
func NewBackend(cfg BackendConfig) (Backend, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("%s API key is required", cfg.Provider)
	}

	switch cfg.Provider {
	case ProviderAnthropic, "":
		return anthropic.NewClient(cfg.APIKey,
			anthropic.WithModel(cfg.Model),
			anthropic.WithBaseURL(cfg.BaseURL),
		), nil
	case ProviderOpenAI:
		return openai.NewClient(cfg.APIKey,
			openai.WithModel(cfg.Model),
			openai.WithBaseURL(cfg.BaseURL),
		), nil
	default:
		return nil, fmt.Errorf("unknown generation provider %q", cfg.Provider)
	}
}
