package ai

import "context"

const (
	// DefaultMaxTokens bounds the length of a generated tutorial
	DefaultMaxTokens = 2000
	// DefaultTemperature is the sampling temperature sent with every request
	DefaultTemperature = 0.7
)

// Backend is a text-generation service
type Backend interface {
	// Name identifies the service in logs and errors
	Name() string
	Complete(ctx context.Context, prompt string, maxTokens int, temperature float64) (string, error)
}

// Settings are fixed per process, never per request
type Settings struct {
	MaxTokens   int     `json:"max_tokens" yaml:"max_tokens"`
	Temperature float64 `json:"temperature" yaml:"temperature"`
}

// DefaultSettings returns the generation defaults
func DefaultSettings() Settings {
	return Settings{
		MaxTokens:   DefaultMaxTokens,
		Temperature: DefaultTemperature,
	}
}
