package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// ConfigEnv names the environment variable holding the config file path
const ConfigEnv = "TUTORIALMAKER_CONFIG"

// FileConfig is the optional YAML configuration file. Credentials are only
// read from the environment.
type FileConfig struct {
	Provider         string   `yaml:"provider,omitempty"`
	Model            string   `yaml:"model,omitempty"`
	MaxTokens        int      `yaml:"max_tokens,omitempty"`
	Temperature      *float64 `yaml:"temperature,omitempty"`
	MaxPromptBytes   int      `yaml:"max_prompt_bytes,omitempty"`
	Port             string   `yaml:"port,omitempty"`
	Debug            bool     `yaml:"debug,omitempty"`
	GitHubAPIURL     string   `yaml:"github_api_url,omitempty"`
	AnthropicBaseURL string   `yaml:"anthropic_base_url,omitempty"`
	OpenAIBaseURL    string   `yaml:"openai_base_url,omitempty"`
}

// LoadFile parses the YAML file at path. An empty path yields a zero config.
func LoadFile(path string) (*FileConfig, error) {
	if path == "" {
		return &FileConfig{}, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg FileConfig
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	return &cfg, nil
}
