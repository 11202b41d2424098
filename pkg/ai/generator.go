package ai

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/saint0x/tutorialmaker/pkg/failure"
	"github.com/saint0x/tutorialmaker/pkg/log"
)

// Generator turns a prompt into tutorial text
type Generator struct {
	logger   *log.Logger
	backend  Backend
	settings Settings
}

// New creates a new Generator instance
func New(logger *log.Logger, backend Backend, settings Settings) (*Generator, error) {
	if logger == nil {
		return nil, fmt.Errorf("logger is required")
	}
	if backend == nil {
		return nil, fmt.Errorf("generation backend is required")
	}
	if settings.MaxTokens <= 0 {
		settings.MaxTokens = DefaultMaxTokens
	}

	return &Generator{
		logger:   logger,
		backend:  backend,
		settings: settings,
	}, nil
}

// Generate sends prompt to the backend and returns the trimmed completion.
// An empty completion is an error.
func (g *Generator) Generate(ctx context.Context, prompt string) (string, error) {
	g.logger.Debug("Requesting completion from %s (%d bytes, max_tokens=%d, temperature=%.2f)",
		g.backend.Name(), len(prompt), g.settings.MaxTokens, g.settings.Temperature)

	text, err := g.backend.Complete(ctx, prompt, g.settings.MaxTokens, g.settings.Temperature)
	if err != nil {
		var fe *failure.Error
		if errors.As(err, &fe) {
			return "", err
		}
		return "", failure.Remote(g.backend.Name(), "generate", fmt.Errorf("failed to generate tutorial: %w", err))
	}

	text = strings.TrimSpace(text)
	if text == "" {
		return "", failure.New(failure.EmptyCompletion, "generate",
			fmt.Errorf("%s returned no usable text", g.backend.Name()))
	}

	return text, nil
}
