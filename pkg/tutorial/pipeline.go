// Package tutorial runs the tutorial-generation pipeline: parse the URL,
// fetch the top-level listing and README, build the prompt, generate.
//
// Every step runs through a single boundary that turns panics and
// unclassified errors into failure.Unexpected, so callers only ever see
// *failure.Error values. No step is retried.
package tutorial

import (
	"context"
	"errors"
	"fmt"

	"github.com/saint0x/tutorialmaker/pkg/failure"
	"github.com/saint0x/tutorialmaker/pkg/github"
	"github.com/saint0x/tutorialmaker/pkg/log"
	"github.com/saint0x/tutorialmaker/pkg/prompt"
)

// ContentFetcher reads repository material from the hosting service
type ContentFetcher interface {
	FetchListing(ctx context.Context, ref github.RepoRef) (github.Listing, error)
	FetchReadme(ctx context.Context, ref github.RepoRef, path string) (string, error)
}

// TutorialGenerator turns a prompt into tutorial text
type TutorialGenerator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// BuildFunc composes the generation prompt
type BuildFunc func(ref github.RepoRef, readme string, listing github.Listing) string

// Result is the successful outcome of a run
type Result struct {
	Tutorial string `json:"tutorial"`
}

// Pipeline sequences the steps of one tutorial request. It holds no
// per-request state and is safe for concurrent use.
type Pipeline struct {
	logger         *log.Logger
	fetcher        ContentFetcher
	generator      TutorialGenerator
	build          BuildFunc
	maxPromptBytes int
	onStage        func(Stage)
}

// Option configures a Pipeline
type Option func(*Pipeline)

// WithPromptBuilder replaces prompt.Build
func WithPromptBuilder(fn BuildFunc) Option {
	return func(p *Pipeline) {
		if fn != nil {
			p.build = fn
		}
	}
}

// WithMaxPromptBytes rejects prompts longer than n bytes. Zero disables the check.
func WithMaxPromptBytes(n int) Option {
	return func(p *Pipeline) {
		p.maxPromptBytes = n
	}
}

// WithStageHook calls fn on every state the run enters, including Failed
func WithStageHook(fn func(Stage)) Option {
	return func(p *Pipeline) {
		p.onStage = fn
	}
}

// New creates a pipeline over the given collaborators
func New(logger *log.Logger, fetcher ContentFetcher, generator TutorialGenerator, opts ...Option) (*Pipeline, error) {
	if logger == nil {
		return nil, fmt.Errorf("logger is required")
	}
	if fetcher == nil {
		return nil, fmt.Errorf("content fetcher is required")
	}
	if generator == nil {
		return nil, fmt.Errorf("tutorial generator is required")
	}

	p := &Pipeline{
		logger:    logger,
		fetcher:   fetcher,
		generator: generator,
		build:     prompt.Build,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p, nil
}

// Run generates a tutorial for the repository referenced by rawURL
func (p *Pipeline) Run(ctx context.Context, rawURL string) (*Result, error) {
	var (
		ref        github.RepoRef
		listing    github.Listing
		readme     string
		promptText string
		tutorial   string
	)

	steps := []struct {
		to Stage
		fn func() error
	}{
		{Parsed, func() error {
			var err error
			ref, err = github.ParseRepoURL(rawURL)
			return err
		}},
		{ListingFetched, func() error {
			p.logger.Step("Fetching contents of %s...", ref)
			var err error
			listing, err = p.fetcher.FetchListing(ctx, ref)
			return err
		}},
		{ReadmeResolved, func() error {
			readme = p.resolveReadme(ctx, ref, listing)
			return nil
		}},
		{PromptBuilt, func() error {
			promptText = p.build(ref, readme, listing)
			if p.maxPromptBytes > 0 && len(promptText) > p.maxPromptBytes {
				return failure.New(failure.PromptTooLarge, PromptBuilt.op(),
					fmt.Errorf("prompt is %d bytes, limit is %d", len(promptText), p.maxPromptBytes))
			}
			return nil
		}},
		{Generated, func() error {
			p.logger.Loading("Generating tutorial for %s...", ref)
			var err error
			tutorial, err = p.generator.Generate(ctx, promptText)
			return err
		}},
	}

	p.enter(Start)
	for _, s := range steps {
		if err := p.step(s.to, s.fn); err != nil {
			p.enter(Failed)
			p.logger.Error("Tutorial generation failed at %s: %v", s.to.op(), err)
			return nil, err
		}
		p.enter(s.to)
	}
	p.enter(Done)

	p.logger.Success("Generated tutorial for %s (%d bytes)", ref, len(tutorial))
	return &Result{Tutorial: tutorial}, nil
}

// resolveReadme returns the README text, or "" when there is none or it
// cannot be read.
func (p *Pipeline) resolveReadme(ctx context.Context, ref github.RepoRef, listing github.Listing) string {
	entry, ok := listing.FindReadme()
	if !ok {
		p.logger.Info("No README found in %s", ref)
		return ""
	}

	text, err := p.fetcher.FetchReadme(ctx, ref, entry.Path)
	if err != nil {
		p.logger.Warning("Ignoring unreadable README %s: %v", entry.Path, err)
		return ""
	}
	p.logger.Debug("README %s is %d bytes", entry.Path, len(text))
	return text
}

// step runs fn as the transition into stage. Panics and unclassified
// errors are reported as failure.Unexpected.
func (p *Pipeline) step(stage Stage, fn func() error) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = failure.New(failure.Unexpected, stage.op(), fmt.Errorf("panic: %v", r))
		}
	}()

	if err := fn(); err != nil {
		var fe *failure.Error
		if errors.As(err, &fe) {
			return err
		}
		return failure.New(failure.Unexpected, stage.op(), err)
	}
	return nil
}

func (p *Pipeline) enter(s Stage) {
	if p.onStage != nil {
		p.onStage(s)
	}
}
