package ai

import (
	"context"
	"io"
	"testing"

	"github.com/saint0x/tutorialmaker/pkg/failure"
	"github.com/saint0x/tutorialmaker/pkg/log"
)

// mockBackend implements Backend for testing
type mockBackend struct {
	response    string
	err         error
	prompt      string
	maxTokens   int
	temperature float64
}

func (m *mockBackend) Name() string { return "mock" }

func (m *mockBackend) Complete(_ context.Context, prompt string, maxTokens int, temperature float64) (string, error) {
	m.prompt = prompt
	m.maxTokens = maxTokens
	m.temperature = temperature
	return m.response, m.err
}

func TestGenerate(t *testing.T) {
	backend := &mockBackend{response: "\n  This is Widgets.\n\n"}
	gen, err := New(log.Discard(), backend, DefaultSettings())
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	got, err := gen.Generate(context.Background(), "prompt text")
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	if got != "This is Widgets." {
		t.Errorf("Generate() = %q, want trimmed text", got)
	}
	if backend.prompt != "prompt text" {
		t.Errorf("backend prompt = %q", backend.prompt)
	}
	if backend.maxTokens != DefaultMaxTokens || backend.temperature != DefaultTemperature {
		t.Errorf("backend settings = (%d, %v), want defaults", backend.maxTokens, backend.temperature)
	}
}

func TestGenerate_EmptyCompletion(t *testing.T) {
	for _, resp := range []string{"", "   \n\t "} {
		gen, _ := New(log.Discard(), &mockBackend{response: resp}, DefaultSettings())
		_, err := gen.Generate(context.Background(), "p")
		if !failure.Is(err, failure.EmptyCompletion) {
			t.Errorf("Generate() with %q: error = %v, want %s", resp, err, failure.EmptyCompletion)
		}
	}
}

func TestGenerate_Error(t *testing.T) {
	gen, _ := New(log.Discard(), &mockBackend{err: io.ErrUnexpectedEOF}, DefaultSettings())

	_, err := gen.Generate(context.Background(), "p")
	if !failure.Is(err, failure.RemoteServiceFailure) {
		t.Fatalf("Generate() error = %v, want %s", err, failure.RemoteServiceFailure)
	}
	if got := failure.ServiceOf(err); got != "mock" {
		t.Errorf("ServiceOf() = %q, want mock", got)
	}
}

func TestNew_Validation(t *testing.T) {
	if _, err := New(nil, &mockBackend{}, DefaultSettings()); err == nil {
		t.Error("New() with nil logger: error = nil")
	}
	if _, err := New(log.Discard(), nil, DefaultSettings()); err == nil {
		t.Error("New() with nil backend: error = nil")
	}

	backend := &mockBackend{response: "ok"}
	gen, err := New(log.Discard(), backend, Settings{Temperature: 0.2})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if _, err := gen.Generate(context.Background(), "p"); err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	if backend.maxTokens != DefaultMaxTokens || backend.temperature != 0.2 {
		t.Errorf("backend settings = (%d, %v)", backend.maxTokens, backend.temperature)
	}
}
