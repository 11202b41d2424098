package ai

import (
	"testing"
)

func TestNewBackend(t *testing.T) {
	tests := []struct {
		name      string
		cfg       BackendConfig
		wantName  string
		wantError bool
	}{
		{name: "default provider", cfg: BackendConfig{APIKey: "k"}, wantName: "anthropic"},
		{name: "anthropic", cfg: BackendConfig{Provider: ProviderAnthropic, APIKey: "k"}, wantName: "anthropic"},
		{name: "openai", cfg: BackendConfig{Provider: ProviderOpenAI, APIKey: "k", Model: "gpt-4o"}, wantName: "openai"},
		{name: "missing key", cfg: BackendConfig{Provider: ProviderOpenAI}, wantError: true},
		{name: "unknown provider", cfg: BackendConfig{Provider: "llama", APIKey: "k"}, wantError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, err := NewBackend(tt.cfg)
			if tt.wantError {
				if err == nil {
					t.Error("NewBackend() error = nil, want error")
				}
				return
			}
			if err != nil {
				t.Fatalf("NewBackend() error = %v", err)
			}
			if b.Name() != tt.wantName {
				t.Errorf("Name() = %q, want %q", b.Name(), tt.wantName)
			}
		})
	}
}
