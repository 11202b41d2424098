package failure

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"testing"
)

func TestKindOf(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want Kind
	}{
		{name: "nil", err: nil, want: ""},
		{name: "classified", err: New(NotADirectory, "fetch listing", nil), want: NotADirectory},
		{name: "wrapped classified", err: fmt.Errorf("outer: %w", New(EmptyCompletion, "generate", nil)), want: EmptyCompletion},
		{name: "plain error", err: io.ErrUnexpectedEOF, want: Unexpected},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := KindOf(tt.err); got != tt.want {
				t.Errorf("KindOf() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestErrorMessageAndUnwrap(t *testing.T) {
	cause := errors.New("connection refused")
	err := Remote("github", "fetch listing", cause)

	msg := err.Error()
	for _, want := range []string{"fetch listing", "RemoteServiceFailure", "github", "connection refused"} {
		if !strings.Contains(msg, want) {
			t.Errorf("Error() = %q, missing %q", msg, want)
		}
	}
	if !errors.Is(err, cause) {
		t.Error("errors.Is(err, cause) = false, want true")
	}
}

func TestPublicMessage(t *testing.T) {
	tests := []struct {
		err  error
		want string
	}{
		{New(InvalidRepositoryURL, "parse", nil), "Invalid GitHub URL"},
		{New(NotADirectory, "fetch listing", nil), "Unable to fetch repository contents"},
		{Remote("github", "fetch listing", nil), "Unable to fetch repository contents"},
		{Remote("anthropic", "generate", nil), "Failed to generate tutorial"},
		{New(EmptyCompletion, "generate", nil), "Failed to generate tutorial"},
		{errors.New("boom"), "An unexpected error occurred"},
	}

	for _, tt := range tests {
		if got := PublicMessage(tt.err); got != tt.want {
			t.Errorf("PublicMessage(%v) = %q, want %q", tt.err, got, tt.want)
		}
	}
}

func TestIsClientError(t *testing.T) {
	if !IsClientError(InvalidRepositoryURL) {
		t.Error("IsClientError(InvalidRepositoryURL) = false, want true")
	}
	for _, k := range []Kind{NotADirectory, RemoteServiceFailure, EmptyCompletion, PromptTooLarge, Unexpected} {
		if IsClientError(k) {
			t.Errorf("IsClientError(%q) = true, want false", k)
		}
	}
}
