// Package failure classifies everything that can go wrong while generating a
// tutorial. Components return *Error values; the pipeline treats any other
// error as UnexpectedError.
package failure

import (
	"errors"
	"fmt"
)

// Kind is the classification code attached to a failure.
type Kind string

const (
	InvalidRepositoryURL Kind = "InvalidRepositoryUrl"
	NotADirectory        Kind = "NotADirectory"
	RemoteServiceFailure Kind = "RemoteServiceFailure"
	EmptyCompletion      Kind = "EmptyCompletion"
	PromptTooLarge       Kind = "PromptTooLarge"
	Unexpected           Kind = "UnexpectedError"
)

// Error is a classified failure.
type Error struct {
	Kind Kind
	// Op names the step that failed, e.g. "fetch listing".
	Op string
	// Service is set for RemoteServiceFailure ("github", "anthropic", "openai").
	Service string
	Err     error
}

// New returns a classified error for op.
func New(kind Kind, op string, err error) *Error {
	return &Error{Kind: kind, Op: op, Err: err}
}

// Remote returns a RemoteServiceFailure for the named service.
func Remote(service, op string, err error) *Error {
	return &Error{Kind: RemoteServiceFailure, Op: op, Service: service, Err: err}
}

func (e *Error) Error() string {
	msg := string(e.Kind)
	if e.Service != "" {
		msg += " (" + e.Service + ")"
	}
	if e.Op != "" {
		msg = e.Op + ": " + msg
	}
	if e.Err != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Err)
	}
	return msg
}

func (e *Error) Unwrap() error {
	return e.Err
}

// KindOf reports the classification of err. Errors that were never
// classified report Unexpected; a nil error reports "".
func KindOf(err error) Kind {
	if err == nil {
		return ""
	}
	var fe *Error
	if errors.As(err, &fe) {
		return fe.Kind
	}
	return Unexpected
}

// Is reports whether err is classified as kind.
func Is(err error, kind Kind) bool {
	return err != nil && KindOf(err) == kind
}

// IsClientError reports whether kind is caused by caller input rather than
// by server-side processing.
func IsClientError(kind Kind) bool {
	return kind == InvalidRepositoryURL
}

// ServiceOf returns the remote service recorded on err, if any.
func ServiceOf(err error) string {
	var fe *Error
	if errors.As(err, &fe) {
		return fe.Service
	}
	return ""
}

// PublicMessage is the message shown to callers for err. Causes stay in
// the logs.
func PublicMessage(err error) string {
	switch KindOf(err) {
	case InvalidRepositoryURL:
		return "Invalid GitHub URL"
	case NotADirectory:
		return "Unable to fetch repository contents"
	case RemoteServiceFailure:
		if ServiceOf(err) == "github" {
			return "Unable to fetch repository contents"
		}
		return "Failed to generate tutorial"
	case EmptyCompletion:
		return "Failed to generate tutorial"
	case PromptTooLarge:
		return "Repository material is too large to generate a tutorial"
	default:
		return "An unexpected error occurred"
	}
}
