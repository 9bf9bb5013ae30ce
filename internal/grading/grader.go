// Package grading is the AI grading capability: build a grading prompt,
// send it to a completion provider, and turn whatever text comes back
// into a structured verdict.
package grading

import (
	"context"
	"fmt"
)

// Grader sends a grading prompt to a language-model completion service
// and returns the raw text of the completion. Implementations bound the
// output length; they do not retry.
type Grader interface {
	Grade(ctx context.Context, prompt string) (string, error)
}

// ProviderError is returned when the completion service itself fails,
// so callers can distinguish "the provider was unreachable" from local
// failures and report 502 rather than 500.
type ProviderError struct {
	Provider string
	Err      error
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("%s grading request failed: %v", e.Provider, e.Err)
}

func (e *ProviderError) Unwrap() error { return e.Err }
