// Package ai holds the LLM extraction path: provider-agnostic generation,
// strict single-key JSON prompts per field and language, and defensive
// parsing of whatever the model actually returns.
package ai

import (
	"context"
	"errors"
)

// Generator produces raw text for a prompt. Implemented by the ollama and
// gemini providers.
type Generator interface {
	GenerateContent(ctx context.Context, prompt string) (string, error)
	Model() string
}

// Prober is implemented by providers that can report availability with a
// lightweight health check.
type Prober interface {
	Available(ctx context.Context) bool
}

// ErrNoValue means the model answered but no usable value for the expected
// key could be recovered. Like transport errors it is recoverable: the
// caller falls back to rule-based extraction.
var ErrNoValue = errors.New("no value extracted from model response")
