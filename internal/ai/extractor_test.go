package ai

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/kaamkhoj/kaamkhoj/internal/extract"
	"github.com/kaamkhoj/kaamkhoj/internal/lexicon"
	"go.uber.org/zap"
)

type stubGenerator struct {
	response string
	err      error
	prompts  []string
}

func (s *stubGenerator) GenerateContent(_ context.Context, prompt string) (string, error) {
	s.prompts = append(s.prompts, prompt)
	return s.response, s.err
}

func (s *stubGenerator) Model() string { return "stub" }

func TestExtractField(t *testing.T) {
	t.Parallel()

	gen := &stubGenerator{response: `{"name":"Ramesh Kumar"}`}
	ex := NewExtractor(gen, zap.NewNop(), 0)

	value, err := ex.ExtractField(context.Background(), "my name is Ramesh Kumar", extract.FieldName, lexicon.EnglishIN)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if value != "Ramesh Kumar" {
		t.Fatalf("unexpected value: %q", value)
	}
	if len(gen.prompts) != 1 {
		t.Fatalf("expected exactly one generation, got %d", len(gen.prompts))
	}
}

func TestExtractFieldGenerateError(t *testing.T) {
	t.Parallel()

	gen := &stubGenerator{err: errors.New("connection refused")}
	ex := NewExtractor(gen, zap.NewNop(), 0)

	if _, err := ex.ExtractField(context.Background(), "hello", extract.FieldName, lexicon.EnglishIN); err == nil {
		t.Fatal("expected error from failing provider")
	}
}

func TestExtractFieldNoValue(t *testing.T) {
	t.Parallel()

	gen := &stubGenerator{response: `{"name":null}`}
	ex := NewExtractor(gen, zap.NewNop(), 0)

	_, err := ex.ExtractField(context.Background(), "what is a name", extract.FieldName, lexicon.EnglishIN)
	if !errors.Is(err, ErrNoValue) {
		t.Fatalf("expected ErrNoValue, got %v", err)
	}
}

func TestBuildPromptLanguage(t *testing.T) {
	t.Parallel()

	en := BuildPrompt(extract.FieldAge, lexicon.EnglishIN, "I am 25")
	if en == "" || !containsAll(en, `"age"`, "I am 25") {
		t.Fatalf("english prompt missing key or input: %q", en)
	}

	hi := BuildPrompt(extract.FieldAge, lexicon.HindiIN, "मैं 25 साल का हूं")
	if !containsAll(hi, `"age"`, "मैं 25 साल का हूं", "उम्र") {
		t.Fatalf("hindi prompt missing key, input or subject: %q", hi)
	}
}

func containsAll(s string, subs ...string) bool {
	for _, sub := range subs {
		if !strings.Contains(s, sub) {
			return false
		}
	}
	return true
}
