package ai

import (
	"context"
	"fmt"
	"unicode/utf8"

	"github.com/kaamkhoj/kaamkhoj/internal/extract"
	"github.com/kaamkhoj/kaamkhoj/internal/lexicon"
	"github.com/kaamkhoj/kaamkhoj/internal/logger"
	"go.uber.org/zap"
)

const defaultMaxLogLength = 200

// Extractor runs single-field extraction through a generative model:
// prompt build, generation, defensive parse. Every failure mode it can
// encounter (transport, timeout, unparseable output, null value) comes back
// as an error the orchestrator recovers from by falling back to rules.
type Extractor struct {
	generator Generator
	logger    *zap.Logger
	maxLogLen int
}

// NewExtractor wires a provider into the extraction adapter.
func NewExtractor(generator Generator, logger *zap.Logger, maxLogLength int) *Extractor {
	if maxLogLength <= 0 {
		maxLogLength = defaultMaxLogLength
	}
	return &Extractor{
		generator: generator,
		logger:    logger,
		maxLogLen: maxLogLength,
	}
}

// ExtractField asks the model for the field's value in the utterance. The
// returned value is raw model output (trimmed); validation against field
// bounds stays with the caller.
func (e *Extractor) ExtractField(ctx context.Context, text string, field extract.Field, lang lexicon.Language) (string, error) {
	prompt := BuildPrompt(field, lang, text)

	e.logger.Debug("model extraction request",
		zap.String("field", string(field)),
		zap.String("language", string(lang)),
		zap.String("model", e.generator.Model()),
		zap.Int("prompt_length", utf8.RuneCountInString(prompt)),
	)

	raw, err := e.generator.GenerateContent(ctx, prompt)
	if err != nil {
		return "", fmt.Errorf("generate: %w", err)
	}

	e.logger.Debug("model extraction response",
		zap.String("field", string(field)),
		zap.String("response_preview", logger.TruncateForLog(raw, e.maxLogLen)),
	)

	value, ok := ParseFieldValue(raw, field)
	if !ok {
		return "", fmt.Errorf("field %s: %w", field, ErrNoValue)
	}

	return value, nil
}
