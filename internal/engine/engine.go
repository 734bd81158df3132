// Package engine orchestrates slot filling for one utterance: resolve the
// language, try the model path when the model service is reachable, fall
// back to rule-based extraction, and build a localized reply.
package engine

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/kaamkhoj/kaamkhoj/internal/ai"
	"github.com/kaamkhoj/kaamkhoj/internal/extract"
	"github.com/kaamkhoj/kaamkhoj/internal/lexicon"
	"github.com/kaamkhoj/kaamkhoj/internal/session"
	"github.com/kaamkhoj/kaamkhoj/internal/utils"
)

// DefaultReprobeInterval is how often the model service is re-probed when
// no interval is configured. Probing only at startup permanently benches a
// service that was down for a single restart.
const DefaultReprobeInterval = 60 * time.Second

// FieldExtractor is the model-backed extraction path. Satisfied by
// ai.Extractor; declared here so tests can stub the model away.
type FieldExtractor interface {
	ExtractField(ctx context.Context, text string, field extract.Field, lang lexicon.Language) (string, error)
}

// Request is one extraction attempt. Language is an optional tag hint
// ("en-IN", "hi-IN", or bare "en"/"hi"); when empty the engine detects it
// from the text.
type Request struct {
	SessionID  string
	Text       string
	Field      extract.Field
	Language   string
	RetryCount int
}

// Result is the reply contract the transport layer serializes verbatim.
// ExtractedValue is nil exactly when Success is false.
type Result struct {
	Reply          string `json:"reply"`
	ExtractedValue any    `json:"extractedValue"`
	Success        bool   `json:"success"`
}

type Config struct {
	Schema extract.Schema
	// Model and Prober are optional; without them the engine is rules-only.
	Model  FieldExtractor
	Prober ai.Prober
	// Sessions backs the partial-address accumulator. Required.
	Sessions session.Store
	Logger   *zap.Logger
	// ReprobeInterval <= 0 means probe once at Start and never again.
	ReprobeInterval time.Duration
}

type Engine struct {
	schema   extract.Schema
	model    FieldExtractor
	prober   ai.Prober
	sessions session.Store
	logger   *zap.Logger
	reprobe  time.Duration

	mu        sync.RWMutex
	available bool
}

func New(cfg Config) *Engine {
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Engine{
		schema:   cfg.Schema,
		model:    cfg.Model,
		prober:   cfg.Prober,
		sessions: cfg.Sessions,
		logger:   logger,
		reprobe:  cfg.ReprobeInterval,
	}
}

// Start probes the model service once and, when an interval is configured,
// keeps re-probing until the context is cancelled.
func (e *Engine) Start(ctx context.Context) {
	if e.model == nil || e.prober == nil {
		return
	}

	e.setAvailable(e.prober.Available(ctx))

	if e.reprobe <= 0 {
		return
	}

	go func() {
		for {
			if err := utils.WaitFor(ctx, e.reprobe); err != nil {
				return
			}
			was := e.ModelAvailable()
			now := e.prober.Available(ctx)
			if was != now {
				e.logger.Info("model service availability changed", zap.Bool("available", now))
			}
			e.setAvailable(now)
		}
	}()
}

// ModelAvailable reports the last probe result.
func (e *Engine) ModelAvailable() bool {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.available
}

func (e *Engine) setAvailable(v bool) {
	e.mu.Lock()
	e.available = v
	e.mu.Unlock()
}

// ProcessField extracts one field from the utterance. Extraction misses are
// not errors: they come back as Success=false with a clarification reply.
// The returned error covers infrastructure failures only (session store).
func (e *Engine) ProcessField(ctx context.Context, req Request) (Result, error) {
	lang := e.resolveLanguage(req)

	e.logger.Debug("process field",
		zap.String("session", req.SessionID),
		zap.String("field", string(req.Field)),
		zap.String("language", string(lang)),
		zap.Int("retry", req.RetryCount),
	)

	if req.Field == extract.FieldAddress {
		return e.processAddress(ctx, req, lang)
	}

	if value, ok := e.modelAttempt(ctx, req.Text, req.Field, lang); ok {
		return e.success(req.Field, lang, value), nil
	}

	value, ok, err := e.schema.Extract(req.Field, req.Text, lang)
	if err != nil {
		return Result{}, err
	}
	if ok {
		return e.success(req.Field, lang, value), nil
	}

	return e.miss(req.Field, lang, req.RetryCount, nil), nil
}

func (e *Engine) resolveLanguage(req Request) lexicon.Language {
	if req.Language != "" {
		return lexicon.ParseLanguage(req.Language)
	}
	return lexicon.Detect(req.Text)
}

// modelAttempt runs the model path when the service is up, then re-runs the
// rule extractor over the model's answer. Rule extractors are idempotent on
// their own output, so a good model answer survives the round trip, while
// hallucinated or off-schema output is rejected and the caller falls back
// to rules over the original text.
func (e *Engine) modelAttempt(ctx context.Context, text string, field extract.Field, lang lexicon.Language) (any, bool) {
	if e.model == nil || !e.ModelAvailable() {
		return nil, false
	}

	raw, err := e.model.ExtractField(ctx, text, field, lang)
	if err != nil {
		e.logger.Debug("model extraction failed, falling back to rules",
			zap.String("field", string(field)), zap.Error(err))
		return nil, false
	}

	value, ok, err := e.schema.Extract(field, raw, lang)
	if err != nil || !ok {
		e.logger.Debug("model value rejected by validation",
			zap.String("field", string(field)), zap.String("value", raw))
		return nil, false
	}

	return value, true
}

// processAddress handles the one multi-turn field. A full address in a
// single utterance wins outright; otherwise fragments merge into the
// session accumulator until enough is known to assemble an answer.
func (e *Engine) processAddress(ctx context.Context, req Request, lang lexicon.Language) (Result, error) {
	if value, ok := e.modelAttempt(ctx, req.Text, req.Field, lang); ok {
		if err := e.sessions.Clear(ctx, req.SessionID); err != nil {
			return Result{}, err
		}
		return e.success(req.Field, lang, value), nil
	}

	if full, ok := extract.Address(req.Text, lang); ok {
		if err := e.sessions.Clear(ctx, req.SessionID); err != nil {
			return Result{}, err
		}
		return e.success(req.Field, lang, full), nil
	}

	partial, err := e.mergeFragments(ctx, req.SessionID, req.Text)
	if err != nil {
		return Result{}, err
	}

	if partial.Sufficient() {
		assembled := partial.Assemble()
		if err := e.sessions.Clear(ctx, req.SessionID); err != nil {
			return Result{}, err
		}
		return e.success(req.Field, lang, assembled), nil
	}

	return e.miss(req.Field, lang, req.RetryCount, partial.Missing()), nil
}

func (e *Engine) mergeFragments(ctx context.Context, sessionID, text string) (session.PartialAddress, error) {
	partial, _, err := e.sessions.Get(ctx, sessionID)
	if err != nil {
		return session.PartialAddress{}, err
	}

	if v, ok := extract.HouseStreet(text); ok {
		if partial, err = e.sessions.Merge(ctx, sessionID, session.PartHouseNumber, v); err != nil {
			return session.PartialAddress{}, err
		}
	}
	if v, ok := extract.City(text); ok {
		if partial, err = e.sessions.Merge(ctx, sessionID, session.PartCity, v); err != nil {
			return session.PartialAddress{}, err
		}
	}
	if v, ok := extract.State(text); ok {
		if partial, err = e.sessions.Merge(ctx, sessionID, session.PartState, v); err != nil {
			return session.PartialAddress{}, err
		}
	}

	return partial, nil
}

func (e *Engine) success(field extract.Field, lang lexicon.Language, value any) Result {
	return Result{
		Reply:          successReply(field, lang, value),
		ExtractedValue: value,
		Success:        true,
	}
}

func (e *Engine) miss(field extract.Field, lang lexicon.Language, retryCount int, missing []string) Result {
	return Result{
		Reply:          retryReply(field, lang, retryCount, missing),
		ExtractedValue: nil,
		Success:        false,
	}
}
