// Package conversation runs the free-form guided intake mode: instead of
// the field-by-field slot filling flow, a single model conversation collects
// all fields while the service tracks per-session history and extracted
// data.
package conversation

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"go.uber.org/zap"

	"github.com/kaamkhoj/kaamkhoj/internal/ai"
	"github.com/kaamkhoj/kaamkhoj/internal/lexicon"
)

// historyWindow bounds how many recent turns are replayed into the prompt.
const historyWindow = 6

// requiredFields is the information the guided mode collects, in asking
// order.
var requiredFields = []string{"name", "address", "experience", "education"}

// Reply is the model's structured answer for one turn. The transport layer
// serializes it verbatim.
type Reply struct {
	Message           string         `json:"message"`
	ExtractedData     map[string]any `json:"extractedData"`
	NextField         string         `json:"nextField"`
	NeedsConfirmation bool           `json:"needsConfirmation"`
	IsComplete        bool           `json:"isComplete"`
}

type turn struct {
	role    string
	content string
}

type state struct {
	language     lexicon.Language
	turns        []turn
	userData     map[string]any
	currentField string
}

// Service holds per-session conversation state in memory. Sessions are
// short-lived; a process restart simply restarts the conversation.
type Service struct {
	generator ai.Generator
	logger    *zap.Logger

	mu       sync.Mutex
	sessions map[string]*state
}

func NewService(generator ai.Generator, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		generator: generator,
		logger:    logger,
		sessions:  make(map[string]*state),
	}
}

// InitSession creates or resets the session's conversation state.
func (s *Service) InitSession(sessionID, language string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[sessionID] = &state{
		language:     lexicon.ParseLanguage(language),
		userData:     make(map[string]any),
		currentField: requiredFields[0],
	}
}

// SessionData returns the data collected so far, or nil for an unknown
// session.
func (s *Service) SessionData(sessionID string) map[string]any {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.sessions[sessionID]
	if !ok {
		return nil
	}
	data := make(map[string]any, len(sess.userData))
	for k, v := range sess.userData {
		data[k] = v
	}
	return data
}

// ClearSession drops the session's state.
func (s *Service) ClearSession(sessionID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, sessionID)
}

// ProcessInput runs one conversation turn: replay recent history into the
// prompt, generate, parse the structured reply, and fold any extracted data
// into the session. Model failures degrade to a localized apology so the
// voice flow never stalls on an error.
func (s *Service) ProcessInput(ctx context.Context, sessionID, userInput string) (Reply, error) {
	s.mu.Lock()
	sess, ok := s.sessions[sessionID]
	if !ok {
		s.mu.Unlock()
		return Reply{}, fmt.Errorf("session %q not initialized", sessionID)
	}

	sess.turns = append(sess.turns, turn{role: "user", content: userInput})
	prompt := buildTurnPrompt(sess, userInput)
	lang := sess.language
	currentField := sess.currentField
	s.mu.Unlock()

	// Guided mode is model-backed only; without a generator it degrades to
	// the apology reply instead of crashing the voice flow.
	if s.generator == nil {
		return fallbackReply(lang, currentField, true), nil
	}

	raw, err := s.generator.GenerateContent(ctx, prompt)
	if err != nil {
		s.logger.Warn("conversation generation failed", zap.String("session", sessionID), zap.Error(err))
		return fallbackReply(lang, currentField, true), nil
	}

	reply, ok := parseReply(raw)
	if !ok {
		s.logger.Debug("unparseable conversation reply",
			zap.String("session", sessionID), zap.String("raw", raw))
		return fallbackReply(lang, currentField, false), nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	sess.turns = append(sess.turns, turn{role: "assistant", content: reply.Message})
	for k, v := range reply.ExtractedData {
		if v != nil {
			sess.userData[k] = v
		}
	}
	if reply.NextField != "" && reply.NextField != "current" {
		sess.currentField = reply.NextField
	}

	if collectedAll(sess.userData) && !reply.NeedsConfirmation {
		reply.IsComplete = true
	}

	return reply, nil
}

func collectedAll(userData map[string]any) bool {
	for _, field := range requiredFields {
		if v, ok := userData[field]; !ok || v == nil {
			return false
		}
	}
	return true
}

func fallbackReply(lang lexicon.Language, currentField string, serviceError bool) Reply {
	var message string
	switch {
	case lang.IsHindi() && serviceError:
		message = "क्षमा करें, मुझे कुछ समस्या हुई। कृपया फिर से प्रयास करें।"
	case lang.IsHindi():
		message = "मुझे समझने में कठिनाई हुई। कृपया दोबारा बताएं।"
	case serviceError:
		message = "Sorry, I encountered an issue. Please try again."
	default:
		message = "I didn't quite understand. Could you please repeat that?"
	}
	return Reply{
		Message:   message,
		NextField: currentField,
	}
}

func recentHistory(turns []turn) string {
	start := 0
	if len(turns) > historyWindow {
		start = len(turns) - historyWindow
	}

	var b strings.Builder
	for _, t := range turns[start:] {
		role := "Assistant"
		if t.role == "user" {
			role = "User"
		}
		fmt.Fprintf(&b, "%s: %s\n", role, t.content)
	}
	return strings.TrimRight(b.String(), "\n")
}
