package conversation

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"
)

type stubGenerator struct {
	responses []string
	err       error
	calls     int
}

func (s *stubGenerator) GenerateContent(context.Context, string) (string, error) {
	if s.err != nil {
		return "", s.err
	}
	response := s.responses[s.calls%len(s.responses)]
	s.calls++
	return response, nil
}

func (s *stubGenerator) Model() string { return "stub" }

func TestProcessInputUnknownSession(t *testing.T) {
	t.Parallel()

	svc := NewService(&stubGenerator{responses: []string{"{}"}}, zap.NewNop())
	if _, err := svc.ProcessInput(context.Background(), "nope", "hello"); err == nil {
		t.Fatal("expected error for uninitialized session")
	}
}

func TestProcessInputTurn(t *testing.T) {
	t.Parallel()

	gen := &stubGenerator{responses: []string{
		`{"message":"Nice to meet you, Ramesh! Where do you live?","extractedData":{"name":"Ramesh Kumar"},"nextField":"address"}`,
	}}
	svc := NewService(gen, zap.NewNop())
	svc.InitSession("s1", "en")

	reply, err := svc.ProcessInput(context.Background(), "s1", "my name is Ramesh Kumar")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if reply.Message == "" || reply.NextField != "address" {
		t.Fatalf("unexpected reply: %+v", reply)
	}
	if reply.IsComplete {
		t.Fatal("one field must not complete the intake")
	}

	data := svc.SessionData("s1")
	if data["name"] != "Ramesh Kumar" {
		t.Fatalf("extracted data not folded into session: %+v", data)
	}
}

func TestProcessInputCompletion(t *testing.T) {
	t.Parallel()

	gen := &stubGenerator{responses: []string{
		`{"message":"All done, thank you!","extractedData":{"name":"Ramesh Kumar","address":"12 Gandhi Nagar, Pune","experience":"3 years","education":"10th pass"},"nextField":"current"}`,
	}}
	svc := NewService(gen, zap.NewNop())
	svc.InitSession("s1", "en")

	reply, err := svc.ProcessInput(context.Background(), "s1", "10th pass")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reply.IsComplete {
		t.Fatalf("expected completion once all required fields are present: %+v", reply)
	}
}

func TestProcessInputGenerationFailure(t *testing.T) {
	t.Parallel()

	svc := NewService(&stubGenerator{err: errors.New("timeout")}, zap.NewNop())
	svc.InitSession("s1", "hi")

	reply, err := svc.ProcessInput(context.Background(), "s1", "नमस्ते")
	if err != nil {
		t.Fatalf("model failure must not surface as an error: %v", err)
	}
	if reply.Message == "" {
		t.Fatal("expected a spoken fallback message")
	}
	if reply.IsComplete {
		t.Fatal("fallback must not complete the intake")
	}
}

func TestProcessInputNoGenerator(t *testing.T) {
	t.Parallel()

	svc := NewService(nil, zap.NewNop())
	svc.InitSession("s1", "en")

	reply, err := svc.ProcessInput(context.Background(), "s1", "hello")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if reply.Message == "" || reply.NextField != "name" {
		t.Fatalf("unexpected fallback: %+v", reply)
	}
}

func TestClearSession(t *testing.T) {
	t.Parallel()

	svc := NewService(nil, zap.NewNop())
	svc.InitSession("s1", "en")
	svc.ClearSession("s1")

	if data := svc.SessionData("s1"); data != nil {
		t.Fatalf("expected nil data after clear, got %+v", data)
	}
}
