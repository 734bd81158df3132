package conversation

import "testing"

func TestParseReply(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		raw     string
		message string
		expect  bool
	}{
		{
			name:    "single line json",
			raw:     `{"message":"What is your name?","nextField":"name","isComplete":false}`,
			message: "What is your name?",
			expect:  true,
		},
		{
			name: "pretty printed json",
			raw: `{
				"message": "Where do you live?",
				"extractedData": {"name": "Ramesh"},
				"nextField": "address"
			}`,
			message: "Where do you live?",
			expect:  true,
		},
		{
			name:    "json wrapped in prose",
			raw:     "Here is my answer: {\"message\":\"How many years of experience?\"} Done.",
			message: "How many years of experience?",
			expect:  true,
		},
		{
			name:    "message scrape when object is broken",
			raw:     `{"message":"Tell me your skills", "extractedData": {unquoted}}`,
			message: "Tell me your skills",
			expect:  true,
		},
		{
			name:   "garbage",
			raw:    "I am not sure what you mean.",
			expect: false,
		},
		{
			name:   "object without message",
			raw:    `{"nextField":"name"}`,
			expect: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			reply, ok := parseReply(tt.raw)
			if ok != tt.expect {
				t.Fatalf("parseReply(%q) ok = %v, expected %v", tt.raw, ok, tt.expect)
			}
			if ok && reply.Message != tt.message {
				t.Fatalf("parseReply(%q) message = %q, expected %q", tt.raw, reply.Message, tt.message)
			}
		})
	}
}

func TestParseReplyStructuredFields(t *testing.T) {
	t.Parallel()

	raw := `{"message":"Got it","extractedData":{"name":"Sita Devi"},"nextField":"age","needsConfirmation":true,"isComplete":false}`
	reply, ok := parseReply(raw)
	if !ok {
		t.Fatal("expected parse to succeed")
	}
	if reply.NextField != "age" || !reply.NeedsConfirmation || reply.IsComplete {
		t.Fatalf("unexpected reply: %+v", reply)
	}
	if reply.ExtractedData["name"] != "Sita Devi" {
		t.Fatalf("extracted data lost: %+v", reply.ExtractedData)
	}
}
