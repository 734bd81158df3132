package lexicon

import "testing"

func TestContainsQuestionWord(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input  string
		expect bool
	}{
		{"what is your name?", true},
		{"kya naam hai", true},
		{"क्या आप बता सकते हैं", true},
		{"Ramesh Kumar", false},
		// Token matching: question words must not fire inside other words.
		{"Howrah station road", false},
	}

	for _, tt := range tests {
		if got := ContainsQuestionWord(tt.input); got != tt.expect {
			t.Fatalf("ContainsQuestionWord(%q) = %v, expected %v", tt.input, got, tt.expect)
		}
	}
}

func TestIsFillerPhrase(t *testing.T) {
	t.Parallel()

	if !IsFillerPhrase("  Thank you ") {
		t.Fatal("expected filler phrase")
	}
	if IsFillerPhrase("thank you for the address") {
		t.Fatal("filler check must match the whole utterance only")
	}
}
