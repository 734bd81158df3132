package logger

import "testing"

func TestTruncateForLog(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		input  string
		limit  int
		expect string
	}{
		{
			name:   "short string untouched",
			input:  "hello",
			limit:  10,
			expect: "hello",
		},
		{
			name:   "truncated with ellipsis",
			input:  "hello world",
			limit:  5,
			expect: "hello...",
		},
		{
			name:   "whitespace trimmed first",
			input:  "  hello  ",
			limit:  10,
			expect: "hello",
		},
		{
			name:   "devanagari counts runes not bytes",
			input:  "मेरा नाम रमेश कुमार है",
			limit:  8,
			expect: "मेरा नाम...",
		},
		{
			name:   "zero limit",
			input:  "hello",
			limit:  0,
			expect: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := TruncateForLog(tt.input, tt.limit); got != tt.expect {
				t.Fatalf("TruncateForLog(%q, %d) = %q, expected %q", tt.input, tt.limit, got, tt.expect)
			}
		})
	}
}

func TestNew(t *testing.T) {
	t.Parallel()

	for _, json := range []bool{true, false} {
		logger, err := New(json, true)
		if err != nil {
			t.Fatalf("New(%v, true) returned error: %v", json, err)
		}
		if logger == nil {
			t.Fatal("expected a logger")
		}
	}
}
