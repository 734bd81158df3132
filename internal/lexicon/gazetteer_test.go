package lexicon

import "testing"

func TestGazetteerLookup(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		input  string
		expect string
		found  bool
	}{
		{
			name:   "known city canonical casing",
			input:  "i live in mumbai now",
			expect: "Mumbai",
			found:  true,
		},
		{
			name:   "city as whole word only",
			input:  "Punex is not a city",
			expect: "",
			found:  false,
		},
		{
			name:  "unknown place",
			input: "somewhere else entirely",
			found: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, ok := Cities.Lookup(tt.input)
			if ok != tt.found {
				t.Fatalf("Lookup(%q) found = %v, expected %v", tt.input, ok, tt.found)
			}
			if ok && got != tt.expect {
				t.Fatalf("Lookup(%q) = %q, expected %q", tt.input, got, tt.expect)
			}
		})
	}
}

func TestStates(t *testing.T) {
	t.Parallel()

	if got, ok := States.Lookup("Maharashtra"); !ok || got != "Maharashtra" {
		t.Fatalf("expected Maharashtra, got %q (found=%v)", got, ok)
	}
	if got, ok := States.Lookup("from uttar pradesh side"); !ok || got != "Uttar Pradesh" {
		t.Fatalf("expected Uttar Pradesh, got %q (found=%v)", got, ok)
	}
}

func TestLookupStateAbbreviation(t *testing.T) {
	t.Parallel()

	// Lowercase words that collide with US abbreviations must not match:
	// "in" vs IN, "me" vs ME, "ok" vs OK, "hi" vs HI, "or" vs OR.
	collisions := []string{"i live in delhi", "tell me more", "ok thank you", "hi there", "one or two"}
	for _, input := range collisions {
		if got, ok := LookupStateAbbreviation(input); ok {
			t.Fatalf("LookupStateAbbreviation(%q) = %q, expected no match", input, got)
		}
	}

	if got, ok := LookupStateAbbreviation("Portland OR 97201"); !ok || got != "OR" {
		t.Fatalf("expected OR, got %q (found=%v)", got, ok)
	}
}

func TestFindNumberWord(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input  string
		expect int
		found  bool
	}{
		{"twenty five", 25, true},
		{"main pachees saal ka hun", 25, true},
		{"पच्चीस", 25, true},
		{"five", 5, true},
		{"no numbers here at all", 0, false},
	}

	for _, tt := range tests {
		got, ok := FindNumberWord(tt.input)
		if ok != tt.found {
			t.Fatalf("FindNumberWord(%q) found = %v, expected %v", tt.input, ok, tt.found)
		}
		if ok && got != tt.expect {
			t.Fatalf("FindNumberWord(%q) = %d, expected %d", tt.input, got, tt.expect)
		}
	}
}
