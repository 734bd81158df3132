package extract

import (
	"testing"

	"github.com/kaamkhoj/kaamkhoj/internal/lexicon"
)

func TestName(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		input  string
		lang   lexicon.Language
		expect string
		found  bool
	}{
		{
			name:   "english phrasal",
			input:  "My name is Ramesh Kumar",
			lang:   lexicon.EnglishIN,
			expect: "Ramesh Kumar",
			found:  true,
		},
		{
			name:   "hinglish phrasal",
			input:  "mera naam Ramesh hai",
			lang:   lexicon.HindiIN,
			expect: "Ramesh",
			found:  true,
		},
		{
			name:   "devanagari phrasal",
			input:  "मेरा नाम सुनीता है",
			lang:   lexicon.HindiIN,
			expect: "सुनीता",
			found:  true,
		},
		{
			name:   "bare name direct fallback",
			input:  "Ramesh Kumar",
			lang:   lexicon.EnglishIN,
			expect: "Ramesh Kumar",
			found:  true,
		},
		{
			name:  "question is not a name",
			input: "what is your name?",
			lang:  lexicon.EnglishIN,
			found: false,
		},
		{
			name:  "long sentence rejected",
			input: "well let me think about what I should tell you here",
			lang:  lexicon.EnglishIN,
			found: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, ok := Name(tt.input, tt.lang)
			if ok != tt.found {
				t.Fatalf("Name(%q) found = %v, expected %v (got %q)", tt.input, ok, tt.found, got)
			}
			if ok && got != tt.expect {
				t.Fatalf("Name(%q) = %q, expected %q", tt.input, got, tt.expect)
			}
		})
	}
}

func TestNameIdempotent(t *testing.T) {
	t.Parallel()

	first, ok := Name("My name is Ramesh Kumar", lexicon.EnglishIN)
	if !ok {
		t.Fatal("expected extraction to succeed")
	}
	second, ok := Name(first, lexicon.EnglishIN)
	if !ok || second != first {
		t.Fatalf("re-extraction changed the value: %q -> %q", first, second)
	}
}

func TestGender(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input  string
		expect string
		found  bool
	}{
		{"I am a woman", GenderFemale, true},
		{"male", GenderMale, true},
		{"ladka hun", GenderMale, true},
		{"फीमेल", GenderFemale, true},
		{"transgender", GenderOther, true},
		{"I would rather not say", "", false},
	}

	for _, tt := range tests {
		got, ok := Gender(tt.input)
		if ok != tt.found {
			t.Fatalf("Gender(%q) found = %v, expected %v", tt.input, ok, tt.found)
		}
		if ok && got != tt.expect {
			t.Fatalf("Gender(%q) = %q, expected %q", tt.input, got, tt.expect)
		}
	}
}

func TestAge(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		input  string
		lang   lexicon.Language
		min    int
		max    int
		expect int
		found  bool
	}{
		{
			name:   "english phrasal",
			input:  "I am 25 years old",
			lang:   lexicon.EnglishIN,
			min:    15,
			max:    120,
			expect: 25,
			found:  true,
		},
		{
			name:   "hinglish phrasal",
			input:  "main 25 saal ka hun",
			lang:   lexicon.HindiIN,
			min:    15,
			max:    120,
			expect: 25,
			found:  true,
		},
		{
			name:   "devanagari phrasal",
			input:  "मेरी उम्र 30 है",
			lang:   lexicon.HindiIN,
			min:    15,
			max:    120,
			expect: 30,
			found:  true,
		},
		{
			name:   "bare number",
			input:  "25",
			lang:   lexicon.EnglishIN,
			min:    15,
			max:    120,
			expect: 25,
			found:  true,
		},
		{
			name:   "spelled out hinglish",
			input:  "pachees",
			lang:   lexicon.HindiIN,
			min:    15,
			max:    120,
			expect: 25,
			found:  true,
		},
		{
			name:  "above bound rejected",
			input: "I am 150 years old",
			lang:  lexicon.EnglishIN,
			min:   15,
			max:   120,
			found: false,
		},
		{
			name:  "below bound rejected",
			input: "0",
			lang:  lexicon.EnglishIN,
			min:   1,
			max:   120,
			found: false,
		},
		{
			name:  "hinglish do not treated as two in long sentences",
			input: "i can do this work for you",
			lang:  lexicon.EnglishIN,
			min:   1,
			max:   120,
			found: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, ok := Age(tt.input, tt.lang, tt.min, tt.max)
			if ok != tt.found {
				t.Fatalf("Age(%q) found = %v, expected %v (got %d)", tt.input, ok, tt.found, got)
			}
			if ok && got != tt.expect {
				t.Fatalf("Age(%q) = %d, expected %d", tt.input, got, tt.expect)
			}
		})
	}
}

func TestAgeIdempotent(t *testing.T) {
	t.Parallel()

	first, ok := Age("I am 25 years old", lexicon.EnglishIN, 15, 120)
	if !ok || first != 25 {
		t.Fatalf("expected 25, got %d (found=%v)", first, ok)
	}
	second, ok := Age("25", lexicon.EnglishIN, 15, 120)
	if !ok || second != first {
		t.Fatalf("re-extraction changed the value: %d -> %d", first, second)
	}
}

func TestPhone(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		input  string
		expect string
		found  bool
	}{
		{
			name:   "phrasal with spaced digits",
			input:  "My phone number is 98765 43210",
			expect: "9876543210",
			found:  true,
		},
		{
			name:   "bare ten digits",
			input:  "9876543210",
			expect: "9876543210",
			found:  true,
		},
		{
			name:   "country code stripped",
			input:  "+919876543210",
			expect: "9876543210",
			found:  true,
		},
		{
			name:   "trunk zero stripped",
			input:  "09876543210",
			expect: "9876543210",
			found:  true,
		},
		{
			name:  "six digits rejected",
			input: "123456",
			found: false,
		},
		{
			name:  "eleven digits rejected",
			input: "98765432101",
			found: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, ok := Phone(tt.input, lexicon.EnglishIN)
			if ok != tt.found {
				t.Fatalf("Phone(%q) found = %v, expected %v (got %q)", tt.input, ok, tt.found, got)
			}
			if ok && got != tt.expect {
				t.Fatalf("Phone(%q) = %q, expected %q", tt.input, got, tt.expect)
			}
			if ok && len(got) != 10 {
				t.Fatalf("Phone(%q) returned %d digits, expected 10", tt.input, len(got))
			}
		})
	}
}

func TestExperience(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		lang     lexicon.Language
		asString bool
		expect   any
		found    bool
	}{
		{
			name:   "english phrasal integer",
			input:  "I have 5 years of experience",
			lang:   lexicon.EnglishIN,
			expect: 5,
			found:  true,
		},
		{
			name:     "string typed revision",
			input:    "I have 5 years of experience",
			lang:     lexicon.EnglishIN,
			asString: true,
			expect:   "5 years",
			found:    true,
		},
		{
			name:   "spelled out years",
			input:  "two years",
			lang:   lexicon.EnglishIN,
			expect: 2,
			found:  true,
		},
		{
			name:   "devanagari phrasal",
			input:  "मुझे 3 साल का अनुभव है",
			lang:   lexicon.HindiIN,
			expect: 3,
			found:  true,
		},
		{
			name:  "above bound rejected",
			input: "80 years experience",
			lang:  lexicon.EnglishIN,
			found: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, ok := Experience(tt.input, tt.lang, 0, 50, tt.asString)
			if ok != tt.found {
				t.Fatalf("Experience(%q) found = %v, expected %v (got %v)", tt.input, ok, tt.found, got)
			}
			if ok && got != tt.expect {
				t.Fatalf("Experience(%q) = %v, expected %v", tt.input, got, tt.expect)
			}
		})
	}
}

func TestExperienceStringIdempotent(t *testing.T) {
	t.Parallel()

	first, ok := Experience("I have 5 years of experience", lexicon.EnglishIN, 0, 70, true)
	if !ok || first != "5 years" {
		t.Fatalf("expected %q, got %v (found=%v)", "5 years", first, ok)
	}
	second, ok := Experience(first.(string), lexicon.EnglishIN, 0, 70, true)
	if !ok || second != first {
		t.Fatalf("re-extraction changed the value: %v -> %v", first, second)
	}
}

func TestEducation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		input  string
		expect string
		found  bool
	}{
		{
			name:   "highest level wins over earlier mention",
			input:  "I did my 12th and then a bachelor degree",
			expect: "bachelor",
			found:  true,
		},
		{
			name:   "matric maps to 10th",
			input:  "matric pass",
			expect: "10th",
			found:  true,
		},
		{
			name:   "devanagari",
			input:  "मैंने बारहवीं पास की है",
			expect: "12th",
			found:  true,
		},
		{
			name:   "iti maps to diploma",
			input:  "I did ITI",
			expect: "diploma",
			found:  true,
		},
		{
			name:  "unknown qualification is a miss",
			input: "I studied many things",
			found: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, ok := Education(tt.input)
			if ok != tt.found {
				t.Fatalf("Education(%q) found = %v, expected %v (got %q)", tt.input, ok, tt.found, got)
			}
			if ok && got != tt.expect {
				t.Fatalf("Education(%q) = %q, expected %q", tt.input, got, tt.expect)
			}
		})
	}
}

func TestSkills(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		input  string
		expect string
		found  bool
	}{
		{
			name:   "categories combine in declaration order",
			input:  "I know driving and cooking",
			expect: "hospitality, transportation",
			found:  true,
		},
		{
			name:   "devanagari keyword",
			input:  "मुझे खेती आती है",
			expect: "agriculture",
			found:  true,
		},
		{
			name:   "free text accepted verbatim",
			input:  "bamboo weaving",
			expect: "bamboo weaving",
			found:  true,
		},
		{
			name:  "question rejected",
			input: "what skills do you need?",
			found: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, ok := Skills(tt.input, lexicon.EnglishIN)
			if ok != tt.found {
				t.Fatalf("Skills(%q) found = %v, expected %v (got %q)", tt.input, ok, tt.found, got)
			}
			if ok && got != tt.expect {
				t.Fatalf("Skills(%q) = %q, expected %q", tt.input, got, tt.expect)
			}
		})
	}
}

func TestAvailability(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		input  string
		expect string
		found  bool
	}{
		{
			name:   "fixed label",
			input:  "I can work full time",
			expect: "Full-time",
			found:  true,
		},
		{
			name:   "days combine",
			input:  "Monday and Wednesday",
			expect: "Monday, Wednesday",
			found:  true,
		},
		{
			name:   "hindi label",
			input:  "मैं सुबह काम कर सकता हूँ",
			expect: "Mornings",
			found:  true,
		},
		{
			name:   "short direct answer",
			input:  "after lunch",
			expect: "after lunch",
			found:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, ok := Availability(tt.input, lexicon.EnglishIN)
			if ok != tt.found {
				t.Fatalf("Availability(%q) found = %v, expected %v (got %q)", tt.input, ok, tt.found, got)
			}
			if ok && got != tt.expect {
				t.Fatalf("Availability(%q) = %q, expected %q", tt.input, got, tt.expect)
			}
		})
	}
}

func TestAddress(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		input  string
		expect string
		found  bool
	}{
		{
			name:   "phrasal full address",
			input:  "I live at 123 MG Road, Mumbai",
			expect: "123 MG Road, Mumbai",
			found:  true,
		},
		{
			name:  "bare city is a fragment, not a full address",
			input: "Mumbai",
			found: false,
		},
		{
			name:  "question rejected",
			input: "what is your address please tell me",
			found: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, ok := Address(tt.input, lexicon.EnglishIN)
			if ok != tt.found {
				t.Fatalf("Address(%q) found = %v, expected %v (got %q)", tt.input, ok, tt.found, got)
			}
			if ok && got != tt.expect {
				t.Fatalf("Address(%q) = %q, expected %q", tt.input, got, tt.expect)
			}
		})
	}
}

func TestAddressFragments(t *testing.T) {
	t.Parallel()

	if got, ok := City("I am in Pune"); !ok || got != "Pune" {
		t.Fatalf("expected Pune, got %q (found=%v)", got, ok)
	}
	if got, ok := State("Maharashtra"); !ok || got != "Maharashtra" {
		t.Fatalf("expected Maharashtra, got %q (found=%v)", got, ok)
	}
	if got, ok := HouseStreet("12 Gandhi Nagar"); !ok || got == "" {
		t.Fatalf("expected a house fragment, got %q (found=%v)", got, ok)
	}
}

func TestSchemaExtract(t *testing.T) {
	t.Parallel()

	v2 := NewSchema(SchemaV2)

	value, ok, err := v2.Extract(FieldAge, "I am 25 years old", lexicon.EnglishIN)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !ok || value != 25 {
		t.Fatalf("expected 25, got %v (found=%v)", value, ok)
	}

	// Education is not part of the v1 revision.
	v1 := NewSchema(SchemaV1)
	if _, _, err := v1.Extract(FieldEducation, "bachelor", lexicon.EnglishIN); err == nil {
		t.Fatal("expected an error for a field outside the schema")
	}

	// v1 reports experience as a string.
	value, ok, err = v1.Extract(FieldExperience, "I have 5 years of experience", lexicon.EnglishIN)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !ok || value != "5 years" {
		t.Fatalf("expected %q, got %v (found=%v)", "5 years", value, ok)
	}
}

func TestParseField(t *testing.T) {
	t.Parallel()

	if f, err := ParseField("workExperience"); err != nil || f != FieldExperience {
		t.Fatalf("expected legacy alias to resolve to experience, got %q (err=%v)", f, err)
	}
	if _, err := ParseField("favouriteColour"); err == nil {
		t.Fatal("expected an error for an unknown field")
	}
}
