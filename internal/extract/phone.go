package extract

import (
	"regexp"
	"strings"

	"github.com/kaamkhoj/kaamkhoj/internal/lexicon"
)

const phoneDigits = 10

// Recognized country-code prefixes that may precede the 10 subscriber
// digits: +91 (India), +1 (US), or a single trunk zero.
var phoneSeparatorRE = regexp.MustCompile(`[\s\-().]`)

var phoneDirectRules = []lexicon.Rule{
	lexicon.NewRule(`(\+\d{1,3}[\s-]?\d{10})\b`),
	lexicon.NewRule(`\b(\d{10})\b`),
	lexicon.NewRule(`\b(\d{3}[\s-]\d{3}[\s-]\d{4})\b`),
	lexicon.NewRule(`\b(\d{5}[\s-]\d{5})\b`),
}

// Phone extracts a phone number and normalizes it to exactly 10 digits,
// stripping separators and a recognized country-code prefix. Anything that
// does not reduce to 10 digits is a miss.
func Phone(text string, lang lexicon.Language) (string, bool) {
	rules := lexicon.RulesFor(lang, lexicon.PhoneRulesEN, lexicon.PhoneRulesHI)
	for _, rule := range rules {
		if candidate, ok := rule.Extract(text); ok {
			if number, valid := normalizePhone(candidate); valid {
				return number, true
			}
		}
	}

	for _, rule := range phoneDirectRules {
		if candidate, ok := rule.Extract(text); ok {
			if number, valid := normalizePhone(candidate); valid {
				return number, true
			}
		}
	}

	// Bare digit input.
	if number, valid := normalizePhone(strings.TrimSpace(text)); valid {
		return number, true
	}

	return "", false
}

func normalizePhone(candidate string) (string, bool) {
	cleaned := phoneSeparatorRE.ReplaceAllString(candidate, "")
	cleaned = strings.TrimPrefix(cleaned, "+")
	if cleaned == "" || strings.Trim(cleaned, "0123456789") != "" {
		return "", false
	}

	switch {
	case len(cleaned) == phoneDigits:
		return cleaned, true
	case len(cleaned) == phoneDigits+2 && strings.HasPrefix(cleaned, "91"):
		return cleaned[2:], true
	case len(cleaned) == phoneDigits+1 && strings.HasPrefix(cleaned, "1"):
		return cleaned[1:], true
	case len(cleaned) == phoneDigits+1 && strings.HasPrefix(cleaned, "0"):
		return cleaned[1:], true
	}
	return "", false
}
