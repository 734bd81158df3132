package extract

import (
	"strings"
	"unicode"

	"github.com/kaamkhoj/kaamkhoj/internal/lexicon"
)

const (
	nameMinLen = 2
	nameMaxLen = 50
	// After repeated retries the caller asks the user to say only their
	// name, so a bare 1-3 word utterance is accepted as-is.
	nameDirectMaxWords = 3
)

// Name extracts a person's name from an utterance.
func Name(text string, lang lexicon.Language) (string, bool) {
	rules := lexicon.RulesFor(lang, lexicon.NameRulesEN, lexicon.NameRulesHI)
	for _, rule := range rules {
		candidate, ok := rule.Extract(text)
		if !ok {
			continue
		}
		if validName(candidate) {
			return candidate, true
		}
	}

	// Bounded direct-input fallback: the whole utterance as a bare name.
	direct := strings.TrimSpace(text)
	if len(strings.Fields(direct)) <= nameDirectMaxWords &&
		validName(direct) &&
		!lexicon.ContainsQuestionWord(direct) &&
		!lexicon.IsFillerPhrase(direct) {
		return direct, true
	}

	return "", false
}

func validName(candidate string) bool {
	n := len([]rune(candidate))
	if n < nameMinLen || n > nameMaxLen {
		return false
	}
	if lexicon.IsCommonNonName(candidate) {
		return false
	}
	if lexicon.ContainsQuestionWord(candidate) {
		return false
	}
	if strings.ContainsAny(candidate, "?？") {
		return false
	}
	return containsLetter(candidate)
}

func containsLetter(s string) bool {
	for _, r := range s {
		if unicode.IsLetter(r) {
			return true
		}
	}
	return false
}
