package extract

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/kaamkhoj/kaamkhoj/internal/lexicon"
)

var bareNumberRE = regexp.MustCompile(`^(\d+)$`)

// Age extracts a validated age in years within [min, max]. Out-of-range
// candidates are treated as misses, never as errors.
func Age(text string, lang lexicon.Language, min, max int) (int, bool) {
	rules := lexicon.RulesFor(lang, lexicon.AgeRulesEN, lexicon.AgeRulesHI)
	for _, rule := range rules {
		candidate, ok := rule.Extract(text)
		if !ok {
			continue
		}
		if age, err := strconv.Atoi(candidate); err == nil && age >= min && age <= max {
			return age, true
		}
	}

	// Direct input: the utterance is just a number.
	if m := bareNumberRE.FindStringSubmatch(strings.TrimSpace(text)); m != nil {
		if age, err := strconv.Atoi(m[1]); err == nil && age >= min && age <= max {
			return age, true
		}
	}

	// Spelled-out numbers in any supported script ("pachees", "बीस").
	// Restricted to short non-question utterances: Hinglish tokens like
	// "do" (two) are ordinary English words in longer sentences.
	if shortAnswer(text) {
		if age, ok := lexicon.FindNumberWord(text); ok && age >= min && age <= max {
			return age, true
		}
	}

	return 0, false
}

func shortAnswer(text string) bool {
	return len(strings.Fields(text)) <= 4 && !lexicon.ContainsQuestionWord(text)
}
