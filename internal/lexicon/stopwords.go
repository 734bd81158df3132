package lexicon

import "strings"

// Dialogue stoplists. Candidates matching these are conversational noise,
// not answers, and must be rejected by the direct-input fallbacks.

var questionWords = []string{
	"what", "who", "where", "when", "why", "how",
	"kya", "kaun", "kahan", "kab", "kyon", "kaise",
	"क्या", "कौन", "कहां", "कब", "क्यों", "कैसे",
}

var fillerPhrases = map[string]struct{}{
	"yes": {}, "no": {}, "okay": {}, "ok": {}, "sure": {}, "hello": {}, "hi": {},
	"hey": {}, "bye": {}, "thank you": {}, "thanks": {}, "please": {},
	"haan": {}, "nahi": {}, "theek hai": {}, "namaste": {}, "dhanyavad": {},
	"हाँ": {}, "नहीं": {}, "ठीक है": {}, "नमस्ते": {}, "धन्यवाद": {},
}

// commonNonNames are short words the name rules tend to capture by mistake.
var commonNonNames = map[string]struct{}{
	"yes": {}, "no": {}, "hello": {}, "hi": {}, "okay": {}, "sure": {},
	"the": {}, "a": {}, "an": {}, "is": {}, "am": {}, "are": {},
	"here": {}, "there": {}, "fine": {}, "good": {},
}

// ContainsQuestionWord reports whether the text contains any question word
// in English, Hinglish or Devanagari. Matching is token-wise: "how" must
// not fire inside "Howrah".
func ContainsQuestionWord(text string) bool {
	lower := strings.ToLower(text)
	tokens := strings.FieldsFunc(lower, func(r rune) bool {
		return r == ' ' || r == '?' || r == '!' || r == ',' || r == '.' || r == '।'
	})
	for _, tok := range tokens {
		for _, w := range questionWords {
			if tok == w {
				return true
			}
		}
	}
	return false
}

// IsFillerPhrase reports whether the whole trimmed utterance is a greeting,
// acknowledgement or other dialogue filler.
func IsFillerPhrase(text string) bool {
	_, ok := fillerPhrases[strings.ToLower(strings.TrimSpace(text))]
	return ok
}

// IsCommonNonName reports whether the candidate is a stopword that the name
// patterns are known to pick up incorrectly.
func IsCommonNonName(candidate string) bool {
	_, ok := commonNonNames[strings.ToLower(strings.TrimSpace(candidate))]
	return ok
}
