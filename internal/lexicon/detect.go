package lexicon

import "regexp"

// Weighted pattern scoring for language detection. Each matching pattern
// contributes one point to its language; ties resolve to Hindi since
// Hinglish input frequently contains English stopwords.
var (
	hindiSignals = []*regexp.Regexp{
		regexp.MustCompile(`[\x{0915}-\x{0939}]`), // Devanagari consonant range
		regexp.MustCompile(`मेरा|नाम|है|हूँ|आप|तुम|वह|यह|मैं|हम|वे`),
		regexp.MustCompile(`नमस्ते|धन्यवाद|अच्छा|ठीक|हाँ|नहीं`),
		regexp.MustCompile(`(?i)\b(?:mera|meri|naam|hai|hun|hoon|kya|nahi|haan)\b`),
	}

	englishSignals = []*regexp.Regexp{
		regexp.MustCompile(`(?i)\b(?:i|me|my|mine|you|your|he|she|we|they|them|their)\b`),
		regexp.MustCompile(`(?i)\b(?:is|am|are|was|were|have|has|had|will|would|can|could|must)\b`),
		regexp.MustCompile(`(?i)\b(?:hello|hi|hey|thank|thanks|good|yes|no|please|sorry)\b`),
	}
)

// Detect infers the language of an utterance. Empty input defaults to
// English.
func Detect(text string) Language {
	if text == "" {
		return EnglishIN
	}

	hindi, english := 0, 0
	for _, re := range hindiSignals {
		if re.MatchString(text) {
			hindi++
		}
	}
	for _, re := range englishSignals {
		if re.MatchString(text) {
			english++
		}
	}

	// No signal at all (digits, bare names) defaults to English.
	if hindi == 0 && english == 0 {
		return EnglishIN
	}

	// Tie resolves to Hindi: code-mixed Hinglish input scores on both sides.
	if hindi >= english {
		return HindiIN
	}
	return EnglishIN
}
