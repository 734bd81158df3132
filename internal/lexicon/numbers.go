package lexicon

import "strings"

// numberWords maps spelled-out numbers to values across English, Hinglish
// transliteration and Devanagari. Compound Hinglish forms ("twenty one")
// appear as single keys because voice transcription emits them that way.
var numberWords = map[string]int{
	"zero": 0, "one": 1, "two": 2, "three": 3, "four": 4, "five": 5,
	"six": 6, "seven": 7, "eight": 8, "nine": 9, "ten": 10,
	"eleven": 11, "twelve": 12, "thirteen": 13, "fourteen": 14, "fifteen": 15,
	"sixteen": 16, "seventeen": 17, "eighteen": 18, "nineteen": 19, "twenty": 20,
	"twenty one": 21, "twenty two": 22, "twenty five": 25, "thirty": 30,
	"thirty five": 35, "forty": 40, "fifty": 50, "sixty": 60,

	"ek": 1, "do": 2, "teen": 3, "char": 4, "paanch": 5,
	"chhe": 6, "saat": 7, "aath": 8, "nau": 9, "das": 10,
	"gyarah": 11, "barah": 12, "terah": 13, "chaudah": 14, "pandrah": 15,
	"solah": 16, "satrah": 17, "atharah": 18, "unnees": 19, "bees": 20,
	"pachees": 25, "tees": 30, "chalees": 40, "pachaas": 50, "saath": 60,

	"एक": 1, "दो": 2, "तीन": 3, "चार": 4, "पांच": 5,
	"छह": 6, "सात": 7, "आठ": 8, "नौ": 9, "दस": 10,
	"ग्यारह": 11, "बारह": 12, "तेरह": 13, "चौदह": 14, "पंद्रह": 15,
	"सोलह": 16, "सत्रह": 17, "अठारह": 18, "उन्नीस": 19, "बीस": 20,
	"पच्चीस": 25, "तीस": 30, "चालीस": 40, "पचास": 50, "साठ": 60,
}

// NumberWord resolves a single spelled-out number token to its value.
func NumberWord(word string) (int, bool) {
	n, ok := numberWords[strings.ToLower(strings.TrimSpace(word))]
	return n, ok
}

// FindNumberWord scans text for the first known number word. Compound forms
// are checked before their single-word prefixes so "twenty five" does not
// resolve to 20.
func FindNumberWord(text string) (int, bool) {
	lower := strings.ToLower(text)

	compounds := []string{"twenty one", "twenty two", "twenty five", "thirty five"}
	for _, c := range compounds {
		if strings.Contains(lower, c) {
			return numberWords[c], true
		}
	}

	for _, tok := range strings.FieldsFunc(lower, func(r rune) bool {
		return r == ' ' || r == ',' || r == '.' || r == '।'
	}) {
		if n, ok := numberWords[tok]; ok {
			return n, true
		}
	}
	return 0, false
}
