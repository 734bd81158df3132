package extract

import "regexp"

// Gender labels are normalized to English regardless of input language;
// localization happens at reply time.
const (
	GenderMale   = "Male"
	GenderFemale = "Female"
	GenderOther  = "Other"
)

// Synonym sets per label. Whole-word matching matters here: without it
// "female" matches "male" and "woman" matches "man".
var genderSynonyms = []struct {
	label string
	re    *regexp.Regexp
}{
	{GenderOther, regexp.MustCompile(`(?i)\b(?:non-?binary|other|third gender|transgender)\b|अन्य|थर्ड जेंडर|ट्रांसजेंडर`)},
	{GenderFemale, regexp.MustCompile(`(?i)\b(?:female|woman|girl|lady|ladki|aurat|mahila|stree|stri)\b|महिला|लड़की|औरत|स्त्री|फीमेल`)},
	{GenderMale, regexp.MustCompile(`(?i)\b(?:male|man|boy|gentleman|ladka|aadmi|admi|purush)\b|पुरुष|लड़का|आदमी|मेल`)},
}

// Gender maps an utterance onto Male, Female or Other via the synonym sets.
// There is no free-text fallback: an answer outside the known synonyms is a
// miss.
func Gender(text string) (string, bool) {
	for _, s := range genderSynonyms {
		if s.re.MatchString(text) {
			return s.label, true
		}
	}
	return "", false
}
