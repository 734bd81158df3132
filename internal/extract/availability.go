package extract

import (
	"regexp"
	"strings"

	"github.com/kaamkhoj/kaamkhoj/internal/lexicon"
)

// Fixed availability labels. Day-of-week answers are reported as a
// combined day list instead ("Monday, Wednesday").
var availabilityLabels = []struct {
	label string
	re    *regexp.Regexp
}{
	{"Full-time", regexp.MustCompile(`(?i)\bfull[\s-]?time\b|पूर्णकालिक|पूरा समय|फुल टाइम`)},
	{"Part-time", regexp.MustCompile(`(?i)\bpart[\s-]?time\b|अंशकालिक|आधा समय|पार्ट टाइम`)},
	{"Weekends", regexp.MustCompile(`(?i)\bweek[\s-]?ends?\b|सप्ताहांत|वीकेंड`)},
	{"Weekdays", regexp.MustCompile(`(?i)\bweek[\s-]?days?\b|कार्यदिवस`)},
	{"Mornings", regexp.MustCompile(`(?i)\bmornings?\b|\bsubah\b|सुबह`)},
	{"Evenings", regexp.MustCompile(`(?i)\bevenings?\b|\bshaam\b|शाम`)},
	{"Nights", regexp.MustCompile(`(?i)\bnights?\b|\braat\b|रात`)},
	{"Flexible", regexp.MustCompile(`(?i)\bflexible\b|\bany ?time\b|लचीला|किसी भी समय`)},
}

var weekDays = []struct {
	label string
	re    *regexp.Regexp
}{
	{"Monday", regexp.MustCompile(`(?i)\bmondays?\b|सोमवार`)},
	{"Tuesday", regexp.MustCompile(`(?i)\btuesdays?\b|मंगलवार`)},
	{"Wednesday", regexp.MustCompile(`(?i)\bwednesdays?\b|बुधवार`)},
	{"Thursday", regexp.MustCompile(`(?i)\bthursdays?\b|गुरुवार`)},
	{"Friday", regexp.MustCompile(`(?i)\bfridays?\b|शुक्रवार`)},
	{"Saturday", regexp.MustCompile(`(?i)\bsaturdays?\b|शनिवार`)},
	{"Sunday", regexp.MustCompile(`(?i)\bsundays?\b|रविवार`)},
}

const availabilityDirectMaxWords = 3

// Availability extracts when the person can work: a fixed label, a combined
// day-of-week list, or (as a last resort) a short direct answer verbatim.
func Availability(text string, lang lexicon.Language) (string, bool) {
	if v, ok := availabilityFromKeywords(text); ok {
		return v, true
	}

	rules := lexicon.RulesFor(lang, lexicon.AvailabilityRulesEN, lexicon.AvailabilityRulesHI)
	for _, rule := range rules {
		candidate, ok := rule.Extract(text)
		if !ok {
			continue
		}
		if v, matched := availabilityFromKeywords(candidate); matched {
			return v, true
		}
		if validDirectAvailability(candidate) {
			return candidate, true
		}
	}

	direct := strings.TrimSpace(text)
	if validDirectAvailability(direct) && !lexicon.IsFillerPhrase(direct) {
		return direct, true
	}

	return "", false
}

func availabilityFromKeywords(text string) (string, bool) {
	// Day answers combine; label answers do not.
	var days []string
	for _, d := range weekDays {
		if d.re.MatchString(text) {
			days = append(days, d.label)
		}
	}
	if len(days) > 0 {
		return strings.Join(days, ", "), true
	}

	for _, l := range availabilityLabels {
		if l.re.MatchString(text) {
			return l.label, true
		}
	}
	return "", false
}

func validDirectAvailability(candidate string) bool {
	words := len(strings.Fields(candidate))
	return words > 0 && words <= availabilityDirectMaxWords &&
		len([]rune(candidate)) >= 2 &&
		!lexicon.ContainsQuestionWord(candidate)
}
