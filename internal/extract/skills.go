package extract

import (
	"regexp"
	"strings"

	"github.com/kaamkhoj/kaamkhoj/internal/lexicon"
)

const skillsDirectMaxWords = 10

// skillCategories maps keyword sets onto the 11 job domains the matching
// engine understands. Several categories may co-match ("driving and
// cooking") and are joined in declaration order.
var skillCategories = []struct {
	label string
	re    *regexp.Regexp
}{
	{"technical", regexp.MustCompile(`(?i)\b(?:computer|programming|software|typing|data entry|mobile repair|electrician|electronics|it)\b|कंप्यूटर|टाइपिंग|सॉफ्टवेयर|इलेक्ट्रीशियन`)},
	{"construction", regexp.MustCompile(`(?i)\b(?:mason|masonry|carpenter|carpentry|plumber|plumbing|painter|painting|welding|welder|construction|labour|labor|mistri)\b|राजमिस्त्री|बढ़ई|प्लंबर|पेंटर|मजदूर|निर्माण`)},
	{"agriculture", regexp.MustCompile(`(?i)\b(?:farming|farmer|agriculture|harvesting|tractor|kheti|gardening|gardener|mali)\b|खेती|किसान|बागवानी|माली`)},
	{"hospitality", regexp.MustCompile(`(?i)\b(?:cooking|cook|chef|waiter|kitchen|catering|hotel|restaurant|khana banana)\b|रसोइया|खाना बनाना|वेटर|होटल`)},
	{"healthcare", regexp.MustCompile(`(?i)\b(?:nurse|nursing|ward boy|caretaker|caregiver|compounder|hospital)\b|नर्स|वार्ड बॉय|देखभाल|अस्पताल`)},
	{"transportation", regexp.MustCompile(`(?i)\b(?:driving|driver|rickshaw|auto|truck|taxi|delivery|courier)\b|ड्राइवर|ड्राइविंग|रिक्शा|डिलीवरी|गाड़ी चलाना`)},
	{"cleaning", regexp.MustCompile(`(?i)\b(?:cleaning|cleaner|sweeping|sweeper|housekeeping|safai|washing|laundry)\b|सफाई|झाड़ू|धुलाई|हाउसकीपिंग`)},
	{"security", regexp.MustCompile(`(?i)\b(?:security|guard|watchman|chowkidar)\b|सुरक्षा|गार्ड|चौकीदार`)},
	{"sales", regexp.MustCompile(`(?i)\b(?:sales|salesman|selling|shopkeeper|shop|retail|marketing|dukaan)\b|दुकान|बिक्री|सेल्स`)},
	{"teaching", regexp.MustCompile(`(?i)\b(?:teaching|teacher|tutor|tuition|coaching)\b|शिक्षक|शिक्षण|पढ़ाना|ट्यूशन`)},
	{"management", regexp.MustCompile(`(?i)\b(?:management|manager|supervisor|supervision|foreman|team lead)\b|मैनेजर|प्रबंधन|सुपरवाइजर`)},
}

// Skills extracts a skill description. Known keywords resolve to category
// labels (joined with ", " when several match); otherwise a short
// non-question utterance or rule-extracted phrase is accepted verbatim as a
// free-text skill.
func Skills(text string, lang lexicon.Language) (string, bool) {
	if labels := matchSkillCategories(text); len(labels) > 0 {
		return strings.Join(labels, ", "), true
	}

	rules := lexicon.RulesFor(lang, lexicon.SkillsRulesEN, lexicon.SkillsRulesHI)
	for _, rule := range rules {
		candidate, ok := rule.Extract(text)
		if !ok {
			continue
		}
		if labels := matchSkillCategories(candidate); len(labels) > 0 {
			return strings.Join(labels, ", "), true
		}
		if validFreeTextSkill(candidate) {
			return candidate, true
		}
	}

	direct := strings.TrimSpace(text)
	if validFreeTextSkill(direct) && !lexicon.IsFillerPhrase(direct) {
		return direct, true
	}

	return "", false
}

func matchSkillCategories(text string) []string {
	var labels []string
	for _, c := range skillCategories {
		if c.re.MatchString(text) {
			labels = append(labels, c.label)
		}
	}
	return labels
}

func validFreeTextSkill(candidate string) bool {
	words := len(strings.Fields(candidate))
	return words > 0 && words <= skillsDirectMaxWords &&
		len([]rune(candidate)) >= 3 &&
		!lexicon.ContainsQuestionWord(candidate)
}
