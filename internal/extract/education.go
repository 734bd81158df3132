package extract

import "regexp"

// educationLadder lists qualification levels in ascending order. Extraction
// scans every level and resolves to the highest one mentioned, so "I did my
// 12th and then a bachelor degree" yields bachelor, not 12th.
var educationLadder = []struct {
	label string
	re    *regexp.Regexp
}{
	{"primary", regexp.MustCompile(`(?i)\b(?:primary school|primary|5th(?:\s+(?:class|standard|pass))?|class 5)\b|प्राथमिक|पांचवीं`)},
	{"middle school", regexp.MustCompile(`(?i)\b(?:middle school|8th(?:\s+(?:class|standard|pass))?|class 8)\b|आठवीं`)},
	{"10th", regexp.MustCompile(`(?i)\b(?:10th(?:\s+(?:class|standard|pass))?|tenth|matric(?:ulation)?|ssc|high school)\b|दसवीं|मैट्रिक`)},
	{"12th", regexp.MustCompile(`(?i)\b(?:12th(?:\s+(?:class|standard|pass))?|twelfth|intermediate|hsc|higher secondary|\+2)\b|बारहवीं|इंटर`)},
	{"diploma", regexp.MustCompile(`(?i)\b(?:diploma|polytechnic|iti)\b|डिप्लोमा|आईटीआई`)},
	{"bachelor", regexp.MustCompile(`(?i)\b(?:bachelor'?s?|graduation|graduate|b\.?a\.?|b\.?sc\.?|b\.?com\.?|b\.?tech\.?|b\.?e\.?|bba|bca|undergraduate degree)\b|स्नातक|बीए|बीएससी|बीकॉम|बीटेक`)},
	{"master", regexp.MustCompile(`(?i)\b(?:master'?s?|post ?graduate|post ?graduation|m\.?a\.?|m\.?sc\.?|m\.?com\.?|m\.?tech\.?|mba|mca)\b|स्नातकोत्तर|परास्नातक|एमए|एमबीए|एमटेक`)},
	{"doctorate", regexp.MustCompile(`(?i)\b(?:ph\.?d\.?|doctorate|doctoral)\b|पीएचडी|डॉक्टरेट`)},
}

// Education maps an utterance onto the qualification ladder, returning the
// highest matching level. No free-text fallback: unknown qualifications are
// a miss.
func Education(text string) (string, bool) {
	best := -1
	for i, level := range educationLadder {
		if level.re.MatchString(text) {
			best = i
		}
	}
	if best < 0 {
		return "", false
	}
	return educationLadder[best].label, true
}
