// Package lexicon holds the declarative matching resources for the intake
// engine: ordered regex rule lists per field and language, gazetteers for
// city/state lookup, number-word maps and dialogue stoplists. Everything in
// this package is stateless and safe for concurrent use.
package lexicon

import (
	"regexp"
	"strings"
)

// Language is a coarse language tag for an utterance.
type Language string

const (
	EnglishIN Language = "en-IN"
	HindiIN   Language = "hi-IN"
)

// ParseLanguage normalises a caller-provided tag. Anything starting with "hi"
// is treated as Hindi, everything else as Indian English.
func ParseLanguage(tag string) Language {
	if strings.HasPrefix(strings.ToLower(strings.TrimSpace(tag)), "hi") {
		return HindiIN
	}
	return EnglishIN
}

// IsHindi reports whether the language is the Hindi tag.
func (l Language) IsHindi() bool { return l == HindiIN }

// Rule is a single ordered matching rule. The first rule in a list whose
// pattern matches wins; Group selects the capture group holding the value.
type Rule struct {
	re    *regexp.Regexp
	group int
}

// NewRule compiles a rule extracting capture group 1.
func NewRule(pattern string) Rule {
	return Rule{re: regexp.MustCompile(pattern), group: 1}
}

// NewRuleGroup compiles a rule extracting the given capture group.
func NewRuleGroup(pattern string, group int) Rule {
	return Rule{re: regexp.MustCompile(pattern), group: group}
}

// Extract applies the rule to text, returning the trimmed capture and whether
// it matched with a non-empty value.
func (r Rule) Extract(text string) (string, bool) {
	m := r.re.FindStringSubmatch(text)
	if m == nil || r.group >= len(m) {
		return "", false
	}
	value := strings.TrimSpace(m[r.group])
	return value, value != ""
}

// FirstMatch runs an ordered rule list and returns the first non-empty
// capture. Declaration order is the only tie-break.
func FirstMatch(rules []Rule, text string) (string, bool) {
	for _, r := range rules {
		if v, ok := r.Extract(text); ok {
			return v, true
		}
	}
	return "", false
}
