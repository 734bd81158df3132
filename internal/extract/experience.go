package extract

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/kaamkhoj/kaamkhoj/internal/lexicon"
)

// Experience extracts years of work experience within [min, max]. When
// asString is set (schema v1) the value is formatted as "N years";
// otherwise the bare integer is returned.
func Experience(text string, lang lexicon.Language, min, max int, asString bool) (any, bool) {
	rules := lexicon.RulesFor(lang, lexicon.ExperienceRulesEN, lexicon.ExperienceRulesHI)
	for _, rule := range rules {
		candidate, ok := rule.Extract(text)
		if !ok {
			continue
		}

		years, err := strconv.Atoi(candidate)
		if err != nil {
			// Rules may capture a spelled-out number ("two years").
			if n, wordOK := lexicon.NumberWord(candidate); wordOK {
				years = n
			} else {
				continue
			}
		}

		if years >= min && years <= max {
			return experienceValue(years, asString), true
		}
	}

	if m := bareNumberRE.FindStringSubmatch(strings.TrimSpace(text)); m != nil {
		if years, err := strconv.Atoi(m[1]); err == nil && years >= min && years <= max {
			return experienceValue(years, asString), true
		}
	}

	if shortAnswer(text) {
		if years, ok := lexicon.FindNumberWord(text); ok && years >= min && years <= max {
			return experienceValue(years, asString), true
		}
	}

	return nil, false
}

func experienceValue(years int, asString bool) any {
	if asString {
		return fmt.Sprintf("%d years", years)
	}
	return years
}
