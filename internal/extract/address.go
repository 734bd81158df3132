package extract

import (
	"regexp"
	"strings"

	"github.com/kaamkhoj/kaamkhoj/internal/lexicon"
)

// addressIndicators are tokens whose presence makes a free-form utterance
// likely to be an address. The list mixes English and Hinglish terms
// because Indian addresses are routinely code-mixed.
var addressIndicators = []string{
	"street", "road", "avenue", "lane", "boulevard", "drive", "court", "place",
	"highway", "circle", "plaza", "square", "apartment", "apt", "suite", "unit",
	"floor", "building", "block", "sector", "phase", "district", "area", "town",
	"village", "city", "state", "zip", "postal", "pincode", "pin code",
	"colony", "society", "nagar", "chowk", "gali", "galli", "marg", "basti", "mohalla",
}

var nonAddressPhrases = []string{
	"i don't know", "what is", "what are", "how to", "tell me",
	"can you", "please help", "i need", "hello", "thank you",
}

var (
	houseStreetRules = []lexicon.Rule{
		lexicon.NewRule(`(?i)(?:house|flat|apartment|apt)(?:\s+number|\s+no\.?|\s+#)?\s+(.+?)(?:[,.]|$)`),
		lexicon.NewRule(`(?i)(?:street|road|avenue|lane|boulevard|drive|court|place)\s+(.+?)(?:[,.]|$)`),
		lexicon.NewRuleGroup(`(?i)(\d+)\s+([A-Za-z\s]+(?:street|road|avenue|lane|boulevard|drive|court|place))(?:[,.]|$)`, 2),
		lexicon.NewRule(`(?i)([A-Za-z0-9\s-]+?)[,\s]+(?:street|road|avenue|lane|boulevard|drive)(?:[,.]|$)`),
	}
	numberStreetRule = lexicon.NewRule(`(?i)(\d+[\s-]*[A-Za-z\s]+)(?:[,.]|$)`)

	cityPhraseRules = []lexicon.Rule{
		lexicon.NewRule(`(?i)(?:city|town|village)\s+(?:of\s+)?(.+?)(?:[,.]|$)`),
		lexicon.NewRule(`(?i)(?:in|from)\s+(.+?)(?:[,.]|$)`),
		lexicon.NewRule(`(?i)^(.+?)\s+(?:city|town|village)(?:[,.]|$)`),
	}
	statePhraseRules = []lexicon.Rule{
		lexicon.NewRule(`(?i)(?:state|province)\s+(?:of\s+)?(.+?)(?:[,.]|$)`),
		lexicon.NewRule(`(?i)^(.+?)\s+(?:state|province)(?:[,.]|$)`),
	}

	placeNameRE       = regexp.MustCompile(`^[A-Za-z\s]+$`)
	addressNumericRE  = regexp.MustCompile(`\d`)
	houseNumberLeadRE = regexp.MustCompile(`(?i)(?:^|\s)(?:\d+\s*[-,.]?\s*\w|\w\s*[-,.]?\s*\d)`)
)

// Address attempts to extract a complete address from one utterance. The
// fragment extractors (HouseStreet, City, State) cover the multi-turn case
// where this fails.
func Address(text string, lang lexicon.Language) (string, bool) {
	clean := strings.TrimSpace(text)
	lower := strings.ToLower(clean)

	// Known non-answers are rejected before the phrasal rules: "what is
	// your address" would otherwise satisfy the looser patterns.
	for _, phrase := range nonAddressPhrases {
		if strings.Contains(lower, phrase) {
			return "", false
		}
	}

	rules := lexicon.RulesFor(lang, lexicon.AddressRulesEN, lexicon.AddressRulesHI)
	for _, rule := range rules {
		if candidate, ok := rule.Extract(clean); ok && len([]rune(candidate)) > 5 {
			return candidate, true
		}
	}

	hasIndicator := false
	for _, ind := range addressIndicators {
		if strings.Contains(lower, ind) {
			hasIndicator = true
			break
		}
	}

	looksNumbered := addressNumericRE.MatchString(clean) && houseNumberLeadRE.MatchString(clean)
	if (hasIndicator || looksNumbered) &&
		len(clean) > 10 && len(strings.Fields(clean)) >= 3 {
		return clean, true
	}

	// Last resort for the "just state your address" retry: a long enough
	// utterance that is not a question.
	if len(clean) > 15 && len(strings.Fields(clean)) >= 4 &&
		!lexicon.ContainsQuestionWord(clean) {
		return clean, true
	}

	return "", false
}

// HouseStreet extracts a house number / street fragment.
func HouseStreet(text string) (string, bool) {
	for _, rule := range houseStreetRules {
		if v, ok := rule.Extract(text); ok {
			return v, true
		}
	}
	// A number followed by words is usually "12 Gandhi Nagar" style.
	if v, ok := numberStreetRule.Extract(text); ok {
		return v, true
	}
	return "", false
}

// City extracts a city fragment, preferring the gazetteer over phrasal
// patterns.
func City(text string) (string, bool) {
	if city, ok := lexicon.Cities.Lookup(text); ok {
		return city, true
	}
	for _, rule := range cityPhraseRules {
		if candidate, ok := rule.Extract(text); ok && plausiblePlaceName(candidate) {
			return candidate, true
		}
	}
	return "", false
}

// State extracts a state fragment: gazetteer, then US abbreviations, then
// phrasal patterns.
func State(text string) (string, bool) {
	if state, ok := lexicon.States.Lookup(text); ok {
		return state, true
	}
	if abbr, ok := lexicon.LookupStateAbbreviation(text); ok {
		return abbr, true
	}
	for _, rule := range statePhraseRules {
		if candidate, ok := rule.Extract(text); ok && plausiblePlaceName(candidate) {
			return candidate, true
		}
	}
	return "", false
}

func plausiblePlaceName(candidate string) bool {
	n := len(candidate)
	return n > 2 && n < 30 && placeNameRE.MatchString(candidate)
}
