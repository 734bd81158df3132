package lexicon

import (
	"regexp"
	"strings"
)

// Gazetteer is a static lookup list matched case-insensitively on whole
// words, so "Washington" never matches inside another word. Entries are
// returned in their canonical casing regardless of input casing.
type Gazetteer struct {
	entries []string
	re      *regexp.Regexp
}

// NewGazetteer builds a gazetteer from canonical entries. Multi-word entries
// are supported; longer entries are tried before their prefixes ("West
// Bengal" before "Bengal") by construction order of the alternation.
func NewGazetteer(entries []string) *Gazetteer {
	alts := make([]string, 0, len(entries))
	for _, e := range entries {
		alts = append(alts, regexp.QuoteMeta(e))
	}
	return &Gazetteer{
		entries: entries,
		re:      regexp.MustCompile(`(?i)\b(` + strings.Join(alts, "|") + `)\b`),
	}
}

// Lookup returns the canonical entry found in text, if any.
func (g *Gazetteer) Lookup(text string) (string, bool) {
	m := g.re.FindString(text)
	if m == "" {
		return "", false
	}
	for _, e := range g.entries {
		if strings.EqualFold(e, m) {
			return e, true
		}
	}
	return m, true
}

// Cities covers the Indian metros plus major US cities, mirroring the
// coverage the intake assistant was trained against.
var Cities = NewGazetteer([]string{
	"Mumbai", "Delhi", "Bangalore", "Hyderabad", "Chennai", "Kolkata", "Pune",
	"Ahmedabad", "Jaipur", "Lucknow", "Kanpur", "Nagpur", "Indore", "Thane", "Bhopal",
	"Visakhapatnam", "Patna", "Vadodara", "Ghaziabad", "Ludhiana", "Agra", "Nashik",
	"Faridabad", "Meerut", "Rajkot", "Varanasi", "Srinagar", "Aurangabad", "Dhanbad",
	"Amritsar", "Allahabad", "Ranchi", "Coimbatore", "Jabalpur", "Gwalior", "Vijayawada",
	"Jodhpur", "Madurai", "Raipur", "Kota", "Chandigarh", "Guwahati", "Solapur", "Hubli",
	"Mysore", "Tiruchirappalli", "New York", "Los Angeles", "Chicago", "Houston",
	"Phoenix", "Philadelphia", "San Antonio", "San Diego", "Dallas", "San Jose",
	"Austin", "Jacksonville", "San Francisco", "Columbus", "Fort Worth", "Indianapolis",
	"Charlotte", "Seattle", "Denver", "Washington", "Boston", "El Paso", "Nashville",
	"Detroit", "Portland", "Las Vegas",
})

// States covers Indian states and US states.
var States = NewGazetteer([]string{
	"Andhra Pradesh", "Arunachal Pradesh", "Assam", "Bihar", "Chhattisgarh", "Goa",
	"Gujarat", "Haryana", "Himachal Pradesh", "Jharkhand", "Karnataka", "Kerala",
	"Madhya Pradesh", "Maharashtra", "Manipur", "Meghalaya", "Mizoram", "Nagaland",
	"Odisha", "Punjab", "Rajasthan", "Sikkim", "Tamil Nadu", "Telangana", "Tripura",
	"Uttar Pradesh", "Uttarakhand", "West Bengal", "Alabama", "Alaska", "Arizona",
	"Arkansas", "California", "Colorado", "Connecticut", "Delaware", "Florida",
	"Georgia", "Hawaii", "Idaho", "Illinois", "Indiana", "Iowa", "Kansas", "Kentucky",
	"Louisiana", "Maine", "Maryland", "Massachusetts", "Michigan", "Minnesota",
	"Mississippi", "Missouri", "Montana", "Nebraska", "Nevada", "New Hampshire",
	"New Jersey", "New Mexico", "New York", "North Carolina", "North Dakota", "Ohio",
	"Oklahoma", "Oregon", "Pennsylvania", "Rhode Island", "South Carolina",
	"South Dakota", "Tennessee", "Texas", "Utah", "Vermont", "Virginia", "Washington",
	"West Virginia", "Wisconsin", "Wyoming",
})

// stateAbbreviations are matched case-sensitively: "IN", "ME", "OK", "HI"
// and "OR" collide with common English words under case folding, which the
// whole-word rule alone cannot prevent.
var stateAbbreviationsRE = regexp.MustCompile(`\b(AL|AK|AZ|AR|CA|CO|CT|DE|FL|GA|HI|ID|IL|IN|IA|KS|KY|LA|ME|MD|MA|MI|MN|MS|MO|MT|NE|NV|NH|NJ|NM|NY|NC|ND|OH|OK|OR|PA|RI|SC|SD|TN|TX|UT|VT|VA|WA|WV|WI|WY)\b`)

// LookupStateAbbreviation returns an uppercase US state abbreviation found
// in text, if any.
func LookupStateAbbreviation(text string) (string, bool) {
	m := stateAbbreviationsRE.FindString(text)
	return m, m != ""
}
