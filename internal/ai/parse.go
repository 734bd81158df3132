package ai

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/kaamkhoj/kaamkhoj/internal/extract"
)

var (
	jsonObjectRE    = regexp.MustCompile(`\{[\s\S]*?\}`)
	markdownFenceRE = regexp.MustCompile("```(?:json)?")
)

// hindiFieldLabels let the regex scrape recognise model output that labels
// the value in Hindi instead of echoing the JSON key.
var hindiFieldLabels = map[extract.Field]string{
	extract.FieldName:         "नाम",
	extract.FieldGender:       "लिंग",
	extract.FieldAge:          "उम्र",
	extract.FieldAddress:      "पता",
	extract.FieldPhone:        "फोन",
	extract.FieldExperience:   "अनुभव",
	extract.FieldEducation:    "शिक्षा",
	extract.FieldSkills:       "कौशल",
	extract.FieldAvailability: "उपलब्धता",
}

// ParseFieldValue recovers the value for the expected field from raw model
// output. It scans for JSON-object-shaped substrings and parses each
// candidate in declaration order until one contains the key; if none parse,
// a field-keyed regex scrape handles `"key": "value"` fragments embedded in
// prose or markdown fencing. A present-but-null value and a missing value
// are both misses.
func ParseFieldValue(raw string, field extract.Field) (string, bool) {
	key := string(field)

	for _, candidate := range jsonObjectRE.FindAllString(raw, -1) {
		var parsed map[string]any
		if err := json.Unmarshal([]byte(candidate), &parsed); err != nil {
			continue
		}
		value, present := parsed[key]
		if !present {
			continue
		}
		if value == nil {
			return "", false
		}
		if s := coerceString(value); s != "" {
			return s, true
		}
		return "", false
	}

	return scrapeFieldValue(raw, field)
}

// scrapeFieldValue is the permissive fallback for malformed model output.
func scrapeFieldValue(raw string, field extract.Field) (string, bool) {
	cleaned := strings.TrimSpace(markdownFenceRE.ReplaceAllString(raw, ""))
	key := regexp.QuoteMeta(string(field))

	labels := key
	if hindi, ok := hindiFieldLabels[field]; ok {
		labels = key + "|" + regexp.QuoteMeta(hindi)
	}

	patterns := []*regexp.Regexp{
		regexp.MustCompile(`"` + key + `"\s*:\s*"([^"]+)"`),
		regexp.MustCompile(`'` + key + `'\s*:\s*'([^']+)'`),
		regexp.MustCompile(`(?i)(?:` + labels + `)\s*[:\s]\s*"?([^"'` + "`" + `\n{}]+?)"?\s*(?:$|[,}\n])`),
	}

	for _, re := range patterns {
		if m := re.FindStringSubmatch(cleaned); m != nil {
			value := strings.TrimSpace(m[1])
			if value != "" && !strings.EqualFold(value, "null") {
				return value, true
			}
		}
	}
	return "", false
}

func coerceString(v any) string {
	switch value := v.(type) {
	case string:
		return strings.TrimSpace(value)
	case float64:
		if value == float64(int64(value)) {
			return strconv.FormatInt(int64(value), 10)
		}
		return strconv.FormatFloat(value, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(value)
	default:
		return strings.TrimSpace(fmt.Sprintf("%v", v))
	}
}
