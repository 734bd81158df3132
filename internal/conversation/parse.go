package conversation

import (
	"encoding/json"
	"regexp"
	"strings"
)

var (
	replyObjectRE = regexp.MustCompile(`\{[\s\S]*\}`)
	whitespaceRE  = regexp.MustCompile(`\s+`)
	messageRE     = regexp.MustCompile(`"message"\s*:\s*"([^"]+)"`)
)

// parseReply recovers the structured turn reply from raw model output. The
// greedy object match tolerates prose around the JSON; newlines inside it
// are collapsed because small models routinely pretty-print despite the
// single-line instruction. When the object will not parse, a bare message
// scrape still salvages something speakable.
func parseReply(raw string) (Reply, bool) {
	candidate := replyObjectRE.FindString(raw)
	if candidate != "" {
		cleaned := strings.TrimSpace(whitespaceRE.ReplaceAllString(candidate, " "))

		var reply Reply
		if err := json.Unmarshal([]byte(cleaned), &reply); err == nil && reply.Message != "" {
			return reply, true
		}
	}

	if m := messageRE.FindStringSubmatch(raw); m != nil {
		return Reply{Message: m[1]}, true
	}

	return Reply{}, false
}
