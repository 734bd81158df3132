package engine

import (
	"fmt"
	"strings"

	"github.com/kaamkhoj/kaamkhoj/internal/extract"
	"github.com/kaamkhoj/kaamkhoj/internal/lexicon"
)

// Clarification prompts escalate with the retry count: a general question
// first, a narrower instruction next, and finally a bare-value demand. The
// voice channel strips formatting, so replies stay short and plain.

type promptSet struct {
	first  string
	second string
	bare   string
}

var retryPromptsEN = map[extract.Field]promptSet{
	extract.FieldName: {
		first:  "What is your name?",
		second: "Please tell me just your name, for example: Ramesh Kumar.",
		bare:   "Say only your name, nothing else.",
	},
	extract.FieldGender: {
		first:  "Are you male, female, or other?",
		second: "Please answer with one word: male, female, or other.",
		bare:   "Say only: male, female, or other.",
	},
	extract.FieldAge: {
		first:  "How old are you?",
		second: "Please tell me your age in years, for example: 25.",
		bare:   "Say only your age as a number.",
	},
	extract.FieldAddress: {
		first:  "Where do you live? Please tell me your address.",
		second: "Please tell me your house number, street, city and state.",
		bare:   "Say only your address, nothing else.",
	},
	extract.FieldPhone: {
		first:  "What is your phone number?",
		second: "Please tell me your 10-digit mobile number.",
		bare:   "Say only the 10 digits of your phone number.",
	},
	extract.FieldExperience: {
		first:  "How many years of work experience do you have?",
		second: "Please tell me your experience in years, for example: 3 years.",
		bare:   "Say only the number of years.",
	},
	extract.FieldEducation: {
		first:  "What is your highest education?",
		second: "For example: 10th, 12th, diploma, or bachelor degree.",
		bare:   "Say only your education level.",
	},
	extract.FieldSkills: {
		first:  "What work can you do? Tell me your skills.",
		second: "For example: driving, cooking, plumbing, or computer work.",
		bare:   "Say only your main skill.",
	},
	extract.FieldAvailability: {
		first:  "When can you work?",
		second: "For example: full time, part time, weekends, or mornings.",
		bare:   "Say only when you can work.",
	},
}

var retryPromptsHI = map[extract.Field]promptSet{
	extract.FieldName: {
		first:  "आपका नाम क्या है?",
		second: "कृपया केवल अपना नाम बताएं, जैसे: रमेश कुमार।",
		bare:   "केवल अपना नाम बोलें, और कुछ नहीं।",
	},
	extract.FieldGender: {
		first:  "आप पुरुष हैं, महिला हैं, या अन्य?",
		second: "कृपया एक शब्द में जवाब दें: पुरुष, महिला, या अन्य।",
		bare:   "केवल बोलें: पुरुष, महिला, या अन्य।",
	},
	extract.FieldAge: {
		first:  "आपकी उम्र क्या है?",
		second: "कृपया अपनी उम्र वर्षों में बताएं, जैसे: 25।",
		bare:   "केवल अपनी उम्र का नंबर बोलें।",
	},
	extract.FieldAddress: {
		first:  "आप कहाँ रहते हैं? कृपया अपना पता बताएं।",
		second: "कृपया अपना मकान नंबर, गली, शहर और राज्य बताएं।",
		bare:   "केवल अपना पता बोलें, और कुछ नहीं।",
	},
	extract.FieldPhone: {
		first:  "आपका फोन नंबर क्या है?",
		second: "कृपया अपना 10 अंकों का मोबाइल नंबर बताएं।",
		bare:   "केवल अपने फोन नंबर के 10 अंक बोलें।",
	},
	extract.FieldExperience: {
		first:  "आपके पास कितने साल का काम का अनुभव है?",
		second: "कृपया अपना अनुभव वर्षों में बताएं, जैसे: 3 साल।",
		bare:   "केवल सालों का नंबर बोलें।",
	},
	extract.FieldEducation: {
		first:  "आपकी सबसे ऊंची शिक्षा क्या है?",
		second: "जैसे: 10वीं, 12वीं, डिप्लोमा, या बैचलर डिग्री।",
		bare:   "केवल अपनी शिक्षा का स्तर बोलें।",
	},
	extract.FieldSkills: {
		first:  "आप क्या काम कर सकते हैं? अपने कौशल बताएं।",
		second: "जैसे: ड्राइविंग, खाना बनाना, प्लंबिंग, या कंप्यूटर का काम।",
		bare:   "केवल अपना मुख्य काम बोलें।",
	},
	extract.FieldAvailability: {
		first:  "आप कब काम कर सकते हैं?",
		second: "जैसे: फुल टाइम, पार्ट टाइम, वीकेंड, या सुबह।",
		bare:   "केवल बोलें कि आप कब काम कर सकते हैं।",
	},
}

var fieldLabelsEN = map[extract.Field]string{
	extract.FieldName:         "name",
	extract.FieldGender:       "gender",
	extract.FieldAge:          "age",
	extract.FieldAddress:      "address",
	extract.FieldPhone:        "phone number",
	extract.FieldExperience:   "work experience",
	extract.FieldEducation:    "education",
	extract.FieldSkills:       "skills",
	extract.FieldAvailability: "availability",
}

var fieldLabelsHI = map[extract.Field]string{
	extract.FieldName:         "नाम",
	extract.FieldGender:       "लिंग",
	extract.FieldAge:          "उम्र",
	extract.FieldAddress:      "पता",
	extract.FieldPhone:        "फोन नंबर",
	extract.FieldExperience:   "काम का अनुभव",
	extract.FieldEducation:    "शिक्षा",
	extract.FieldSkills:       "कौशल",
	extract.FieldAvailability: "उपलब्धता",
}

var missingPartLabelsHI = map[string]string{
	"house number and street": "मकान नंबर और गली",
	"city":                    "शहर",
	"state":                   "राज्य",
}

func successReply(field extract.Field, lang lexicon.Language, value any) string {
	if lang.IsHindi() {
		return fmt.Sprintf("धन्यवाद! मैंने आपका %s नोट कर लिया: %v", fieldLabelsHI[field], value)
	}
	return fmt.Sprintf("Thank you! I noted your %s: %v", fieldLabelsEN[field], value)
}

func retryReply(field extract.Field, lang lexicon.Language, retryCount int, missing []string) string {
	// An address attempt with some fragments already banked asks for what
	// is still missing instead of restarting from the generic prompt.
	if field == extract.FieldAddress && retryCount >= 1 && len(missing) > 0 && len(missing) < 3 {
		return missingPartsReply(lang, missing)
	}

	prompts := retryPromptsEN[field]
	if lang.IsHindi() {
		prompts = retryPromptsHI[field]
	}

	switch {
	case retryCount <= 0:
		return prompts.first
	case retryCount == 1:
		return prompts.second
	default:
		return prompts.bare
	}
}

func missingPartsReply(lang lexicon.Language, missing []string) string {
	if lang.IsHindi() {
		translated := make([]string, 0, len(missing))
		for _, part := range missing {
			if hi, ok := missingPartLabelsHI[part]; ok {
				translated = append(translated, hi)
			} else {
				translated = append(translated, part)
			}
		}
		return fmt.Sprintf("मुझे बस आपका %s चाहिए।", strings.Join(translated, " और "))
	}
	return fmt.Sprintf("I just need your %s.", strings.Join(missing, " and "))
}
