package ai

import (
	"fmt"

	"github.com/kaamkhoj/kaamkhoj/internal/extract"
	"github.com/kaamkhoj/kaamkhoj/internal/lexicon"
)

// Prompt contract: the model must reply with exactly one JSON object with a
// single key equal to the field name, the value a string or null, and
// nothing else. Examples in the prompt anchor small local models to the
// shape far better than instructions alone.

var promptSubjectsEN = map[extract.Field]string{
	extract.FieldName:         "the person's name",
	extract.FieldGender:       "the person's gender (only \"Male\", \"Female\", or \"Other\")",
	extract.FieldAge:          "the person's age in years",
	extract.FieldAddress:      "the person's complete address",
	extract.FieldPhone:        "the person's phone number",
	extract.FieldExperience:   "the person's work experience in years",
	extract.FieldEducation:    "the person's highest education level",
	extract.FieldSkills:       "the person's work skills",
	extract.FieldAvailability: "when the person is available to work",
}

var promptSubjectsHI = map[extract.Field]string{
	extract.FieldName:         "व्यक्ति का नाम",
	extract.FieldGender:       "व्यक्ति का लिंग (केवल \"Male\", \"Female\", या \"Other\")",
	extract.FieldAge:          "व्यक्ति की उम्र (वर्षों में)",
	extract.FieldAddress:      "व्यक्ति का पूरा पता",
	extract.FieldPhone:        "व्यक्ति का फोन नंबर",
	extract.FieldExperience:   "व्यक्ति का कार्य अनुभव (वर्षों में)",
	extract.FieldEducation:    "व्यक्ति की उच्चतम शिक्षा",
	extract.FieldSkills:       "व्यक्ति के कौशल",
	extract.FieldAvailability: "व्यक्ति की उपलब्धता",
}

var promptExamples = map[extract.Field][2]string{
	extract.FieldName:   {`{"name":"Ramesh Kumar"}`, `{"name":null}`},
	extract.FieldGender: {`{"gender":"Female"}`, `{"gender":null}`},
	extract.FieldAge:    {`{"age":"25"}`, `{"age":null}`},
}

// BuildPrompt renders the single-field JSON extraction prompt for the
// field in the requested language.
func BuildPrompt(field extract.Field, lang lexicon.Language, text string) string {
	key := string(field)

	if lang.IsHindi() {
		subject := promptSubjectsHI[field]
		return fmt.Sprintf(
			"निम्नलिखित वाक्य से %s निकालें और केवल JSON प्रारूप {%q:\"<मान>\"} में वापस करें।\n"+
				"यदि जानकारी नहीं मिलती है, तो {%q:null} वापस करें।\n"+
				"केवल JSON में जवाब दें। अतिरिक्त टेक्स्ट न जोड़ें।\n%s\n"+
				"इनपुट: %q",
			subject, key, key, exampleBlock(field), text)
	}

	subject := promptSubjectsEN[field]
	return fmt.Sprintf(
		"Extract %s from the following sentence and return ONLY a JSON object of the form {%q:\"<value>\"}.\n"+
			"If the information is not present, return {%q:null}.\n"+
			"Reply ONLY with the JSON object. Do not add explanations.\n%s\n"+
			"Input: %q",
		subject, key, key, exampleBlock(field), text)
}

func exampleBlock(field extract.Field) string {
	ex, ok := promptExamples[field]
	if !ok {
		key := string(field)
		ex = [2]string{fmt.Sprintf(`{%q:"<value>"}`, key), fmt.Sprintf(`{%q:null}`, key)}
	}
	return fmt.Sprintf("Format examples:\n%s\n%s", ex[0], ex[1])
}
