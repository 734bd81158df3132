package conversation

import (
	"encoding/json"
	"fmt"
	"strings"
)

const systemPromptEN = `You are a friendly job assistant. Your job is to help people find work opportunities. You need to collect the following information through natural conversation:
1. Name
2. Address
3. Work experience (in years)
4. Education

Important instructions:
- Have natural, friendly conversations
- Ask one question at a time
- Understand both Hindi and English
- Keep responses short (1-2 sentences)
- Always respond in JSON format

JSON format (exactly like this):
{"message":"text to speak","extractedData":{"field":"value"},"nextField":"field_name","needsConfirmation":true,"isComplete":false}

Note: JSON must be on a single line with no extra newlines or spaces.`

const systemPromptHI = `तुम एक दोस्ताना नौकरी सहायक हो। तुम्हारा काम लोगों को नौकरी खोजने में मदद करना है। तुम्हें उनसे बातचीत के दौरान निम्नलिखित जानकारी इकट्ठा करनी है:
1. नाम (name)
2. पता (address)
3. कार्य अनुभव (experience) - कितने साल
4. शिक्षा (education)

महत्वपूर्ण निर्देश:
- प्राकृतिक और दोस्ताना बातचीत करो
- एक समय में एक ही सवाल पूछो
- हिंदी और अंग्रेजी दोनों को समझो
- जवाब छोटे रखो (1-2 वाक्य)
- हमेशा JSON फॉर्मेट में जवाब दो

JSON फॉर्मेट (बिल्कुल इसी तरह):
{"message":"बोलने का टेक्स्ट","extractedData":{"field":"value"},"nextField":"field_name","needsConfirmation":true,"isComplete":false}

ध्यान दें: JSON में कोई नई लाइन या अतिरिक्त स्पेस नहीं होनी चाहिए।`

// buildTurnPrompt assembles the per-turn prompt: system instructions,
// recent history, collected data, the field to ask next, and worked
// examples anchoring the single-line JSON shape. Caller holds the session
// lock.
func buildTurnPrompt(sess *state, userInput string) string {
	system := systemPromptEN
	if sess.language.IsHindi() {
		system = systemPromptHI
	}

	collected, err := json.Marshal(sess.userData)
	if err != nil {
		collected = []byte("{}")
	}

	var b strings.Builder
	b.WriteString(system)
	b.WriteString("\n\nConversation so far:\n")
	b.WriteString(recentHistory(sess.turns))
	b.WriteString("\n\nUser data collected so far:\n")
	b.Write(collected)
	fmt.Fprintf(&b, "\n\nNext field to ask: %s\n", sess.currentField)
	fmt.Fprintf(&b, "\nUser just said: %q\n", userInput)
	b.WriteString(`
Instructions:
1. Extract information from the user's answer
2. If information was found, ask for confirmation
3. Once confirmed, ask about the next field
4. Always answer with single-line JSON (no newlines)

Examples:
User says: "मेरा नाम राम है"
Response: {"message":"धन्यवाद राम जी! क्या यह सही है?","extractedData":{"name":"राम"},"nextField":"name","needsConfirmation":true,"isComplete":false}

User confirms: "हाँ सही है"
Response: {"message":"बहुत बढ़िया! आप कहाँ रहते हैं?","extractedData":null,"nextField":"address","needsConfirmation":false,"isComplete":false}`)

	return b.String()
}
