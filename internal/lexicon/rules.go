package lexicon

// Ordered rule lists per field and language. Order is load-bearing: the
// first matching rule wins, so more specific phrasings sit above looser
// catch-alls. Hindi lists cover both Devanagari and Hinglish transliteration.
//
// Note: RE2 \b is an ASCII word boundary, so rules never place \b next to
// Devanagari text; (?:^|\s) and (?:\s|$) are used there instead.

var NameRulesEN = []Rule{
	NewRule(`(?i)my name is\s+(.+?)(?:\s+and\b|\s+but\b|\s+or\b|[.,]|$)`),
	NewRule(`(?i)\bi am called\s+(.+?)(?:\s+and\b|[.,]|$)`),
	NewRule(`(?i)\bcall me\s+(.+?)(?:\s+and\b|[.,]|$)`),
	NewRule(`(?i)\bi'?m\s+(.+?)(?:\s+and\b|\s+but\b|\s+or\b|[.,]|$)`),
	NewRule(`(?i)\bi am\s+(.+?)(?:\s+and\b|\s+but\b|\s+or\b|[.,]|$)`),
	NewRule(`(?i)^(.+?)\s+is my name(?:\s|[.,]|$)`),
}

var NameRulesHI = []Rule{
	NewRule(`(?i)mera naam\s+(.+?)(?:\s+hai\b|\s+h\b|\s+he\b|[.,]|$)`),
	NewRule(`(?i)mera name\s+(.+?)(?:\s+hai\b|\s+h\b|\s+he\b|[.,]|$)`),
	NewRule(`मेरा नाम\s+(.+?)(?:\s+है|\s+हूँ|[.,।]|$)`),
	NewRule(`(?i)\bnaam\s+(.+?)(?:\s+hai\b|\s+h\b|\s+he\b|[.,]|$)`),
	NewRule(`नाम\s+(.+?)(?:\s+है|[.,।]|$)`),
	NewRule(`(?i)^(.+?)\s+hai mera naam`),
}

var AgeRulesEN = []Rule{
	NewRule(`(?i)\b(?:i am|i'?m)\s+(\d+)(?:\s+years?(?:\s+old)?)?(?:\s|[.,]|$)`),
	NewRule(`(?i)\bmy age is\s+(\d+)`),
	NewRule(`(?i)\bage is\s+(\d+)`),
	NewRule(`(?i)\b(\d+)\s+(?:years?|yrs?)\s+old\b`),
	NewRule(`(?i)\bage\s+(\d+)\b`),
}

var AgeRulesHI = []Rule{
	NewRule(`(?i)\bmeri (?:age|umar|umra)\s+(\d+)`),
	NewRule(`(?i)\bumar\s+(\d+)\s*(?:hai|h)?\b`),
	NewRule(`(?i)\bmain\s+(\d+)\s+saal k[ai] hu+n`),
	NewRule(`मेरी उम्र\s+(\d+)`),
	NewRule(`मेरी आयु\s+(\d+)`),
	NewRule(`उम्र\s+(\d+)`),
	NewRule(`मैं\s+(\d+)\s+साल`),
	NewRule(`(?:^|\s)(\d+)\s*(?:साल|वर्ष)(?:\s|[.,।]|$)`),
	NewRule(`(?i)(?:^|\s)(\d+)\s*(?:saal|sal)(?:\s|[.,]|$)`),
}

var PhoneRulesEN = []Rule{
	NewRule(`(?i)(?:my\s+)?(?:phone|mobile|contact|cell)(?:\s+number)?\s+is\s+(\+?\d[\d\s-]{8,})`),
	NewRule(`(?i)(\+?\d[\d\s-]{8,})\s+is my (?:phone|mobile)(?:\s+number)?`),
	NewRule(`(?i)\byou can (?:reach|call) me (?:at|on)\s+(\+?\d[\d\s-]{8,})`),
}

var PhoneRulesHI = []Rule{
	NewRule(`(?i)mera\s+(?:phone|mobile|number)\s+(?:hai|h|is)\s+(\+?\d[\d\s-]{8,})`),
	NewRule(`मेरा\s+(?:फोन|मोबाइल|नंबर)\s+(?:है|ह)\s+(\+?\d[\d\s-]{8,})`),
	NewRule(`मेरा\s+(?:फोन|मोबाइल|नंबर)\s+(\+?\d[\d\s-]{8,})`),
	NewRule(`(\+?\d[\d\s-]{8,})\s+है मेरा नंबर`),
}

var AddressRulesEN = []Rule{
	NewRule(`(?i)(?:i live at|my address is|address is|i reside at|residing at|i stay at|stay at|i live in)\s+(.+?)(?:\.|$)`),
	NewRule(`(?i)(?:^|\s)(?:address|location|residence)\s*[:,-]?\s+(.+?)(?:\.|$)`),
	NewRule(`(?i)(?:^|\s)(?:i am from|i am in|i'?m from|i'?m in)\s+(.+?)(?:\.|$)`),
}

var AddressRulesHI = []Rule{
	NewRule(`(?i)(?:mera|my)\s+(?:address|pata|ghar)\s+(?:hai|is|at)\s+(.+?)(?:\.|$)`),
	NewRule(`मेरा\s+(?:पता|घर)\s+(?:है\s+)?(.+?)(?:[.।]|$)`),
	NewRule(`(?i)(?:rehta|rehti)\s+(?:hu|hun|hoon)\s+(.+?)(?:\.|$)`),
	NewRule(`मैं\s+(.+?)\s+(?:में रहता|में रहती)`),
}

var ExperienceRulesEN = []Rule{
	NewRule(`(?i)(?:i have|with)\s+(\d+)\s+years?\s+(?:of\s+)?(?:work\s+)?experience`),
	NewRule(`(?i)\b(\d+)\s+years?\s+(?:of\s+)?(?:work\s+)?experience`),
	NewRule(`(?i)\bexperience\s+(?:of\s+|is\s+(?:of\s+)?)?(\d+)\s+years?`),
	NewRule(`(?i)(?:^|\s)(\d+)\s+years?(?:\s|$)`),
	NewRule(`(?i)(?:^|\s)([a-z]+)\s+years?(?:\s|$)`),
}

var ExperienceRulesHI = []Rule{
	NewRule(`(?i)(?:mera|my)\s+(?:work|job)?\s*experience\s+(\d+)\s+(?:saal|sal|years?)`),
	NewRule(`मेरा काम का अनुभव\s+(\d+)\s*(?:साल|वर्ष)`),
	NewRule(`(?:मुझे|मेरे पास)\s+(\d+)\s*(?:साल|वर्ष) का अनुभव`),
	NewRule(`(\d+)\s*(?:साल|वर्ष) का अनुभव`),
	NewRule(`अनुभव\s+(\d+)\s*(?:साल|वर्ष)?`),
	NewRule(`(?i)(?:^|\s)(\d+)\s+(?:saal|sal)(?:\s+ka\s+(?:anubhav|experience))?(?:\s|[.,]|$)`),
}

var SkillsRulesEN = []Rule{
	NewRule(`(?i)(?:my skills are|i am skilled in|i know how to|i know|i'?m good at|i have skills in)\s+(.+?)(?:\.|$)`),
	NewRule(`(?i)(?:skilled in|expertise in|proficient in|specialization in)\s+(.+?)(?:\.|$)`),
	NewRule(`(?i)\bi can\s+(.+?)(?:\s+well\b|\s+good\b|\.|$)`),
}

var SkillsRulesHI = []Rule{
	NewRule(`(?i)(?:meri|my)\s+skills?\s+(?:hai|hain|are|is|h)\s+(.+?)(?:\.|$)`),
	NewRule(`(?i)(?:mera|my)\s+(?:kaushal|kushal|skill)\s+(?:hai|is|he|h)\s+(.+?)(?:\.|$)`),
	NewRule(`(?i)(?:mera|my)\s+(?:kaushal|kushal|skill)\s+(.+?)(?:\s+hai|[.,]|$)`),
	NewRule(`मेरी स्किल्स?\s+(.+?)(?:\s+(?:है|हैं)|[.,।]|$)`),
	NewRule(`मेरा कौशल\s+(.+?)(?:\s+है|[.,।]|$)`),
	NewRule(`मुझे\s+(.+?)\s+(?:आता है|आती है|करना आता है)`),
}

var AvailabilityRulesEN = []Rule{
	NewRule(`(?i)\bavailable\s+(?:for|on|in|during)?\s*(.+?)(?:\.|$)`),
	NewRule(`(?i)\bcan work\s+(?:on|in|during)?\s*(.+?)(?:\.|$)`),
	NewRule(`(?i)(?:my\s+)?availability\s+(?:is\s+)?(.+?)(?:\.|$)`),
}

var AvailabilityRulesHI = []Rule{
	NewRule(`(?i)(?:meri|my)\s+availability\s+(?:hai|is|h)?\s*(.+?)(?:\.|$)`),
	NewRule(`(?i)(?:mai|main)\s+(.+?)\s+(?:me|mein)\s+(?:kaam|work|job)\s+kar\s+sak`),
	NewRule(`(?i)(?:mai|main)\s+(.+?)\s+(?:ke liye)\s+(?:available|free|uplabdh)`),
	NewRule(`मेरी उपलब्धता\s+(.+?)(?:[.।]|$)`),
	NewRule(`मैं\s+(.+?)\s+(?:में|के लिए)\s+(?:उपलब्ध|काम कर सकता|काम कर सकती)`),
}

// RulesFor returns the hint-language list followed by the other language's
// list. Voice input is frequently code-mixed, so both always run; the hint
// only decides precedence.
func RulesFor(hint Language, en, hi []Rule) []Rule {
	if hint.IsHindi() {
		return append(append([]Rule{}, hi...), en...)
	}
	return append(append([]Rule{}, en...), hi...)
}
