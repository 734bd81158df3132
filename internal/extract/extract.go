package extract

import (
	"fmt"

	"github.com/kaamkhoj/kaamkhoj/internal/lexicon"
)

// Extract dispatches to the extractor for the given field under this
// schema's bounds and typing. The boolean is false on an extraction miss;
// an error is returned only for a field outside the schema, which is a
// caller bug rather than bad user input.
func (s Schema) Extract(field Field, text string, lang lexicon.Language) (any, bool, error) {
	if !s.Has(field) {
		return nil, false, fmt.Errorf("field %q is not part of schema %s", field, s.Version)
	}

	switch field {
	case FieldName:
		v, ok := Name(text, lang)
		return nullable(v, ok), ok, nil
	case FieldGender:
		v, ok := Gender(text)
		return nullable(v, ok), ok, nil
	case FieldAge:
		v, ok := Age(text, lang, s.AgeMin, s.AgeMax)
		if !ok {
			return nil, false, nil
		}
		return v, true, nil
	case FieldAddress:
		v, ok := Address(text, lang)
		return nullable(v, ok), ok, nil
	case FieldPhone:
		v, ok := Phone(text, lang)
		return nullable(v, ok), ok, nil
	case FieldExperience:
		v, ok := Experience(text, lang, s.ExperienceMin, s.ExperienceMax, s.ExperienceAsString)
		if !ok {
			return nil, false, nil
		}
		return v, true, nil
	case FieldEducation:
		v, ok := Education(text)
		return nullable(v, ok), ok, nil
	case FieldSkills:
		v, ok := Skills(text, lang)
		return nullable(v, ok), ok, nil
	case FieldAvailability:
		v, ok := Availability(text, lang)
		return nullable(v, ok), ok, nil
	}
	return nil, false, fmt.Errorf("unknown field %q", field)
}

func nullable(v string, ok bool) any {
	if !ok {
		return nil
	}
	return v
}
