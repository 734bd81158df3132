// Package extract implements the rule-based field extractors: pure
// functions turning a raw utterance into a validated, normalized value for
// one profile field, or nothing. Extractors never return errors for
// unparseable input; a miss is a value-level outcome the orchestrator turns
// into a retry prompt.
package extract

import "fmt"

// Field identifies a profile slot the intake flow can fill.
type Field string

const (
	FieldName         Field = "name"
	FieldGender       Field = "gender"
	FieldAge          Field = "age"
	FieldAddress      Field = "address"
	FieldPhone        Field = "phone"
	FieldExperience   Field = "experience"
	FieldEducation    Field = "education"
	FieldSkills       Field = "skills"
	FieldAvailability Field = "availability"
)

// legacyWorkExperience is the field name used by the first intake schema.
const legacyWorkExperience = "workExperience"

// ParseField resolves a caller-supplied field name, accepting the legacy
// workExperience alias. An unknown field is a caller bug, not user input,
// so it is reported as an error.
func ParseField(name string) (Field, error) {
	switch name {
	case legacyWorkExperience:
		return FieldExperience, nil
	case string(FieldName), string(FieldGender), string(FieldAge),
		string(FieldAddress), string(FieldPhone), string(FieldExperience),
		string(FieldEducation), string(FieldSkills), string(FieldAvailability):
		return Field(name), nil
	}
	return "", fmt.Errorf("unknown field %q", name)
}

// SchemaVersion selects one of the supported intake profile revisions.
type SchemaVersion string

const (
	// SchemaV1 is the original intake revision: workExperience reported as
	// a "N years" string, no education field, wide age bounds.
	SchemaV1 SchemaVersion = "v1"
	// SchemaV2 is the later revision: integer experience, an education
	// field, working-age bounds.
	SchemaV2 SchemaVersion = "v2"
)

// Schema parameterises the extractor set by profile revision instead of
// duplicating extractor code per revision: field set, numeric bounds and
// value typing all live here.
type Schema struct {
	Version SchemaVersion
	Fields  []Field

	AgeMin int
	AgeMax int

	ExperienceMin int
	ExperienceMax int
	// ExperienceAsString makes the experience extractor return "N years"
	// instead of the bare integer, matching the v1 wire shape.
	ExperienceAsString bool
}

// NewSchema returns the preset for a revision. Unknown versions fall back
// to v2, the canonical default.
func NewSchema(v SchemaVersion) Schema {
	if v == SchemaV1 {
		return Schema{
			Version: SchemaV1,
			Fields: []Field{
				FieldName, FieldGender, FieldAge, FieldAddress, FieldPhone,
				FieldExperience, FieldSkills, FieldAvailability,
			},
			AgeMin:             1,
			AgeMax:             120,
			ExperienceMin:      0,
			ExperienceMax:      70,
			ExperienceAsString: true,
		}
	}
	return Schema{
		Version: SchemaV2,
		Fields: []Field{
			FieldName, FieldGender, FieldAge, FieldAddress, FieldPhone,
			FieldExperience, FieldEducation, FieldSkills, FieldAvailability,
		},
		AgeMin:        15,
		AgeMax:        120,
		ExperienceMin: 0,
		ExperienceMax: 50,
	}
}

// Has reports whether the schema includes the field.
func (s Schema) Has(f Field) bool {
	for _, have := range s.Fields {
		if have == f {
			return true
		}
	}
	return false
}
