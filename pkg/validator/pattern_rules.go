package validator

import (
	"regexp"
)

// MatchesCompiled validates that value matches re. A mismatch is reported
// with Kind ErrInvalidFormat and the message "must be a valid <description>".
func MatchesCompiled(field, value string, re *regexp.Regexp, description string) Rule {
	return Rule{
		Check: func() bool {
			return re.MatchString(value)
		},
		Error: ValidationError{
			Field:          field,
			Message:        "must be a valid " + description,
			Kind:           ErrInvalidFormat,
			TranslationKey: "validation.format",
			TranslationValues: map[string]any{
				"field":       field,
				"pattern":     re.String(),
				"description": description,
			},
		},
	}
}

// withKey replaces the translation key of rule.
func withKey(rule Rule, key string) Rule {
	rule.Error.TranslationKey = key
	return rule
}
