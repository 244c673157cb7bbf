package validator

// EqualString validates that value repeats other exactly, e.g. a password
// confirmation. No trimming or case folding is applied.
func EqualString(field, value, otherField, other string) Rule {
	return Rule{
		Check: func() bool {
			return value == other
		},
		Error: ValidationError{
			Field:          field,
			Message:        "must match " + otherField,
			Kind:           ErrFieldMismatch,
			TranslationKey: "validation.equal_field",
			TranslationValues: map[string]any{
				"field": field,
				"other": otherField,
			},
		},
	}
}
