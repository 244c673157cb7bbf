package validator

import "errors"

// Common validation errors that can be used across the application.
// The field-level ones double as ValidationError.Kind values.
var (
	// ErrValidationFailed is returned when validation fails but no specific error is provided.
	ErrValidationFailed = errors.New("validation failed")

	// ErrFieldRequired is returned when a required field is empty.
	ErrFieldRequired = errors.New("field is required")

	// ErrInvalidLength is returned when a field has an invalid length.
	ErrInvalidLength = errors.New("invalid length")

	// ErrInvalidFormat is returned when a field has an invalid format.
	ErrInvalidFormat = errors.New("invalid format")

	// ErrPatternMismatch is returned when a field does not satisfy a composition pattern.
	ErrPatternMismatch = errors.New("pattern mismatch")

	// ErrFieldMismatch is returned when a field differs from the field it must repeat.
	ErrFieldMismatch = errors.New("fields do not match")
)
