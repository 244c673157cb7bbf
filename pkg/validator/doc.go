// Package validator provides small, composable validation rules for form
// input: required strings, length bounds, email/phone/zip formats, password
// composition and field equality.
//
// Every exported constructor returns a Rule, a boolean Check function together
// with translation-friendly error metadata. A ValidationError also carries a
// Kind, one of the package sentinel errors (ErrFieldRequired, ErrInvalidFormat,
// ErrInvalidLength, ErrPatternMismatch, ErrFieldMismatch), which classifies the
// failure independently of its human-readable message.
//
// # Evaluation
//
// Apply evaluates every rule and aggregates all failures. Chain folds an
// ordered list of rules into one that fails with the first failing rule and
// skips the rest; ApplyFirst applies one chain per field, so each field reports
// at most one error:
//
//	err := validator.ApplyFirst(
//	    []validator.Rule{
//	        validator.RequiredString("email", email),
//	        validator.ValidEmail("email", email),
//	    },
//	    []validator.Rule{
//	        validator.RequiredString("password", password),
//	        validator.MinLenString("password", password, 8),
//	    },
//	)
//	if verrs := validator.ExtractValidationErrors(err); verrs != nil {
//	    msgs := verrs.Map() // field -> first message
//	}
//
// Message replaces the human-readable text of a rule while keeping its Kind and
// translation key.
//
// # Error Handling
//
// ValidationErrors implements error and Is, so errors.Is(err, ErrFieldRequired)
// reports whether any field failed a required rule, and errors.As extracts the
// full list. Has, Get, First, Fields and Map inspect individual fields.
//
// Rules hold no global state. A Chain records which inner rule failed, so build
// rules per validation call instead of sharing one Rule value across goroutines.
package validator
