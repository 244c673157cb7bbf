package validator

import (
	"errors"
	"fmt"
	"strings"
)

// ValidationError represents a single validation error with translation support.
// Kind is one of the package sentinel errors and classifies the failure.
type ValidationError struct {
	Field             string
	Message           string
	Kind              error
	TranslationKey    string
	TranslationValues map[string]any
}

// ValidationErrors represents a collection of validation errors.
type ValidationErrors []ValidationError

func (ve ValidationErrors) Error() string {
	if len(ve) == 0 {
		return "validation failed"
	}

	var parts []string
	for _, err := range ve {
		parts = append(parts, fmt.Sprintf("%s: %s", err.Field, err.Message))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// Is reports whether any contained error has the target kind.
// It makes errors.Is(err, ErrFieldRequired) work on aggregated errors.
func (ve ValidationErrors) Is(target error) bool {
	if target == ErrValidationFailed {
		return true
	}
	for _, err := range ve {
		if err.Kind != nil && errors.Is(err.Kind, target) {
			return true
		}
	}
	return false
}

func (ve *ValidationErrors) Add(err ValidationError) {
	*ve = append(*ve, err)
}

func (ve ValidationErrors) Has(field string) bool {
	for _, err := range ve {
		if err.Field == field {
			return true
		}
	}
	return false
}

func (ve ValidationErrors) Get(field string) []string {
	var messages []string
	for _, err := range ve {
		if err.Field == field {
			messages = append(messages, err.Message)
		}
	}
	return messages
}

// First returns the first error recorded for field.
func (ve ValidationErrors) First(field string) (ValidationError, bool) {
	for _, err := range ve {
		if err.Field == field {
			return err, true
		}
	}
	return ValidationError{}, false
}

func (ve ValidationErrors) Fields() []string {
	var fields []string
	seen := make(map[string]bool)
	for _, err := range ve {
		if !seen[err.Field] {
			fields = append(fields, err.Field)
			seen[err.Field] = true
		}
	}
	return fields
}

// Map returns the first message of every field keyed by field name.
func (ve ValidationErrors) Map() map[string]string {
	m := make(map[string]string, len(ve))
	for _, err := range ve {
		if _, ok := m[err.Field]; !ok {
			m[err.Field] = err.Message
		}
	}
	return m
}

func (ve ValidationErrors) IsEmpty() bool {
	return len(ve) == 0
}

// Rule represents a single validation rule.
type Rule struct {
	Check func() bool
	Error ValidationError

	// failure reports the error of the last failed Check when it depends on
	// which inner rule failed (see Chain). Nil means Error is reported.
	failure func() ValidationError
}

func (r Rule) err() ValidationError {
	if r.failure != nil {
		return r.failure()
	}
	return r.Error
}

// Apply executes multiple validation rules and returns any validation errors.
func Apply(rules ...Rule) error {
	var errors ValidationErrors

	for _, rule := range rules {
		if !rule.Check() {
			errors = append(errors, rule.err())
		}
	}

	if errors.IsEmpty() {
		return nil
	}

	return errors
}

// Chain combines ordered rules into one. The combined rule fails with the
// error of the first failing rule and later rules are not evaluated.
// An empty chain always passes.
//
// A chained rule records which inner rule failed, so a single Rule value must
// not be checked from several goroutines at once.
func Chain(rules ...Rule) Rule {
	var failed ValidationError
	chained := Rule{
		Check: func() bool {
			for _, rule := range rules {
				if !rule.Check() {
					failed = rule.err()
					return false
				}
			}
			return true
		},
		failure: func() ValidationError { return failed },
	}
	if len(rules) > 0 {
		chained.Error = rules[0].err()
	}
	return chained
}

// ApplyFirst evaluates every chain and reports at most one error per chain:
// the first failing rule. Chains are usually one per field.
func ApplyFirst(chains ...[]Rule) error {
	rules := make([]Rule, 0, len(chains))
	for _, chain := range chains {
		rules = append(rules, Chain(chain...))
	}
	return Apply(rules...)
}

// Message returns a copy of rule with its human-readable message replaced.
func Message(rule Rule, msg string) Rule {
	rule.Error.Message = msg
	if inner := rule.failure; inner != nil {
		rule.failure = func() ValidationError {
			e := inner()
			e.Message = msg
			return e
		}
	}
	return rule
}

// ExtractValidationErrors extracts ValidationErrors from an error.
func ExtractValidationErrors(err error) ValidationErrors {
	if err == nil {
		return nil
	}

	var validationErr ValidationErrors
	if errors.As(err, &validationErr) {
		return validationErr
	}

	return nil
}

func IsValidationError(err error) bool {
	if err == nil {
		return false
	}

	var validationErr ValidationErrors
	return errors.As(err, &validationErr)
}
