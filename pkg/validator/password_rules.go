package validator

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// PasswordPolicy describes the character composition a password must have.
// Letters and digits are ASCII; Symbols lists the accepted special characters.
type PasswordPolicy struct {
	MinLength       int
	Symbols         string
	RequireUpper    bool
	RequireLower    bool
	RequireDigit    bool
	RequireSymbol   bool
	RestrictCharset bool // reject any character outside letters, digits and Symbols
}

// DefaultPasswordPolicy requires at least 8 characters with one uppercase,
// one lowercase, one digit and one of @$!%*?&, and nothing else.
func DefaultPasswordPolicy() PasswordPolicy {
	return PasswordPolicy{
		MinLength:       8,
		Symbols:         "@$!%*?&",
		RequireUpper:    true,
		RequireLower:    true,
		RequireDigit:    true,
		RequireSymbol:   true,
		RestrictCharset: true,
	}
}

// PasswordComplexity validates value against policy as a single rule.
func PasswordComplexity(field, value string, policy PasswordPolicy) Rule {
	return Rule{
		Check: func() bool {
			return policy.satisfiedBy(value)
		},
		Error: ValidationError{
			Field:          field,
			Message:        fmt.Sprintf("password must be at least %d characters with an uppercase letter, a lowercase letter, a number and one of %s", policy.MinLength, policy.Symbols),
			Kind:           ErrPatternMismatch,
			TranslationKey: "validation.password_complexity",
			TranslationValues: map[string]any{
				"field":      field,
				"min_length": policy.MinLength,
				"symbols":    policy.Symbols,
			},
		},
	}
}

func (p PasswordPolicy) satisfiedBy(value string) bool {
	if utf8.RuneCountInString(value) < p.MinLength {
		return false
	}

	var hasUpper, hasLower, hasDigit, hasSymbol bool
	for _, r := range value {
		switch {
		case r >= 'A' && r <= 'Z':
			hasUpper = true
		case r >= 'a' && r <= 'z':
			hasLower = true
		case r >= '0' && r <= '9':
			hasDigit = true
		case p.Symbols != "" && strings.ContainsRune(p.Symbols, r):
			hasSymbol = true
		default:
			if p.RestrictCharset {
				return false
			}
		}
	}

	if p.RequireUpper && !hasUpper {
		return false
	}
	if p.RequireLower && !hasLower {
		return false
	}
	if p.RequireDigit && !hasDigit {
		return false
	}
	if p.RequireSymbol && !hasSymbol {
		return false
	}
	return true
}
