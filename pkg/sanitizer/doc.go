// Package sanitizer provides small string transforms for cleaning user input
// before validation and for masking personal data before it is logged.
//
// Transforms have the signature func(string) string and are chained with Apply:
//
//	name := sanitizer.Apply(rawName, sanitizer.RemoveControlChars, sanitizer.Trim)
//
// Masking helpers (MaskEmail, MaskPhone, Redact) never touch the value used by
// the application; call them only when building log attributes.
package sanitizer
