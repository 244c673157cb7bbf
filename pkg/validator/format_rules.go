package validator

import (
	"regexp"
)

var (
	// WHATWG style address: a permissive local part and dot separated
	// hostname labels of up to 63 letters, digits and inner dashes.
	emailRegex = regexp.MustCompile("^[a-zA-Z0-9.!#$%&'*+/=?^_`{|}~-]+@" +
		`[a-zA-Z0-9](?:[a-zA-Z0-9-]{0,61}[a-zA-Z0-9])?` +
		`(?:\.[a-zA-Z0-9](?:[a-zA-Z0-9-]{0,61}[a-zA-Z0-9])?)*$`)

	// Optional leading plus followed by 10 to 12 digits, no separators.
	phoneRegex = regexp.MustCompile(`^\+?\d{10,12}$`)

	// US ZIP or ZIP+4; the +4 part may be separated by a dash or whitespace.
	usZipRegex = regexp.MustCompile(`^\d{5}(?:[-\s]\d{4})?$`)
)

// ValidEmail validates the shape of an address: local@host. Domain literals,
// display names and underscores in the host are rejected; a dotless host is accepted.
func ValidEmail(field, value string) Rule {
	return withKey(MatchesCompiled(field, value, emailRegex, "email address"), "validation.email")
}

// ValidPhone validates an optional leading "+" followed by 10-12 digits.
func ValidPhone(field, value string) Rule {
	return withKey(MatchesCompiled(field, value, phoneRegex, "phone number"), "validation.phone")
}

// ValidUSZip accepts 12345, 12345-6789 and 12345 6789.
func ValidUSZip(field, value string) Rule {
	return withKey(MatchesCompiled(field, value, usZipRegex, "zip code"), "validation.zip_code")
}
