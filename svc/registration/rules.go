package registration

import (
	"github.com/dmitrymomot/regform/pkg/validator"
)

// Password length bounds, in characters. The complexity rule adds its own
// minimum of 8, so passwords of 5-7 characters fail on complexity.
const (
	PasswordMinLength = 5
	PasswordMaxLength = 20
)

// Messages reported to the user, one per rule.
const (
	MsgNameRequired       = "Name is required"
	MsgEmailRequired      = "Email is required"
	MsgEmailInvalid       = "Email must be a valid email"
	MsgPasswordRequired   = "Password is required"
	MsgPasswordTooShort   = "Password must be at least 5 characters"
	MsgPasswordTooLong    = "Password must not exceed 20 characters"
	MsgPasswordComplexity = "Password must contain at least one uppercase letter, one lowercase letter, one number, and one special character"
	MsgPasswordsMismatch  = "Passwords must match"
	MsgPhoneRequired      = "Phone number is required"
	MsgPhoneInvalid       = "Invalid phone number"
	MsgCountryRequired    = "Country is required"
	MsgZipCodeRequired    = "Zip code is required"
	MsgZipCodeInvalid     = "Invalid zip code"
)

var passwordPolicy = validator.DefaultPasswordPolicy()

// Rules returns the ordered rule chain of every field for r.
// Within a chain the first failing rule is the one reported.
func Rules(r Record) [][]validator.Rule {
	return [][]validator.Rule{
		{
			validator.Message(validator.RequiredString(FieldName, r.Name), MsgNameRequired),
		},
		{
			validator.Message(validator.RequiredString(FieldEmail, r.Email), MsgEmailRequired),
			validator.Message(validator.ValidEmail(FieldEmail, r.Email), MsgEmailInvalid),
		},
		// RequiredString trims, so a password of only spaces is reported as
		// missing. The value itself is never trimmed.
		{
			validator.Message(validator.RequiredString(FieldPassword, r.Password), MsgPasswordRequired),
			validator.Message(validator.MinLenString(FieldPassword, r.Password, PasswordMinLength), MsgPasswordTooShort),
			validator.Message(validator.MaxLenString(FieldPassword, r.Password, PasswordMaxLength), MsgPasswordTooLong),
			validator.Message(validator.PasswordComplexity(FieldPassword, r.Password, passwordPolicy), MsgPasswordComplexity),
		},
		{
			validator.Message(validator.EqualString(FieldConfirmPassword, r.ConfirmPassword, FieldPassword, r.Password), MsgPasswordsMismatch),
		},
		{
			validator.Message(validator.RequiredString(FieldPhoneNumber, r.PhoneNumber), MsgPhoneRequired),
			validator.Message(validator.ValidPhone(FieldPhoneNumber, r.PhoneNumber), MsgPhoneInvalid),
		},
		{
			validator.Message(validator.RequiredString(FieldCountry, r.Country), MsgCountryRequired),
		},
		{
			validator.Message(validator.RequiredString(FieldZipCode, r.ZipCode), MsgZipCodeRequired),
			validator.Message(validator.ValidUSZip(FieldZipCode, r.ZipCode), MsgZipCodeInvalid),
		},
	}
}

// Validate normalizes r and applies Rules to it.
// It is pure: the same record always yields the same Result.
func Validate(r Record) Result {
	normalized := r.Normalize()
	err := validator.ApplyFirst(Rules(normalized)...)
	return Result{
		Record: normalized,
		Errors: validator.ExtractValidationErrors(err),
	}
}
