package registration

import (
	"log/slog"

	"github.com/dmitrymomot/regform/pkg/sanitizer"
)

// Field names as submitted by the form and reported in validation errors.
const (
	FieldName            = "name"
	FieldEmail           = "email"
	FieldPassword        = "password"
	FieldConfirmPassword = "confirmPassword"
	FieldPhoneNumber     = "phoneNumber"
	FieldCountry         = "country"
	FieldZipCode         = "zipCode"
)

// Countries offered by the registration form.
var Countries = []string{"USA", "Canada", "UK", "Ukraine"}

// Record is the complete set of values submitted for one registration attempt.
// All values are raw text; a Record is built per attempt and not retained.
type Record struct {
	Name            string `json:"name" form:"name"`
	Email           string `json:"email" form:"email"`
	Password        string `json:"password" form:"password"`
	ConfirmPassword string `json:"confirmPassword" form:"confirmPassword"`
	PhoneNumber     string `json:"phoneNumber" form:"phoneNumber"`
	Country         string `json:"country" form:"country"`
	ZipCode         string `json:"zipCode" form:"zipCode"`
}

// Normalize returns a copy with surrounding whitespace removed from every
// field except the two password fields, which are kept verbatim.
func (r Record) Normalize() Record {
	r.Name = sanitizer.Trim(r.Name)
	r.Email = sanitizer.Trim(r.Email)
	r.PhoneNumber = sanitizer.Trim(r.PhoneNumber)
	r.Country = sanitizer.Trim(r.Country)
	r.ZipCode = sanitizer.Trim(r.ZipCode)
	return r
}

// LogValue implements slog.LogValuer. Secrets are redacted and contact
// details masked; the Record itself is left untouched.
func (r Record) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String(FieldName, r.Name),
		slog.String(FieldEmail, sanitizer.MaskEmail(r.Email)),
		slog.String(FieldPassword, sanitizer.Redact(r.Password)),
		slog.String(FieldConfirmPassword, sanitizer.Redact(r.ConfirmPassword)),
		slog.String(FieldPhoneNumber, sanitizer.MaskPhone(r.PhoneNumber)),
		slog.String(FieldCountry, r.Country),
		slog.String(FieldZipCode, r.ZipCode),
	)
}

// Public is the record without its password fields, safe to echo back.
type Public struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phoneNumber"`
	Country     string `json:"country"`
	ZipCode     string `json:"zipCode"`
}

func (r Record) Public() Public {
	return Public{
		Name:        r.Name,
		Email:       r.Email,
		PhoneNumber: r.PhoneNumber,
		Country:     r.Country,
		ZipCode:     r.ZipCode,
	}
}
