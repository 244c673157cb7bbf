package registration

import (
	"github.com/dmitrymomot/regform/pkg/validator"
)

// Result is the outcome of validating one Record. It is accepted when Errors
// is empty; otherwise Errors holds the first failing rule of each failing
// field, in field order. Record always holds the normalized input so a
// rejected form can be re-rendered for editing.
type Result struct {
	Record Record
	Errors validator.ValidationErrors
}

func (r Result) Accepted() bool {
	return r.Errors.IsEmpty()
}

// Messages maps each failing field to its message. Empty when accepted.
func (r Result) Messages() map[string]string {
	return r.Errors.Map()
}

// Err returns nil for an accepted result and the validation errors otherwise.
func (r Result) Err() error {
	if r.Accepted() {
		return nil
	}
	return r.Errors
}
