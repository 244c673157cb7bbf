package email

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrymomot/regform/pkg/validator"
)

// EmailSender represents an interface for sending emails.
type EmailSender interface {
	SendEmail(ctx context.Context, params SendEmailParams) error
}

// SendEmailParams represents the parameters for sending an email.
type SendEmailParams struct {
	SendTo   string `json:"send_to"`       // Email address of the recipient
	Subject  string `json:"subject"`       // Subject of the email
	BodyHTML string `json:"body_html"`     // HTML body of the email
	Tag      string `json:"tag,omitempty"` // Optional
}

// Validate reports the first problem of every invalid parameter, wrapped in ErrInvalidParams.
func (p SendEmailParams) Validate() error {
	err := validator.ApplyFirst(
		[]validator.Rule{
			validator.Message(validator.RequiredString("SendTo", p.SendTo), "SendTo is required"),
			validator.Message(validator.ValidEmail("SendTo", p.SendTo), "SendTo must be a valid email address"),
		},
		[]validator.Rule{
			validator.Message(validator.RequiredString("Subject", p.Subject), "Subject is required"),
		},
		[]validator.Rule{
			validator.Message(validator.RequiredString("BodyHTML", p.BodyHTML), "BodyHTML is required"),
		},
	)
	if err != nil {
		return errors.Join(ErrInvalidParams, err)
	}
	return nil
}

func isEmail(s string) bool {
	return validator.Apply(validator.ValidEmail("email", s)) == nil
}

func requireEmail(name, value string) error {
	if value == "" {
		return fmt.Errorf("%w: %s is required", ErrInvalidConfig, name)
	}
	if !isEmail(value) {
		return fmt.Errorf("%w: %s must be a valid email address", ErrInvalidConfig, name)
	}
	return nil
}
