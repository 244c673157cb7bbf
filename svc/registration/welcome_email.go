package registration

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/a-h/templ"

	"github.com/dmitrymomot/regform/pkg/email"
	"github.com/dmitrymomot/regform/pkg/email/templates"
)

// WelcomeEmailConfig configures the welcome email sent on acceptance.
type WelcomeEmailConfig struct {
	Enabled bool   `env:"WELCOME_EMAIL_ENABLED" envDefault:"false"`
	Subject string `env:"WELCOME_EMAIL_SUBJECT" envDefault:"Welcome!"`
	Tag     string `env:"WELCOME_EMAIL_TAG" envDefault:"welcome"`
}

// WelcomeEmail renders the welcome message body for name.
func WelcomeEmail(name string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := fmt.Fprintf(w,
			"<html><body><h1>Welcome, %s!</h1><p>Your registration has been received.</p></body></html>",
			templ.EscapeString(name),
		)
		return err
	})
}

// WelcomeEmailSubmitter sends a welcome email to the accepted address.
func WelcomeEmailSubmitter(sender email.EmailSender, cfg WelcomeEmailConfig) (Submitter, error) {
	if sender == nil {
		return nil, fmt.Errorf("%w: email sender is required", ErrInvalidConfig)
	}
	if cfg.Subject == "" {
		return nil, fmt.Errorf("%w: welcome email subject is required", ErrInvalidConfig)
	}

	return SubmitterFunc(func(ctx context.Context, rec Record) error {
		body, err := templates.Render(ctx, WelcomeEmail(rec.Name))
		if err != nil {
			return errors.Join(email.ErrFailedToSendEmail, err)
		}
		return sender.SendEmail(ctx, email.SendEmailParams{
			SendTo:   rec.Email,
			Subject:  cfg.Subject,
			BodyHTML: body,
			Tag:      cfg.Tag,
		})
	}), nil
}
