package registration

import (
	"context"
	"log/slog"

	"github.com/dmitrymomot/regform/pkg/logger"
)

// Submitter receives every accepted Record exactly once. Rejected records
// never reach it.
type Submitter interface {
	Submit(ctx context.Context, rec Record) error
}

// SubmitterFunc adapts a function to Submitter.
type SubmitterFunc func(ctx context.Context, rec Record) error

func (f SubmitterFunc) Submit(ctx context.Context, rec Record) error {
	return f(ctx, rec)
}

// LogSubmitter logs accepted records at info level. Secrets are redacted via
// Record.LogValue.
func LogSubmitter(log *slog.Logger) Submitter {
	if log == nil {
		log = slog.Default()
	}
	return SubmitterFunc(func(ctx context.Context, rec Record) error {
		log.InfoContext(ctx, "registration submitted",
			slog.Any("registration", rec),
			logger.Component("registration"),
			logger.Event("submitted"),
		)
		return nil
	})
}

// MultiSubmitter calls subs in order, once each, and stops at the first error.
// Nil entries are skipped.
func MultiSubmitter(subs ...Submitter) Submitter {
	clean := make([]Submitter, 0, len(subs))
	for _, s := range subs {
		if s != nil {
			clean = append(clean, s)
		}
	}
	return SubmitterFunc(func(ctx context.Context, rec Record) error {
		for _, s := range clean {
			if err := s.Submit(ctx, rec); err != nil {
				return err
			}
		}
		return nil
	})
}
