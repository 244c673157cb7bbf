package registration

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/dmitrymomot/regform/pkg/logger"
)

// Service validates registration attempts and forwards accepted ones to a Submitter.
type Service struct {
	submitter Submitter
	log       *slog.Logger
}

// Option configures a Service.
type Option func(*Service)

// WithLogger sets the logger used for rejection diagnostics and the default submitter.
func WithLogger(l *slog.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.log = l
		}
	}
}

// NewService returns a Service handing accepted records to submitter.
// A nil submitter falls back to LogSubmitter.
func NewService(submitter Submitter, opts ...Option) *Service {
	s := &Service{log: slog.Default()}
	for _, opt := range opts {
		opt(s)
	}
	if submitter == nil {
		submitter = LogSubmitter(s.log)
	}
	s.submitter = submitter
	return s
}

// Submit validates rec. A rejected record is returned as is with a nil error
// and the submitter is not called. An accepted record is passed to the
// submitter exactly once; its failure is returned joined with
// ErrSubmissionFailed alongside the accepted Result.
func (s *Service) Submit(ctx context.Context, rec Record) (Result, error) {
	res := Validate(rec)
	if !res.Accepted() {
		s.log.DebugContext(ctx, "registration rejected",
			slog.String("fields", strings.Join(res.Errors.Fields(), ",")),
			logger.Component("registration"),
		)
		return res, nil
	}

	if err := s.submitter.Submit(ctx, res.Record); err != nil {
		s.log.ErrorContext(ctx, "registration handoff failed",
			logger.Error(err),
			logger.Component("registration"),
		)
		return res, errors.Join(ErrSubmissionFailed, err)
	}
	return res, nil
}
