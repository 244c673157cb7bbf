package registration

import "errors"

var (
	// ErrSubmissionFailed wraps errors returned by a Submitter for an accepted record.
	ErrSubmissionFailed = errors.New("registration submission failed")

	// ErrInvalidConfig is returned when a collaborator is built from incomplete settings.
	ErrInvalidConfig = errors.New("invalid registration config")
)
