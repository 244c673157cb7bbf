package binder

import "errors"

// Common binding errors
var (
	ErrUnsupportedMediaType = errors.New("unsupported media type")
	ErrInvalidJSON          = errors.New("invalid JSON")
	ErrInvalidForm          = errors.New("invalid form data")
	ErrMissingContentType   = errors.New("missing content type")

	// ErrBinderNotApplicable is returned by a binder that does not handle the
	// request, e.g. Form on a GET request. Callers chaining binders skip it.
	ErrBinderNotApplicable = errors.New("binder not applicable")
)
