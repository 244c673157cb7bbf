// Package binder decodes HTTP request bodies into Go structs.
//
// Binders share the signature func(r *http.Request, v any) error and plug into
// handler.Wrap through handler.WithBinders:
//
//	type RegisterRequest struct {
//	    Name  string `json:"name" form:"name"`
//	    Email string `json:"email" form:"email"`
//	}
//
//	mux.Post("/register", handler.Wrap(h,
//	    handler.WithBinders[handler.Context, RegisterRequest](binder.Form()),
//	))
//
// # Available Binders
//
//   - Form: application/x-www-form-urlencoded and multipart/form-data, `form` tags
//   - JSON: strict application/json decoding with a 1MB body limit
//
// Values are bound verbatim; trimming and validation happen after binding.
//
// # Errors
//
// Failures wrap one of ErrMissingContentType, ErrUnsupportedMediaType,
// ErrInvalidForm or ErrInvalidJSON. A binder that does not apply to the request
// returns ErrBinderNotApplicable, which handler.Wrap skips.
package binder
