// Package handler provides type-safe HTTP handlers with templ, DataStar and
// JSON responses.
//
// A HandlerFunc receives a bound request value and returns a Response. Wrap
// turns it into an http.HandlerFunc, running binders first and routing binding
// or rendering failures to an ErrorHandler:
//
//	func register(ctx handler.Context, rec registration.Record) handler.Response {
//		res, err := svc.Submit(ctx, rec)
//		if err != nil {
//			return handler.JSONError(err)
//		}
//		if !res.Accepted() {
//			return handler.JSONError(handler.FromValidationErrors(res.Errors))
//		}
//		return handler.JSON(res.Record.Public(), handler.WithJSONStatus(http.StatusCreated))
//	}
//
//	r.Post("/api/register", handler.Wrap(register,
//		handler.WithBinders[handler.Context, registration.Record](binder.JSON()),
//	))
//
// # Responses
//
//   - Templ renders a component as HTML, or as an element patch for DataStar requests
//   - TemplPartial renders a partial for DataStar and a full page otherwise
//   - JSON and JSONError render the JSONResponse envelope
//   - WithStatus sets the status code of any non-streaming response
//
// # Errors
//
// HTTPError carries a status code and translation key. ValidationError maps
// fields to messages and renders as 422. NewErrorHandler renders error pages
// or DataStar toasts; NewJSONErrorHandler renders the JSON envelope. Client
// errors are logged at warn level, server errors at error level.
package handler
