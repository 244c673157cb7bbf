package handler

import (
	"errors"
	"fmt"
	"log/slog"
	"maps"
	"net/http"
	"slices"
	"strings"

	"github.com/a-h/templ"

	"github.com/dmitrymomot/regform/pkg/logger"
	"github.com/dmitrymomot/regform/pkg/requestid"
)

// DefaultToastTarget is the element error toasts are prepended to.
const DefaultToastTarget = "#toast-container"

// ErrorPageParams is passed to ErrorHandlerConfig.ErrorPage.
type ErrorPageParams struct {
	Error      string
	StatusCode int
	RequestID  string
	RetryURL   string
}

// ErrorToastParams is passed to ErrorHandlerConfig.ErrorToast.
// Type is "warning" for client errors and "error" otherwise.
type ErrorToastParams struct {
	Message   string
	Type      string
	RequestID string
}

// ErrorHandlerConfig holds the views of NewErrorHandler.
type ErrorHandlerConfig struct {
	// ErrorPage renders regular requests. Without it a plain text error is written.
	ErrorPage func(ErrorPageParams) templ.Component

	// ErrorToast renders DataStar requests. Without it nothing is patched.
	ErrorToast func(ErrorToastParams) templ.Component

	// ToastTarget defaults to DefaultToastTarget.
	ToastTarget string
}

// classified is the status, user facing message and log level of an error.
type classified struct {
	status  int
	message string
	level   slog.Level
}

func (c classified) toastType() string {
	if c.level == slog.LevelWarn {
		return "warning"
	}
	return "error"
}

// classify maps ValidationError to 422 and HTTPError to its code. Anything
// else is a 500 with a generic message. 4xx log at warn, the rest at error.
func classify(err error) classified {
	c := classified{
		status:  http.StatusInternalServerError,
		message: "An error occurred processing your request",
	}

	var verr ValidationError
	var herr HTTPError
	switch {
	case errors.As(err, &verr):
		c.status = http.StatusUnprocessableEntity
		c.message = validationSummary(verr)
	case errors.As(err, &herr):
		c.status = herr.Code
		c.message = herr.Key
	}

	c.level = slog.LevelError
	if c.status >= http.StatusBadRequest && c.status < http.StatusInternalServerError {
		c.level = slog.LevelWarn
	}
	return c
}

// validationSummary lists every field message, sorted by field.
func validationSummary(verr ValidationError) string {
	var parts []string
	for _, field := range slices.Sorted(maps.Keys(verr)) {
		for _, msg := range verr[field] {
			parts = append(parts, fmt.Sprintf("%s: %s", field, msg))
		}
	}
	if len(parts) == 0 {
		return "Validation failed"
	}
	return strings.Join(parts, "; ")
}

func logRequestError(log *slog.Logger, r *http.Request, err error, c classified) {
	log.LogAttrs(r.Context(), c.level, "request error",
		logger.RequestID(requestid.FromContext(r.Context())),
		logger.Error(err),
		slog.Int("status_code", c.status),
		slog.String("method", r.Method),
		slog.String("path", r.URL.Path),
		slog.Bool("is_datastar", IsDataStar(r)),
		logger.Component("error_handler"),
	)
}

// NewErrorHandler renders an error page for regular requests and prepends an
// error toast to ToastTarget for DataStar requests.
func NewErrorHandler(log *slog.Logger, cfg ErrorHandlerConfig) ErrorHandler[Context] {
	if log == nil {
		log = slog.Default()
	}
	if cfg.ToastTarget == "" {
		cfg.ToastTarget = DefaultToastTarget
	}

	return func(ctx Context, err error) {
		w, r := ctx.ResponseWriter(), ctx.Request()
		id := requestid.FromContext(r.Context())
		c := classify(err)
		logRequestError(log, r, err, c)

		var resp Response
		switch {
		case IsDataStar(r) && cfg.ErrorToast != nil:
			resp = Templ(
				cfg.ErrorToast(ErrorToastParams{Message: c.message, Type: c.toastType(), RequestID: id}),
				WithTarget(cfg.ToastTarget),
				WithPatchMode(PatchPrepend),
			)
		case IsDataStar(r):
			log.WarnContext(r.Context(), "no error toast configured", logger.Component("error_handler"))
			return
		case cfg.ErrorPage != nil:
			resp = WithStatus(c.status, Templ(cfg.ErrorPage(ErrorPageParams{
				Error:      c.message,
				StatusCode: c.status,
				RequestID:  id,
				RetryURL:   r.URL.Path,
			})))
		default:
			http.Error(w, c.message, c.status)
			return
		}

		if renderErr := resp.Render(w, r); renderErr != nil {
			log.ErrorContext(r.Context(), "failed to render error response",
				logger.Error(renderErr),
				logger.Component("error_handler"),
			)
		}
	}
}

// NewJSONErrorHandler logs like NewErrorHandler and renders the error through
// JSONError. The request ID, when present, is added as meta.request_id.
func NewJSONErrorHandler(log *slog.Logger) ErrorHandler[Context] {
	if log == nil {
		log = slog.Default()
	}

	return func(ctx Context, err error) {
		w, r := ctx.ResponseWriter(), ctx.Request()
		logRequestError(log, r, err, classify(err))

		var opts []JSONOption
		if id := requestid.FromContext(r.Context()); id != "" {
			opts = append(opts, WithJSONMeta(map[string]any{"request_id": id}))
		}
		if renderErr := JSONError(err, opts...).Render(w, r); renderErr != nil {
			log.ErrorContext(r.Context(), "failed to render json error",
				logger.Error(renderErr),
				logger.Component("error_handler"),
			)
		}
	}
}
