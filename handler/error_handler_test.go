package handler_test

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/a-h/templ"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/regform/handler"
	"github.com/dmitrymomot/regform/pkg/requestid"
)

func mockErrorPage(params handler.ErrorPageParams) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := io.WriteString(w, "Error: "+params.Error+" id="+params.RequestID)
		return err
	})
}

func mockErrorToast(params handler.ErrorToastParams) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := io.WriteString(w, `<div class="toast `+params.Type+`">`+params.Message+`</div>`)
		return err
	})
}

func newLogger(buf *bytes.Buffer) *slog.Logger {
	return slog.New(slog.NewJSONHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

func TestNewErrorHandler(t *testing.T) {
	t.Parallel()

	cfg := handler.ErrorHandlerConfig{
		ErrorPage:  mockErrorPage,
		ErrorToast: mockErrorToast,
	}

	t.Run("generic error renders 500 page", func(t *testing.T) {
		t.Parallel()
		var logs bytes.Buffer
		eh := handler.NewErrorHandler(newLogger(&logs), cfg)

		w := httptest.NewRecorder()
		eh(handler.NewContext(w, httptest.NewRequest(http.MethodGet, "/register", nil)), errors.New("boom"))

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Equal(t, "text/html; charset=utf-8", w.Header().Get("Content-Type"))
		assert.Contains(t, w.Body.String(), "An error occurred processing your request")
		assert.Contains(t, logs.String(), `"level":"ERROR"`)
	})

	t.Run("HTTP error keeps its status and logs a warning", func(t *testing.T) {
		t.Parallel()
		var logs bytes.Buffer
		eh := handler.NewErrorHandler(newLogger(&logs), cfg)

		req := httptest.NewRequest(http.MethodPost, "/register", nil)
		req = req.WithContext(requestid.WithContext(req.Context(), "req-42"))
		w := httptest.NewRecorder()
		eh(handler.NewContext(w, req), errors.Join(handler.ErrBadRequest, errors.New("invalid form data")))

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "Error: bad_request id=req-42")
		assert.Contains(t, logs.String(), `"level":"WARN"`)
		assert.Contains(t, logs.String(), `"request_id":"req-42"`)
	})

	t.Run("validation error is unprocessable", func(t *testing.T) {
		t.Parallel()
		eh := handler.NewErrorHandler(slog.New(slog.DiscardHandler), cfg)

		verr := handler.NewValidationError()
		verr.Add("zipCode", "Invalid zip code")
		w := httptest.NewRecorder()
		eh(handler.NewContext(w, httptest.NewRequest(http.MethodPost, "/register", nil)), verr)

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
		assert.Contains(t, w.Body.String(), "zipCode: Invalid zip code")
	})

	t.Run("DataStar request receives a toast", func(t *testing.T) {
		t.Parallel()
		eh := handler.NewErrorHandler(slog.New(slog.DiscardHandler), cfg)

		req := httptest.NewRequest(http.MethodPost, "/register", nil)
		req.Header.Set("Accept", "text/event-stream")
		w := httptest.NewRecorder()
		eh(handler.NewContext(w, req), handler.ErrBadRequest)

		body := w.Body.String()
		assert.Contains(t, body, "datastar-patch-elements")
		assert.Contains(t, body, "#toast-container")
		assert.Contains(t, body, `toast warning`)
	})

	t.Run("DataStar server error toast", func(t *testing.T) {
		t.Parallel()
		eh := handler.NewErrorHandler(slog.New(slog.DiscardHandler), cfg)

		req := httptest.NewRequest(http.MethodPost, "/register", nil)
		req.Header.Set("Accept", "text/event-stream")
		w := httptest.NewRecorder()
		eh(handler.NewContext(w, req), errors.New("boom"))

		assert.Contains(t, w.Body.String(), `toast error`)
		assert.Contains(t, w.Body.String(), "prepend")
	})

	t.Run("DataStar request without toast view writes nothing", func(t *testing.T) {
		t.Parallel()
		eh := handler.NewErrorHandler(slog.New(slog.DiscardHandler), handler.ErrorHandlerConfig{ErrorPage: mockErrorPage})

		req := httptest.NewRequest(http.MethodPost, "/register", nil)
		req.Header.Set("Accept", "text/event-stream")
		w := httptest.NewRecorder()
		eh(handler.NewContext(w, req), handler.ErrBadRequest)

		assert.Empty(t, w.Body.String())
	})

	t.Run("without error page falls back to plain text", func(t *testing.T) {
		t.Parallel()
		eh := handler.NewErrorHandler(slog.New(slog.DiscardHandler), handler.ErrorHandlerConfig{})

		w := httptest.NewRecorder()
		eh(handler.NewContext(w, httptest.NewRequest(http.MethodGet, "/", nil)), handler.ErrNotFound)

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Contains(t, w.Body.String(), "not_found")
	})
}

func TestNewJSONErrorHandler(t *testing.T) {
	t.Parallel()

	t.Run("binding error", func(t *testing.T) {
		t.Parallel()
		eh := handler.NewJSONErrorHandler(slog.New(slog.DiscardHandler))

		req := httptest.NewRequest(http.MethodPost, "/api/register", nil)
		req = req.WithContext(requestid.WithContext(req.Context(), "req-7"))
		w := httptest.NewRecorder()
		eh(handler.NewContext(w, req), errors.Join(handler.ErrBadRequest, errors.New("invalid JSON")))

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.JSONEq(t, `{"meta":{"request_id":"req-7"},"error":{"code":"bad_request","message":"Bad Request"}}`, w.Body.String())
	})

	t.Run("nil logger uses default", func(t *testing.T) {
		t.Parallel()
		eh := handler.NewJSONErrorHandler(nil)
		require.NotNil(t, eh)

		w := httptest.NewRecorder()
		eh(handler.NewContext(w, httptest.NewRequest(http.MethodPost, "/api/register", nil)), errors.New("boom"))
		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}
