package register_test

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/regform/modules/register"
	"github.com/dmitrymomot/regform/svc/registration"
)

type recordingSubmitter struct {
	mu      sync.Mutex
	records []registration.Record
	err     error
}

func (r *recordingSubmitter) Submit(_ context.Context, rec registration.Record) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.records = append(r.records, rec)
	return r.err
}

func (r *recordingSubmitter) calls() []registration.Record {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]registration.Record(nil), r.records...)
}

func newServer(t *testing.T, sub registration.Submitter) http.Handler {
	t.Helper()
	log := slog.New(slog.DiscardHandler)
	svc := registration.NewService(sub, registration.WithLogger(log))
	return register.NewService(svc, nil, nil, log).Handle()
}

func validForm() url.Values {
	return url.Values{
		"name":            {" Jane Doe "},
		"email":           {"jane@example.com"},
		"password":        {"Abc123!@"},
		"confirmPassword": {"Abc123!@"},
		"phoneNumber":     {"+15551234567"},
		"country":         {"Ukraine"},
		"zipCode":         {"12345-6789"},
	}
}

func postForm(h http.Handler, values url.Values, datastar bool) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/register", strings.NewReader(values.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	if datastar {
		req.Header.Set("Accept", "text/event-stream")
	}
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

func TestShowForm(t *testing.T) {
	t.Parallel()

	w := httptest.NewRecorder()
	newServer(t, &recordingSubmitter{}).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/register", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "text/html; charset=utf-8", w.Header().Get("Content-Type"))
	body := w.Body.String()
	assert.Contains(t, body, `<div id="register-form">`)
	for _, c := range registration.Countries {
		assert.Contains(t, body, `<option value="`+c+`">`+c+`</option>`)
	}
	for _, field := range []string{"name", "email", "password", "confirmPassword", "phoneNumber", "country", "zipCode"} {
		assert.Contains(t, body, `name="`+field+`"`)
	}
	assert.NotContains(t, body, `class="error"`)
}

func TestSubmitForm(t *testing.T) {
	t.Parallel()

	t.Run("accepted record is handed off once", func(t *testing.T) {
		t.Parallel()
		sub := &recordingSubmitter{}
		w := postForm(newServer(t, sub), validForm(), false)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "Thanks for registering, Jane Doe!")

		calls := sub.calls()
		require.Len(t, calls, 1)
		assert.Equal(t, registration.Record{
			Name:            "Jane Doe",
			Email:           "jane@example.com",
			Password:        "Abc123!@",
			ConfirmPassword: "Abc123!@",
			PhoneNumber:     "+15551234567",
			Country:         "Ukraine",
			ZipCode:         "12345-6789",
		}, calls[0])
	})

	t.Run("rejected record re-renders the form", func(t *testing.T) {
		t.Parallel()
		sub := &recordingSubmitter{}
		values := validForm()
		values.Set("password", "abc123")
		values.Set("confirmPassword", "abc124")
		values.Set("zipCode", "1234")

		w := postForm(newServer(t, sub), values, false)

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
		body := w.Body.String()
		assert.Contains(t, body, registration.MsgPasswordComplexity)
		assert.Contains(t, body, registration.MsgPasswordsMismatch)
		assert.Contains(t, body, registration.MsgZipCodeInvalid)
		assert.Contains(t, body, `value="Jane Doe"`)
		assert.Contains(t, body, `<option value="Ukraine" selected>`)
		assert.NotContains(t, body, "abc123")
		assert.NotContains(t, body, "abc124")
		assert.Empty(t, sub.calls())
	})

	t.Run("user input is escaped", func(t *testing.T) {
		t.Parallel()
		values := validForm()
		values.Set("name", `"><script>alert(1)</script>`)
		values.Set("email", "")

		w := postForm(newServer(t, &recordingSubmitter{}), values, false)
		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
		assert.NotContains(t, w.Body.String(), "<script>alert(1)</script>")
	})

	t.Run("DataStar receives a patch of the form", func(t *testing.T) {
		t.Parallel()
		values := validForm()
		values.Del("email")

		w := postForm(newServer(t, &recordingSubmitter{}), values, true)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "text/event-stream", w.Header().Get("Content-Type"))
		body := w.Body.String()
		assert.Contains(t, body, "datastar-patch-elements")
		assert.Contains(t, body, register.FormTarget)
		assert.Contains(t, body, registration.MsgEmailRequired)
		assert.NotContains(t, body, "<html")
	})

	t.Run("DataStar receives a patch of the success view", func(t *testing.T) {
		t.Parallel()
		w := postForm(newServer(t, &recordingSubmitter{}), validForm(), true)
		body := w.Body.String()
		assert.Contains(t, body, "datastar-patch-elements")
		assert.Contains(t, body, "Thanks for registering")
	})

	t.Run("binding error is a bad request", func(t *testing.T) {
		t.Parallel()
		req := httptest.NewRequest(http.MethodPost, "/register", strings.NewReader("name=%zz"))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		w := httptest.NewRecorder()
		newServer(t, &recordingSubmitter{}).ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("submitter failure is a server error", func(t *testing.T) {
		t.Parallel()
		sub := &recordingSubmitter{err: errors.New("downstream unavailable")}
		w := postForm(newServer(t, sub), validForm(), false)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.NotContains(t, w.Body.String(), "downstream unavailable")
		assert.Len(t, sub.calls(), 1)
	})
}

func TestSubmitJSON(t *testing.T) {
	t.Parallel()

	post := func(h http.Handler, body string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, "/api/register", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		h.ServeHTTP(w, req)
		return w
	}

	t.Run("created", func(t *testing.T) {
		t.Parallel()
		sub := &recordingSubmitter{}
		w := post(newServer(t, sub), `{
			"name": "Jane Doe",
			"email": "jane@example.com",
			"password": "Abc123!@",
			"confirmPassword": "Abc123!@",
			"phoneNumber": "5551234567",
			"country": "Canada",
			"zipCode": "12345"
		}`)

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.JSONEq(t, `{"data":{"name":"Jane Doe","email":"jane@example.com","phoneNumber":"5551234567","country":"Canada","zipCode":"12345"}}`, w.Body.String())
		assert.Len(t, sub.calls(), 1)
	})

	t.Run("rejected", func(t *testing.T) {
		t.Parallel()
		sub := &recordingSubmitter{}
		w := post(newServer(t, sub), `{"email":"not-an-email","phoneNumber":"12345"}`)

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)

		var got struct {
			Error struct {
				Code    string              `json:"code"`
				Details map[string][]string `json:"details"`
			} `json:"error"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
		assert.Equal(t, "validation_error", got.Error.Code)
		assert.Equal(t, map[string][]string{
			"name":        {registration.MsgNameRequired},
			"email":       {registration.MsgEmailInvalid},
			"password":    {registration.MsgPasswordRequired},
			"phoneNumber": {registration.MsgPhoneInvalid},
			"country":     {registration.MsgCountryRequired},
			"zipCode":     {registration.MsgZipCodeRequired},
		}, got.Error.Details)
		assert.Empty(t, sub.calls())
	})

	t.Run("malformed body", func(t *testing.T) {
		t.Parallel()
		w := post(newServer(t, &recordingSubmitter{}), `{"name":`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), `"code":"bad_request"`)
	})

	t.Run("unknown field", func(t *testing.T) {
		t.Parallel()
		w := post(newServer(t, &recordingSubmitter{}), `{"name":"x","role":"admin"}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}
