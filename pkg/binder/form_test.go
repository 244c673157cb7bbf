package binder_test

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/regform/pkg/binder"
)

type signupForm struct {
	Name            string   `form:"name"`
	ConfirmPassword string   `form:"confirmPassword"`
	Age             int      `form:"age"`
	Subscribe       bool     `form:"subscribe"`
	Tags            []string `form:"tags"`
	Nickname        *string  `form:"nickname"`
	Internal        string   `form:"-"`
	Country         string
}

func TestForm(t *testing.T) {
	t.Parallel()

	t.Run("urlencoded", func(t *testing.T) {
		t.Parallel()
		values := url.Values{
			"name":            {"  Jane  "},
			"confirmPassword": {"Abc123!@"},
			"age":             {"30"},
			"subscribe":       {"on"},
			"tags":            {"a,b", "c"},
			"nickname":        {"jd"},
			"Internal":        {"x"},
			"country":         {"UK"},
		}
		req := httptest.NewRequest(http.MethodPost, "/register", strings.NewReader(values.Encode()))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

		var got signupForm
		require.NoError(t, binder.Form()(req, &got))
		assert.Equal(t, "  Jane  ", got.Name, "values are not trimmed")
		assert.Equal(t, "Abc123!@", got.ConfirmPassword)
		assert.Equal(t, 30, got.Age)
		assert.True(t, got.Subscribe)
		assert.Equal(t, []string{"a,b", "c"}, got.Tags)
		require.NotNil(t, got.Nickname)
		assert.Equal(t, "jd", *got.Nickname)
		assert.Empty(t, got.Internal)
		assert.Equal(t, "UK", got.Country)
	})

	t.Run("query string is ignored", func(t *testing.T) {
		t.Parallel()
		req := httptest.NewRequest(http.MethodPost, "/register?name=query", strings.NewReader("age=1"))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded; charset=utf-8")

		var got signupForm
		require.NoError(t, binder.Form()(req, &got))
		assert.Empty(t, got.Name)
		assert.Equal(t, 1, got.Age)
	})

	t.Run("multipart", func(t *testing.T) {
		t.Parallel()
		var body bytes.Buffer
		mw := multipart.NewWriter(&body)
		require.NoError(t, mw.WriteField("name", "Jane"))
		require.NoError(t, mw.WriteField("age", "41"))
		require.NoError(t, mw.Close())

		req := httptest.NewRequest(http.MethodPost, "/register", &body)
		req.Header.Set("Content-Type", mw.FormDataContentType())

		var got signupForm
		require.NoError(t, binder.Form()(req, &got))
		assert.Equal(t, "Jane", got.Name)
		assert.Equal(t, 41, got.Age)
	})

	t.Run("multipart without boundary", func(t *testing.T) {
		t.Parallel()
		req := httptest.NewRequest(http.MethodPost, "/register", strings.NewReader("x"))
		req.Header.Set("Content-Type", "multipart/form-data")

		var got signupForm
		assert.ErrorIs(t, binder.Form()(req, &got), binder.ErrInvalidForm)
	})

	t.Run("GET is not applicable", func(t *testing.T) {
		t.Parallel()
		req := httptest.NewRequest(http.MethodGet, "/register?name=Jane", nil)

		var got signupForm
		assert.ErrorIs(t, binder.Form()(req, &got), binder.ErrBinderNotApplicable)
	})

	t.Run("missing content type", func(t *testing.T) {
		t.Parallel()
		req := httptest.NewRequest(http.MethodPost, "/register", strings.NewReader("name=Jane"))

		var got signupForm
		assert.ErrorIs(t, binder.Form()(req, &got), binder.ErrMissingContentType)
	})

	t.Run("unsupported content type", func(t *testing.T) {
		t.Parallel()
		req := httptest.NewRequest(http.MethodPost, "/register", strings.NewReader(`{}`))
		req.Header.Set("Content-Type", "application/json")

		var got signupForm
		assert.ErrorIs(t, binder.Form()(req, &got), binder.ErrUnsupportedMediaType)
	})

	t.Run("invalid number", func(t *testing.T) {
		t.Parallel()
		req := httptest.NewRequest(http.MethodPost, "/register", strings.NewReader("age=old"))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

		var got signupForm
		err := binder.Form()(req, &got)
		assert.ErrorIs(t, err, binder.ErrInvalidForm)
		assert.Contains(t, err.Error(), "field Age")
	})

	t.Run("non-pointer target", func(t *testing.T) {
		t.Parallel()
		req := httptest.NewRequest(http.MethodPost, "/register", strings.NewReader("name=Jane"))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

		assert.ErrorIs(t, binder.Form()(req, signupForm{}), binder.ErrInvalidForm)
	})
}
