package templates_test

import (
	"context"
	"errors"
	"io"
	"testing"

	"github.com/a-h/templ"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/regform/pkg/email/templates"
)

func TestRender(t *testing.T) {
	t.Parallel()

	out, err := templates.Render(context.Background(), templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		_, err := io.WriteString(w, "<p>hi</p>")
		return err
	}))
	require.NoError(t, err)
	assert.Equal(t, "<p>hi</p>", out)

	boom := errors.New("boom")
	_, err = templates.Render(context.Background(), templ.ComponentFunc(func(context.Context, io.Writer) error {
		return boom
	}))
	assert.ErrorIs(t, err, boom)
}
