package register

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/a-h/templ"

	"github.com/dmitrymomot/regform/handler"
	"github.com/dmitrymomot/regform/svc/registration"
)

// FormTarget is the element replaced by DataStar patches of the form.
const FormTarget = "#register-form"

// DataStarScriptURL is the DataStar client bundle loaded by the default page.
const DataStarScriptURL = "https://cdn.jsdelivr.net/gh/starfederation/datastar@1.0.0-RC.5/bundles/datastar.js"

// Views holds the components rendered by the register module. Each field may
// be replaced independently; DefaultViews fills the rest.
type Views struct {
	Page    func(PageParams) templ.Component
	Form    func(FormParams) templ.Component
	Success func(SuccessParams) templ.Component
}

// PageParams contains data for rendering the full page around content.
type PageParams struct {
	Title   string
	Content templ.Component
}

// FormParams contains data for rendering the registration form.
// Values never carry passwords.
type FormParams struct {
	Action    string
	Values    registration.Public
	Errors    map[string]string
	Countries []string
}

// SuccessParams contains data for rendering the accepted state.
type SuccessParams struct {
	Record registration.Public
}

// DefaultViews returns plain HTML views.
func DefaultViews() *Views {
	return &Views{
		Page:    defaultPage,
		Form:    defaultForm,
		Success: defaultSuccess,
	}
}

func (v *Views) withDefaults() *Views {
	d := DefaultViews()
	if v == nil {
		return d
	}
	out := *v
	if out.Page == nil {
		out.Page = d.Page
	}
	if out.Form == nil {
		out.Form = d.Form
	}
	if out.Success == nil {
		out.Success = d.Success
	}
	return &out
}

func defaultPage(p PageParams) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := fmt.Fprintf(w,
			`<!DOCTYPE html><html lang="en"><head><meta charset="utf-8"><title>%s</title><script type="module" src="%s"></script></head><body><main><h1>%s</h1>`,
			templ.EscapeString(p.Title), DataStarScriptURL, templ.EscapeString(p.Title),
		); err != nil {
			return err
		}
		if p.Content != nil {
			if err := p.Content.Render(ctx, w); err != nil {
				return err
			}
		}
		_, err := io.WriteString(w, `<div id="toast-container"></div></main></body></html>`)
		return err
	})
}

type inputField struct {
	name  string
	label string
	kind  string
	value string
}

func defaultForm(p FormParams) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var b strings.Builder
		b.WriteString(`<div id="register-form">`)
		fmt.Fprintf(&b,
			`<form method="post" action="%s" data-on-submit="@post('%s', {contentType: 'form'})" novalidate>`,
			templ.EscapeString(p.Action), templ.EscapeString(p.Action),
		)

		fields := []inputField{
			{registration.FieldName, "Name", "text", p.Values.Name},
			{registration.FieldEmail, "Email", "email", p.Values.Email},
			{registration.FieldPassword, "Password", "password", ""},
			{registration.FieldConfirmPassword, "Confirm password", "password", ""},
			{registration.FieldPhoneNumber, "Phone number", "tel", p.Values.PhoneNumber},
		}
		for _, f := range fields {
			fmt.Fprintf(&b,
				`<label for="%[1]s">%[2]s</label><input id="%[1]s" name="%[1]s" type="%[3]s" value="%[4]s">`,
				f.name, f.label, f.kind, templ.EscapeString(f.value),
			)
			writeFieldError(&b, f.name, p.Errors)
		}

		fmt.Fprintf(&b, `<label for="%[1]s">Country</label><select id="%[1]s" name="%[1]s"><option value="">Select a country</option>`, registration.FieldCountry)
		for _, c := range p.Countries {
			selected := ""
			if c == p.Values.Country {
				selected = " selected"
			}
			fmt.Fprintf(&b, `<option value="%[1]s"%[2]s>%[1]s</option>`, templ.EscapeString(c), selected)
		}
		b.WriteString(`</select>`)
		writeFieldError(&b, registration.FieldCountry, p.Errors)

		fmt.Fprintf(&b,
			`<label for="%[1]s">Zip code</label><input id="%[1]s" name="%[1]s" type="text" value="%[2]s">`,
			registration.FieldZipCode, templ.EscapeString(p.Values.ZipCode),
		)
		writeFieldError(&b, registration.FieldZipCode, p.Errors)

		b.WriteString(`<button type="submit">Register</button></form></div>`)
		_, err := io.WriteString(w, b.String())
		return err
	})
}

func writeFieldError(b *strings.Builder, field string, errs map[string]string) {
	if msg, ok := errs[field]; ok {
		fmt.Fprintf(b, `<p class="error" id="%s-error">%s</p>`, field, templ.EscapeString(msg))
	}
}

func defaultSuccess(p SuccessParams) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := fmt.Fprintf(w,
			`<div id="register-form"><p class="success">Thanks for registering, %s!</p><p>We will contact you at %s.</p></div>`,
			templ.EscapeString(p.Record.Name), templ.EscapeString(p.Record.Email),
		)
		return err
	})
}

// ErrorPage renders error pages for handler.NewErrorHandler.
func ErrorPage(p handler.ErrorPageParams) templ.Component {
	return defaultPage(PageParams{
		Title: "Something went wrong",
		Content: templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
			_, err := fmt.Fprintf(w,
				`<p class="error">%s</p><p><a href="%s">Try again</a></p><p><small>Request ID: %s</small></p>`,
				templ.EscapeString(p.Error), templ.EscapeString(p.RetryURL), templ.EscapeString(p.RequestID),
			)
			return err
		}),
	})
}

// ErrorToast renders DataStar error toasts for handler.NewErrorHandler.
func ErrorToast(p handler.ErrorToastParams) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := fmt.Fprintf(w, `<div class="toast %s">%s</div>`,
			templ.EscapeString(p.Type), templ.EscapeString(p.Message),
		)
		return err
	})
}
