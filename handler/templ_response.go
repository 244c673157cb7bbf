package handler

import (
	"net/http"

	"github.com/a-h/templ"
	"github.com/starfederation/datastar-go/datastar"
)

// TemplOption is an alias for datastar's PatchElementOption
type TemplOption = datastar.PatchElementOption

// WithTarget sets the target selector for where the component should be rendered
func WithTarget(selector string) TemplOption {
	return datastar.WithSelector(selector)
}

// WithPatchMode sets how the component should be merged into the DOM
func WithPatchMode(mode datastar.ElementPatchMode) TemplOption {
	return datastar.WithMode(mode)
}

type templResponse struct {
	partial templ.Component
	full    templ.Component
	options []datastar.PatchElementOption
}

// Render outputs the partial via SSE for DataStar or the full component as HTML.
func (t templResponse) Render(w http.ResponseWriter, r *http.Request) error {
	if IsDataStar(r) {
		sse := NewSSE(w, r)
		return sse.PatchElementTempl(t.partial, t.options...)
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	return t.full.Render(r.Context(), w)
}

// Templ creates a response from a templ component. DataStar requests receive
// it as an element patch, regular requests as HTML.
//
//	return handler.Templ(views.Card(user), handler.WithTarget("#user-info"))
func Templ(component templ.Component, opts ...TemplOption) Response {
	return templResponse{
		partial: component,
		full:    component,
		options: opts,
	}
}

// TemplPartial renders partial for DataStar requests and full otherwise.
//
//	return handler.TemplPartial(
//		views.Form(state),
//		views.Page(views.Form(state)),
//		handler.WithTarget("#register-form"),
//	)
func TemplPartial(partial, full templ.Component, opts ...TemplOption) Response {
	return templResponse{
		partial: partial,
		full:    full,
		options: opts,
	}
}
