package register

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/dmitrymomot/regform/handler"
	"github.com/dmitrymomot/regform/pkg/binder"
	"github.com/dmitrymomot/regform/svc/registration"
)

const (
	pageTitle   = "Register"
	formAction  = "/register"
	apiEndpoint = "/api/register"
)

// Service serves the registration form and its JSON counterpart.
type Service struct {
	registration     *registration.Service
	views            *Views
	errorHandler     handler.ErrorHandler[handler.Context]
	jsonErrorHandler handler.ErrorHandler[handler.Context]
}

// NewService creates the register module service. Nil views fall back to
// DefaultViews; a nil errorHandler uses handler.NewErrorHandler with the
// module error views.
func NewService(
	svc *registration.Service,
	views *Views,
	errorHandler handler.ErrorHandler[handler.Context],
	log *slog.Logger,
) *Service {
	if errorHandler == nil {
		errorHandler = handler.NewErrorHandler(log, handler.ErrorHandlerConfig{
			ErrorPage:  ErrorPage,
			ErrorToast: ErrorToast,
		})
	}
	return &Service{
		registration:     svc,
		views:            views.withDefaults(),
		errorHandler:     errorHandler,
		jsonErrorHandler: handler.NewJSONErrorHandler(log),
	}
}

// Handle returns the module router:
//
//	GET  /register      registration page
//	POST /register      form submission, HTML or DataStar patch
//	POST /api/register  JSON submission
func (s *Service) Handle() http.Handler {
	r := chi.NewRouter()

	r.Get(formAction, handler.Wrap(s.showForm,
		handler.WithErrorHandler[handler.Context, registration.Record](s.errorHandler),
	))

	r.Post(formAction, handler.Wrap(s.submitForm,
		handler.WithBinders[handler.Context, registration.Record](binder.Form()),
		handler.WithErrorHandler[handler.Context, registration.Record](s.errorHandler),
	))

	r.Post(apiEndpoint, handler.Wrap(s.submitJSON,
		handler.WithBinders[handler.Context, registration.Record](binder.JSON()),
		handler.WithErrorHandler[handler.Context, registration.Record](s.jsonErrorHandler),
	))

	return r
}

func (s *Service) formParams(res registration.Result) FormParams {
	return FormParams{
		Action:    formAction,
		Values:    res.Record.Public(),
		Errors:    res.Messages(),
		Countries: registration.Countries,
	}
}

func (s *Service) page(content FormParams) handler.Response {
	form := s.views.Form(content)
	return handler.TemplPartial(
		form,
		s.views.Page(PageParams{Title: pageTitle, Content: form}),
		handler.WithTarget(FormTarget),
	)
}

func (s *Service) showForm(ctx handler.Context, _ registration.Record) handler.Response {
	return s.page(FormParams{
		Action:    formAction,
		Countries: registration.Countries,
	})
}

func (s *Service) submitForm(ctx handler.Context, rec registration.Record) handler.Response {
	res, err := s.registration.Submit(ctx, rec)
	if err != nil {
		return handler.Error(err)
	}

	if !res.Accepted() {
		return handler.WithStatus(http.StatusUnprocessableEntity, s.page(s.formParams(res)))
	}

	success := s.views.Success(SuccessParams{Record: res.Record.Public()})
	return handler.TemplPartial(
		success,
		s.views.Page(PageParams{Title: pageTitle, Content: success}),
		handler.WithTarget(FormTarget),
	)
}

func (s *Service) submitJSON(ctx handler.Context, rec registration.Record) handler.Response {
	res, err := s.registration.Submit(ctx, rec)
	if err != nil {
		return handler.Error(err)
	}

	if !res.Accepted() {
		return handler.JSONError(handler.FromValidationErrors(res.Errors))
	}

	return handler.JSON(res.Record.Public(), handler.WithJSONStatus(http.StatusCreated))
}
