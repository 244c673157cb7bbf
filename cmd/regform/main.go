package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/dmitrymomot/regform/modules/register"
	"github.com/dmitrymomot/regform/pkg/config"
	"github.com/dmitrymomot/regform/pkg/email"
	"github.com/dmitrymomot/regform/pkg/environment"
	"github.com/dmitrymomot/regform/pkg/httpserver"
	"github.com/dmitrymomot/regform/pkg/logger"
	"github.com/dmitrymomot/regform/pkg/requestid"
	"github.com/dmitrymomot/regform/svc/registration"
)

type appConfig struct {
	Env     environment.Environment `env:"APP_ENV" envDefault:"development"`
	AppName string                  `env:"APP_NAME" envDefault:"regform"`

	HTTP    httpserver.Config
	Email   email.Config
	Welcome registration.WelcomeEmailConfig
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	var cfg appConfig
	if err := config.Load(&cfg); err != nil {
		return err
	}

	log := logger.New(
		logger.WithEnvironment(cfg.Env, cfg.AppName),
		logger.WithContextExtractors(requestid.LoggerExtractor()),
	)
	slog.SetDefault(log)

	submitter, err := newSubmitter(cfg, log)
	if err != nil {
		return err
	}

	r := chi.NewRouter()
	r.Use(
		requestid.Middleware,
		environment.Middleware(cfg.Env),
		logger.Middleware(log),
		middleware.Recoverer,
	)
	r.Get("/health/live", httpserver.HealthCheckHandler(log))

	svc := registration.NewService(submitter, registration.WithLogger(log))
	r.Mount("/", register.NewService(svc, register.DefaultViews(), nil, log).Handle())

	return httpserver.New(cfg.HTTP, httpserver.WithLogger(log)).Run(ctx, r)
}

// newSubmitter always logs accepted registrations and optionally sends a
// welcome email afterwards.
func newSubmitter(cfg appConfig, log *slog.Logger) (registration.Submitter, error) {
	subs := []registration.Submitter{registration.LogSubmitter(log)}
	if !cfg.Welcome.Enabled {
		return registration.MultiSubmitter(subs...), nil
	}

	if cfg.Env.IsProduction() && !cfg.Email.UsePostmark() {
		return nil, errors.New("welcome email requires POSTMARK_SERVER_TOKEN and POSTMARK_ACCOUNT_TOKEN in production")
	}
	sender, err := email.NewSender(cfg.Email)
	if err != nil {
		return nil, err
	}
	welcome, err := registration.WelcomeEmailSubmitter(sender, cfg.Welcome)
	if err != nil {
		return nil, err
	}
	return registration.MultiSubmitter(append(subs, welcome)...), nil
}
