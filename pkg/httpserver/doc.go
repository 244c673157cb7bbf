// Package httpserver runs an http.Server until its context is cancelled and
// then shuts it down gracefully within Config.ShutdownTimeout.
//
//	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
//	defer stop()
//
//	srv := httpserver.New(cfg.HTTP, httpserver.WithLogger(log))
//	if err := srv.Run(ctx, router); err != nil {
//		log.Error("server failed", logger.Error(err))
//	}
//
// Config is loaded from HTTP_* environment variables. HealthCheckHandler
// serves liveness and readiness probes. Errors wrap ErrStart or ErrShutdown.
package httpserver
