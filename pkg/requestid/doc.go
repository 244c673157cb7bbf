// Package requestid attaches a correlation ID to every HTTP request.
//
// Middleware reuses a valid X-Request-ID header or generates a UUID, stores it
// in the request context and echoes it back. FromContext reads it, and
// LoggerExtractor feeds it into the logger as request_id:
//
//	log := logger.New(logger.WithContextExtractors(requestid.LoggerExtractor()))
//	r := chi.NewRouter()
//	r.Use(requestid.Middleware)
package requestid
