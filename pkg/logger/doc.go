// Package logger builds log/slog loggers with environment presets and
// context-derived attributes.
//
//	log := logger.New(
//		logger.WithEnvironment(cfg.Env, cfg.AppName),
//		logger.WithContextExtractors(requestid.LoggerExtractor()),
//	)
//
// Development logs text at debug level; staging and production log JSON at
// info level. Extractors run on every record, so values such as the request
// ID are always those of the current request.
//
// Attribute helpers (Error, RequestID, Duration, Component, Event) keep keys
// consistent across packages, and Middleware logs one record per HTTP request.
package logger
