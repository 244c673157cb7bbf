package requestid

import (
	"context"
	"log/slog"
)

// LoggerExtractor returns a logger context extractor that adds a request_id
// attribute when ctx carries one.
func LoggerExtractor() func(ctx context.Context) (slog.Attr, bool) {
	return func(ctx context.Context) (slog.Attr, bool) {
		id := FromContext(ctx)
		if id == "" {
			return slog.Attr{}, false
		}
		return slog.String("request_id", id), true
	}
}
