package slogx

import (
	"context"
	"log/slog"
)

type loggerKey struct{}

// NewContext returns ctx carrying logger. The HTTP middleware stores the
// per-request logger here; handlers and services read it with FromContext.
func NewContext(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, loggerKey{}, logger)
}

// FromContext returns the logger carried by ctx. Outside a request, such as
// in todoctl or the housekeeping loop, that is slog.Default.
func FromContext(ctx context.Context) *slog.Logger {
	if l, ok := ctx.Value(loggerKey{}).(*slog.Logger); ok {
		return l
	}
	return slog.Default()
}

// With returns ctx whose logger also carries args, for example the user id
// once a session is resolved.
func With(ctx context.Context, args ...any) context.Context {
	return NewContext(ctx, FromContext(ctx).With(args...))
}
