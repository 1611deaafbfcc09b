package logger

import (
	"context"

	"go.uber.org/zap"
)

// ctxMarker keys the request-scoped logger carried through a search.
type ctxMarker struct{}

// ContextWithLogger attaches a request-scoped logger to ctx.
func ContextWithLogger(ctx context.Context, l *zap.Logger) context.Context {
	return context.WithValue(ctx, ctxMarker{}, l)
}

// FromContext returns the logger attached to ctx. When none was attached
// it returns a no-op logger, so callers never need a nil check.
func FromContext(ctx context.Context) *zap.Logger {
	l, ok := ctx.Value(ctxMarker{}).(*zap.Logger)
	if !ok {
		return zap.NewNop()
	}
	return l
}
