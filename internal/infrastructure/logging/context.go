package logging

import (
	"context"

	"github.com/sirupsen/logrus"
)

type ctxKey struct{}

// WithLogger stores a request-scoped logger (usually carrying request_id).
func WithLogger(ctx context.Context, l logrus.FieldLogger) context.Context {
	return context.WithValue(ctx, ctxKey{}, l)
}

// FromContext returns the logger stored by WithLogger, or fallback.
func FromContext(ctx context.Context, fallback logrus.FieldLogger) logrus.FieldLogger {
	if l, ok := ctx.Value(ctxKey{}).(logrus.FieldLogger); ok && l != nil {
		return l
	}
	return fallback
}
