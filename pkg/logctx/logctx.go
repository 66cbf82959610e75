package logctx

import (
	"context"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type ctxKey string

const (
	// Keys shared with gin.Context.Set and context.WithValue.
	LoggerKey         = "logger"
	TraceIDKey        = "traceID"
	InstallationIDKey = "installationID"
)

// WithLogger stores a request-scoped logger in ctx.
func WithLogger(ctx context.Context, l *zap.SugaredLogger) context.Context {
	return context.WithValue(ctx, ctxKey(LoggerKey), l)
}

// WithValue stores a string attribute under one of the shared keys.
func WithValue(ctx context.Context, key, value string) context.Context {
	return context.WithValue(ctx, ctxKey(key), value)
}

// Value returns a string attribute stored by WithValue.
func Value(ctx context.Context, key string) string {
	if ctx == nil {
		return ""
	}
	s, _ := ctx.Value(ctxKey(key)).(string)
	return s
}

// FromGin returns a request-scoped logger from gin.Context if present,
// otherwise returns the provided base logger.
func FromGin(c *gin.Context, base *zap.SugaredLogger) *zap.SugaredLogger {
	if c == nil {
		return base
	}
	if l, ok := c.Get(LoggerKey); ok {
		if lg, ok := l.(*zap.SugaredLogger); ok && lg != nil {
			return lg
		}
	}
	if c.Request == nil {
		return base
	}
	return FromCtx(c.Request.Context(), base)
}

// FromCtx returns a logger from context if set, otherwise attempts to enrich
// base with trace_id/installation_id from context values.
func FromCtx(ctx context.Context, base *zap.SugaredLogger) *zap.SugaredLogger {
	if ctx == nil {
		return base
	}
	if lg, ok := ctx.Value(ctxKey(LoggerKey)).(*zap.SugaredLogger); ok && lg != nil {
		return lg
	}
	var fields []interface{}
	if tid := Value(ctx, TraceIDKey); tid != "" {
		fields = append(fields, "trace_id", tid)
	}
	if iid := Value(ctx, InstallationIDKey); iid != "" {
		fields = append(fields, "installation_id", iid)
	}
	if len(fields) > 0 {
		return base.With(fields...)
	}
	return base
}
