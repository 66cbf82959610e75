package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/fatflowers/prayerbook/pkg/logctx"
	"github.com/fatflowers/prayerbook/pkg/tool"
)

const maxTraceIDLen = 128

// TraceMiddleware adds a trace ID to the request context.
// It reads X-Request-ID if provided by the client; otherwise generates a UUID.
// The trace ID is stored in both gin.Context and the request's context.Context.
func TraceMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		traceID := c.GetHeader("X-Request-ID")
		if traceID == "" || len(traceID) > maxTraceIDLen {
			traceID = tool.GenerateUUIDV7()
		}

		c.Set(logctx.TraceIDKey, traceID)
		c.Request = c.Request.WithContext(logctx.WithValue(c.Request.Context(), logctx.TraceIDKey, traceID))
		c.Writer.Header().Set("X-Request-ID", traceID)
		c.Next()
	}
}
