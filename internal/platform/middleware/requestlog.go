// Package middleware provides shared gin middleware for the dashboard.
package middleware

import (
	"log/slog"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// HeaderRequestID is the response header carrying the request id.
const HeaderRequestID = "X-Request-ID"

// RequestLog assigns each request a UUID and emits one structured log line
// when it completes. It replaces gin's default logger so all output goes
// through slog.
func RequestLog() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := uuid.NewString()
		c.Header(HeaderRequestID, id)

		start := time.Now()
		c.Next()

		slog.Info("request",
			"id", id,
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"duration", time.Since(start),
		)
	}
}
