package logger

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// RequestIDMiddleware tags every request with an X-Request-ID, generating one
// when the client did not send any.
func RequestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		reqID := c.GetHeader("X-Request-ID")
		if reqID == "" {
			reqID = uuid.New().String()
		}

		c.Request = c.Request.WithContext(WithRequestID(c.Request.Context(), reqID))
		c.Header("X-Request-ID", reqID)

		c.Next()
	}
}

// LoggingMiddleware logs one line per request with method, path, status and
// duration, carrying the request_id from the context.
func LoggingMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		log := FromCtx(c.Request.Context())

		c.Next()

		log.Info("incoming request",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.String("ip", c.ClientIP()),
			zap.Duration("duration_ms", time.Since(start)),
		)
	}
}
