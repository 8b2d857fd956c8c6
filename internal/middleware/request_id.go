package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/oms-tech/reviews/internal/pkg/logger"
)

const (
	// RequestIDHeader is read from and echoed on every request
	RequestIDHeader = "X-Request-ID"
	requestIDKey    = "request_id"
	// requestIDMaxLen bounds caller supplied IDs before they reach the logs
	requestIDMaxLen = 64
)

// RequestID assigns a request ID and attaches a logger carrying it to the request context
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		rid := c.GetHeader(RequestIDHeader)
		if rid == "" || len(rid) > requestIDMaxLen {
			rid = uuid.New().String()
		}

		c.Set(requestIDKey, rid)
		c.Header(RequestIDHeader, rid)

		ctx := c.Request.Context()
		reqLogger := logger.FromContext(ctx).With().Str(requestIDKey, rid).Logger()
		c.Request = c.Request.WithContext(reqLogger.WithContext(ctx))

		c.Next()
	}
}

// GetRequestID returns the ID assigned by RequestID
func GetRequestID(c *gin.Context) string {
	return c.GetString(requestIDKey)
}
