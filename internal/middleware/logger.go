package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/oms-tech/reviews/internal/pkg/logger"
	"github.com/rs/zerolog"
)

// Logger writes one access log event per request through the request-scoped logger
func Logger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		query := c.Request.URL.RawQuery

		c.Next()

		status := c.Writer.Status()
		lgr := logger.FromContext(c.Request.Context())

		level := zerolog.InfoLevel
		switch {
		case status >= 500:
			level = zerolog.ErrorLevel
		case status >= 400:
			level = zerolog.WarnLevel
		}

		event := lgr.WithLevel(level)

		if len(c.Errors) > 0 {
			event = event.Str("errors", c.Errors.ByType(gin.ErrorTypePrivate).String())
		}

		event.
			Int("status", status).
			Str("method", c.Request.Method).
			Str("path", path).
			Str("query", query).
			Str("ip", c.ClientIP()).
			Dur("latency", time.Since(start)).
			Msg("Request completed")
	}
}
