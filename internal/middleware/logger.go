package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/nsepulse/nsepulse/internal/logger"
)

// RequestLogger logs one structured line per request: method, path, status,
// latency, client IP, and the request id injected by RequestID().
//
// Example output:
//
//	request_id=123e4567-... method=GET path=/api/v1/scan status=200 latency_ms=4
func RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		method := c.Request.Method
		path := c.Request.URL.Path

		c.Next()

		rid, _ := c.Get(RequestIDKey)

		logger.L().Info().
			Str("request_id", toString(rid)).
			Str("method", method).
			Str("path", path).
			Int("status", c.Writer.Status()).
			Int64("latency_ms", time.Since(start).Milliseconds()).
			Str("client_ip", c.ClientIP()).
			Msg("http_request")
	}
}

func toString(v any) string {
	s, _ := v.(string)
	return s
}
