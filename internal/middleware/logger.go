package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/guttosm/stockprice/internal/logger"
)

// RequestLogger writes one structured entry per request once it completes.
//
// Fields: request_id (from RequestID), method, path, query, status,
// latency_ms, client_ip and the number of errors attached with c.Error.
// The level follows the status: info below 400, warn for 4xx, error for 5xx.
//
// Example log output:
//
//	{"level":"info","request_id":"123e4567-e89b-12d3-a456-426614174000","method":"GET","path":"/api/v1/prices","status":200,"latency_ms":15,"message":"http_request"}
func RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		method := c.Request.Method
		path := c.Request.URL.Path
		rawQuery := c.Request.URL.RawQuery

		c.Next()

		status := c.Writer.Status()
		rid, _ := c.Get(RequestIDKey)

		statusEvent(status).
			Str("request_id", toString(rid)).
			Str("method", method).
			Str("path", path).
			Str("query", rawQuery).
			Int("status", status).
			Int64("latency_ms", time.Since(start).Milliseconds()).
			Str("client_ip", c.ClientIP()).
			Int("errors", len(c.Errors)).
			Msg("http_request")
	}
}

func statusEvent(status int) *zerolog.Event {
	switch {
	case status >= 500:
		return logger.L().Error()
	case status >= 400:
		return logger.L().Warn()
	default:
		return logger.L().Info()
	}
}

func toString(v any) string {
	s, _ := v.(string)
	return s
}
