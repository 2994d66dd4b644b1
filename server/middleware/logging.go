package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/skillsenselab/webtest/logger"
)

// RequestLogger returns a Gin middleware that logs every request with method,
// path, status code, and duration.
func RequestLogger(log *logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		latency := time.Since(start)
		status := c.Writer.Status()
		path := c.Request.URL.Path
		if q := c.Request.URL.RawQuery; q != "" {
			path = path + "?" + q
		}

		fields := map[string]interface{}{
			logger.FieldMethod: c.Request.Method,
			logger.FieldPath:   path,
			logger.FieldStatus: status,
			"latency":          latency.String(),
		}
		if id, ok := c.Get("request_id"); ok {
			fields[logger.FieldRequestID] = id
		}

		switch {
		case status >= 500:
			log.Error("Request completed", fields)
		case status >= 400:
			log.Warn("Request completed", fields)
		default:
			log.Debug("Request completed", fields)
		}
	}
}
