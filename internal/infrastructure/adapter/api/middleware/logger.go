package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	coreport "github.com/amirhossein-jamali/gold-advisor/internal/domain/port/core"
)

// RequestLogger logs every request once it has been served
func RequestLogger(logger coreport.Logger, timeProvider coreport.TimeProvider) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := timeProvider.Now()
		path := c.Request.URL.Path
		method := c.Request.Method

		c.Next()

		status := c.Writer.Status()
		fields := map[string]any{
			"method":     method,
			"path":       path,
			"route":      c.FullPath(),
			"status":     status,
			"latency_ms": timeProvider.Since(start).Std().Milliseconds(),
			"ip":         c.ClientIP(),
			"request_id": c.GetHeader("X-Request-ID"),
		}
		if len(c.Errors) > 0 {
			fields["errors"] = c.Errors.Errors()
		}

		switch {
		case status >= http.StatusInternalServerError:
			logger.Error("Request failed", fields)
		case status >= http.StatusBadRequest:
			logger.Warn("Request rejected", fields)
		default:
			logger.Info("Request processed", fields)
		}
	}
}
