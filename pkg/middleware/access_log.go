package middleware

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"gps/internal/metrics"
	"gps/pkg/utils"
)

// AccessLogMiddleware logs one line per request and records the request
// counters. Routes are labelled by their pattern, not the raw path, so
// unknown paths collapse into a single "unmatched" series.
func AccessLogMiddleware(log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		dur := time.Since(start)

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		status := c.Writer.Status()

		metrics.HTTPRequestsTotal.WithLabelValues(c.Request.Method, route, strconv.Itoa(status)).Inc()
		metrics.HTTPRequestDurationMs.WithLabelValues(c.Request.Method, route).Observe(float64(dur.Milliseconds()))

		fields := []zap.Field{
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.String("route", route),
			zap.Int("status", status),
			zap.Int("bytes", c.Writer.Size()),
			zap.Duration("latency", dur),
			zap.String("ip", c.ClientIP()),
			zap.String("trace_id", c.GetString(utils.TraceIDKey)),
		}
		if len(c.Errors) > 0 {
			fields = append(fields, zap.String("errors", c.Errors.String()))
		}
		if status >= 500 {
			log.Error("http_access", fields...)
		} else {
			log.Info("http_access", fields...)
		}
	}
}
