package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"gps/pkg/utils"
)

const TraceIDHeader = "X-Trace-ID"

// TraceIDMiddleware propagates the caller's X-Trace-ID or mints a new one,
// storing it under utils.TraceIDKey and echoing it on the response.
func TraceIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		traceID := c.GetHeader(TraceIDHeader)
		if traceID == "" || len(traceID) > 128 {
			traceID = uuid.New().String()
		}
		c.Set(utils.TraceIDKey, traceID)
		c.Writer.Header().Set(TraceIDHeader, traceID)
		c.Next()
	}
}
