package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/courtspace/court-scheduler/internal/metrics"
)

const ContextRequestID = "requestID"

// RequestIDMiddleware tags every request with an id and counts it per
// endpoint.
func RequestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader("X-Request-ID")
		if id == "" {
			id = uuid.NewString()
		}

		c.Set(ContextRequestID, id)
		c.Writer.Header().Set("X-Request-ID", id)

		if path := c.FullPath(); path != "" {
			metrics.IncHTTP(path)
		}

		c.Next()
	}
}
