package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"shareit/pkg/log"
)

const HeaderRequestID = "X-Request-Id"

// RequestID propagates the incoming request id or assigns a new uuid.
func (m Middleware) RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(HeaderRequestID)
		if id == "" {
			id = uuid.NewString()
		}
		c.Header(HeaderRequestID, id)
		c.Request = c.Request.WithContext(log.WithRequestID(c.Request.Context(), id))
		c.Next()
	}
}
