package middleware

import (
	"runtime/debug"

	"github.com/gin-gonic/gin"

	"shareit/pkg/response"
)

// Recovery turns a handler panic into a 500 carrying the goroutine stack.
func (m Middleware) Recovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				stack := debug.Stack()
				m.l.Errorf(c.Request.Context(), "panic recovered: %v\n%s", r, stack)
				response.Panic(c, r, stack)
			}
		}()
		c.Next()
	}
}
