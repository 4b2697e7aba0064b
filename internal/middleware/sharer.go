package middleware

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"shareit/internal/model"
	"shareit/pkg/log"
	"shareit/pkg/response"
)

const scopeKey = "shareit.scope"

// Sharer reads the caller id from X-Sharer-User-Id. Missing or malformed ids are rejected with 400.
func (m Middleware) Sharer() gin.HandlerFunc {
	return func(c *gin.Context) {
		raw := c.GetHeader(model.SharerUserIDHeader)
		if raw == "" {
			response.BadRequest(c, "missing "+model.SharerUserIDHeader+" header")
			return
		}
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || id <= 0 {
			response.BadRequest(c, "invalid "+model.SharerUserIDHeader+" header: "+raw)
			return
		}

		c.Set(scopeKey, model.Scope{UserID: id})
		c.Request = c.Request.WithContext(log.WithUserID(c.Request.Context(), id))
		c.Next()
	}
}

// GetScope returns the scope stored by Sharer. The zero Scope is returned when absent.
func GetScope(c *gin.Context) model.Scope {
	v, ok := c.Get(scopeKey)
	if !ok {
		return model.Scope{}
	}
	sc, _ := v.(model.Scope)
	return sc
}
