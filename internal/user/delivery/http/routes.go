package http

import "github.com/gin-gonic/gin"

// RegisterRoutes maps /users. User management does not require X-Sharer-User-Id.
func RegisterRoutes(rg *gin.RouterGroup, h *handler) {
	users := rg.Group("/users")
	{
		users.POST("", h.Create)
		users.GET("", h.List)
		users.GET("/:id", h.Detail)
		users.PATCH("/:id", h.Update)
		users.DELETE("/:id", h.Delete)
	}
}
