package http

import (
	"github.com/gin-gonic/gin"

	"shareit/internal/middleware"
)

// RegisterRoutes maps /items. Every route requires X-Sharer-User-Id.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	items := rg.Group("/items", mw.Sharer())
	{
		items.POST("", h.Create)
		items.GET("", h.ListByOwner)
		items.GET("/search", h.Search)
		items.GET("/:id", h.Detail)
		items.PATCH("/:id", h.Update)
		items.POST("/:id/comment", h.CreateComment)
	}
}
