package http

import (
	"github.com/gin-gonic/gin"

	"shareit/internal/middleware"
)

// RegisterRoutes maps /bookings. Every route requires X-Sharer-User-Id.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	bookings := rg.Group("/bookings", mw.Sharer())
	{
		bookings.POST("", h.Create)
		bookings.GET("", h.ListByBooker)
		bookings.GET("/owner", h.ListByOwner)
		bookings.GET("/:id", h.Detail)
		bookings.PATCH("/:id", h.Decide)
		bookings.PATCH("/:id/cancel", h.Cancel)
	}
}
