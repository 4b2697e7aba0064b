package http

import (
	"github.com/gin-gonic/gin"

	"shareit/internal/middleware"
)

// RegisterRoutes maps /requests.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	requests := rg.Group("/requests", mw.Sharer())
	{
		requests.POST("", h.Create)
		requests.GET("", h.ListOwn)
		requests.GET("/all", h.ListOthers)
		requests.GET("/:id", h.Detail)
	}
}
