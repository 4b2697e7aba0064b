package gateway

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

func (g *Gateway) registerRoutes() {
	g.e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, echo.Map{"status": "healthy", "service": "shareit-gateway"})
	})

	users := g.e.Group("/users")
	users.POST("", g.createUser)
	users.GET("", g.listUsers)
	users.GET("/:id", g.getUser)
	users.PATCH("/:id", g.updateUser)
	users.DELETE("/:id", g.deleteUser)

	items := g.e.Group("/items", g.requireSharer)
	items.POST("", g.createItem)
	items.GET("", g.listItems)
	items.GET("/search", g.searchItems)
	items.GET("/:id", g.getItem)
	items.PATCH("/:id", g.updateItem)
	items.POST("/:id/comment", g.createComment)

	bookings := g.e.Group("/bookings", g.requireSharer)
	bookings.POST("", g.createBooking)
	bookings.GET("", g.listBookings)
	bookings.GET("/owner", g.listOwnerBookings)
	bookings.GET("/:id", g.getBooking)
	bookings.PATCH("/:id", g.decideBooking)
	bookings.PATCH("/:id/cancel", g.cancelBooking)

	requests := g.e.Group("/requests", g.requireSharer)
	requests.POST("", g.createRequest)
	requests.GET("", g.listOwnRequests)
	requests.GET("/all", g.listOtherRequests)
	requests.GET("/:id", g.getRequest)
}
