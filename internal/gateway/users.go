package gateway

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
)

// User routes need no X-Sharer-User-Id.

func (g *Gateway) createUser(c echo.Context) error {
	var req userCreateReq
	if err := bindBody(c, &req); err != nil {
		return err
	}
	return g.forward(c, forwardReq{Method: http.MethodPost, Path: "/users", Body: req})
}

func (g *Gateway) listUsers(c echo.Context) error {
	return g.forward(c, forwardReq{Method: http.MethodGet, Path: "/users"})
}

func (g *Gateway) getUser(c echo.Context) error {
	id, err := bindID(c)
	if err != nil {
		return err
	}
	return g.forward(c, forwardReq{Method: http.MethodGet, Path: fmt.Sprintf("/users/%d", id)})
}

func (g *Gateway) updateUser(c echo.Context) error {
	id, err := bindID(c)
	if err != nil {
		return err
	}
	var req userUpdateReq
	if err := bindBody(c, &req); err != nil {
		return err
	}
	return g.forward(c, forwardReq{Method: http.MethodPatch, Path: fmt.Sprintf("/users/%d", id), Body: req})
}

func (g *Gateway) deleteUser(c echo.Context) error {
	id, err := bindID(c)
	if err != nil {
		return err
	}
	return g.forward(c, forwardReq{Method: http.MethodDelete, Path: fmt.Sprintf("/users/%d", id)})
}
