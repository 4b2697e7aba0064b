package gateway

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
)

func (g *Gateway) createItem(c echo.Context) error {
	var req itemCreateReq
	if err := bindBody(c, &req); err != nil {
		return err
	}
	return g.forward(c, forwardReq{Method: http.MethodPost, Path: "/items", SharerID: sharerID(c), Body: req})
}

func (g *Gateway) updateItem(c echo.Context) error {
	id, err := bindID(c)
	if err != nil {
		return err
	}
	var req itemUpdateReq
	if err := bindBody(c, &req); err != nil {
		return err
	}
	return g.forward(c, forwardReq{Method: http.MethodPatch, Path: fmt.Sprintf("/items/%d", id), SharerID: sharerID(c), Body: req})
}

func (g *Gateway) getItem(c echo.Context) error {
	id, err := bindID(c)
	if err != nil {
		return err
	}
	return g.forward(c, forwardReq{Method: http.MethodGet, Path: fmt.Sprintf("/items/%d", id), SharerID: sharerID(c)})
}

func (g *Gateway) listItems(c echo.Context) error {
	q, err := bindPage(c)
	if err != nil {
		return err
	}
	return g.forward(c, forwardReq{Method: http.MethodGet, Path: "/items", Query: q, SharerID: sharerID(c)})
}

// searchItems forwards blank text too; the server answers it with an empty list.
func (g *Gateway) searchItems(c echo.Context) error {
	q, err := bindPage(c)
	if err != nil {
		return err
	}
	q.Set("text", c.QueryParam("text"))
	return g.forward(c, forwardReq{Method: http.MethodGet, Path: "/items/search", Query: q, SharerID: sharerID(c)})
}

func (g *Gateway) createComment(c echo.Context) error {
	id, err := bindID(c)
	if err != nil {
		return err
	}
	var req commentReq
	if err := bindBody(c, &req); err != nil {
		return err
	}
	return g.forward(c, forwardReq{Method: http.MethodPost, Path: fmt.Sprintf("/items/%d/comment", id), SharerID: sharerID(c), Body: req})
}
