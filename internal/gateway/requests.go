package gateway

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
)

func (g *Gateway) createRequest(c echo.Context) error {
	var req requestCreateReq
	if err := bindBody(c, &req); err != nil {
		return err
	}
	return g.forward(c, forwardReq{Method: http.MethodPost, Path: "/requests", SharerID: sharerID(c), Body: req})
}

func (g *Gateway) listOwnRequests(c echo.Context) error {
	return g.forward(c, forwardReq{Method: http.MethodGet, Path: "/requests", SharerID: sharerID(c)})
}

func (g *Gateway) listOtherRequests(c echo.Context) error {
	q, err := bindPage(c)
	if err != nil {
		return err
	}
	return g.forward(c, forwardReq{Method: http.MethodGet, Path: "/requests/all", Query: q, SharerID: sharerID(c)})
}

func (g *Gateway) getRequest(c echo.Context) error {
	id, err := bindID(c)
	if err != nil {
		return err
	}
	return g.forward(c, forwardReq{Method: http.MethodGet, Path: fmt.Sprintf("/requests/%d", id), SharerID: sharerID(c)})
}
