package gateway

import (
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	pkgErrors "shareit/pkg/errors"
)

func (g *Gateway) createBooking(c echo.Context) error {
	var req bookingCreateReq
	if err := bindBody(c, &req); err != nil {
		return err
	}
	if err := g.checkPeriod(req); err != nil {
		return err
	}
	return g.forward(c, forwardReq{Method: http.MethodPost, Path: "/bookings", SharerID: sharerID(c), Body: req})
}

// checkPeriod: start not in the past, end in the future and after start.
// Timestamps carry whole seconds, so now is truncated before comparing start.
func (g *Gateway) checkPeriod(req bookingCreateReq) error {
	now := g.now()
	start, end := req.Start.Time(), req.End.Time()

	switch {
	case start.Before(now.Truncate(time.Second)):
		return pkgErrors.NewBadRequest("start must not be in the past")
	case !end.After(now):
		return pkgErrors.NewBadRequest("end must be in the future")
	case !end.After(start):
		return pkgErrors.NewBadRequest("end must be after start")
	}
	return nil
}

func (g *Gateway) getBooking(c echo.Context) error {
	id, err := bindID(c)
	if err != nil {
		return err
	}
	return g.forward(c, forwardReq{Method: http.MethodGet, Path: fmt.Sprintf("/bookings/%d", id), SharerID: sharerID(c)})
}

func (g *Gateway) decideBooking(c echo.Context) error {
	id, err := bindID(c)
	if err != nil {
		return err
	}
	approved, err := strconv.ParseBool(c.QueryParam("approved"))
	if err != nil {
		return pkgErrors.NewBadRequest("approved must be true or false")
	}
	return g.forward(c, forwardReq{
		Method:   http.MethodPatch,
		Path:     fmt.Sprintf("/bookings/%d", id),
		Query:    url.Values{"approved": {strconv.FormatBool(approved)}},
		SharerID: sharerID(c),
	})
}

func (g *Gateway) cancelBooking(c echo.Context) error {
	id, err := bindID(c)
	if err != nil {
		return err
	}
	return g.forward(c, forwardReq{Method: http.MethodPatch, Path: fmt.Sprintf("/bookings/%d/cancel", id), SharerID: sharerID(c)})
}

func (g *Gateway) listBookings(c echo.Context) error {
	q, err := bindStatePage(c)
	if err != nil {
		return err
	}
	return g.forward(c, forwardReq{Method: http.MethodGet, Path: "/bookings", Query: q, SharerID: sharerID(c)})
}

func (g *Gateway) listOwnerBookings(c echo.Context) error {
	q, err := bindStatePage(c)
	if err != nil {
		return err
	}
	return g.forward(c, forwardReq{Method: http.MethodGet, Path: "/bookings/owner", Query: q, SharerID: sharerID(c)})
}
