package gateway

import (
	"net/url"
	"strconv"

	"github.com/labstack/echo/v4"

	"shareit/internal/model"
	pkgErrors "shareit/pkg/errors"
)

const (
	defaultFrom = 0
	defaultSize = 10
)

// bindBody decodes and validates the JSON body into req.
func bindBody(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		return pkgErrors.NewBadRequest("invalid json body")
	}
	return c.Validate(req)
}

func bindID(c echo.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, pkgErrors.NewBadRequest("invalid id: " + c.Param("id"))
	}
	return id, nil
}

// bindPage checks from >= 0 and size >= 1, filling the defaults.
func bindPage(c echo.Context) (url.Values, error) {
	from, size := defaultFrom, defaultSize
	if err := echo.QueryParamsBinder(c).Int("from", &from).Int("size", &size).BindError(); err != nil {
		return nil, pkgErrors.NewBadRequest("from and size must be integers")
	}
	if from < 0 {
		return nil, pkgErrors.NewBadRequest("from must not be negative")
	}
	if size < 1 {
		return nil, pkgErrors.NewBadRequest("size must be positive")
	}
	return url.Values{
		"from": {strconv.Itoa(from)},
		"size": {strconv.Itoa(size)},
	}, nil
}

// bindStatePage is bindPage plus a booking state (default ALL).
func bindStatePage(c echo.Context) (url.Values, error) {
	q, err := bindPage(c)
	if err != nil {
		return nil, err
	}
	state, err := model.ParseBookingState(c.QueryParam("state"))
	if err != nil {
		return nil, pkgErrors.NewBadRequest(err.Error())
	}
	q.Set("state", string(state))
	return q, nil
}
