package gateway

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"shareit/internal/model"
	pkgErrors "shareit/pkg/errors"
	"shareit/pkg/log"
	"shareit/pkg/response"
)

const sharerKey = "shareit.sharer"

func (g *Gateway) registerMiddlewares() {
	g.e.Use(middleware.Recover())

	g.e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: func() string { return uuid.NewString() },
		RequestIDHandler: func(c echo.Context, id string) {
			c.SetRequest(c.Request().WithContext(log.WithRequestID(c.Request().Context(), id)))
		},
	}))

	g.e.Use(g.accessLog())
}

func (g *Gateway) accessLog() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			if err := next(c); err != nil {
				c.Error(err)
			}

			g.l.Infof(c.Request().Context(), "%s %s %d %s",
				c.Request().Method, c.Request().URL.Path, c.Response().Status, time.Since(start))
			return nil
		}
	}
}

// requireSharer rejects calls without a positive X-Sharer-User-Id.
func (g *Gateway) requireSharer(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		raw := c.Request().Header.Get(model.SharerUserIDHeader)
		if raw == "" {
			return pkgErrors.NewBadRequest("missing " + model.SharerUserIDHeader + " header")
		}
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || id <= 0 {
			return pkgErrors.NewBadRequest("invalid " + model.SharerUserIDHeader + " header: " + raw)
		}

		c.Set(sharerKey, id)
		c.SetRequest(c.Request().WithContext(log.WithUserID(c.Request().Context(), id)))
		return next(c)
	}
}

func sharerID(c echo.Context) int64 {
	id, _ := c.Get(sharerKey).(int64)
	return id
}

// errorHandler writes every error as {"error": "..."} like the server does.
func (g *Gateway) errorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	code := http.StatusInternalServerError
	msg := err.Error()

	var httpErr *pkgErrors.HTTPError
	var echoErr *echo.HTTPError
	switch {
	case errors.As(err, &httpErr):
		code, msg = httpErr.Code, httpErr.Message
	case errors.As(err, &echoErr):
		code, msg = echoErr.Code, fmt.Sprint(echoErr.Message)
	}

	ctx := c.Request().Context()
	if code >= http.StatusInternalServerError {
		g.l.Errorf(ctx, "gateway %s %s: %v", c.Request().Method, c.Request().URL.Path, err)
	}
	if writeErr := c.JSON(code, response.Resp{Error: msg}); writeErr != nil {
		g.l.Warnf(ctx, "gateway.errorHandler: %v", writeErr)
	}
}
