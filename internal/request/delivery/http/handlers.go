package http

import (
	"github.com/gin-gonic/gin"

	"shareit/internal/middleware"
	"shareit/pkg/response"
)

// Create godoc
// @Summary     Ask for an item
// @Tags        Requests
// @Accept      json
// @Produce     json
// @Param       X-Sharer-User-Id header int       true "Requestor ID"
// @Param       body             body   createReq true "Request data"
// @Success     201 {object} requestResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "User not found"
// @Router      /requests [POST]
func (h *handler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processCreateReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	rq, err := h.uc.Create(ctx, middleware.GetScope(c), req.toInput())
	if err != nil {
		h.l.Warnf(ctx, "uc.Create: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.Created(c, newRequestResp(rq))
}

// ListOwn godoc
// @Summary     List own requests
// @Description Newest first, each with the items created in response.
// @Tags        Requests
// @Produce     json
// @Param       X-Sharer-User-Id header int true "Requestor ID"
// @Success     200 {array} requestResp
// @Failure     404 {object} response.Resp "User not found"
// @Router      /requests [GET]
func (h *handler) ListOwn(c *gin.Context) {
	ctx := c.Request.Context()

	rqs, err := h.uc.ListOwn(ctx, middleware.GetScope(c))
	if err != nil {
		h.l.Warnf(ctx, "uc.ListOwn: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newRequestListResp(rqs))
}

// ListOthers godoc
// @Summary     List other users' requests
// @Tags        Requests
// @Produce     json
// @Param       X-Sharer-User-Id header int true  "Caller ID"
// @Param       from             query  int false "Offset" default(0)
// @Param       size             query  int false "Page size" default(10)
// @Success     200 {array} requestResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /requests/all [GET]
func (h *handler) ListOthers(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processListReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	rqs, err := h.uc.ListOthers(ctx, middleware.GetScope(c), req.toInput())
	if err != nil {
		h.l.Warnf(ctx, "uc.ListOthers: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newRequestListResp(rqs))
}

// Detail godoc
// @Summary     Get a request
// @Tags        Requests
// @Produce     json
// @Param       X-Sharer-User-Id header int true "Caller ID"
// @Param       id               path   int true "Request ID"
// @Success     200 {object} requestResp
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /requests/{id} [GET]
func (h *handler) Detail(c *gin.Context) {
	ctx := c.Request.Context()

	id, err := h.processID(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	rq, err := h.uc.Detail(ctx, middleware.GetScope(c), id)
	if err != nil {
		h.l.Warnf(ctx, "uc.Detail: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newRequestResp(rq))
}
