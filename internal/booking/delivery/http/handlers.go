package http

import (
	"github.com/gin-gonic/gin"

	"shareit/internal/middleware"
	"shareit/pkg/response"
)

// Create godoc
// @Summary     Book an item
// @Tags        Bookings
// @Accept      json
// @Produce     json
// @Param       X-Sharer-User-Id header int       true "Caller ID"
// @Param       body             body   createReq true "Booking period"
// @Success     201 {object} bookingResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /bookings [POST]
func (h *handler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processCreateReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	b, err := h.uc.Create(ctx, middleware.GetScope(c), req.toInput())
	if err != nil {
		h.l.Warnf(ctx, "uc.Create: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.Created(c, newBookingResp(b))
}

// Decide godoc
// @Summary     Approve or reject a booking
// @Tags        Bookings
// @Produce     json
// @Param       X-Sharer-User-Id header int  true "Caller ID"
// @Param       id               path   int  true "Booking ID"
// @Param       approved         query  bool true "Decision"
// @Success     200 {object} bookingResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     403 {object} response.Resp "Forbidden"
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /bookings/{id} [PATCH]
func (h *handler) Decide(c *gin.Context) {
	ctx := c.Request.Context()

	input, err := h.processDecideReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	b, err := h.uc.Decide(ctx, middleware.GetScope(c), input)
	if err != nil {
		h.l.Warnf(ctx, "uc.Decide: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newBookingResp(b))
}

// Cancel godoc
// @Summary     Cancel a booking
// @Description The booker withdraws a waiting or approved booking that has not started.
// @Tags        Bookings
// @Produce     json
// @Param       X-Sharer-User-Id header int true "Caller ID"
// @Param       id               path   int true "Booking ID"
// @Success     200 {object} bookingResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     403 {object} response.Resp "Forbidden"
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /bookings/{id}/cancel [PATCH]
func (h *handler) Cancel(c *gin.Context) {
	ctx := c.Request.Context()

	id, err := h.processID(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	b, err := h.uc.Cancel(ctx, middleware.GetScope(c), id)
	if err != nil {
		h.l.Warnf(ctx, "uc.Cancel: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newBookingResp(b))
}

// Detail godoc
// @Summary     Get a booking
// @Tags        Bookings
// @Produce     json
// @Param       X-Sharer-User-Id header int true "Caller ID"
// @Param       id               path   int true "Booking ID"
// @Success     200 {object} bookingResp
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /bookings/{id} [GET]
func (h *handler) Detail(c *gin.Context) {
	ctx := c.Request.Context()

	id, err := h.processID(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	b, err := h.uc.Detail(ctx, middleware.GetScope(c), id)
	if err != nil {
		h.l.Warnf(ctx, "uc.Detail: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newBookingResp(b))
}

// ListByBooker godoc
// @Summary     List the caller's bookings
// @Tags        Bookings
// @Produce     json
// @Param       X-Sharer-User-Id header int    true  "Caller ID"
// @Param       state            query  string false "ALL, CURRENT, PAST, FUTURE, WAITING, REJECTED"
// @Param       from             query  int    false "Offset (default 0)"
// @Param       size             query  int    false "Page size (default 10)"
// @Success     200 {array}  bookingResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /bookings [GET]
func (h *handler) ListByBooker(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processListReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	bookings, err := h.uc.ListByBooker(ctx, middleware.GetScope(c), req.toInput())
	if err != nil {
		h.l.Warnf(ctx, "uc.ListByBooker: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newBookingListResp(bookings))
}

// ListByOwner godoc
// @Summary     List bookings of the caller's items
// @Tags        Bookings
// @Produce     json
// @Param       X-Sharer-User-Id header int    true  "Caller ID"
// @Param       state            query  string false "ALL, CURRENT, PAST, FUTURE, WAITING, REJECTED"
// @Param       from             query  int    false "Offset (default 0)"
// @Param       size             query  int    false "Page size (default 10)"
// @Success     200 {array}  bookingResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /bookings/owner [GET]
func (h *handler) ListByOwner(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processListReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	bookings, err := h.uc.ListByOwner(ctx, middleware.GetScope(c), req.toInput())
	if err != nil {
		h.l.Warnf(ctx, "uc.ListByOwner: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newBookingListResp(bookings))
}
