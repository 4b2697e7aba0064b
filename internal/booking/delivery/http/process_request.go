package http

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"shareit/internal/booking"
	pkgErrors "shareit/pkg/errors"
)

func (h *handler) processCreateReq(c *gin.Context) (createReq, error) {
	var req createReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, pkgErrors.NewBadRequest(err.Error())
	}
	return req, nil
}

func (h *handler) processDecideReq(c *gin.Context) (booking.DecideInput, error) {
	id, err := h.processID(c)
	if err != nil {
		return booking.DecideInput{}, err
	}
	raw, ok := c.GetQuery("approved")
	if !ok {
		return booking.DecideInput{}, pkgErrors.NewBadRequest("approved is required")
	}
	approved, err := strconv.ParseBool(raw)
	if err != nil {
		return booking.DecideInput{}, pkgErrors.NewBadRequest("approved must be true or false")
	}
	return booking.DecideInput{ID: id, Approved: approved}, nil
}

func (h *handler) processListReq(c *gin.Context) (listReq, error) {
	var req listReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return req, pkgErrors.NewBadRequest(err.Error())
	}
	return req, nil
}

func (h *handler) processID(c *gin.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, pkgErrors.NewBadRequest("invalid booking id: " + c.Param("id"))
	}
	return id, nil
}
