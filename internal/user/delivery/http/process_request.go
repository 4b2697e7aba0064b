package http

import (
	"strconv"

	"github.com/gin-gonic/gin"

	pkgErrors "shareit/pkg/errors"
)

func (h *handler) processCreateReq(c *gin.Context) (createReq, error) {
	var req createReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, pkgErrors.NewBadRequest(err.Error())
	}
	return req, nil
}

func (h *handler) processUpdateReq(c *gin.Context) (updateReq, error) {
	var req updateReq
	id, err := h.processID(c)
	if err != nil {
		return req, err
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, pkgErrors.NewBadRequest(err.Error())
	}
	req.ID = id
	return req, nil
}

func (h *handler) processID(c *gin.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, pkgErrors.NewBadRequest("invalid user id: " + c.Param("id"))
	}
	return id, nil
}
