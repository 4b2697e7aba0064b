package http

import (
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	pkgErrors "shareit/pkg/errors"
)

func (h *handler) processCreateReq(c *gin.Context) (createReq, error) {
	var req createReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, pkgErrors.NewBadRequest(err.Error())
	}
	if strings.TrimSpace(req.Description) == "" {
		return req, pkgErrors.NewBadRequest("description must not be blank")
	}
	return req, nil
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
		return 0, pkgErrors.NewBadRequest("invalid request id: " + c.Param("id"))
	}
	return id, nil
}
