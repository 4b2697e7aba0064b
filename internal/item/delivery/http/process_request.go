package http

import (
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"shareit/internal/item"
	pkgErrors "shareit/pkg/errors"
)

func (h *handler) processCreateReq(c *gin.Context) (createReq, error) {
	var req createReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, pkgErrors.NewBadRequest(err.Error())
	}
	if strings.TrimSpace(req.Name) == "" || strings.TrimSpace(req.Description) == "" {
		return req, pkgErrors.NewBadRequest("name and description must not be blank")
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

func (h *handler) processListReq(c *gin.Context) (listReq, error) {
	var req listReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return req, pkgErrors.NewBadRequest(err.Error())
	}
	return req, nil
}

func (h *handler) processSearchReq(c *gin.Context) (searchReq, error) {
	var req searchReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return req, pkgErrors.NewBadRequest(err.Error())
	}
	return req, nil
}

func (h *handler) processCommentReq(c *gin.Context) (item.CreateCommentInput, error) {
	id, err := h.processID(c)
	if err != nil {
		return item.CreateCommentInput{}, err
	}
	var req commentReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return item.CreateCommentInput{}, pkgErrors.NewBadRequest(err.Error())
	}
	if strings.TrimSpace(req.Text) == "" {
		return item.CreateCommentInput{}, pkgErrors.NewBadRequest("text must not be blank")
	}
	return item.CreateCommentInput{ItemID: id, Text: req.Text}, nil
}

func (h *handler) processID(c *gin.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, pkgErrors.NewBadRequest("invalid item id: " + c.Param("id"))
	}
	return id, nil
}
