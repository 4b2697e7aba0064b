package http

import (
	"github.com/gin-gonic/gin"

	"shareit/internal/middleware"
	"shareit/pkg/response"
)

// Create godoc
// @Summary     List a new item
// @Tags        Items
// @Accept      json
// @Produce     json
// @Param       X-Sharer-User-Id header int       true "Owner ID"
// @Param       body             body   createReq true "Item data"
// @Success     201 {object} itemResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Owner or request not found"
// @Router      /items [POST]
func (h *handler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processCreateReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	it, err := h.uc.Create(ctx, middleware.GetScope(c), req.toInput())
	if err != nil {
		h.l.Warnf(ctx, "uc.Create: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.Created(c, newItemResp(it))
}

// Update godoc
// @Summary     Edit an item
// @Description Partial update, owner only.
// @Tags        Items
// @Accept      json
// @Produce     json
// @Param       X-Sharer-User-Id header int       true "Owner ID"
// @Param       id               path   int       true "Item ID"
// @Param       body             body   updateReq true "Fields to update"
// @Success     200 {object} itemResp
// @Failure     403 {object} response.Resp "Forbidden"
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /items/{id} [PATCH]
func (h *handler) Update(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processUpdateReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	it, err := h.uc.Update(ctx, middleware.GetScope(c), req.toInput())
	if err != nil {
		h.l.Warnf(ctx, "uc.Update: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newItemResp(it))
}

// Detail godoc
// @Summary     Get an item
// @Description Comments are always included; last and next bookings only for the owner.
// @Tags        Items
// @Produce     json
// @Param       X-Sharer-User-Id header int true "Caller ID"
// @Param       id               path   int true "Item ID"
// @Success     200 {object} itemViewResp
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /items/{id} [GET]
func (h *handler) Detail(c *gin.Context) {
	ctx := c.Request.Context()

	id, err := h.processID(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	v, err := h.uc.Detail(ctx, middleware.GetScope(c), id)
	if err != nil {
		h.l.Warnf(ctx, "uc.Detail: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newItemViewResp(v))
}

// ListByOwner godoc
// @Summary     List the caller's items
// @Tags        Items
// @Produce     json
// @Param       X-Sharer-User-Id header int true  "Owner ID"
// @Param       from             query  int false "Offset (default 0)"
// @Param       size             query  int false "Page size (default 10)"
// @Success     200 {array}  itemViewResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /items [GET]
func (h *handler) ListByOwner(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processListReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	views, err := h.uc.ListByOwner(ctx, middleware.GetScope(c), req.toInput())
	if err != nil {
		h.l.Warnf(ctx, "uc.ListByOwner: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newItemViewListResp(views))
}

// Search godoc
// @Summary     Search available items
// @Tags        Items
// @Produce     json
// @Param       X-Sharer-User-Id header int    true  "Caller ID"
// @Param       text             query  string false "Substring of name or description"
// @Param       from             query  int    false "Offset (default 0)"
// @Param       size             query  int    false "Page size (default 10)"
// @Success     200 {array}  itemResp
// @Router      /items/search [GET]
func (h *handler) Search(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processSearchReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	items, err := h.uc.Search(ctx, middleware.GetScope(c), req.toInput())
	if err != nil {
		h.l.Warnf(ctx, "uc.Search: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newItemListResp(items))
}

// CreateComment godoc
// @Summary     Comment on an item
// @Description Allowed only after an approved booking of the item has ended.
// @Tags        Items
// @Accept      json
// @Produce     json
// @Param       X-Sharer-User-Id header int        true "Author ID"
// @Param       id               path   int        true "Item ID"
// @Param       body             body   commentReq true "Comment"
// @Success     201 {object} commentResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /items/{id}/comment [POST]
func (h *handler) CreateComment(c *gin.Context) {
	ctx := c.Request.Context()

	input, err := h.processCommentReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	cm, err := h.uc.CreateComment(ctx, middleware.GetScope(c), input)
	if err != nil {
		h.l.Warnf(ctx, "uc.CreateComment: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.Created(c, newCommentResp(cm))
}
