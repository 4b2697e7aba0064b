package http

import (
	"github.com/gin-gonic/gin"

	"shareit/pkg/response"
)

// Create godoc
// @Summary     Create a user
// @Tags        Users
// @Accept      json
// @Produce     json
// @Param       body body createReq true "User data"
// @Success     201  {object} userResp
// @Failure     400  {object} response.Resp "Bad Request"
// @Failure     409  {object} response.Resp "Conflict - email already in use"
// @Failure     500  {object} response.Resp "Internal Server Error"
// @Router      /users [POST]
func (h *handler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processCreateReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	u, err := h.uc.Create(ctx, req.toInput())
	if err != nil {
		h.l.Warnf(ctx, "uc.Create: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.Created(c, newUserResp(u))
}

// List godoc
// @Summary     List users
// @Tags        Users
// @Produce     json
// @Success     200 {array}  userResp
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /users [GET]
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	users, err := h.uc.List(ctx)
	if err != nil {
		h.l.Errorf(ctx, "uc.List: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newUserListResp(users))
}

// Detail godoc
// @Summary     Get a user
// @Tags        Users
// @Produce     json
// @Param       id path int true "User ID"
// @Success     200 {object} userResp
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /users/{id} [GET]
func (h *handler) Detail(c *gin.Context) {
	ctx := c.Request.Context()

	id, err := h.processID(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	u, err := h.uc.Detail(ctx, id)
	if err != nil {
		h.l.Warnf(ctx, "uc.Detail: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newUserResp(u))
}

// Update godoc
// @Summary     Update a user
// @Description Partial update: omitted fields keep their value.
// @Tags        Users
// @Accept      json
// @Produce     json
// @Param       id   path int       true "User ID"
// @Param       body body updateReq true "Fields to update"
// @Success     200 {object} userResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     409 {object} response.Resp "Conflict - email already in use"
// @Router      /users/{id} [PATCH]
func (h *handler) Update(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processUpdateReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	u, err := h.uc.Update(ctx, req.toInput())
	if err != nil {
		h.l.Warnf(ctx, "uc.Update: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newUserResp(u))
}

// Delete godoc
// @Summary     Delete a user
// @Tags        Users
// @Param       id path int true "User ID"
// @Success     200
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /users/{id} [DELETE]
func (h *handler) Delete(c *gin.Context) {
	ctx := c.Request.Context()

	id, err := h.processID(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	if err := h.uc.Delete(ctx, id); err != nil {
		h.l.Warnf(ctx, "uc.Delete: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.Empty(c)
}
