package gateway

import "shareit/pkg/response"

// Bodies are re-encoded from these structs, so omitempty keeps absent fields absent
// for partial updates.

type userCreateReq struct {
	Name  string `json:"name"  validate:"notblank,max=255"`
	Email string `json:"email" validate:"required,email,max=512"`
}

type userUpdateReq struct {
	Name  *string `json:"name,omitempty"  validate:"omitempty,notblank,max=255"`
	Email *string `json:"email,omitempty" validate:"omitempty,email,max=512"`
}

type itemCreateReq struct {
	Name        string `json:"name"                validate:"notblank,max=255"`
	Description string `json:"description"         validate:"notblank,max=1000"`
	Available   *bool  `json:"available"           validate:"required"`
	RequestID   *int64 `json:"requestId,omitempty" validate:"omitempty,gt=0"`
}

type itemUpdateReq struct {
	Name        *string `json:"name,omitempty"        validate:"omitempty,notblank,max=255"`
	Description *string `json:"description,omitempty" validate:"omitempty,notblank,max=1000"`
	Available   *bool   `json:"available,omitempty"`
}

type commentReq struct {
	Text string `json:"text" validate:"notblank,max=1000"`
}

type bookingCreateReq struct {
	ItemID int64              `json:"itemId" validate:"gt=0"`
	Start  *response.DateTime `json:"start"  validate:"required"`
	End    *response.DateTime `json:"end"    validate:"required"`
}

type requestCreateReq struct {
	Description string `json:"description" validate:"notblank,max=1000"`
}
