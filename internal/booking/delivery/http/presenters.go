package http

import (
	"shareit/internal/booking"
	"shareit/internal/model"
	"shareit/pkg/response"
)

// --- Request DTOs ---

type createReq struct {
	ItemID int64              `json:"itemId" binding:"required,gt=0"`
	Start  *response.DateTime `json:"start"  binding:"required"`
	End    *response.DateTime `json:"end"    binding:"required"`
}

func (r createReq) toInput() booking.CreateInput {
	return booking.CreateInput{
		ItemID: r.ItemID,
		Start:  r.Start.Time(),
		End:    r.End.Time(),
	}
}

type listReq struct {
	State string `form:"state,default=ALL"`
	From  int    `form:"from,default=0"  binding:"min=0"`
	Size  int    `form:"size,default=10" binding:"min=1"`
}

func (r listReq) toInput() booking.ListInput {
	return booking.ListInput{State: r.State, From: r.From, Size: r.Size}
}

// --- Response DTOs ---

type itemResp struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Available   bool   `json:"available"`
	RequestID   *int64 `json:"requestId,omitempty"`
}

type bookerResp struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

type bookingResp struct {
	ID     int64             `json:"id"`
	Start  response.DateTime `json:"start"`
	End    response.DateTime `json:"end"`
	Status string            `json:"status"`
	Item   itemResp          `json:"item"`
	Booker bookerResp        `json:"booker"`
}

func newBookingResp(b model.Booking) bookingResp {
	return bookingResp{
		ID:     b.ID,
		Start:  response.DateTime(b.Start),
		End:    response.DateTime(b.End),
		Status: string(b.Status),
		Item: itemResp{
			ID:          b.Item.ID,
			Name:        b.Item.Name,
			Description: b.Item.Description,
			Available:   b.Item.Available,
			RequestID:   b.Item.RequestID,
		},
		Booker: bookerResp{
			ID:    b.Booker.ID,
			Name:  b.Booker.Name,
			Email: b.Booker.Email,
		},
	}
}

func newBookingListResp(bookings []model.Booking) []bookingResp {
	out := make([]bookingResp, len(bookings))
	for i, b := range bookings {
		out[i] = newBookingResp(b)
	}
	return out
}
