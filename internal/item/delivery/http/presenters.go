package http

import (
	"shareit/internal/item"
	"shareit/internal/model"
	"shareit/pkg/response"
)

// --- Request DTOs ---

type createReq struct {
	Name        string `json:"name"        binding:"required,max=255"`
	Description string `json:"description" binding:"required,max=1000"`
	Available   *bool  `json:"available"   binding:"required"`
	RequestID   *int64 `json:"requestId"   binding:"omitempty,gt=0"`
}

func (r createReq) toInput() item.CreateInput {
	return item.CreateInput{
		Name:        r.Name,
		Description: r.Description,
		Available:   *r.Available,
		RequestID:   r.RequestID,
	}
}

type updateReq struct {
	ID          int64   `json:"-"`
	Name        *string `json:"name"        binding:"omitempty,min=1,max=255"`
	Description *string `json:"description" binding:"omitempty,min=1,max=1000"`
	Available   *bool   `json:"available"`
}

func (r updateReq) toInput() item.UpdateInput {
	return item.UpdateInput{
		ID:          r.ID,
		Name:        r.Name,
		Description: r.Description,
		Available:   r.Available,
	}
}

type listReq struct {
	From int `form:"from,default=0"  binding:"min=0"`
	Size int `form:"size,default=10" binding:"min=1"`
}

func (r listReq) toInput() item.ListInput {
	return item.ListInput{From: r.From, Size: r.Size}
}

type searchReq struct {
	Text string `form:"text"`
	From int    `form:"from,default=0"  binding:"min=0"`
	Size int    `form:"size,default=10" binding:"min=1"`
}

func (r searchReq) toInput() item.SearchInput {
	return item.SearchInput{Text: r.Text, From: r.From, Size: r.Size}
}

type commentReq struct {
	Text string `json:"text" binding:"required,max=1000"`
}

// --- Response DTOs ---

type itemResp struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Available   bool   `json:"available"`
	RequestID   *int64 `json:"requestId"`
}

func newItemResp(it model.Item) itemResp {
	return itemResp{
		ID:          it.ID,
		Name:        it.Name,
		Description: it.Description,
		Available:   it.Available,
		RequestID:   it.RequestID,
	}
}

func newItemListResp(items []model.Item) []itemResp {
	out := make([]itemResp, len(items))
	for i, it := range items {
		out[i] = newItemResp(it)
	}
	return out
}

type shortBookingResp struct {
	ID       int64             `json:"id"`
	BookerID int64             `json:"bookerId"`
	Start    response.DateTime `json:"start"`
	End      response.DateTime `json:"end"`
}

func newShortBookingResp(b *model.Booking) *shortBookingResp {
	if b == nil {
		return nil
	}
	return &shortBookingResp{
		ID:       b.ID,
		BookerID: b.BookerID,
		Start:    response.DateTime(b.Start),
		End:      response.DateTime(b.End),
	}
}

type commentResp struct {
	ID         int64             `json:"id"`
	Text       string            `json:"text"`
	AuthorName string            `json:"authorName"`
	Created    response.DateTime `json:"created"`
}

func newCommentResp(cm model.Comment) commentResp {
	return commentResp{
		ID:         cm.ID,
		Text:       cm.Text,
		AuthorName: cm.AuthorName,
		Created:    response.DateTime(cm.Created),
	}
}

type itemViewResp struct {
	itemResp
	LastBooking *shortBookingResp `json:"lastBooking"`
	NextBooking *shortBookingResp `json:"nextBooking"`
	Comments    []commentResp     `json:"comments"`
}

func newItemViewResp(v item.ItemView) itemViewResp {
	comments := make([]commentResp, len(v.Comments))
	for i, cm := range v.Comments {
		comments[i] = newCommentResp(cm)
	}
	return itemViewResp{
		itemResp:    newItemResp(v.Item),
		LastBooking: newShortBookingResp(v.LastBooking),
		NextBooking: newShortBookingResp(v.NextBooking),
		Comments:    comments,
	}
}

func newItemViewListResp(views []item.ItemView) []itemViewResp {
	out := make([]itemViewResp, len(views))
	for i, v := range views {
		out[i] = newItemViewResp(v)
	}
	return out
}
