package http

import (
	"shareit/internal/model"
	"shareit/internal/request"
	"shareit/pkg/response"
)

type createReq struct {
	Description string `json:"description" binding:"required,max=1000"`
}

func (r createReq) toInput() request.CreateInput {
	return request.CreateInput{Description: r.Description}
}

type listReq struct {
	From int `form:"from,default=0"  binding:"min=0"`
	Size int `form:"size,default=10" binding:"min=1"`
}

func (r listReq) toInput() request.ListInput {
	return request.ListInput{From: r.From, Size: r.Size}
}

type answerItemResp struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Available   bool   `json:"available"`
	RequestID   *int64 `json:"requestId"`
	OwnerID     int64  `json:"ownerId"`
}

type requestResp struct {
	ID          int64             `json:"id"`
	Description string            `json:"description"`
	Created     response.DateTime `json:"created"`
	Items       []answerItemResp  `json:"items"`
}

func newRequestResp(rq model.Request) requestResp {
	items := make([]answerItemResp, len(rq.Items))
	for i, it := range rq.Items {
		items[i] = answerItemResp{
			ID:          it.ID,
			Name:        it.Name,
			Description: it.Description,
			Available:   it.Available,
			RequestID:   it.RequestID,
			OwnerID:     it.OwnerID,
		}
	}
	return requestResp{
		ID:          rq.ID,
		Description: rq.Description,
		Created:     response.DateTime(rq.Created),
		Items:       items,
	}
}

func newRequestListResp(rqs []model.Request) []requestResp {
	out := make([]requestResp, len(rqs))
	for i, rq := range rqs {
		out[i] = newRequestResp(rq)
	}
	return out
}
