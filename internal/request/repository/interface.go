package repository

import (
	"context"

	"shareit/internal/model"
)

// Repository is the data store of item requests. Items are not loaded here.
type Repository interface {
	CreateRequest(ctx context.Context, opt CreateRequestOptions) (model.Request, error)
	GetOneRequest(ctx context.Context, opt GetOneRequestOptions) (model.Request, error)
	ListRequests(ctx context.Context, opt ListRequestsOptions) ([]model.Request, error)
}
