package request

import (
	"context"

	"shareit/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	Create(ctx context.Context, sc model.Scope, input CreateInput) (model.Request, error)
	ListOwn(ctx context.Context, sc model.Scope) ([]model.Request, error)
	ListOthers(ctx context.Context, sc model.Scope, input ListInput) ([]model.Request, error)
	Detail(ctx context.Context, sc model.Scope, id int64) (model.Request, error)
}
