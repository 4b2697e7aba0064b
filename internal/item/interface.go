package item

import (
	"context"

	"shareit/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	Create(ctx context.Context, sc model.Scope, input CreateInput) (model.Item, error)
	Update(ctx context.Context, sc model.Scope, input UpdateInput) (model.Item, error)
	Detail(ctx context.Context, sc model.Scope, id int64) (ItemView, error)
	ListByOwner(ctx context.Context, sc model.Scope, input ListInput) ([]ItemView, error)
	Search(ctx context.Context, sc model.Scope, input SearchInput) ([]model.Item, error)

	// Comments
	CreateComment(ctx context.Context, sc model.Scope, input CreateCommentInput) (model.Comment, error)
}
