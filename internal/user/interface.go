package user

import (
	"context"

	"shareit/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	Create(ctx context.Context, input CreateInput) (model.User, error)
	Update(ctx context.Context, input UpdateInput) (model.User, error)
	Detail(ctx context.Context, id int64) (model.User, error)
	List(ctx context.Context) ([]model.User, error)
	Delete(ctx context.Context, id int64) error

	// Exists returns ErrUserNotFound when no user has the given id.
	Exists(ctx context.Context, id int64) error
}
