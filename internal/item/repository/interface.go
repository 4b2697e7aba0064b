package repository

import (
	"context"

	"shareit/internal/model"
)

// Repository is the data store of the item domain.
type Repository interface {
	ItemRepository
	CommentRepository
}

type ItemRepository interface {
	CreateItem(ctx context.Context, opt CreateItemOptions) (model.Item, error)
	GetOneItem(ctx context.Context, opt GetOneItemOptions) (model.Item, error)
	ListItems(ctx context.Context, opt ListItemsOptions) ([]model.Item, error)
	UpdateItem(ctx context.Context, opt UpdateItemOptions) (model.Item, error)
}

type CommentRepository interface {
	CreateComment(ctx context.Context, opt CreateCommentOptions) (model.Comment, error)
	ListComments(ctx context.Context, opt ListCommentsOptions) ([]model.Comment, error)
}
