package usecase

import (
	"context"
	"strings"

	"shareit/internal/item"
	repo "shareit/internal/item/repository"
	"shareit/internal/model"
)

// Detail returns an item with its comments. Last and next bookings are shown to the owner only.
func (uc *implUseCase) Detail(ctx context.Context, sc model.Scope, id int64) (item.ItemView, error) {
	if err := uc.userUC.Exists(ctx, sc.UserID); err != nil {
		return item.ItemView{}, err
	}
	it, err := uc.getItem(ctx, id)
	if err != nil {
		return item.ItemView{}, err
	}

	views, err := uc.enrich(ctx, []model.Item{it}, it.IsOwnedBy(sc.UserID))
	if err != nil {
		return item.ItemView{}, err
	}
	return views[0], nil
}

// ListByOwner lists the caller's items by id with bookings and comments.
func (uc *implUseCase) ListByOwner(ctx context.Context, sc model.Scope, input item.ListInput) ([]item.ItemView, error) {
	if err := uc.userUC.Exists(ctx, sc.UserID); err != nil {
		return nil, err
	}

	items, err := uc.repo.ListItems(ctx, repo.ListItemsOptions{
		OwnerID: sc.UserID,
		Limit:   input.Size,
		Offset:  model.PageOffset(input.From, input.Size),
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.ListByOwner ListItems: %v", err)
		return nil, err
	}
	return uc.enrich(ctx, items, true)
}

// Search finds available items by name or description. Blank text finds nothing.
func (uc *implUseCase) Search(ctx context.Context, sc model.Scope, input item.SearchInput) ([]model.Item, error) {
	if err := uc.userUC.Exists(ctx, sc.UserID); err != nil {
		return nil, err
	}

	text := strings.TrimSpace(input.Text)
	if text == "" {
		return []model.Item{}, nil
	}

	items, err := uc.repo.ListItems(ctx, repo.ListItemsOptions{
		Text:          text,
		AvailableOnly: true,
		Limit:         input.Size,
		Offset:        model.PageOffset(input.From, input.Size),
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Search ListItems: %v", err)
		return nil, err
	}
	return items, nil
}
