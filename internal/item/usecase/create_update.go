package usecase

import (
	"context"

	"shareit/internal/item"
	repo "shareit/internal/item/repository"
	"shareit/internal/model"
	requestRepo "shareit/internal/request/repository"
)

// Create lists a new item owned by the caller, optionally answering a request.
func (uc *implUseCase) Create(ctx context.Context, sc model.Scope, input item.CreateInput) (model.Item, error) {
	if err := uc.userUC.Exists(ctx, sc.UserID); err != nil {
		return model.Item{}, err
	}

	if input.RequestID != nil {
		rq, err := uc.requestRepo.GetOneRequest(ctx, requestRepo.GetOneRequestOptions{ID: *input.RequestID})
		if err != nil {
			uc.l.Errorf(ctx, "uc.Create GetOneRequest: %v", err)
			return model.Item{}, err
		}
		if rq.ID == 0 {
			return model.Item{}, item.ErrRequestNotFound
		}
	}

	it, err := uc.repo.CreateItem(ctx, repo.CreateItemOptions{
		Name:        input.Name,
		Description: input.Description,
		Available:   input.Available,
		OwnerID:     sc.UserID,
		RequestID:   input.RequestID,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Create CreateItem: %v", err)
		return model.Item{}, err
	}

	uc.l.Infof(ctx, "item %d created by user %d", it.ID, sc.UserID)
	return it, nil
}

// Update applies a partial update. Only the owner may edit.
func (uc *implUseCase) Update(ctx context.Context, sc model.Scope, input item.UpdateInput) (model.Item, error) {
	existing, err := uc.getItem(ctx, input.ID)
	if err != nil {
		return model.Item{}, err
	}
	if !existing.IsOwnedBy(sc.UserID) {
		return model.Item{}, item.ErrNotOwner
	}

	opt := repo.UpdateItemOptions{
		ID:          existing.ID,
		Name:        existing.Name,
		Description: existing.Description,
		Available:   existing.Available,
	}
	if input.Name != nil {
		opt.Name = *input.Name
	}
	if input.Description != nil {
		opt.Description = *input.Description
	}
	if input.Available != nil {
		opt.Available = *input.Available
	}

	it, err := uc.repo.UpdateItem(ctx, opt)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Update UpdateItem: %v", err)
		return model.Item{}, err
	}
	if it.ID == 0 {
		return model.Item{}, item.ErrItemNotFound
	}
	return it, nil
}

func (uc *implUseCase) getItem(ctx context.Context, id int64) (model.Item, error) {
	it, err := uc.repo.GetOneItem(ctx, repo.GetOneItemOptions{ID: id})
	if err != nil {
		uc.l.Errorf(ctx, "uc.getItem GetOneItem: %v", err)
		return model.Item{}, err
	}
	if it.ID == 0 {
		return model.Item{}, item.ErrItemNotFound
	}
	return it, nil
}
