package usecase

import (
	"context"

	"shareit/internal/model"
	"shareit/internal/request"
	repo "shareit/internal/request/repository"
)

// Create records a new request for an item the caller is looking for.
func (uc *implUseCase) Create(ctx context.Context, sc model.Scope, input request.CreateInput) (model.Request, error) {
	if err := uc.userUC.Exists(ctx, sc.UserID); err != nil {
		return model.Request{}, err
	}

	rq, err := uc.repo.CreateRequest(ctx, repo.CreateRequestOptions{
		Description: input.Description,
		RequestorID: sc.UserID,
		Created:     uc.now(),
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Create CreateRequest: %v", err)
		return model.Request{}, err
	}

	rq.Items = []model.Item{}
	uc.l.Infof(ctx, "request %d created by user %d", rq.ID, sc.UserID)
	return rq, nil
}
