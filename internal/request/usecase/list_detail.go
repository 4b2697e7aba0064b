package usecase

import (
	"context"

	"shareit/internal/model"
	"shareit/internal/request"
	repo "shareit/internal/request/repository"
)

// ListOwn returns every request of the caller, newest first, with answering items.
func (uc *implUseCase) ListOwn(ctx context.Context, sc model.Scope) ([]model.Request, error) {
	if err := uc.userUC.Exists(ctx, sc.UserID); err != nil {
		return nil, err
	}

	rqs, err := uc.repo.ListRequests(ctx, repo.ListRequestsOptions{RequestorID: sc.UserID})
	if err != nil {
		uc.l.Errorf(ctx, "uc.ListOwn ListRequests: %v", err)
		return nil, err
	}
	return uc.attachItems(ctx, rqs)
}

// ListOthers pages through requests made by everyone except the caller.
func (uc *implUseCase) ListOthers(ctx context.Context, sc model.Scope, input request.ListInput) ([]model.Request, error) {
	if err := uc.userUC.Exists(ctx, sc.UserID); err != nil {
		return nil, err
	}

	rqs, err := uc.repo.ListRequests(ctx, repo.ListRequestsOptions{
		ExcludeRequestorID: sc.UserID,
		Limit:              input.Size,
		Offset:             input.From,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.ListOthers ListRequests: %v", err)
		return nil, err
	}
	return uc.attachItems(ctx, rqs)
}

// Detail returns one request with its answering items. Any existing user may view it.
func (uc *implUseCase) Detail(ctx context.Context, sc model.Scope, id int64) (model.Request, error) {
	if err := uc.userUC.Exists(ctx, sc.UserID); err != nil {
		return model.Request{}, err
	}

	rq, err := uc.repo.GetOneRequest(ctx, repo.GetOneRequestOptions{ID: id})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Detail GetOneRequest: %v", err)
		return model.Request{}, err
	}
	if rq.ID == 0 {
		return model.Request{}, request.ErrRequestNotFound
	}

	out, err := uc.attachItems(ctx, []model.Request{rq})
	if err != nil {
		return model.Request{}, err
	}
	return out[0], nil
}
