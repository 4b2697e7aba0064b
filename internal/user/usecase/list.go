package usecase

import (
	"context"

	"shareit/internal/model"
	repo "shareit/internal/user/repository"
)

func (uc *implUseCase) List(ctx context.Context) ([]model.User, error) {
	users, err := uc.repo.ListUsers(ctx, repo.ListUsersOptions{})
	if err != nil {
		uc.l.Errorf(ctx, "uc.List ListUsers: %v", err)
		return nil, err
	}
	return users, nil
}
