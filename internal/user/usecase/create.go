package usecase

import (
	"context"
	"errors"

	"shareit/internal/model"
	"shareit/internal/user"
	repo "shareit/internal/user/repository"
)

// Create registers a user. Emails are unique.
func (uc *implUseCase) Create(ctx context.Context, input user.CreateInput) (model.User, error) {
	existing, err := uc.repo.GetOneUser(ctx, repo.GetOneUserOptions{Email: input.Email})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Create GetOneUser: %v", err)
		return model.User{}, err
	}
	if existing.ID != 0 {
		return model.User{}, user.ErrDuplicateEmail
	}

	u, err := uc.repo.CreateUser(ctx, repo.CreateUserOptions{
		Name:  input.Name,
		Email: input.Email,
	})
	if err != nil {
		// lost a race with a concurrent insert
		if errors.Is(err, repo.ErrUniqueViolation) {
			return model.User{}, user.ErrDuplicateEmail
		}
		uc.l.Errorf(ctx, "uc.Create CreateUser: %v", err)
		return model.User{}, err
	}

	uc.l.Infof(ctx, "user %d created", u.ID)
	return u, nil
}
