package usecase

import (
	"context"
	"errors"

	"shareit/internal/model"
	"shareit/internal/user"
	repo "shareit/internal/user/repository"
)

func (uc *implUseCase) Detail(ctx context.Context, id int64) (model.User, error) {
	u, err := uc.repo.GetOneUser(ctx, repo.GetOneUserOptions{ID: id})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Detail GetOneUser: %v", err)
		return model.User{}, err
	}
	if u.ID == 0 {
		return model.User{}, user.ErrUserNotFound
	}
	return u, nil
}

func (uc *implUseCase) Exists(ctx context.Context, id int64) error {
	_, err := uc.Detail(ctx, id)
	return err
}

// Update applies a partial update. Changing the email to one owned by another user fails.
func (uc *implUseCase) Update(ctx context.Context, input user.UpdateInput) (model.User, error) {
	existing, err := uc.Detail(ctx, input.ID)
	if err != nil {
		return model.User{}, err
	}

	name := existing.Name
	if input.Name != nil {
		name = *input.Name
	}
	email := existing.Email
	if input.Email != nil && *input.Email != existing.Email {
		other, err := uc.repo.GetOneUser(ctx, repo.GetOneUserOptions{Email: *input.Email})
		if err != nil {
			uc.l.Errorf(ctx, "uc.Update GetOneUser: %v", err)
			return model.User{}, err
		}
		if other.ID != 0 && other.ID != input.ID {
			return model.User{}, user.ErrDuplicateEmail
		}
		email = *input.Email
	}

	u, err := uc.repo.UpdateUser(ctx, repo.UpdateUserOptions{
		ID:    input.ID,
		Name:  name,
		Email: email,
	})
	if err != nil {
		if errors.Is(err, repo.ErrUniqueViolation) {
			return model.User{}, user.ErrDuplicateEmail
		}
		uc.l.Errorf(ctx, "uc.Update UpdateUser: %v", err)
		return model.User{}, err
	}
	if u.ID == 0 {
		return model.User{}, user.ErrUserNotFound
	}
	return u, nil
}

// Delete removes the user together with everything they own.
func (uc *implUseCase) Delete(ctx context.Context, id int64) error {
	if _, err := uc.Detail(ctx, id); err != nil {
		return err
	}
	if err := uc.repo.DeleteUser(ctx, id); err != nil {
		uc.l.Errorf(ctx, "uc.Delete DeleteUser: %v", err)
		return err
	}
	uc.l.Infof(ctx, "user %d deleted", id)
	return nil
}
