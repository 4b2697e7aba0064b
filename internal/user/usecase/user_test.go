package usecase

import (
	"context"
	"errors"
	"testing"

	"shareit/internal/model"
	"shareit/internal/user"
	repo "shareit/internal/user/repository"
)

func strPtr(s string) *string { return &s }

func TestCreate(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		uc := New(newMemRepo(), &mockLogger{})
		u, err := uc.Create(ctx, user.CreateInput{Name: "Ann", Email: "ann@mail.com"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if u.ID == 0 || u.Email != "ann@mail.com" {
			t.Errorf("unexpected user %+v", u)
		}
	})

	t.Run("Duplicate Email", func(t *testing.T) {
		uc := New(newMemRepo(model.User{ID: 1, Name: "Ann", Email: "ann@mail.com"}), &mockLogger{})
		_, err := uc.Create(ctx, user.CreateInput{Name: "Other", Email: "ann@mail.com"})
		if !errors.Is(err, user.ErrDuplicateEmail) {
			t.Errorf("expected ErrDuplicateEmail, got %v", err)
		}
	})

	t.Run("Concurrent Duplicate Email", func(t *testing.T) {
		r := newMemRepo()
		r.createErr = repo.ErrUniqueViolation
		uc := New(r, &mockLogger{})
		_, err := uc.Create(ctx, user.CreateInput{Name: "Ann", Email: "ann@mail.com"})
		if !errors.Is(err, user.ErrDuplicateEmail) {
			t.Errorf("expected ErrDuplicateEmail, got %v", err)
		}
	})

	t.Run("Repository Failure", func(t *testing.T) {
		r := newMemRepo()
		r.createErr = repo.ErrFailedToInsert
		uc := New(r, &mockLogger{})
		_, err := uc.Create(ctx, user.CreateInput{Name: "Ann", Email: "ann@mail.com"})
		if !errors.Is(err, repo.ErrFailedToInsert) {
			t.Errorf("expected ErrFailedToInsert, got %v", err)
		}
	})
}

func TestUpdate(t *testing.T) {
	ctx := context.Background()
	seed := func() *memRepo {
		return newMemRepo(
			model.User{ID: 1, Name: "Ann", Email: "ann@mail.com"},
			model.User{ID: 2, Name: "Bob", Email: "bob@mail.com"},
		)
	}

	t.Run("Partial Name", func(t *testing.T) {
		uc := New(seed(), &mockLogger{})
		u, err := uc.Update(ctx, user.UpdateInput{ID: 1, Name: strPtr("Anna")})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if u.Name != "Anna" || u.Email != "ann@mail.com" {
			t.Errorf("unexpected user %+v", u)
		}
	})

	t.Run("Same Email Is Not A Conflict", func(t *testing.T) {
		uc := New(seed(), &mockLogger{})
		if _, err := uc.Update(ctx, user.UpdateInput{ID: 1, Email: strPtr("ann@mail.com")}); err != nil {
			t.Errorf("unexpected error: %v", err)
		}
	})

	t.Run("Email Taken", func(t *testing.T) {
		uc := New(seed(), &mockLogger{})
		_, err := uc.Update(ctx, user.UpdateInput{ID: 1, Email: strPtr("bob@mail.com")})
		if !errors.Is(err, user.ErrDuplicateEmail) {
			t.Errorf("expected ErrDuplicateEmail, got %v", err)
		}
	})

	t.Run("Not Found", func(t *testing.T) {
		uc := New(seed(), &mockLogger{})
		_, err := uc.Update(ctx, user.UpdateInput{ID: 99, Name: strPtr("x")})
		if !errors.Is(err, user.ErrUserNotFound) {
			t.Errorf("expected ErrUserNotFound, got %v", err)
		}
	})
}

func TestDetailListDelete(t *testing.T) {
	ctx := context.Background()
	r := newMemRepo(
		model.User{ID: 1, Name: "Ann", Email: "ann@mail.com"},
		model.User{ID: 2, Name: "Bob", Email: "bob@mail.com"},
	)
	uc := New(r, &mockLogger{})

	if _, err := uc.Detail(ctx, 3); !errors.Is(err, user.ErrUserNotFound) {
		t.Errorf("expected ErrUserNotFound, got %v", err)
	}
	if err := uc.Exists(ctx, 2); err != nil {
		t.Errorf("expected user 2 to exist: %v", err)
	}

	users, err := uc.List(ctx)
	if err != nil || len(users) != 2 || users[0].ID != 1 {
		t.Fatalf("unexpected list %+v %v", users, err)
	}

	if err := uc.Delete(ctx, 1); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := uc.Delete(ctx, 1); !errors.Is(err, user.ErrUserNotFound) {
		t.Errorf("expected ErrUserNotFound on second delete, got %v", err)
	}
}
