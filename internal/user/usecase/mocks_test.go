package usecase

import (
	"context"

	"shareit/internal/model"
	repo "shareit/internal/user/repository"
)

// Mock logger for testing
type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}

// memRepo is an in-memory user repository for use case tests.
type memRepo struct {
	users     map[int64]model.User
	nextID    int64
	createErr error
}

func newMemRepo(users ...model.User) *memRepo {
	r := &memRepo{users: map[int64]model.User{}}
	for _, u := range users {
		r.users[u.ID] = u
		if u.ID > r.nextID {
			r.nextID = u.ID
		}
	}
	return r
}

func (r *memRepo) CreateUser(ctx context.Context, opt repo.CreateUserOptions) (model.User, error) {
	if r.createErr != nil {
		return model.User{}, r.createErr
	}
	r.nextID++
	u := model.User{ID: r.nextID, Name: opt.Name, Email: opt.Email}
	r.users[u.ID] = u
	return u, nil
}

func (r *memRepo) GetOneUser(ctx context.Context, opt repo.GetOneUserOptions) (model.User, error) {
	for _, u := range r.users {
		if opt.ID != 0 && u.ID != opt.ID {
			continue
		}
		if opt.Email != "" && u.Email != opt.Email {
			continue
		}
		return u, nil
	}
	return model.User{}, nil
}

func (r *memRepo) ListUsers(ctx context.Context, opt repo.ListUsersOptions) ([]model.User, error) {
	out := []model.User{}
	for id := int64(1); id <= r.nextID; id++ {
		if u, ok := r.users[id]; ok {
			out = append(out, u)
		}
	}
	return out, nil
}

func (r *memRepo) UpdateUser(ctx context.Context, opt repo.UpdateUserOptions) (model.User, error) {
	if _, ok := r.users[opt.ID]; !ok {
		return model.User{}, nil
	}
	u := model.User{ID: opt.ID, Name: opt.Name, Email: opt.Email}
	r.users[opt.ID] = u
	return u, nil
}

func (r *memRepo) DeleteUser(ctx context.Context, id int64) error {
	delete(r.users, id)
	return nil
}
