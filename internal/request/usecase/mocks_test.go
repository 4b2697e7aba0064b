package usecase

import (
	"context"
	"sort"

	itemRepo "shareit/internal/item/repository"
	"shareit/internal/model"
	repo "shareit/internal/request/repository"
	"shareit/internal/user"
)

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

type mockUserUC struct {
	user.UseCase
	known map[int64]bool
}

func (m *mockUserUC) Exists(ctx context.Context, id int64) error {
	if !m.known[id] {
		return user.ErrUserNotFound
	}
	return nil
}

type mockRepo struct {
	requests map[int64]model.Request
	nextID   int64

	lastList repo.ListRequestsOptions
}

func (m *mockRepo) CreateRequest(ctx context.Context, opt repo.CreateRequestOptions) (model.Request, error) {
	m.nextID++
	rq := model.Request{ID: m.nextID, Description: opt.Description, RequestorID: opt.RequestorID, Created: opt.Created}
	m.requests[rq.ID] = rq
	return rq, nil
}

func (m *mockRepo) GetOneRequest(ctx context.Context, opt repo.GetOneRequestOptions) (model.Request, error) {
	return m.requests[opt.ID], nil
}

func (m *mockRepo) ListRequests(ctx context.Context, opt repo.ListRequestsOptions) ([]model.Request, error) {
	m.lastList = opt
	out := []model.Request{}
	for _, rq := range m.requests {
		if opt.RequestorID != 0 && rq.RequestorID != opt.RequestorID {
			continue
		}
		if opt.ExcludeRequestorID != 0 && rq.RequestorID == opt.ExcludeRequestorID {
			continue
		}
		out = append(out, rq)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Created.After(out[j].Created) })
	return out, nil
}

type mockItemRepo struct {
	itemRepo.ItemRepository
	items []model.Item

	calls    int
	lastList itemRepo.ListItemsOptions
}

func (m *mockItemRepo) ListItems(ctx context.Context, opt itemRepo.ListItemsOptions) ([]model.Item, error) {
	m.calls++
	m.lastList = opt
	want := make(map[int64]bool, len(opt.RequestIDs))
	for _, id := range opt.RequestIDs {
		want[id] = true
	}
	out := []model.Item{}
	for _, it := range m.items {
		if it.RequestID != nil && want[*it.RequestID] {
			out = append(out, it)
		}
	}
	return out, nil
}
