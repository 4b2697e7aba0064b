package usecase

import (
	"context"

	bookingRepo "shareit/internal/booking/repository"
	repo "shareit/internal/item/repository"
	"shareit/internal/model"
	requestRepo "shareit/internal/request/repository"
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
	items    map[int64]model.Item
	comments []model.Comment
	nextID   int64

	lastList repo.ListItemsOptions
}

func (m *mockRepo) CreateItem(ctx context.Context, opt repo.CreateItemOptions) (model.Item, error) {
	m.nextID++
	it := model.Item{ID: m.nextID, Name: opt.Name, Description: opt.Description, Available: opt.Available, OwnerID: opt.OwnerID, RequestID: opt.RequestID}
	m.items[it.ID] = it
	return it, nil
}

func (m *mockRepo) GetOneItem(ctx context.Context, opt repo.GetOneItemOptions) (model.Item, error) {
	return m.items[opt.ID], nil
}

func (m *mockRepo) ListItems(ctx context.Context, opt repo.ListItemsOptions) ([]model.Item, error) {
	m.lastList = opt
	out := []model.Item{}
	for id := int64(1); id <= m.nextID; id++ {
		it, ok := m.items[id]
		if ok && (opt.OwnerID == 0 || it.OwnerID == opt.OwnerID) {
			out = append(out, it)
		}
	}
	return out, nil
}

func (m *mockRepo) UpdateItem(ctx context.Context, opt repo.UpdateItemOptions) (model.Item, error) {
	it, ok := m.items[opt.ID]
	if !ok {
		return model.Item{}, nil
	}
	it.Name, it.Description, it.Available = opt.Name, opt.Description, opt.Available
	m.items[opt.ID] = it
	return it, nil
}

func (m *mockRepo) CreateComment(ctx context.Context, opt repo.CreateCommentOptions) (model.Comment, error) {
	cm := model.Comment{ID: int64(len(m.comments) + 1), ItemID: opt.ItemID, AuthorID: opt.AuthorID, Text: opt.Text, Created: opt.Created}
	m.comments = append(m.comments, cm)
	return cm, nil
}

func (m *mockRepo) ListComments(ctx context.Context, opt repo.ListCommentsOptions) ([]model.Comment, error) {
	return m.comments, nil
}

type mockBookingRepo struct {
	bookingRepo.Repository

	listFn   func(opt bookingRepo.ListBookingsOptions) []model.Booking
	lastList bookingRepo.ListBookingsOptions
}

func (m *mockBookingRepo) ListBookings(ctx context.Context, opt bookingRepo.ListBookingsOptions) ([]model.Booking, error) {
	m.lastList = opt
	if m.listFn == nil {
		return []model.Booking{}, nil
	}
	return m.listFn(opt), nil
}

type mockRequestRepo struct {
	requestRepo.Repository
	requests map[int64]model.Request
}

func (m *mockRequestRepo) GetOneRequest(ctx context.Context, opt requestRepo.GetOneRequestOptions) (model.Request, error) {
	return m.requests[opt.ID], nil
}
