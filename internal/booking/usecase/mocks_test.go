package usecase

import (
	"context"

	repo "shareit/internal/booking/repository"
	itemRepo "shareit/internal/item/repository"
	"shareit/internal/model"
	"shareit/internal/user"
	"shareit/pkg/gcalendar"
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

type mockItemRepo struct {
	itemRepo.ItemRepository
	items map[int64]model.Item
}

func (m *mockItemRepo) GetOneItem(ctx context.Context, opt itemRepo.GetOneItemOptions) (model.Item, error) {
	return m.items[opt.ID], nil
}

type mockRepo struct {
	bookings map[int64]model.Booking
	nextID   int64

	lastList   repo.ListBookingsOptions
	lastUpdate repo.UpdateBookingStatusOptions
	// raced makes UpdateBookingStatus behave as if another caller won
	raced bool
}

func (m *mockRepo) CreateBooking(ctx context.Context, opt repo.CreateBookingOptions) (model.Booking, error) {
	m.nextID++
	b := model.Booking{ID: m.nextID, ItemID: opt.ItemID, BookerID: opt.BookerID, Start: opt.Start, End: opt.End, Status: opt.Status}
	m.bookings[b.ID] = b
	return b, nil
}

func (m *mockRepo) GetOneBooking(ctx context.Context, opt repo.GetOneBookingOptions) (model.Booking, error) {
	return m.bookings[opt.ID], nil
}

func (m *mockRepo) ListBookings(ctx context.Context, opt repo.ListBookingsOptions) ([]model.Booking, error) {
	m.lastList = opt
	return []model.Booking{}, nil
}

func (m *mockRepo) UpdateBookingStatus(ctx context.Context, opt repo.UpdateBookingStatusOptions) (model.Booking, error) {
	m.lastUpdate = opt
	if m.raced {
		return model.Booking{}, nil
	}
	b, ok := m.bookings[opt.ID]
	if !ok {
		return model.Booking{}, nil
	}
	b.Status = opt.To
	m.bookings[opt.ID] = b
	return b, nil
}

type mockCalendar struct {
	calls []gcalendar.CreateEventRequest
	err   error
}

func (m *mockCalendar) CreateEvent(ctx context.Context, req gcalendar.CreateEventRequest) (*gcalendar.Event, error) {
	m.calls = append(m.calls, req)
	if m.err != nil {
		return nil, m.err
	}
	return &gcalendar.Event{ID: "evt"}, nil
}
