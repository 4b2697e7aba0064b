package booking

import (
	"context"

	"shareit/internal/model"
	"shareit/pkg/gcalendar"
)

//go:generate mockery --name UseCase
type UseCase interface {
	Create(ctx context.Context, sc model.Scope, input CreateInput) (model.Booking, error)
	Decide(ctx context.Context, sc model.Scope, input DecideInput) (model.Booking, error)
	Cancel(ctx context.Context, sc model.Scope, id int64) (model.Booking, error)
	Detail(ctx context.Context, sc model.Scope, id int64) (model.Booking, error)
	ListByBooker(ctx context.Context, sc model.Scope, input ListInput) ([]model.Booking, error)
	ListByOwner(ctx context.Context, sc model.Scope, input ListInput) ([]model.Booking, error)
}

// Calendar receives an event for every approved booking.
type Calendar interface {
	CreateEvent(ctx context.Context, req gcalendar.CreateEventRequest) (*gcalendar.Event, error)
}
