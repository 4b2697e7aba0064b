package usecase

import (
	"context"

	"shareit/internal/booking"
	repo "shareit/internal/booking/repository"
	"shareit/internal/model"
)

// Detail is visible to the booker and to the item owner. Anyone else gets not found.
func (uc *implUseCase) Detail(ctx context.Context, sc model.Scope, id int64) (model.Booking, error) {
	if err := uc.userUC.Exists(ctx, sc.UserID); err != nil {
		return model.Booking{}, err
	}
	b, err := uc.getBooking(ctx, id)
	if err != nil {
		return model.Booking{}, err
	}
	if b.BookerID != sc.UserID && !b.Item.IsOwnedBy(sc.UserID) {
		return model.Booking{}, booking.ErrBookingNotFound
	}
	return b, nil
}

// ListByBooker lists the caller's own bookings, latest start first.
func (uc *implUseCase) ListByBooker(ctx context.Context, sc model.Scope, input booking.ListInput) ([]model.Booking, error) {
	return uc.list(ctx, sc, input, repo.ListBookingsOptions{BookerID: sc.UserID})
}

// ListByOwner lists bookings of items the caller owns, latest start first.
func (uc *implUseCase) ListByOwner(ctx context.Context, sc model.Scope, input booking.ListInput) ([]model.Booking, error) {
	return uc.list(ctx, sc, input, repo.ListBookingsOptions{OwnerID: sc.UserID})
}

func (uc *implUseCase) list(ctx context.Context, sc model.Scope, input booking.ListInput, opt repo.ListBookingsOptions) ([]model.Booking, error) {
	state, err := model.ParseBookingState(input.State)
	if err != nil {
		return nil, err
	}
	if err := uc.userUC.Exists(ctx, sc.UserID); err != nil {
		return nil, err
	}

	opt.State = state
	opt.Now = uc.now()
	opt.Limit = input.Size
	opt.Offset = model.PageOffset(input.From, input.Size)

	bookings, err := uc.repo.ListBookings(ctx, opt)
	if err != nil {
		uc.l.Errorf(ctx, "uc.list ListBookings: %v", err)
		return nil, err
	}
	return bookings, nil
}
