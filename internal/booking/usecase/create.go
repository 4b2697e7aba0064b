package usecase

import (
	"context"

	"shareit/internal/booking"
	repo "shareit/internal/booking/repository"
	itemRepo "shareit/internal/item/repository"
	"shareit/internal/model"
)

// Create books an item for the caller. New bookings wait for the owner's decision.
func (uc *implUseCase) Create(ctx context.Context, sc model.Scope, input booking.CreateInput) (model.Booking, error) {
	if err := uc.userUC.Exists(ctx, sc.UserID); err != nil {
		return model.Booking{}, err
	}

	it, err := uc.itemRepo.GetOneItem(ctx, itemRepo.GetOneItemOptions{ID: input.ItemID})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Create GetOneItem: %v", err)
		return model.Booking{}, err
	}
	// an owner cannot see their own item as bookable
	if it.ID == 0 || it.IsOwnedBy(sc.UserID) {
		return model.Booking{}, booking.ErrItemNotFound
	}
	if !it.Available {
		return model.Booking{}, booking.ErrItemUnavailable
	}

	if err := uc.validatePeriod(input); err != nil {
		return model.Booking{}, err
	}

	b, err := uc.repo.CreateBooking(ctx, repo.CreateBookingOptions{
		ItemID:   it.ID,
		BookerID: sc.UserID,
		Start:    input.Start,
		End:      input.End,
		Status:   model.BookingStatusWaiting,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Create CreateBooking: %v", err)
		return model.Booking{}, err
	}

	uc.l.Infof(ctx, "booking %d of item %d created by user %d", b.ID, it.ID, sc.UserID)
	return b, nil
}
