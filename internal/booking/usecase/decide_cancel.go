package usecase

import (
	"context"

	"shareit/internal/booking"
	repo "shareit/internal/booking/repository"
	"shareit/internal/model"
)

// Decide approves or rejects a waiting booking. Only the item owner decides, and only once.
func (uc *implUseCase) Decide(ctx context.Context, sc model.Scope, input booking.DecideInput) (model.Booking, error) {
	b, err := uc.getBooking(ctx, input.ID)
	if err != nil {
		return model.Booking{}, err
	}
	if !b.Item.IsOwnedBy(sc.UserID) {
		return model.Booking{}, booking.ErrNotItemOwner
	}
	if b.Status != model.BookingStatusWaiting {
		return model.Booking{}, booking.ErrAlreadyDecided
	}

	to := model.BookingStatusRejected
	if input.Approved {
		to = model.BookingStatusApproved
	}

	updated, err := uc.repo.UpdateBookingStatus(ctx, repo.UpdateBookingStatusOptions{
		ID:   b.ID,
		From: []model.BookingStatus{model.BookingStatusWaiting},
		To:   to,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Decide UpdateBookingStatus: %v", err)
		return model.Booking{}, err
	}
	// someone else decided in between
	if updated.ID == 0 {
		return model.Booking{}, booking.ErrAlreadyDecided
	}

	uc.l.Infof(ctx, "booking %d %s by owner %d", updated.ID, updated.Status, sc.UserID)
	if updated.Status == model.BookingStatusApproved {
		uc.publish(ctx, updated)
	}
	return updated, nil
}

// Cancel lets the booker withdraw a waiting or approved booking before it starts.
func (uc *implUseCase) Cancel(ctx context.Context, sc model.Scope, id int64) (model.Booking, error) {
	b, err := uc.getBooking(ctx, id)
	if err != nil {
		return model.Booking{}, err
	}
	if b.BookerID != sc.UserID {
		return model.Booking{}, booking.ErrNotBooker
	}

	now := uc.now()
	cancelable := b.Status == model.BookingStatusWaiting || b.Status == model.BookingStatusApproved
	if !cancelable || !b.Start.After(now) {
		return model.Booking{}, booking.ErrNotCancelable
	}

	updated, err := uc.repo.UpdateBookingStatus(ctx, repo.UpdateBookingStatusOptions{
		ID:         b.ID,
		From:       []model.BookingStatus{model.BookingStatusWaiting, model.BookingStatusApproved},
		To:         model.BookingStatusCanceled,
		StartAfter: now,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Cancel UpdateBookingStatus: %v", err)
		return model.Booking{}, err
	}
	if updated.ID == 0 {
		return model.Booking{}, booking.ErrNotCancelable
	}

	uc.l.Infof(ctx, "booking %d canceled by booker %d", updated.ID, sc.UserID)
	return updated, nil
}

func (uc *implUseCase) getBooking(ctx context.Context, id int64) (model.Booking, error) {
	b, err := uc.repo.GetOneBooking(ctx, repo.GetOneBookingOptions{ID: id})
	if err != nil {
		uc.l.Errorf(ctx, "uc.getBooking GetOneBooking: %v", err)
		return model.Booking{}, err
	}
	if b.ID == 0 {
		return model.Booking{}, booking.ErrBookingNotFound
	}
	return b, nil
}
