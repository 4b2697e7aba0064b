package usecase

import (
	"context"
	"strings"

	bookingRepo "shareit/internal/booking/repository"
	"shareit/internal/item"
	repo "shareit/internal/item/repository"
	"shareit/internal/model"
)

// CreateComment lets a user review an item they have finished renting.
func (uc *implUseCase) CreateComment(ctx context.Context, sc model.Scope, input item.CreateCommentInput) (model.Comment, error) {
	if err := uc.userUC.Exists(ctx, sc.UserID); err != nil {
		return model.Comment{}, err
	}
	if _, err := uc.getItem(ctx, input.ItemID); err != nil {
		return model.Comment{}, err
	}

	now := uc.now()
	completed, err := uc.bookingRepo.ListBookings(ctx, bookingRepo.ListBookingsOptions{
		BookerID: sc.UserID,
		ItemIDs:  []int64{input.ItemID},
		Status:   model.BookingStatusApproved,
		State:    model.BookingStatePast,
		Now:      now,
		Limit:    1,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.CreateComment ListBookings: %v", err)
		return model.Comment{}, err
	}
	if len(completed) == 0 {
		return model.Comment{}, item.ErrCommentNotAllowed
	}

	cm, err := uc.repo.CreateComment(ctx, repo.CreateCommentOptions{
		ItemID:   input.ItemID,
		AuthorID: sc.UserID,
		Text:     strings.TrimSpace(input.Text),
		Created:  now,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.CreateComment CreateComment: %v", err)
		return model.Comment{}, err
	}
	return cm, nil
}
