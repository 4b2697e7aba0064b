package usecase

import (
	"context"
	"time"

	bookingRepo "shareit/internal/booking/repository"
	"shareit/internal/item"
	repo "shareit/internal/item/repository"
	"shareit/internal/model"
)

// enrich attaches comments to every item and, when withBookings is set, the
// last and next approved bookings. Two queries regardless of len(items).
func (uc *implUseCase) enrich(ctx context.Context, items []model.Item, withBookings bool) ([]item.ItemView, error) {
	views := make([]item.ItemView, len(items))
	if len(items) == 0 {
		return views, nil
	}

	ids := make([]int64, len(items))
	for i, it := range items {
		ids[i] = it.ID
		views[i] = item.ItemView{Item: it, Comments: []model.Comment{}}
	}

	comments, err := uc.repo.ListComments(ctx, repo.ListCommentsOptions{ItemIDs: ids})
	if err != nil {
		uc.l.Errorf(ctx, "uc.enrich ListComments: %v", err)
		return nil, err
	}
	byItem := make(map[int64][]model.Comment, len(items))
	for _, cm := range comments {
		byItem[cm.ItemID] = append(byItem[cm.ItemID], cm)
	}

	var bookings map[int64][]model.Booking
	if withBookings {
		approved, err := uc.bookingRepo.ListBookings(ctx, bookingRepo.ListBookingsOptions{
			ItemIDs: ids,
			Status:  model.BookingStatusApproved,
		})
		if err != nil {
			uc.l.Errorf(ctx, "uc.enrich ListBookings: %v", err)
			return nil, err
		}
		bookings = make(map[int64][]model.Booking, len(items))
		for _, b := range approved {
			bookings[b.ItemID] = append(bookings[b.ItemID], b)
		}
	}

	now := uc.now()
	for i := range views {
		id := views[i].Item.ID
		if cms, ok := byItem[id]; ok {
			views[i].Comments = cms
		}
		if withBookings {
			views[i].LastBooking, views[i].NextBooking = lastAndNext(bookings[id], now)
		}
	}
	return views, nil
}

// lastAndNext picks the latest booking that has started by now and the earliest one that has not.
func lastAndNext(bookings []model.Booking, now time.Time) (last, next *model.Booking) {
	for i := range bookings {
		b := &bookings[i]
		if b.Start.After(now) {
			if next == nil || b.Start.Before(next.Start) {
				next = b
			}
			continue
		}
		if last == nil || b.Start.After(last.Start) {
			last = b
		}
	}
	return last, next
}
