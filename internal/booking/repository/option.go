package repository

import (
	"time"

	"shareit/internal/model"
)

type CreateBookingOptions struct {
	ItemID   int64
	BookerID int64
	Start    time.Time
	End      time.Time
	Status   model.BookingStatus
}

type GetOneBookingOptions struct {
	ID int64
}

// ListBookingsOptions filters by every non-zero field (AND).
// Time based states are evaluated against Now.
type ListBookingsOptions struct {
	BookerID int64
	OwnerID  int64
	ItemIDs  []int64
	Status   model.BookingStatus
	State    model.BookingState
	Now      time.Time
	Limit    int
	Offset   int
}

type UpdateBookingStatusOptions struct {
	ID   int64
	From []model.BookingStatus
	To   model.BookingStatus

	// StartAfter, when set, also requires the booking to start after it.
	StartAfter time.Time
}
