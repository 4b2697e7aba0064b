package model

import (
	"fmt"
	"strings"
	"time"
)

// BookingStatus is the lifecycle position of a booking.
type BookingStatus string

const (
	BookingStatusWaiting  BookingStatus = "WAITING"
	BookingStatusApproved BookingStatus = "APPROVED"
	BookingStatusRejected BookingStatus = "REJECTED"
	BookingStatusCanceled BookingStatus = "CANCELED"
)

// BookingState is a time/status filter used when listing bookings.
type BookingState string

const (
	BookingStateAll      BookingState = "ALL"
	BookingStateCurrent  BookingState = "CURRENT"
	BookingStatePast     BookingState = "PAST"
	BookingStateFuture   BookingState = "FUTURE"
	BookingStateWaiting  BookingState = "WAITING"
	BookingStateRejected BookingState = "REJECTED"
)

// ErrUnknownState is returned by ParseBookingState for values outside the enum.
type ErrUnknownState struct {
	Value string
}

func (e ErrUnknownState) Error() string {
	return fmt.Sprintf("Unknown state: %s", e.Value)
}

// ParseBookingState parses s case-insensitively. Empty input means ALL.
func ParseBookingState(s string) (BookingState, error) {
	if strings.TrimSpace(s) == "" {
		return BookingStateAll, nil
	}
	st := BookingState(strings.ToUpper(strings.TrimSpace(s)))
	switch st {
	case BookingStateAll, BookingStateCurrent, BookingStatePast,
		BookingStateFuture, BookingStateWaiting, BookingStateRejected:
		return st, nil
	}
	return "", ErrUnknownState{Value: s}
}

// Booking is a reservation of an item for a half-open time range.
type Booking struct {
	ID       int64
	Start    time.Time
	End      time.Time
	ItemID   int64
	BookerID int64
	Status   BookingStatus

	// Joined on read.
	Item   Item
	Booker User
}
