package repository

import (
	"context"

	"shareit/internal/model"
)

// Repository is the data store of the booking domain. Bookings are returned with their item and booker joined.
type Repository interface {
	CreateBooking(ctx context.Context, opt CreateBookingOptions) (model.Booking, error)
	GetOneBooking(ctx context.Context, opt GetOneBookingOptions) (model.Booking, error)
	ListBookings(ctx context.Context, opt ListBookingsOptions) ([]model.Booking, error)

	// UpdateBookingStatus moves a booking to opt.To only while its status is one of opt.From.
	// The zero Booking is returned when no row matched.
	UpdateBookingStatus(ctx context.Context, opt UpdateBookingStatusOptions) (model.Booking, error)
}
