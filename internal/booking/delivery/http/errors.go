package http

import (
	"errors"

	"shareit/internal/booking"
	"shareit/internal/model"
	"shareit/internal/user"
	pkgErrors "shareit/pkg/errors"
)

// mapError translates booking domain errors. Unknown errors pass through and become 500.
func (h *handler) mapError(err error) error {
	var unknownState model.ErrUnknownState
	switch {
	case errors.As(err, &unknownState):
		return pkgErrors.NewBadRequest(err.Error())
	case errors.Is(err, user.ErrUserNotFound),
		errors.Is(err, booking.ErrBookingNotFound),
		errors.Is(err, booking.ErrItemNotFound):
		return pkgErrors.NewNotFound(err.Error())
	case errors.Is(err, booking.ErrNotItemOwner),
		errors.Is(err, booking.ErrNotBooker):
		return pkgErrors.NewForbidden(err.Error())
	case errors.Is(err, booking.ErrItemUnavailable),
		errors.Is(err, booking.ErrDatesRequired),
		errors.Is(err, booking.ErrStartInPast),
		errors.Is(err, booking.ErrInvalidPeriod),
		errors.Is(err, booking.ErrAlreadyDecided),
		errors.Is(err, booking.ErrNotCancelable):
		return pkgErrors.NewBadRequest(err.Error())
	default:
		return err
	}
}
