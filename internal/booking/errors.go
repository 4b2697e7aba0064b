package booking

import "errors"

var (
	ErrBookingNotFound = errors.New("booking not found")
	ErrItemNotFound    = errors.New("item not found")
	ErrItemUnavailable = errors.New("item is not available for booking")
	ErrDatesRequired   = errors.New("start and end are required")
	ErrStartInPast     = errors.New("start must not be in the past")
	ErrInvalidPeriod   = errors.New("end must be after start")
	ErrNotItemOwner    = errors.New("only the item owner can decide on a booking")
	ErrNotBooker       = errors.New("only the booker can cancel a booking")
	ErrAlreadyDecided  = errors.New("booking has already been decided")
	ErrNotCancelable   = errors.New("booking can no longer be canceled")
)
