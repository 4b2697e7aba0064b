package item

import "shareit/internal/model"

// ItemView is an item with its comments and, for the owner, the surrounding approved bookings.
type ItemView struct {
	Item        model.Item
	LastBooking *model.Booking
	NextBooking *model.Booking
	Comments    []model.Comment
}

// --- UseCase Inputs ---

type CreateInput struct {
	Name        string
	Description string
	Available   bool
	RequestID   *int64
}

// UpdateInput is a partial update: nil fields keep their current value.
type UpdateInput struct {
	ID          int64
	Name        *string
	Description *string
	Available   *bool
}

type ListInput struct {
	From int
	Size int
}

type SearchInput struct {
	Text string
	From int
	Size int
}

type CreateCommentInput struct {
	ItemID int64
	Text   string
}
