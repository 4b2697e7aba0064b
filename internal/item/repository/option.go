package repository

import "time"

type CreateItemOptions struct {
	Name        string
	Description string
	Available   bool
	OwnerID     int64
	RequestID   *int64
}

type GetOneItemOptions struct {
	ID int64
}

// ListItemsOptions filters by every non-zero field (AND).
// Text matches name or description case-insensitively.
type ListItemsOptions struct {
	OwnerID       int64
	Text          string
	AvailableOnly bool
	RequestIDs    []int64
	Limit         int
	Offset        int
}

type UpdateItemOptions struct {
	ID          int64
	Name        string
	Description string
	Available   bool
}

type CreateCommentOptions struct {
	ItemID   int64
	AuthorID int64
	Text     string
	Created  time.Time
}

// ListCommentsOptions lists comments of the given items, newest first.
type ListCommentsOptions struct {
	ItemIDs []int64
}
