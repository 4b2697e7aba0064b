package model

// Item is a shareable possession listed by its owner.
type Item struct {
	ID          int64
	Name        string
	Description string
	Available   bool
	OwnerID     int64
	RequestID   *int64 // set when the item was listed in response to a Request
}

// IsOwnedBy reports whether userID owns the item.
func (i Item) IsOwnedBy(userID int64) bool {
	return i.OwnerID == userID
}
