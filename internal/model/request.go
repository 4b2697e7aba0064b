package model

import "time"

// Request is a wish for an item that is not yet in the catalog.
type Request struct {
	ID          int64
	Description string
	RequestorID int64
	Created     time.Time
	Items       []Item // items listed in response, filled by the use case
}
