package repository

import "time"

type CreateRequestOptions struct {
	Description string
	RequestorID int64
	Created     time.Time
}

type GetOneRequestOptions struct {
	ID int64
}

// ListRequestsOptions lists requests newest first.
type ListRequestsOptions struct {
	RequestorID        int64
	ExcludeRequestorID int64
	Limit              int
	Offset             int
}
