package item

import "errors"

var (
	ErrItemNotFound      = errors.New("item not found")
	ErrRequestNotFound   = errors.New("request not found")
	ErrNotOwner          = errors.New("only the owner can edit the item")
	ErrCommentNotAllowed = errors.New("only users who completed a booking of the item can comment")
)
