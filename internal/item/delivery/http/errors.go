package http

import (
	"errors"

	"shareit/internal/item"
	"shareit/internal/user"
	pkgErrors "shareit/pkg/errors"
)

// mapError translates item domain errors. Unknown errors pass through and become 500.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, user.ErrUserNotFound),
		errors.Is(err, item.ErrItemNotFound),
		errors.Is(err, item.ErrRequestNotFound):
		return pkgErrors.NewNotFound(err.Error())
	case errors.Is(err, item.ErrNotOwner):
		return pkgErrors.NewForbidden(err.Error())
	case errors.Is(err, item.ErrCommentNotAllowed):
		return pkgErrors.NewBadRequest(err.Error())
	default:
		return err
	}
}
