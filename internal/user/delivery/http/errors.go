package http

import (
	"errors"

	"shareit/internal/user"
	pkgErrors "shareit/pkg/errors"
)

// mapError translates user domain errors. Unknown errors pass through and become 500.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, user.ErrUserNotFound):
		return pkgErrors.NewNotFound(err.Error())
	case errors.Is(err, user.ErrDuplicateEmail):
		return pkgErrors.NewConflict(err.Error())
	default:
		return err
	}
}
