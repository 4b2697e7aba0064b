package http

import (
	"errors"

	"shareit/internal/request"
	"shareit/internal/user"
	pkgErrors "shareit/pkg/errors"
)

func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, user.ErrUserNotFound),
		errors.Is(err, request.ErrRequestNotFound):
		return pkgErrors.NewNotFound(err.Error())
	default:
		return err
	}
}
