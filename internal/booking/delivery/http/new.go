package http

import (
	"shareit/internal/booking"
	"shareit/pkg/log"
)

type handler struct {
	l  log.Logger
	uc booking.UseCase
}

// New creates the HTTP handler of the booking domain.
func New(l log.Logger, uc booking.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
