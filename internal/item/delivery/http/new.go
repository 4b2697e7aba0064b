package http

import (
	"shareit/internal/item"
	"shareit/pkg/log"
)

type handler struct {
	l  log.Logger
	uc item.UseCase
}

// New creates the HTTP handler of the item domain.
func New(l log.Logger, uc item.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
