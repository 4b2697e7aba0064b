package usecase

import (
	"time"

	bookingRepo "shareit/internal/booking/repository"
	"shareit/internal/item/repository"
	requestRepo "shareit/internal/request/repository"
	"shareit/internal/user"
	"shareit/pkg/log"
)

type implUseCase struct {
	l           log.Logger
	repo        repository.Repository
	bookingRepo bookingRepo.Repository
	requestRepo requestRepo.Repository
	userUC      user.UseCase

	now func() time.Time
}

// New creates the item UseCase.
func New(
	l log.Logger,
	repo repository.Repository,
	bookingRepo bookingRepo.Repository,
	requestRepo requestRepo.Repository,
	userUC user.UseCase,
) *implUseCase {
	return &implUseCase{
		l:           l,
		repo:        repo,
		bookingRepo: bookingRepo,
		requestRepo: requestRepo,
		userUC:      userUC,
		now:         time.Now,
	}
}
