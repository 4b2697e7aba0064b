package usecase

import (
	"time"

	"shareit/internal/booking"
	"shareit/internal/booking/repository"
	itemRepo "shareit/internal/item/repository"
	"shareit/internal/user"
	"shareit/pkg/log"
)

type implUseCase struct {
	l        log.Logger
	repo     repository.Repository
	itemRepo itemRepo.ItemRepository
	userUC   user.UseCase

	// optional
	calendar    booking.Calendar
	calendarCfg booking.CalendarConfig

	now func() time.Time
}

// New creates the booking UseCase. cal may be nil, in which case approvals are not published.
func New(
	l log.Logger,
	repo repository.Repository,
	itemRepo itemRepo.ItemRepository,
	userUC user.UseCase,
	cal booking.Calendar,
	calCfg booking.CalendarConfig,
) *implUseCase {
	return &implUseCase{
		l:           l,
		repo:        repo,
		itemRepo:    itemRepo,
		userUC:      userUC,
		calendar:    cal,
		calendarCfg: calCfg,
		now:         time.Now,
	}
}
