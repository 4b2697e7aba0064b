package usecase

import (
	"time"

	itemRepo "shareit/internal/item/repository"
	"shareit/internal/request/repository"
	"shareit/internal/user"
	"shareit/pkg/log"
)

type implUseCase struct {
	l        log.Logger
	repo     repository.Repository
	itemRepo itemRepo.ItemRepository
	userUC   user.UseCase

	now func() time.Time
}

// New creates the request UseCase.
func New(l log.Logger, repo repository.Repository, itemRepo itemRepo.ItemRepository, userUC user.UseCase) *implUseCase {
	return &implUseCase{
		l:        l,
		repo:     repo,
		itemRepo: itemRepo,
		userUC:   userUC,
		now:      time.Now,
	}
}
