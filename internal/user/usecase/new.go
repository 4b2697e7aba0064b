package usecase

import (
	"shareit/internal/user/repository"
	"shareit/pkg/log"
)

type implUseCase struct {
	repo repository.Repository
	l    log.Logger
}

// New creates the user UseCase.
func New(repo repository.Repository, l log.Logger) *implUseCase {
	return &implUseCase{
		repo: repo,
		l:    l,
	}
}
