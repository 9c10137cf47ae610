package usecase

import (
	"library-lending/internal/audit"
	"library-lending/internal/audit/repository"
	"library-lending/pkg/log"
)

const (
	defaultListLimit = 50
	maxListLimit     = 500
)

// implUseCase is the private implementation of audit.UseCase.
type implUseCase struct {
	repo repository.Repository
	l    log.Logger
}

// New creates a new audit UseCase implementation.
func New(repo repository.Repository, l log.Logger) *implUseCase {
	return &implUseCase{repo: repo, l: l}
}

var _ audit.UseCase = (*implUseCase)(nil)
