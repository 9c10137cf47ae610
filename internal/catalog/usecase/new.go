package usecase

import (
	"library-lending/internal/catalog"
	"library-lending/internal/catalog/repository"
	"library-lending/pkg/log"
)

const (
	defaultListLimit = 20
	maxListLimit     = 100
)

// implUseCase is the private implementation of catalog.UseCase.
type implUseCase struct {
	repo repository.Repository
	l    log.Logger
}

// New creates a new catalog UseCase implementation.
func New(repo repository.Repository, l log.Logger) *implUseCase {
	return &implUseCase{repo: repo, l: l}
}

var _ catalog.UseCase = (*implUseCase)(nil)

func clampLimit(limit int) int {
	if limit <= 0 {
		return defaultListLimit
	}
	if limit > maxListLimit {
		return maxListLimit
	}
	return limit
}
