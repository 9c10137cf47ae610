package usecase

import (
	"library-lending/internal/member"
	"library-lending/internal/member/repository"
	"library-lending/pkg/log"
)

// implUseCase is the private implementation of member.UseCase.
type implUseCase struct {
	repo repository.Repository
	l    log.Logger
}

// New creates a new member UseCase implementation.
func New(repo repository.Repository, l log.Logger) *implUseCase {
	return &implUseCase{repo: repo, l: l}
}

var _ member.UseCase = (*implUseCase)(nil)
