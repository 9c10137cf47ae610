package usecase

import (
	auditRepo "library-lending/internal/audit/repository"
	"library-lending/internal/lending"
	lendingRepo "library-lending/internal/lending/repository"
	"library-lending/internal/returns"
	"library-lending/pkg/log"
)

// implUseCase is the private implementation of returns.UseCase.
type implUseCase struct {
	lending lending.UseCase
	items   lendingRepo.ItemRepository
	audit   auditRepo.Repository
	l       log.Logger
}

// New creates a new returns UseCase implementation.
func New(
	lendingUC lending.UseCase,
	items lendingRepo.ItemRepository,
	audit auditRepo.Repository,
	l log.Logger,
) *implUseCase {
	return &implUseCase{
		lending: lendingUC,
		items:   items,
		audit:   audit,
		l:       l,
	}
}

var _ returns.UseCase = (*implUseCase)(nil)
