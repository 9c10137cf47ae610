package usecase

import (
	auditRepo "library-lending/internal/audit/repository"
	"library-lending/internal/lending"
	"library-lending/internal/lending/repository"
	memberRepo "library-lending/internal/member/repository"
	"library-lending/internal/session"
	"library-lending/pkg/log"
	"library-lending/pkg/notify"
)

// implUseCase is the private implementation of lending.UseCase.
type implUseCase struct {
	repo     repository.Repository
	members  memberRepo.Repository
	audit    auditRepo.Repository
	sessions *session.Store
	notifier notify.Sender
	cfg      lending.Config
	l        log.Logger
}

// New creates a new lending UseCase implementation.
func New(
	repo repository.Repository,
	members memberRepo.Repository,
	audit auditRepo.Repository,
	sessions *session.Store,
	notifier notify.Sender,
	cfg lending.Config,
	l log.Logger,
) *implUseCase {
	return &implUseCase{
		repo:     repo,
		members:  members,
		audit:    audit,
		sessions: sessions,
		notifier: notifier,
		cfg:      cfg,
		l:        l,
	}
}
