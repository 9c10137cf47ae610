package usecase

import (
	"sync"

	"golang.org/x/time/rate"

	memberRepo "library-lending/internal/member/repository"
	"library-lending/internal/otp"
	"library-lending/internal/otp/repository"
	"library-lending/internal/session"
	"library-lending/pkg/log"
	"library-lending/pkg/notify"
)

// implUseCase is the private implementation of otp.UseCase.
type implUseCase struct {
	repo     repository.Repository
	members  memberRepo.Repository
	sessions *session.Store
	notifier notify.Sender
	cfg      otp.Config
	l        log.Logger

	mu       sync.Mutex
	limiters map[string]*rate.Limiter
}

// New creates a new OTP UseCase implementation.
func New(
	repo repository.Repository,
	members memberRepo.Repository,
	sessions *session.Store,
	notifier notify.Sender,
	cfg otp.Config,
	l log.Logger,
) *implUseCase {
	return &implUseCase{
		repo:     repo,
		members:  members,
		sessions: sessions,
		notifier: notifier,
		cfg:      cfg,
		l:        l,
		limiters: make(map[string]*rate.Limiter),
	}
}

// limiter returns the per-contact issue limiter, creating it on first
// use. Entries are never evicted; the contact space is the member
// directory, which is small.
func (uc *implUseCase) limiter(contact string) *rate.Limiter {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	lim, ok := uc.limiters[contact]
	if !ok {
		per := uc.cfg.IssuesPerMinute
		if per <= 0 {
			per = 3
		}
		lim = rate.NewLimiter(rate.Limit(float64(per)/60.0), per)
		uc.limiters[contact] = lim
	}
	return lim
}
