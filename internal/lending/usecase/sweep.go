package usecase

import (
	"context"
	"time"

	repo "library-lending/internal/lending/repository"
	"library-lending/internal/model"
)

// SweepExpired expires physical requests still Pending at or past the
// hold TTL. The per-request conditional transition makes the sweep
// idempotent: a second run over the same data transitions nothing, and
// an in-flight approval always beats the sweep or vice versa, never
// both.
func (uc *implUseCase) SweepExpired(ctx context.Context, now time.Time) (int, error) {
	cutoff := now.Add(-uc.cfg.PendingHoldTTL)

	stale, err := uc.repo.ListStalePending(ctx, cutoff)
	if err != nil {
		uc.l.Errorf(ctx, "uc.SweepExpired ListStalePending: %v", err)
		return 0, err
	}

	count := 0
	for _, req := range stale {
		claimed, err := uc.repo.UpdateApprovalStatus(ctx, repo.UpdateApprovalStatusOptions{
			Token: req.Token,
			To:    model.ApprovalExpired,
			From:  []model.ApprovalStatus{model.ApprovalPending},
		})
		if err != nil {
			uc.l.Errorf(ctx, "uc.SweepExpired UpdateApprovalStatus: %v", err)
			return count, err
		}
		if !claimed {
			// Approved or expired since the listing; nothing to release.
			continue
		}
		if err := uc.releaseItem(ctx, req); err != nil {
			return count, err
		}
		count++
	}

	if count > 0 {
		uc.l.Infof(ctx, "uc.SweepExpired: expired %d stale pending request(s)", count)
	}
	return count, nil
}
