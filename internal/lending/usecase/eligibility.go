package usecase

import (
	"context"
	"time"

	"library-lending/internal/lending"
	repo "library-lending/internal/lending/repository"
	"library-lending/internal/model"
)

// CheckEligibility applies the borrowing-rate rules for one member and
// item kind. Digital requests are capped by sliding 7- and 30-day
// windows; one unreturned Pending or Approved physical loan blocks all
// further physical requests. Rejected and expired requests do not
// block, their items were already released.
func (uc *implUseCase) CheckEligibility(ctx context.Context, memberID int64, kind model.ItemKind) error {
	now := time.Now()

	switch kind {
	case model.KindDigital:
		weekly, err := uc.repo.CountMemberRequests(ctx, repo.CountMemberRequestsOptions{
			MemberID: memberID,
			Kind:     model.KindDigital,
			Since:    now.AddDate(0, 0, -7),
		})
		if err != nil {
			uc.l.Errorf(ctx, "uc.CheckEligibility CountMemberRequests weekly: %v", err)
			return err
		}
		if weekly >= uc.cfg.DigitalWeeklyLimit {
			return lending.ErrWeeklyLimit
		}

		monthly, err := uc.repo.CountMemberRequests(ctx, repo.CountMemberRequestsOptions{
			MemberID: memberID,
			Kind:     model.KindDigital,
			Since:    now.AddDate(0, 0, -30),
		})
		if err != nil {
			uc.l.Errorf(ctx, "uc.CheckEligibility CountMemberRequests monthly: %v", err)
			return err
		}
		if monthly >= uc.cfg.DigitalMonthlyLimit {
			return lending.ErrMonthlyLimit
		}

	case model.KindPhysical:
		active, err := uc.repo.HasUnreturnedPhysical(ctx, memberID)
		if err != nil {
			uc.l.Errorf(ctx, "uc.CheckEligibility HasUnreturnedPhysical: %v", err)
			return err
		}
		if active {
			return lending.ErrActiveLoan
		}
	}

	return nil
}
