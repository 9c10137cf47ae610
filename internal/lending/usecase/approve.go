package usecase

import (
	"context"
	"fmt"
	"time"

	"library-lending/internal/lending"
	repo "library-lending/internal/lending/repository"
	"library-lending/internal/model"
)

// Approve confirms a pending request. The approval, delivery, and due
// timestamps are set once; re-approving an already approved request is
// a no-op returning current state.
func (uc *implUseCase) Approve(ctx context.Context, input lending.ApproveInput) (lending.RequestOutput, error) {
	req, err := uc.repo.GetRequestByToken(ctx, input.Token)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Approve GetRequestByToken: %v", err)
		return lending.RequestOutput{}, err
	}
	if req.Token == "" {
		return lending.RequestOutput{}, lending.ErrRequestNotFound
	}
	if req.ApprovalStatus == model.ApprovalApproved {
		return lending.RequestOutput{Request: req}, nil
	}
	if req.ApprovalStatus.Terminal() {
		return lending.RequestOutput{}, lending.ErrInvalidOperation
	}

	var item model.Item
	if req.ItemID != nil {
		item, err = uc.repo.GetItem(ctx, *req.ItemID)
		if err != nil {
			uc.l.Errorf(ctx, "uc.Approve GetItem: %v", err)
			return lending.RequestOutput{}, err
		}
	}

	now := time.Now()
	var (
		updated model.LoanRequest
		claimed bool
	)
	if item.Kind == model.KindDigital {
		// Digital requests keep their not_applicable return status;
		// due dates and delivery are physical-only concepts.
		updated, claimed, err = uc.repo.ApproveDigitalRequest(ctx, input.Token, now)
	} else {
		var dueAt *time.Time
		if item.ID != 0 {
			t := now.AddDate(0, 0, item.LoanDurationDays)
			dueAt = &t
		}
		updated, claimed, err = uc.repo.ApprovePendingRequest(ctx, repo.ApproveRequestOptions{
			Token:       input.Token,
			ApprovedAt:  now,
			DeliveredAt: now,
			DueAt:       dueAt,
		})
	}
	if err != nil {
		uc.l.Errorf(ctx, "uc.Approve approve transition: %v", err)
		return lending.RequestOutput{}, err
	}
	if !claimed {
		// Lost a race: re-read and report what actually happened.
		current, err := uc.repo.GetRequestByToken(ctx, input.Token)
		if err != nil {
			return lending.RequestOutput{}, err
		}
		if current.ApprovalStatus == model.ApprovalApproved {
			return lending.RequestOutput{Request: current}, nil
		}
		return lending.RequestOutput{}, lending.ErrInvalidOperation
	}

	// Absent item reference: status transition stands, availability untouched.
	if req.ItemID != nil && item.ID != 0 && item.Kind == model.KindPhysical {
		if err := uc.repo.SetItemAvailability(ctx, item.ID, model.AvailabilityTaken); err != nil {
			uc.l.Errorf(ctx, "uc.Approve SetItemAvailability: %v", err)
			return lending.RequestOutput{}, err
		}
	}

	uc.recordAction(ctx, model.ActionApproval, updated, item.Title, input.Actor, input.Note)

	if phone := uc.memberPhone(ctx, updated); phone != "" {
		due := ""
		if updated.DueAt != nil {
			due = " Due back " + updated.DueAt.Format("2006-01-02") + "."
		}
		uc.tryNotify(ctx, phone,
			fmt.Sprintf("Your request %s has been approved.%s", updated.Token, due))
	}

	return lending.RequestOutput{Request: updated}, nil
}
