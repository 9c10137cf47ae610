package usecase

import (
	"context"

	"library-lending/internal/lending"
	repo "library-lending/internal/lending/repository"
	"library-lending/internal/model"
)

// Reject declines a request and releases its item.
func (uc *implUseCase) Reject(ctx context.Context, token string) (lending.RequestOutput, error) {
	return uc.release(ctx, token, model.ApprovalRejected)
}

// Expire times a request out and releases its item.
func (uc *implUseCase) Expire(ctx context.Context, token string) (lending.RequestOutput, error) {
	return uc.release(ctx, token, model.ApprovalExpired)
}

// release is the shared Rejected/Expired path. The sweep uses the same
// conditional transition, so an already-released request can never be
// released twice.
func (uc *implUseCase) release(ctx context.Context, token string, to model.ApprovalStatus) (lending.RequestOutput, error) {
	req, err := uc.repo.GetRequestByToken(ctx, token)
	if err != nil {
		uc.l.Errorf(ctx, "uc.release GetRequestByToken: %v", err)
		return lending.RequestOutput{}, err
	}
	if req.Token == "" {
		return lending.RequestOutput{}, lending.ErrRequestNotFound
	}
	if req.ApprovalStatus == to {
		// Repeat call with the same target status is a no-op.
		return lending.RequestOutput{Request: req}, nil
	}
	if req.ReturnStatus == model.ReturnReturned {
		// A completed loan is history; its approval stands and its
		// item may already be held by a newer request.
		return lending.RequestOutput{}, lending.ErrInvalidOperation
	}

	claimed, err := uc.repo.UpdateApprovalStatus(ctx, repo.UpdateApprovalStatusOptions{
		Token: token,
		To:    to,
		From:  []model.ApprovalStatus{model.ApprovalPending, model.ApprovalApproved},
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.release UpdateApprovalStatus: %v", err)
		return lending.RequestOutput{}, err
	}
	if !claimed {
		current, err := uc.repo.GetRequestByToken(ctx, token)
		if err != nil {
			return lending.RequestOutput{}, err
		}
		if current.ApprovalStatus == to {
			return lending.RequestOutput{Request: current}, nil
		}
		return lending.RequestOutput{}, lending.ErrInvalidOperation
	}

	if err := uc.releaseItem(ctx, req); err != nil {
		return lending.RequestOutput{}, err
	}

	updated, err := uc.repo.GetRequestByToken(ctx, token)
	if err != nil {
		return lending.RequestOutput{}, err
	}
	return lending.RequestOutput{Request: updated}, nil
}

// releaseItem puts a physical item back to Available. A request whose
// item reference is absent keeps its status but skips the availability
// mutation; digital items have no availability to mutate.
func (uc *implUseCase) releaseItem(ctx context.Context, req model.LoanRequest) error {
	if req.ItemID == nil {
		return nil
	}
	item, err := uc.repo.GetItem(ctx, *req.ItemID)
	if err != nil {
		uc.l.Errorf(ctx, "uc.releaseItem GetItem: %v", err)
		return err
	}
	if item.ID == 0 || item.Kind != model.KindPhysical {
		return nil
	}
	if err := uc.repo.SetItemAvailability(ctx, item.ID, model.AvailabilityAvailable); err != nil {
		uc.l.Errorf(ctx, "uc.releaseItem SetItemAvailability: %v", err)
		return err
	}
	return nil
}
