package usecase

import (
	"context"

	"library-lending/internal/lending"
	"library-lending/internal/model"
)

// MarkReturned closes a physical loan: return status becomes Returned
// and the item goes back to Available. The approval status stays
// Approved — that it was once approved is a historical fact.
func (uc *implUseCase) MarkReturned(ctx context.Context, token string) (lending.RequestOutput, error) {
	req, err := uc.repo.GetRequestByToken(ctx, token)
	if err != nil {
		uc.l.Errorf(ctx, "uc.MarkReturned GetRequestByToken: %v", err)
		return lending.RequestOutput{}, err
	}
	if req.Token == "" {
		return lending.RequestOutput{}, lending.ErrRequestNotFound
	}
	if req.ReturnStatus == model.ReturnNotApplicable {
		// Digital loans are never returned.
		return lending.RequestOutput{}, lending.ErrInvalidOperation
	}

	updated, claimed, err := uc.repo.MarkRequestReturned(ctx, token)
	if err != nil {
		uc.l.Errorf(ctx, "uc.MarkReturned MarkRequestReturned: %v", err)
		return lending.RequestOutput{}, err
	}
	if !claimed {
		// Not actively held: never approved, or already returned.
		return lending.RequestOutput{}, lending.ErrInvalidOperation
	}

	if err := uc.releaseItem(ctx, updated); err != nil {
		return lending.RequestOutput{}, err
	}

	return lending.RequestOutput{Request: updated}, nil
}

// Detail returns the current state of a request by token.
func (uc *implUseCase) Detail(ctx context.Context, token string) (lending.RequestOutput, error) {
	req, err := uc.repo.GetRequestByToken(ctx, token)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Detail GetRequestByToken: %v", err)
		return lending.RequestOutput{}, err
	}
	if req.Token == "" {
		return lending.RequestOutput{}, lending.ErrRequestNotFound
	}
	return lending.RequestOutput{Request: req}, nil
}
