package usecase

import (
	"context"
	"errors"

	auditRepo "library-lending/internal/audit/repository"
	"library-lending/internal/lending"
	"library-lending/internal/model"
	"library-lending/internal/returns"
)

// ConfirmReturn closes the loan and records who confirmed it. The
// transition commits first; the audit row snapshots the item title and
// member name so the record outlives the request.
func (uc *implUseCase) ConfirmReturn(ctx context.Context, input returns.ConfirmInput) (returns.ConfirmOutput, error) {
	lookup, err := uc.Lookup(ctx, input.Token)
	if err != nil {
		return returns.ConfirmOutput{}, err
	}

	out, err := uc.lending.MarkReturned(ctx, input.Token)
	if err != nil {
		if errors.Is(err, lending.ErrInvalidOperation) {
			return returns.ConfirmOutput{}, returns.ErrNotReturnable
		}
		uc.l.Errorf(ctx, "uc.ConfirmReturn MarkReturned: %v", err)
		return returns.ConfirmOutput{}, err
	}

	req := out.Request
	createdAt := req.CreatedAt
	entry, err := uc.audit.AppendEntry(ctx, auditRepo.AppendEntryOptions{
		Actor:              input.Actor,
		Action:             model.ActionReturn,
		RequestToken:       req.Token,
		Note:               input.Note,
		ItemTitleSnapshot:  lookup.Item.Title,
		MemberNameSnapshot: req.FullName,
		RequestedAt:        &createdAt,
	})
	if err != nil {
		// The return itself is committed. Report the entry failure but
		// do not undo the transition.
		uc.l.Errorf(ctx, "uc.ConfirmReturn AppendEntry: %v", err)
		return returns.ConfirmOutput{Request: req}, err
	}

	return returns.ConfirmOutput{Request: req, Entry: entry}, nil
}
