package usecase

import (
	"context"
	"errors"

	"library-lending/internal/lending"
	"library-lending/internal/model"
	"library-lending/internal/returns"
)

// Lookup resolves a return-desk token. Digital requests never reach
// the desk; they are rejected up front so staff cannot confirm a
// return that does not exist physically.
func (uc *implUseCase) Lookup(ctx context.Context, token string) (returns.LookupOutput, error) {
	detail, err := uc.lending.Detail(ctx, token)
	if err != nil {
		if errors.Is(err, lending.ErrRequestNotFound) {
			return returns.LookupOutput{}, returns.ErrRequestNotFound
		}
		uc.l.Errorf(ctx, "uc.Lookup Detail: %v", err)
		return returns.LookupOutput{}, err
	}

	req := detail.Request
	if req.ReturnStatus == model.ReturnNotApplicable {
		return returns.LookupOutput{}, returns.ErrWrongKind
	}

	out := returns.LookupOutput{Request: req}
	if req.ItemID != nil {
		item, err := uc.items.GetItem(ctx, *req.ItemID)
		if err != nil {
			uc.l.Errorf(ctx, "uc.Lookup GetItem: %v", err)
			return returns.LookupOutput{}, err
		}
		out.Item = item
	}
	return out, nil
}
