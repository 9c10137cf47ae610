package usecase

import (
	"context"

	"library-lending/internal/audit"
	"library-lending/internal/audit/repository"
	"library-lending/internal/model"
)

// List returns audit entries newest first, optionally filtered by
// action and a lower time bound.
func (uc *implUseCase) List(ctx context.Context, input audit.ListInput) (audit.ListOutput, error) {
	if input.Action != "" && input.Action != model.ActionApproval && input.Action != model.ActionReturn {
		return audit.ListOutput{}, audit.ErrInvalidAction
	}

	limit := input.Limit
	if limit <= 0 {
		limit = defaultListLimit
	}
	if limit > maxListLimit {
		limit = maxListLimit
	}

	entries, err := uc.repo.ListEntries(ctx, repository.ListEntriesOptions{
		Action: input.Action,
		Since:  input.Since,
		Limit:  limit,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.List: %v", err)
		return audit.ListOutput{}, err
	}
	return audit.ListOutput{Entries: entries}, nil
}
