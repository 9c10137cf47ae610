package usecase

import (
	"context"
	"strings"

	"library-lending/internal/catalog"
	"library-lending/internal/catalog/repository"
	"library-lending/internal/model"
)

func (uc *implUseCase) Detail(ctx context.Context, id int64) (catalog.ItemOutput, error) {
	item, err := uc.repo.GetItem(ctx, id)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Detail GetItem: %v", err)
		return catalog.ItemOutput{}, err
	}
	if item.ID == 0 {
		return catalog.ItemOutput{}, catalog.ErrItemNotFound
	}
	return catalog.ItemOutput{Item: item}, nil
}

func (uc *implUseCase) ListRecent(ctx context.Context, input catalog.ListInput) (catalog.ListOutput, error) {
	items, err := uc.repo.ListRecentItems(ctx, clampLimit(input.Limit))
	if err != nil {
		uc.l.Errorf(ctx, "uc.ListRecent: %v", err)
		return catalog.ListOutput{}, err
	}
	return catalog.ListOutput{Items: items}, nil
}

func (uc *implUseCase) Search(ctx context.Context, input catalog.SearchInput) (catalog.ListOutput, error) {
	query := strings.TrimSpace(input.Query)
	if query == "" {
		return uc.ListRecent(ctx, catalog.ListInput{Limit: input.Limit})
	}
	items, err := uc.repo.SearchItems(ctx, repository.SearchItemsOptions{
		Query: query,
		Limit: clampLimit(input.Limit),
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Search: %v", err)
		return catalog.ListOutput{}, err
	}
	return catalog.ListOutput{Items: items}, nil
}

// Create registers a new catalog item. Physical items start Available;
// digital items carry Available as well but the value is never read.
func (uc *implUseCase) Create(ctx context.Context, input catalog.CreateItemInput) (catalog.ItemOutput, error) {
	if strings.TrimSpace(input.Title) == "" || !input.Kind.Valid() {
		return catalog.ItemOutput{}, catalog.ErrInvalidItem
	}
	duration := input.LoanDurationDays
	if duration <= 0 {
		duration = 14
	}

	item, err := uc.repo.CreateItem(ctx, repository.CreateItemOptions{
		Title:            input.Title,
		Author:           input.Author,
		Owner:            input.Owner,
		Location:         input.Location,
		Kind:             input.Kind,
		LoanDurationDays: duration,
		Availability:     model.AvailabilityAvailable,
		Keywords:         input.Keywords,
		CoverURL:         input.CoverURL,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Create: %v", err)
		return catalog.ItemOutput{}, err
	}
	return catalog.ItemOutput{Item: item}, nil
}

func (uc *implUseCase) Update(ctx context.Context, input catalog.UpdateItemInput) (catalog.ItemOutput, error) {
	if strings.TrimSpace(input.Title) == "" {
		return catalog.ItemOutput{}, catalog.ErrInvalidItem
	}

	item, found, err := uc.repo.UpdateItem(ctx, repository.UpdateItemOptions{
		ID:               input.ID,
		Title:            input.Title,
		Author:           input.Author,
		Owner:            input.Owner,
		Location:         input.Location,
		LoanDurationDays: input.LoanDurationDays,
		Keywords:         input.Keywords,
		CoverURL:         input.CoverURL,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Update: %v", err)
		return catalog.ItemOutput{}, err
	}
	if !found {
		return catalog.ItemOutput{}, catalog.ErrItemNotFound
	}
	return catalog.ItemOutput{Item: item}, nil
}
