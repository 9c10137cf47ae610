package repository

import (
	"context"

	"library-lending/internal/model"
)

// Repository defines data access for the item catalog.
type Repository interface {
	CreateItem(ctx context.Context, opt CreateItemOptions) (model.Item, error)

	// GetItem returns a zero-value item (ID == 0) when not found.
	GetItem(ctx context.Context, id int64) (model.Item, error)

	ListRecentItems(ctx context.Context, limit int) ([]model.Item, error)

	// SearchItems matches the query case-insensitively against title,
	// author and keywords.
	SearchItems(ctx context.Context, opt SearchItemsOptions) ([]model.Item, error)

	// UpdateItem rewrites the descriptive fields of an item. It never
	// touches availability. Reports false when the item does not exist.
	UpdateItem(ctx context.Context, opt UpdateItemOptions) (model.Item, bool, error)
}
