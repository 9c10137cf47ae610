package catalog

import "context"

// UseCase is the read-mostly catalog surface plus the admin item
// writes. Availability is never written here; that belongs to the
// lending state machine.
type UseCase interface {
	Detail(ctx context.Context, id int64) (ItemOutput, error)
	ListRecent(ctx context.Context, input ListInput) (ListOutput, error)
	Search(ctx context.Context, input SearchInput) (ListOutput, error)

	Create(ctx context.Context, input CreateItemInput) (ItemOutput, error)
	Update(ctx context.Context, input UpdateItemInput) (ItemOutput, error)
}
