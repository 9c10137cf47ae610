package repository

import (
	"context"

	"library-lending/internal/model"
)

// Repository is the append-only audit log. Entries are never updated
// or deleted once written.
type Repository interface {
	AppendEntry(ctx context.Context, opt AppendEntryOptions) (model.AuditEntry, error)
	ListEntries(ctx context.Context, opt ListEntriesOptions) ([]model.AuditEntry, error)
}
