package repository

import (
	"context"

	"library-lending/internal/model"
)

// Repository defines data access for the member directory. The lending
// engine only reads members; writes come from the CSV importer and the
// admin CLI.
type Repository interface {
	// GetMemberByID returns a zero-value member (ID == 0) when not found.
	GetMemberByID(ctx context.Context, id int64) (model.Member, error)

	// GetMemberByContact looks a member up by exact email
	// (case-insensitive) or exact phone number.
	GetMemberByContact(ctx context.Context, contact string) (model.Member, error)

	// GetMemberByEmail returns a zero-value member when not found.
	GetMemberByEmail(ctx context.Context, email string) (model.Member, error)

	CreateMember(ctx context.Context, opt CreateMemberOptions) (model.Member, error)
}
