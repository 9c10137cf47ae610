package lending

import (
	"context"
	"time"

	"library-lending/internal/model"
)

// UseCase is the lending state machine: it owns the coupled
// Item/LoanRequest lifecycle and is the only writer of item
// availability.
type UseCase interface {
	// Submit creates a loan request for a verified member. Digital
	// items are approved immediately; physical items move to OnHold or
	// the request is rolled back with ErrItemUnavailable.
	Submit(ctx context.Context, input SubmitInput) (SubmitOutput, error)

	// CheckEligibility applies the borrowing-rate rules for one member
	// and item kind without creating anything.
	CheckEligibility(ctx context.Context, memberID int64, kind model.ItemKind) error

	// Approve confirms a pending physical request: item goes Taken and
	// the due date is fixed. Idempotent when already approved.
	Approve(ctx context.Context, input ApproveInput) (RequestOutput, error)

	// Reject and Expire release the hold. Both are idempotent on
	// repeat calls with the same target status.
	Reject(ctx context.Context, token string) (RequestOutput, error)
	Expire(ctx context.Context, token string) (RequestOutput, error)

	// MarkReturned closes a physical loan and releases the item.
	MarkReturned(ctx context.Context, token string) (RequestOutput, error)

	// SweepExpired expires physical requests still Pending past the
	// hold TTL and returns how many it transitioned.
	SweepExpired(ctx context.Context, now time.Time) (int, error)

	// Detail returns the current state of a request by token.
	Detail(ctx context.Context, token string) (RequestOutput, error)
}
