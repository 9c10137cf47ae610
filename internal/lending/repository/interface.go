package repository

import (
	"context"
	"time"

	"library-lending/internal/model"
)

// Repository is the composed interface for the lending domain data
// store. Every method that guards a state transition does so with a
// single conditional update; the reported bool is the guard outcome.
type Repository interface {
	RequestRepository
	ItemRepository
}

// RequestRepository defines data access for loan requests.
type RequestRepository interface {
	CreateRequest(ctx context.Context, opt CreateRequestOptions) (model.LoanRequest, error)

	// GetRequestByToken returns a zero-value request (Token == "")
	// when not found — do NOT return an error for not-found.
	GetRequestByToken(ctx context.Context, token string) (model.LoanRequest, error)

	// DeleteRequest removes a request row. Only used for the
	// immediate rollback right after creation.
	DeleteRequest(ctx context.Context, token string) error

	// ApprovePendingRequest atomically moves a Pending request to
	// Approved, setting the set-once timestamps. Reports false when
	// the request was not Pending.
	ApprovePendingRequest(ctx context.Context, opt ApproveRequestOptions) (model.LoanRequest, bool, error)

	// ApproveDigitalRequest is the digital auto-approval: Approved,
	// NotApplicable return status, no delivery or due date.
	ApproveDigitalRequest(ctx context.Context, token string, approvedAt time.Time) (model.LoanRequest, bool, error)

	// UpdateApprovalStatus atomically moves a request to opt.To when
	// its current status is one of opt.From. Reports false when the
	// guard did not match.
	UpdateApprovalStatus(ctx context.Context, opt UpdateApprovalStatusOptions) (bool, error)

	// MarkRequestReturned atomically closes an Approved, unreturned
	// physical loan. Reports false when the request was not actively
	// held.
	MarkRequestReturned(ctx context.Context, token string) (model.LoanRequest, bool, error)

	// CountMemberRequests counts a member's requests of one kind
	// created at or after opt.Since.
	CountMemberRequests(ctx context.Context, opt CountMemberRequestsOptions) (int, error)

	// HasUnreturnedPhysical reports whether the member has any
	// physical request whose return status is not Returned.
	HasUnreturnedPhysical(ctx context.Context, memberID int64) (bool, error)

	// ListStalePending returns physical Pending requests created at or
	// before cutoff.
	ListStalePending(ctx context.Context, cutoff time.Time) ([]model.LoanRequest, error)
}

// ItemRepository defines the availability operations the state machine
// needs on catalog items.
type ItemRepository interface {
	// GetItem returns a zero-value item (ID == 0) when not found.
	GetItem(ctx context.Context, id int64) (model.Item, error)

	// HoldItem atomically moves an Available item to OnHold. Reports
	// false when the item was not Available — the caller lost the
	// race.
	HoldItem(ctx context.Context, id int64) (bool, error)

	// SetItemAvailability sets availability unconditionally (Taken on
	// approval, Available on release).
	SetItemAvailability(ctx context.Context, id int64, to model.Availability) error
}
