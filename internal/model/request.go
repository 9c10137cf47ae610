package model

import "time"

// RequestStatus is the input-validation outcome, set once at creation.
type RequestStatus string

const (
	RequestValid   RequestStatus = "valid"
	RequestInvalid RequestStatus = "invalid"
)

// ApprovalStatus drives the item availability state machine.
type ApprovalStatus string

const (
	ApprovalPending  ApprovalStatus = "pending"
	ApprovalApproved ApprovalStatus = "approved"
	ApprovalRejected ApprovalStatus = "rejected"
	ApprovalExpired  ApprovalStatus = "expired"
)

// Terminal reports whether no further approval transition is allowed.
func (s ApprovalStatus) Terminal() bool {
	return s == ApprovalRejected || s == ApprovalExpired
}

// ReturnStatus tracks the return leg of a physical loan.
type ReturnStatus string

const (
	// ReturnNone is the unset state of a pending physical request: the
	// item is held but nothing is out on loan yet.
	ReturnNone ReturnStatus = ""

	ReturnNotApplicable ReturnStatus = "not_applicable"
	ReturnPending       ReturnStatus = "pending_return"
	ReturnReturned      ReturnStatus = "returned"
)

// LoanRequest is one member's request for one catalog item. The token
// is the request's public identity; member and item references are
// nullable so history survives record deletion.
type LoanRequest struct {
	Token    string
	MemberID *int64
	ItemID   *int64

	// Snapshots taken at submission so the row stays meaningful if the
	// member record is later unlinked.
	FullName string
	Email    string

	RequestStatus  RequestStatus
	ApprovalStatus ApprovalStatus
	ReturnStatus   ReturnStatus

	CreatedAt   time.Time
	ApprovedAt  *time.Time
	DeliveredAt *time.Time
	DueAt       *time.Time
}

// ActivelyHeld reports whether this request currently holds its item:
// approved and awaiting return.
func (r LoanRequest) ActivelyHeld() bool {
	return r.ApprovalStatus == ApprovalApproved && r.ReturnStatus == ReturnPending
}

// DaysLeft returns the number of whole days until the due date, or
// false when the request has no outstanding due date.
func (r LoanRequest) DaysLeft(now time.Time) (int, bool) {
	if r.DueAt == nil || r.ReturnStatus == ReturnReturned || r.ReturnStatus == ReturnNotApplicable {
		return 0, false
	}
	return int(r.DueAt.Sub(now).Hours() / 24), true
}
