package repository

import (
	"time"

	"library-lending/internal/model"
)

type CreateRequestOptions struct {
	Token    string
	MemberID *int64
	ItemID   *int64
	FullName string
	Email    string

	RequestStatus  model.RequestStatus
	ApprovalStatus model.ApprovalStatus
	ReturnStatus   model.ReturnStatus
}

type ApproveRequestOptions struct {
	Token string

	// ApprovedAt/DeliveredAt/DueAt are applied with COALESCE so a
	// value already set on the row is never recomputed. A nil DueAt
	// leaves the row without a due date.
	ApprovedAt  time.Time
	DeliveredAt time.Time
	DueAt       *time.Time
}

type UpdateApprovalStatusOptions struct {
	Token string
	To    model.ApprovalStatus
	From  []model.ApprovalStatus
}

type CountMemberRequestsOptions struct {
	MemberID int64
	Kind     model.ItemKind
	Since    time.Time
}
