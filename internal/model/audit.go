package model

import "time"

// AuditAction is the kind of recorded staff action.
type AuditAction string

const (
	ActionApproval AuditAction = "approval"
	ActionReturn   AuditAction = "return"
)

// AuditEntry is one immutable record of a staff approval or return
// action. Item title and member name are denormalized so reports
// survive deletion of the source records.
type AuditEntry struct {
	ID           int64
	Timestamp    time.Time
	Actor        string
	Action       AuditAction
	RequestToken string
	Note         string

	ItemTitleSnapshot  string
	MemberNameSnapshot string
	RequestedAt        *time.Time
}

// LeadTimeDays returns how many days passed between the request being
// submitted and this action being taken. Zero when the submission time
// was not captured.
func (e AuditEntry) LeadTimeDays() int {
	if e.RequestedAt == nil {
		return 0
	}
	return int(e.Timestamp.Sub(*e.RequestedAt).Hours() / 24)
}
