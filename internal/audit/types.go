package audit

import (
	"time"

	"library-lending/internal/model"
)

// --- UseCase Inputs ---

type ListInput struct {
	Action model.AuditAction // empty = all actions
	Since  time.Time         // zero = no lower bound
	Limit  int
}

// --- UseCase Outputs ---

type ListOutput struct {
	Entries []model.AuditEntry
}
