package repository

import (
	"time"

	"library-lending/internal/model"
)

type AppendEntryOptions struct {
	Actor        string
	Action       model.AuditAction
	RequestToken string
	Note         string

	ItemTitleSnapshot  string
	MemberNameSnapshot string
	RequestedAt        *time.Time
}

type ListEntriesOptions struct {
	Action model.AuditAction // empty = all actions
	Since  time.Time         // zero = no lower bound
	Limit  int
}
