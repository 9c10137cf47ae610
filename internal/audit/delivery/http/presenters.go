package http

import (
	"time"

	"library-lending/internal/audit"
	"library-lending/internal/model"
)

// --- Request DTOs ---

type listReq struct {
	Action   string    `form:"action"`
	SinceRaw string    `form:"since"`
	Since    time.Time `form:"-"`
	Limit    int       `form:"limit"`
}

func (r listReq) toInput() audit.ListInput {
	return audit.ListInput{
		Action: model.AuditAction(r.Action),
		Since:  r.Since,
		Limit:  r.Limit,
	}
}

// --- Response DTOs ---

type entryResp struct {
	ID           int64      `json:"id"`
	Timestamp    time.Time  `json:"timestamp"`
	Actor        string     `json:"actor"`
	Action       string     `json:"action"`
	RequestToken string     `json:"request_token"`
	Note         string     `json:"note,omitempty"`
	ItemTitle    string     `json:"item_title"`
	MemberName   string     `json:"member_name"`
	RequestedAt  *time.Time `json:"requested_at,omitempty"`
	LeadTimeDays int        `json:"lead_time_days"`
}

func newEntryResp(e model.AuditEntry) entryResp {
	return entryResp{
		ID:           e.ID,
		Timestamp:    e.Timestamp,
		Actor:        e.Actor,
		Action:       string(e.Action),
		RequestToken: e.RequestToken,
		Note:         e.Note,
		ItemTitle:    e.ItemTitleSnapshot,
		MemberName:   e.MemberNameSnapshot,
		RequestedAt:  e.RequestedAt,
		LeadTimeDays: e.LeadTimeDays(),
	}
}

type listResp struct {
	Entries []entryResp `json:"entries"`
}

func (h *handler) newListResp(out audit.ListOutput) listResp {
	entries := make([]entryResp, len(out.Entries))
	for i, e := range out.Entries {
		entries[i] = newEntryResp(e)
	}
	return listResp{Entries: entries}
}
