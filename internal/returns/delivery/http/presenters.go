package http

import (
	"time"

	"library-lending/internal/model"
	"library-lending/internal/returns"
)

// --- Request DTOs ---

type confirmReq struct {
	Token string `json:"-"` // populated from the URI param
	Actor string `json:"actor" binding:"omitempty,max=255"`
	Note  string `json:"note"  binding:"omitempty,max=1000"`
}

func (r confirmReq) toInput() returns.ConfirmInput {
	return returns.ConfirmInput{
		Token: r.Token,
		Actor: r.Actor,
		Note:  r.Note,
	}
}

// --- Response DTOs ---

type loanResp struct {
	Token          string     `json:"token"`
	FullName       string     `json:"full_name"`
	ApprovalStatus string     `json:"approval_status"`
	ReturnStatus   string     `json:"return_status,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
	DueAt          *time.Time `json:"due_at,omitempty"`
}

func newLoanResp(req model.LoanRequest) loanResp {
	return loanResp{
		Token:          req.Token,
		FullName:       req.FullName,
		ApprovalStatus: string(req.ApprovalStatus),
		ReturnStatus:   string(req.ReturnStatus),
		CreatedAt:      req.CreatedAt,
		DueAt:          req.DueAt,
	}
}

type lookupItemResp struct {
	ID       int64  `json:"id"`
	Title    string `json:"title"`
	Author   string `json:"author,omitempty"`
	Location string `json:"location,omitempty"`
}

type lookupResp struct {
	Request loanResp       `json:"request"`
	Item    lookupItemResp `json:"item"`
}

func (h *handler) newLookupResp(out returns.LookupOutput) lookupResp {
	return lookupResp{
		Request: newLoanResp(out.Request),
		Item: lookupItemResp{
			ID:       out.Item.ID,
			Title:    out.Item.Title,
			Author:   out.Item.Author,
			Location: out.Item.Location,
		},
	}
}

type auditEntryResp struct {
	ID           int64      `json:"id"`
	Timestamp    time.Time  `json:"timestamp"`
	Actor        string     `json:"actor"`
	Action       string     `json:"action"`
	RequestToken string     `json:"request_token"`
	Note         string     `json:"note,omitempty"`
	ItemTitle    string     `json:"item_title"`
	MemberName   string     `json:"member_name"`
	RequestedAt  *time.Time `json:"requested_at,omitempty"`
}

type confirmResp struct {
	Request loanResp       `json:"request"`
	Entry   auditEntryResp `json:"entry"`
}

func (h *handler) newConfirmResp(out returns.ConfirmOutput) confirmResp {
	return confirmResp{
		Request: newLoanResp(out.Request),
		Entry: auditEntryResp{
			ID:           out.Entry.ID,
			Timestamp:    out.Entry.Timestamp,
			Actor:        out.Entry.Actor,
			Action:       string(out.Entry.Action),
			RequestToken: out.Entry.RequestToken,
			Note:         out.Entry.Note,
			ItemTitle:    out.Entry.ItemTitleSnapshot,
			MemberName:   out.Entry.MemberNameSnapshot,
			RequestedAt:  out.Entry.RequestedAt,
		},
	}
}
