package http

import (
	"time"

	"library-lending/internal/lending"
	"library-lending/internal/model"
)

// --- Request DTOs ---

type submitReq struct {
	SessionToken string `json:"-"` // populated from the header
	ItemID       int64  `json:"item_id" binding:"required,min=1"`
}

func (r submitReq) toInput() lending.SubmitInput {
	return lending.SubmitInput{
		SessionToken: r.SessionToken,
		ItemID:       r.ItemID,
	}
}

type approveReq struct {
	Token string `json:"-"` // populated from the URI param
	Actor string `json:"actor" binding:"omitempty,max=255"`
	Note  string `json:"note"  binding:"omitempty,max=1000"`
}

func (r approveReq) toInput() lending.ApproveInput {
	return lending.ApproveInput{
		Token: r.Token,
		Actor: r.Actor,
		Note:  r.Note,
	}
}

// --- Response DTOs ---

type loanRequestResp struct {
	Token          string     `json:"token"`
	FullName       string     `json:"full_name"`
	Email          string     `json:"email"`
	ItemID         *int64     `json:"item_id,omitempty"`
	ApprovalStatus string     `json:"approval_status"`
	ReturnStatus   string     `json:"return_status,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
	ApprovedAt     *time.Time `json:"approved_at,omitempty"`
	DeliveredAt    *time.Time `json:"delivered_at,omitempty"`
	DueAt          *time.Time `json:"due_at,omitempty"`
}

func newLoanRequestResp(req model.LoanRequest) loanRequestResp {
	return loanRequestResp{
		Token:          req.Token,
		FullName:       req.FullName,
		Email:          req.Email,
		ItemID:         req.ItemID,
		ApprovalStatus: string(req.ApprovalStatus),
		ReturnStatus:   string(req.ReturnStatus),
		CreatedAt:      req.CreatedAt,
		ApprovedAt:     req.ApprovedAt,
		DeliveredAt:    req.DeliveredAt,
		DueAt:          req.DueAt,
	}
}

type submitResp struct {
	Request loanRequestResp `json:"request"`
	Item    submitItemResp  `json:"item"`
}

type submitItemResp struct {
	ID           int64  `json:"id"`
	Title        string `json:"title"`
	Kind         string `json:"kind"`
	Availability string `json:"availability,omitempty"`
}

func (h *handler) newSubmitResp(out lending.SubmitOutput) submitResp {
	return submitResp{
		Request: newLoanRequestResp(out.Request),
		Item: submitItemResp{
			ID:           out.Item.ID,
			Title:        out.Item.Title,
			Kind:         string(out.Item.Kind),
			Availability: string(out.Item.Availability),
		},
	}
}

type requestResp struct {
	Request loanRequestResp `json:"request"`
}

func (h *handler) newRequestResp(out lending.RequestOutput) requestResp {
	return requestResp{Request: newLoanRequestResp(out.Request)}
}
