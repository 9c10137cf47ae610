package http

import (
	"time"

	"library-lending/internal/otp"
)

// --- Request DTOs ---

type sendReq struct {
	Contact string `json:"contact" binding:"required,min=3,max=255"`
}

func (r sendReq) toInput() otp.IssueInput {
	return otp.IssueInput{Contact: r.Contact}
}

type verifyReq struct {
	Contact string `json:"contact" binding:"required,min=3,max=255"`
	Code    string `json:"code"    binding:"required,len=6"`
}

func (r verifyReq) toInput() otp.VerifyInput {
	return otp.VerifyInput{Contact: r.Contact, Code: r.Code}
}

// --- Response DTOs ---

type sendResp struct {
	Destination string    `json:"destination"`
	ExpiresAt   time.Time `json:"expires_at"`
}

func (h *handler) newSendResp(out otp.IssueOutput) sendResp {
	return sendResp{
		Destination: out.Destination,
		ExpiresAt:   out.ExpiresAt,
	}
}

type verifyResp struct {
	SessionToken string    `json:"session_token"`
	ExpiresAt    time.Time `json:"expires_at"`
}

func (h *handler) newVerifyResp(out otp.VerifyOutput) verifyResp {
	return verifyResp{
		SessionToken: out.SessionToken,
		ExpiresAt:    out.ExpiresAt,
	}
}
