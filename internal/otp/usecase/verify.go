package usecase

import (
	"context"
	"strings"
	"time"

	"library-lending/internal/otp"
	"library-lending/internal/otp/repository"
)

// Verify claims the code for the contact's phone and mints a verified
// session on success. A wrong, expired or already-claimed code all
// report the same failure; a correct submission never distinguishes
// which guard rejected it.
func (uc *implUseCase) Verify(ctx context.Context, input otp.VerifyInput) (otp.VerifyOutput, error) {
	contact := strings.TrimSpace(input.Contact)
	code := strings.TrimSpace(input.Code)
	if contact == "" || code == "" {
		return otp.VerifyOutput{}, otp.ErrInvalidCode
	}

	member, err := uc.members.GetMemberByContact(ctx, contact)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Verify GetMemberByContact: %v", err)
		return otp.VerifyOutput{}, err
	}
	if member.ID == 0 {
		return otp.VerifyOutput{}, otp.ErrMemberNotFound
	}

	now := time.Now()
	_, claimed, err := uc.repo.ClaimChallenge(ctx, repository.ClaimChallengeOptions{
		Phone: member.Phone,
		Code:  code,
		Now:   now,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Verify ClaimChallenge: %v", err)
		return otp.VerifyOutput{}, err
	}
	if !claimed {
		return otp.VerifyOutput{}, otp.ErrInvalidCode
	}

	sess := uc.sessions.Issue(member.ID, member.Phone, now)
	return otp.VerifyOutput{
		SessionToken: sess.Token,
		ExpiresAt:    sess.ExpiresAt,
	}, nil
}
