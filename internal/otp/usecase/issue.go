package usecase

import (
	"context"
	"crypto/rand"
	"fmt"
	"math/big"
	"strings"
	"time"

	"library-lending/internal/otp"
	"library-lending/internal/otp/repository"
)

// Issue looks the contact up in the member directory, mints a fresh
// code bound to the member's phone and dispatches it. Previous
// unverified codes for the same phone are invalidated first.
func (uc *implUseCase) Issue(ctx context.Context, input otp.IssueInput) (otp.IssueOutput, error) {
	contact := strings.TrimSpace(input.Contact)
	if contact == "" {
		return otp.IssueOutput{}, otp.ErrMemberNotFound
	}

	if !uc.limiter(contact).Allow() {
		return otp.IssueOutput{}, otp.ErrTooManyRequests
	}

	member, err := uc.members.GetMemberByContact(ctx, contact)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Issue GetMemberByContact: %v", err)
		return otp.IssueOutput{}, err
	}
	if member.ID == 0 || member.Phone == "" {
		return otp.IssueOutput{}, otp.ErrMemberNotFound
	}

	if err := uc.repo.DeleteUnverifiedChallenges(ctx, member.Phone); err != nil {
		uc.l.Errorf(ctx, "uc.Issue DeleteUnverifiedChallenges: %v", err)
		return otp.IssueOutput{}, err
	}

	code, err := generateCode()
	if err != nil {
		uc.l.Errorf(ctx, "uc.Issue generateCode: %v", err)
		return otp.IssueOutput{}, err
	}

	challenge, err := uc.repo.CreateChallenge(ctx, repository.CreateChallengeOptions{
		Phone:     member.Phone,
		Code:      code,
		ExpiresAt: time.Now().Add(uc.cfg.CodeTTL),
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Issue CreateChallenge: %v", err)
		return otp.IssueOutput{}, err
	}

	uc.tryNotify(ctx, member.Phone, fmt.Sprintf("Your library verification code is %s. It expires in %d minutes.", code, int(uc.cfg.CodeTTL.Minutes())))

	return otp.IssueOutput{
		Destination: maskPhone(member.Phone),
		ExpiresAt:   challenge.ExpiresAt,
	}, nil
}

// generateCode draws a uniform 6-digit numeric code.
func generateCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(1_000_000))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%06d", n.Int64()), nil
}

// maskPhone hides all but the last two digits.
func maskPhone(phone string) string {
	if len(phone) <= 2 {
		return phone
	}
	return strings.Repeat("*", len(phone)-2) + phone[len(phone)-2:]
}
