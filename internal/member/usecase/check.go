package usecase

import (
	"context"
	"strings"

	"library-lending/internal/member"
)

// Check reports whether a contact belongs to a registered member. The
// route is unauthenticated, so the answer carries the display name and
// nothing else.
func (uc *implUseCase) Check(ctx context.Context, contact string) (member.CheckOutput, error) {
	contact = strings.TrimSpace(contact)
	if contact == "" {
		return member.CheckOutput{}, nil
	}

	m, err := uc.repo.GetMemberByContact(ctx, contact)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Check GetMemberByContact: %v", err)
		return member.CheckOutput{}, err
	}
	if m.ID == 0 {
		return member.CheckOutput{}, nil
	}
	return member.CheckOutput{Exists: true, DisplayName: m.DisplayName()}, nil
}

// Detail returns the full member record behind a contact.
func (uc *implUseCase) Detail(ctx context.Context, contact string) (member.MemberOutput, error) {
	m, err := uc.repo.GetMemberByContact(ctx, strings.TrimSpace(contact))
	if err != nil {
		uc.l.Errorf(ctx, "uc.Detail GetMemberByContact: %v", err)
		return member.MemberOutput{}, err
	}
	if m.ID == 0 {
		return member.MemberOutput{}, member.ErrMemberNotFound
	}
	return member.MemberOutput{Member: m}, nil
}
