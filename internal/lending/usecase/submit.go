package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"library-lending/internal/lending"
	repo "library-lending/internal/lending/repository"
	"library-lending/internal/model"
)

// Submit creates a loan request for a verified member. The verified
// session is the capability gating submission; eligibility is checked
// at submission time only.
func (uc *implUseCase) Submit(ctx context.Context, input lending.SubmitInput) (lending.SubmitOutput, error) {
	now := time.Now()

	sess, ok := uc.sessions.Get(input.SessionToken, now)
	if !ok {
		return lending.SubmitOutput{}, lending.ErrSessionExpired
	}

	member, err := uc.members.GetMemberByID(ctx, sess.MemberID)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Submit GetMemberByID: %v", err)
		return lending.SubmitOutput{}, err
	}
	if member.ID == 0 {
		return lending.SubmitOutput{}, lending.ErrMemberNotFound
	}

	item, err := uc.repo.GetItem(ctx, input.ItemID)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Submit GetItem: %v", err)
		return lending.SubmitOutput{}, err
	}
	if item.ID == 0 {
		return lending.SubmitOutput{}, lending.ErrItemNotFound
	}

	if err := uc.CheckEligibility(ctx, member.ID, item.Kind); err != nil {
		return lending.SubmitOutput{}, err
	}

	returnStatus := model.ReturnNone
	if item.Kind == model.KindDigital {
		returnStatus = model.ReturnNotApplicable
	}

	memberID, itemID := member.ID, item.ID
	req, err := uc.repo.CreateRequest(ctx, repo.CreateRequestOptions{
		Token:          uuid.NewString(),
		MemberID:       &memberID,
		ItemID:         &itemID,
		FullName:       member.DisplayName(),
		Email:          member.Email,
		RequestStatus:  model.RequestValid,
		ApprovalStatus: model.ApprovalPending,
		ReturnStatus:   returnStatus,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Submit CreateRequest: %v", err)
		return lending.SubmitOutput{}, err
	}

	if item.Kind == model.KindDigital {
		return uc.completeDigitalSubmit(ctx, req, item, member, now)
	}
	return uc.completePhysicalSubmit(ctx, req, item, member)
}

// completeDigitalSubmit auto-approves a digital request. Digital items
// have no availability state, so no item mutation happens. A failed
// approval deletes the just-created Pending row, so a submission either
// yields an approved request or nothing.
func (uc *implUseCase) completeDigitalSubmit(ctx context.Context, req model.LoanRequest, item model.Item, member model.Member, now time.Time) (lending.SubmitOutput, error) {
	approved, claimed, err := uc.repo.ApproveDigitalRequest(ctx, req.Token, now)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Submit ApproveDigitalRequest: %v", err)
		if delErr := uc.repo.DeleteRequest(ctx, req.Token); delErr != nil {
			uc.l.Errorf(ctx, "uc.Submit rollback DeleteRequest: %v", delErr)
		}
		return lending.SubmitOutput{}, err
	}
	if !claimed {
		// The row was finalized out from under us; report its state.
		approved, err = uc.repo.GetRequestByToken(ctx, req.Token)
		if err != nil {
			return lending.SubmitOutput{}, err
		}
	}

	uc.tryNotify(ctx, member.Phone,
		fmt.Sprintf("Your digital loan of %q is ready. Access it at %s. Reference: %s", item.Title, item.Location, approved.Token))

	return lending.SubmitOutput{Request: approved, Item: item}, nil
}

// completePhysicalSubmit claims the hold on a physical item. The
// Available→OnHold guard arbitrates concurrent submissions: the loser
// gets its just-created request deleted, never a dangling Pending row.
func (uc *implUseCase) completePhysicalSubmit(ctx context.Context, req model.LoanRequest, item model.Item, member model.Member) (lending.SubmitOutput, error) {
	held, err := uc.repo.HoldItem(ctx, item.ID)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Submit HoldItem: %v", err)
		if delErr := uc.repo.DeleteRequest(ctx, req.Token); delErr != nil {
			uc.l.Errorf(ctx, "uc.Submit rollback DeleteRequest: %v", delErr)
		}
		return lending.SubmitOutput{}, err
	}
	if !held {
		if delErr := uc.repo.DeleteRequest(ctx, req.Token); delErr != nil {
			uc.l.Errorf(ctx, "uc.Submit rollback DeleteRequest: %v", delErr)
		}
		return lending.SubmitOutput{}, lending.ErrItemUnavailable
	}

	item.Availability = model.AvailabilityOnHold

	uc.tryNotify(ctx, member.Phone,
		fmt.Sprintf("Request received for %q. Your token is %s. You will be notified once it is approved.", item.Title, req.Token))

	return lending.SubmitOutput{Request: req, Item: item}, nil
}
