package usecase

import (
	"context"

	auditRepo "library-lending/internal/audit/repository"
	"library-lending/internal/model"
)

// tryNotify dispatches a notification fire-and-forget. A transition is
// complete before delivery is attempted; failures are logged and
// swallowed, never surfaced to the caller.
func (uc *implUseCase) tryNotify(ctx context.Context, destination, body string) {
	if uc.notifier == nil || destination == "" {
		return
	}
	if err := uc.notifier.Send(ctx, destination, body); err != nil {
		uc.l.Warnf(ctx, "uc.tryNotify: delivery to %s failed (non-fatal): %v", destination, err)
	}
}

// memberPhone resolves the phone of the member linked to a request, or
// empty when the request is unlinked.
func (uc *implUseCase) memberPhone(ctx context.Context, req model.LoanRequest) string {
	if req.MemberID == nil {
		return ""
	}
	member, err := uc.members.GetMemberByID(ctx, *req.MemberID)
	if err != nil || member.ID == 0 {
		return ""
	}
	return member.Phone
}

// recordAction appends an audit entry for a completed transition. The
// transition has already committed, so append failures are logged, not
// propagated.
func (uc *implUseCase) recordAction(ctx context.Context, action model.AuditAction, req model.LoanRequest, itemTitle, actor, note string) {
	if uc.audit == nil {
		return
	}
	createdAt := req.CreatedAt
	_, err := uc.audit.AppendEntry(ctx, auditRepo.AppendEntryOptions{
		Actor:              actor,
		Action:             action,
		RequestToken:       req.Token,
		Note:               note,
		ItemTitleSnapshot:  itemTitle,
		MemberNameSnapshot: req.FullName,
		RequestedAt:        &createdAt,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.recordAction AppendEntry: %v", err)
	}
}
