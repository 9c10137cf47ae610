package usecase_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	auditRepo "library-lending/internal/audit/repository"
	"library-lending/internal/lending"
	"library-lending/internal/model"
	"library-lending/internal/returns"
	"library-lending/internal/returns/usecase"
)

var errAuditDown = errors.New("audit store down")

type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Debugf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Info(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Infof(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Warnf(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Error(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Errorf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, args ...any)                 {}
func (m *mockLogger) DPanicf(ctx context.Context, format string, args ...any) {}
func (m *mockLogger) Panic(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Panicf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Fatalf(ctx context.Context, format string, args ...any)  {}

// mockLending fakes the state machine's Detail and MarkReturned with
// the same guard conditions the real one enforces.
type mockLending struct {
	mu       sync.Mutex
	requests map[string]model.LoanRequest
}

func (m *mockLending) put(req model.LoanRequest) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.requests[req.Token] = req
}

func (m *mockLending) Detail(ctx context.Context, token string) (lending.RequestOutput, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	req, ok := m.requests[token]
	if !ok {
		return lending.RequestOutput{}, lending.ErrRequestNotFound
	}
	return lending.RequestOutput{Request: req}, nil
}

func (m *mockLending) MarkReturned(ctx context.Context, token string) (lending.RequestOutput, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	req, ok := m.requests[token]
	if !ok {
		return lending.RequestOutput{}, lending.ErrRequestNotFound
	}
	if req.ReturnStatus != model.ReturnPending || req.ApprovalStatus != model.ApprovalApproved {
		return lending.RequestOutput{}, lending.ErrInvalidOperation
	}
	req.ReturnStatus = model.ReturnReturned
	m.requests[token] = req
	return lending.RequestOutput{Request: req}, nil
}

func (m *mockLending) Submit(ctx context.Context, input lending.SubmitInput) (lending.SubmitOutput, error) {
	panic("not used")
}
func (m *mockLending) CheckEligibility(ctx context.Context, memberID int64, kind model.ItemKind) error {
	panic("not used")
}
func (m *mockLending) Approve(ctx context.Context, input lending.ApproveInput) (lending.RequestOutput, error) {
	panic("not used")
}
func (m *mockLending) Reject(ctx context.Context, token string) (lending.RequestOutput, error) {
	panic("not used")
}
func (m *mockLending) Expire(ctx context.Context, token string) (lending.RequestOutput, error) {
	panic("not used")
}
func (m *mockLending) SweepExpired(ctx context.Context, now time.Time) (int, error) {
	panic("not used")
}

type mockItems struct {
	items map[int64]model.Item
}

func (m *mockItems) GetItem(ctx context.Context, id int64) (model.Item, error) {
	return m.items[id], nil
}

func (m *mockItems) HoldItem(ctx context.Context, id int64) (bool, error) {
	return false, errors.New("not implemented")
}

func (m *mockItems) SetItemAvailability(ctx context.Context, id int64, to model.Availability) error {
	return errors.New("not implemented")
}

type mockAudit struct {
	mu      sync.Mutex
	fail    bool
	nextID  int64
	entries []model.AuditEntry
}

func (m *mockAudit) AppendEntry(ctx context.Context, opt auditRepo.AppendEntryOptions) (model.AuditEntry, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.fail {
		return model.AuditEntry{}, errAuditDown
	}
	m.nextID++
	entry := model.AuditEntry{
		ID:                 m.nextID,
		Timestamp:          time.Now(),
		Actor:              opt.Actor,
		Action:             opt.Action,
		RequestToken:       opt.RequestToken,
		Note:               opt.Note,
		ItemTitleSnapshot:  opt.ItemTitleSnapshot,
		MemberNameSnapshot: opt.MemberNameSnapshot,
		RequestedAt:        opt.RequestedAt,
	}
	m.entries = append(m.entries, entry)
	return entry, nil
}

func (m *mockAudit) ListEntries(ctx context.Context, opt auditRepo.ListEntriesOptions) ([]model.AuditEntry, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]model.AuditEntry(nil), m.entries...), nil
}

type fixture struct {
	uc      returns.UseCase
	lending *mockLending
	audit   *mockAudit
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	lendingUC := &mockLending{requests: make(map[string]model.LoanRequest)}
	items := &mockItems{items: map[int64]model.Item{
		7: {ID: 7, Title: "Things Fall Apart", Kind: model.KindPhysical, Availability: model.AvailabilityTaken},
	}}
	audit := &mockAudit{}
	return &fixture{
		uc:      usecase.New(lendingUC, items, audit, &mockLogger{}),
		lending: lendingUC,
		audit:   audit,
	}
}

func ptrInt64(v int64) *int64 { return &v }

func activeLoan(token string) model.LoanRequest {
	return model.LoanRequest{
		Token:          token,
		MemberID:       ptrInt64(1),
		ItemID:         ptrInt64(7),
		FullName:       "Ama Mensah",
		RequestStatus:  model.RequestValid,
		ApprovalStatus: model.ApprovalApproved,
		ReturnStatus:   model.ReturnPending,
		CreatedAt:      time.Now().Add(-48 * time.Hour),
	}
}

func TestLookupActivePhysicalLoan(t *testing.T) {
	f := newFixture(t)
	f.lending.put(activeLoan("tok-1"))

	out, err := f.uc.Lookup(context.Background(), "tok-1")
	if err != nil {
		t.Fatalf("Lookup: %v", err)
	}
	if out.Request.Token != "tok-1" {
		t.Errorf("wrong request: %+v", out.Request)
	}
	if out.Item.Title != "Things Fall Apart" {
		t.Errorf("item not resolved: %+v", out.Item)
	}
}

func TestLookupUnknownToken(t *testing.T) {
	f := newFixture(t)

	_, err := f.uc.Lookup(context.Background(), "missing")
	if !errors.Is(err, returns.ErrRequestNotFound) {
		t.Fatalf("expected ErrRequestNotFound, got %v", err)
	}
}

func TestLookupDigitalLoanRejected(t *testing.T) {
	f := newFixture(t)
	req := activeLoan("tok-d")
	req.ItemID = nil
	req.ReturnStatus = model.ReturnNotApplicable
	f.lending.put(req)

	_, err := f.uc.Lookup(context.Background(), "tok-d")
	if !errors.Is(err, returns.ErrWrongKind) {
		t.Fatalf("expected ErrWrongKind, got %v", err)
	}
}

func TestConfirmReturnClosesLoanAndRecords(t *testing.T) {
	f := newFixture(t)
	f.lending.put(activeLoan("tok-1"))

	out, err := f.uc.ConfirmReturn(context.Background(), returns.ConfirmInput{
		Token: "tok-1",
		Actor: "desk@library",
		Note:  "cover scuffed",
	})
	if err != nil {
		t.Fatalf("ConfirmReturn: %v", err)
	}
	if out.Request.ReturnStatus != model.ReturnReturned {
		t.Errorf("return status = %q, want returned", out.Request.ReturnStatus)
	}
	if out.Entry.Action != model.ActionReturn || out.Entry.Actor != "desk@library" {
		t.Errorf("entry not recorded as a return by the actor: %+v", out.Entry)
	}
	if out.Entry.ItemTitleSnapshot != "Things Fall Apart" || out.Entry.MemberNameSnapshot != "Ama Mensah" {
		t.Errorf("snapshots missing: %+v", out.Entry)
	}
	if out.Entry.RequestedAt == nil {
		t.Error("entry should snapshot the request time")
	}
}

func TestConfirmReturnNotYetApproved(t *testing.T) {
	f := newFixture(t)
	req := activeLoan("tok-p")
	req.ApprovalStatus = model.ApprovalPending
	req.ReturnStatus = model.ReturnNone
	f.lending.put(req)

	_, err := f.uc.ConfirmReturn(context.Background(), returns.ConfirmInput{Token: "tok-p", Actor: "desk"})
	if !errors.Is(err, returns.ErrNotReturnable) {
		t.Fatalf("expected ErrNotReturnable, got %v", err)
	}
	if len(f.audit.entries) != 0 {
		t.Error("no audit entry should be written for a rejected confirm")
	}
}

func TestConfirmReturnTwice(t *testing.T) {
	f := newFixture(t)
	f.lending.put(activeLoan("tok-1"))
	ctx := context.Background()

	if _, err := f.uc.ConfirmReturn(ctx, returns.ConfirmInput{Token: "tok-1", Actor: "desk"}); err != nil {
		t.Fatalf("first confirm: %v", err)
	}
	_, err := f.uc.ConfirmReturn(ctx, returns.ConfirmInput{Token: "tok-1", Actor: "desk"})
	if !errors.Is(err, returns.ErrNotReturnable) {
		t.Fatalf("second confirm should fail, got %v", err)
	}
	if len(f.audit.entries) != 1 {
		t.Errorf("expected exactly 1 audit entry, got %d", len(f.audit.entries))
	}
}

func TestConfirmReturnAuditFailureSurfacesButReturns(t *testing.T) {
	f := newFixture(t)
	f.lending.put(activeLoan("tok-1"))
	f.audit.fail = true

	out, err := f.uc.ConfirmReturn(context.Background(), returns.ConfirmInput{Token: "tok-1", Actor: "desk"})
	if !errors.Is(err, errAuditDown) {
		t.Fatalf("expected the audit error to surface, got %v", err)
	}
	if out.Request.ReturnStatus != model.ReturnReturned {
		t.Error("the return itself should have committed")
	}
}
