package usecase_test

import (
	"context"
	"errors"
	"sync"
	"time"

	auditRepo "library-lending/internal/audit/repository"
	repo "library-lending/internal/lending/repository"
	memberRepo "library-lending/internal/member/repository"
	"library-lending/internal/model"
)

var errGatewayDown = errors.New("gateway down")

// mock dependencies

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

// memStore is an in-memory lending repository. All guarded transitions
// run under one mutex so the conditional-update semantics match the
// real store.
type memStore struct {
	mu       sync.Mutex
	items    map[int64]model.Item
	requests map[string]model.LoanRequest

	// digitalApproveErr makes ApproveDigitalRequest fail when set.
	digitalApproveErr error
}

func newMemStore() *memStore {
	return &memStore{
		items:    make(map[int64]model.Item),
		requests: make(map[string]model.LoanRequest),
	}
}

func (s *memStore) putItem(item model.Item) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items[item.ID] = item
}

func (s *memStore) putRequest(req model.LoanRequest) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.requests[req.Token] = req
}

func (s *memStore) item(id int64) model.Item {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.items[id]
}

func (s *memStore) request(token string) model.LoanRequest {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.requests[token]
}

func (s *memStore) requestCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.requests)
}

func (s *memStore) CreateRequest(ctx context.Context, opt repo.CreateRequestOptions) (model.LoanRequest, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	req := model.LoanRequest{
		Token:          opt.Token,
		MemberID:       opt.MemberID,
		ItemID:         opt.ItemID,
		FullName:       opt.FullName,
		Email:          opt.Email,
		RequestStatus:  opt.RequestStatus,
		ApprovalStatus: opt.ApprovalStatus,
		ReturnStatus:   opt.ReturnStatus,
		CreatedAt:      time.Now(),
	}
	s.requests[req.Token] = req
	return req, nil
}

func (s *memStore) GetRequestByToken(ctx context.Context, token string) (model.LoanRequest, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.requests[token], nil
}

func (s *memStore) DeleteRequest(ctx context.Context, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.requests, token)
	return nil
}

func (s *memStore) ApprovePendingRequest(ctx context.Context, opt repo.ApproveRequestOptions) (model.LoanRequest, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	req, ok := s.requests[opt.Token]
	if !ok || req.ApprovalStatus != model.ApprovalPending {
		return model.LoanRequest{}, false, nil
	}
	req.ApprovalStatus = model.ApprovalApproved
	req.ReturnStatus = model.ReturnPending
	if req.ApprovedAt == nil {
		t := opt.ApprovedAt
		req.ApprovedAt = &t
	}
	if req.DeliveredAt == nil {
		t := opt.DeliveredAt
		req.DeliveredAt = &t
	}
	if req.DueAt == nil && opt.DueAt != nil {
		t := *opt.DueAt
		req.DueAt = &t
	}
	s.requests[opt.Token] = req
	return req, true, nil
}

func (s *memStore) ApproveDigitalRequest(ctx context.Context, token string, approvedAt time.Time) (model.LoanRequest, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.digitalApproveErr != nil {
		return model.LoanRequest{}, false, s.digitalApproveErr
	}
	req, ok := s.requests[token]
	if !ok || req.ApprovalStatus != model.ApprovalPending {
		return model.LoanRequest{}, false, nil
	}
	req.ApprovalStatus = model.ApprovalApproved
	req.ReturnStatus = model.ReturnNotApplicable
	if req.ApprovedAt == nil {
		t := approvedAt
		req.ApprovedAt = &t
	}
	s.requests[token] = req
	return req, true, nil
}

func (s *memStore) UpdateApprovalStatus(ctx context.Context, opt repo.UpdateApprovalStatusOptions) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	req, ok := s.requests[opt.Token]
	if !ok || req.ReturnStatus == model.ReturnReturned {
		return false, nil
	}
	for _, from := range opt.From {
		if req.ApprovalStatus == from {
			req.ApprovalStatus = opt.To
			s.requests[opt.Token] = req
			return true, nil
		}
	}
	return false, nil
}

func (s *memStore) MarkRequestReturned(ctx context.Context, token string) (model.LoanRequest, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	req, ok := s.requests[token]
	if !ok || req.ApprovalStatus != model.ApprovalApproved || req.ReturnStatus != model.ReturnPending {
		return model.LoanRequest{}, false, nil
	}
	req.ReturnStatus = model.ReturnReturned
	s.requests[token] = req
	return req, true, nil
}

func (s *memStore) CountMemberRequests(ctx context.Context, opt repo.CountMemberRequestsOptions) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	count := 0
	for _, req := range s.requests {
		if req.MemberID == nil || *req.MemberID != opt.MemberID || req.ItemID == nil {
			continue
		}
		if s.items[*req.ItemID].Kind != opt.Kind {
			continue
		}
		if !req.CreatedAt.Before(opt.Since) {
			count++
		}
	}
	return count, nil
}

func (s *memStore) HasUnreturnedPhysical(ctx context.Context, memberID int64) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, req := range s.requests {
		if req.MemberID == nil || *req.MemberID != memberID || req.ItemID == nil {
			continue
		}
		if s.items[*req.ItemID].Kind != model.KindPhysical {
			continue
		}
		if req.ReturnStatus == model.ReturnReturned {
			continue
		}
		if req.ApprovalStatus == model.ApprovalPending || req.ApprovalStatus == model.ApprovalApproved {
			return true, nil
		}
	}
	return false, nil
}

func (s *memStore) ListStalePending(ctx context.Context, cutoff time.Time) ([]model.LoanRequest, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var stale []model.LoanRequest
	for _, req := range s.requests {
		if req.ApprovalStatus != model.ApprovalPending || req.ItemID == nil {
			continue
		}
		if s.items[*req.ItemID].Kind != model.KindPhysical {
			continue
		}
		if !req.CreatedAt.After(cutoff) {
			stale = append(stale, req)
		}
	}
	return stale, nil
}

func (s *memStore) GetItem(ctx context.Context, id int64) (model.Item, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.items[id], nil
}

func (s *memStore) HoldItem(ctx context.Context, id int64) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	item, ok := s.items[id]
	if !ok || item.Availability != model.AvailabilityAvailable {
		return false, nil
	}
	item.Availability = model.AvailabilityOnHold
	s.items[id] = item
	return true, nil
}

func (s *memStore) SetItemAvailability(ctx context.Context, id int64, to model.Availability) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	item, ok := s.items[id]
	if !ok {
		return nil
	}
	item.Availability = to
	s.items[id] = item
	return nil
}

// mockMemberRepo serves members from a map.
type mockMemberRepo struct {
	members map[int64]model.Member
}

func (m *mockMemberRepo) GetMemberByID(ctx context.Context, id int64) (model.Member, error) {
	return m.members[id], nil
}

func (m *mockMemberRepo) GetMemberByContact(ctx context.Context, contact string) (model.Member, error) {
	for _, mem := range m.members {
		if mem.Email == contact || mem.Phone == contact {
			return mem, nil
		}
	}
	return model.Member{}, nil
}

func (m *mockMemberRepo) GetMemberByEmail(ctx context.Context, email string) (model.Member, error) {
	for _, mem := range m.members {
		if mem.Email == email {
			return mem, nil
		}
	}
	return model.Member{}, nil
}

func (m *mockMemberRepo) CreateMember(ctx context.Context, opt memberRepo.CreateMemberOptions) (model.Member, error) {
	mem := model.Member{ID: int64(len(m.members) + 1), Email: opt.Email, Phone: opt.Phone}
	m.members[mem.ID] = mem
	return mem, nil
}

// mockAuditRepo records appended entries.
type mockAuditRepo struct {
	mu      sync.Mutex
	entries []model.AuditEntry
}

func (m *mockAuditRepo) AppendEntry(ctx context.Context, opt auditRepo.AppendEntryOptions) (model.AuditEntry, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	e := model.AuditEntry{
		ID:                 int64(len(m.entries) + 1),
		Timestamp:          time.Now(),
		Actor:              opt.Actor,
		Action:             opt.Action,
		RequestToken:       opt.RequestToken,
		Note:               opt.Note,
		ItemTitleSnapshot:  opt.ItemTitleSnapshot,
		MemberNameSnapshot: opt.MemberNameSnapshot,
		RequestedAt:        opt.RequestedAt,
	}
	m.entries = append(m.entries, e)
	return e, nil
}

func (m *mockAuditRepo) ListEntries(ctx context.Context, opt auditRepo.ListEntriesOptions) ([]model.AuditEntry, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]model.AuditEntry(nil), m.entries...), nil
}

// mockNotifier records dispatched messages; fail makes every send error.
type mockNotifier struct {
	mu   sync.Mutex
	fail bool
	sent []string
}

func (m *mockNotifier) Send(ctx context.Context, destination, body string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.fail {
		return errGatewayDown
	}
	m.sent = append(m.sent, destination+": "+body)
	return nil
}

func (m *mockNotifier) sentCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.sent)
}
