package usecase_test

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	memberRepo "library-lending/internal/member/repository"
	"library-lending/internal/model"
	repo "library-lending/internal/otp/repository"
)

var errGatewayDown = errors.New("gateway down")

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

// challengeStore is an in-memory challenge repository. ClaimChallenge
// runs under one mutex so its verify-once semantics match the real
// store.
type challengeStore struct {
	mu         sync.Mutex
	nextID     int64
	challenges []model.OTPChallenge
}

func newChallengeStore() *challengeStore {
	return &challengeStore{}
}

func (s *challengeStore) live(phone string) []model.OTPChallenge {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []model.OTPChallenge
	for _, c := range s.challenges {
		if c.Phone == phone && !c.Verified {
			out = append(out, c)
		}
	}
	return out
}

func (s *challengeStore) DeleteUnverifiedChallenges(ctx context.Context, phone string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	kept := s.challenges[:0]
	for _, c := range s.challenges {
		if c.Phone == phone && !c.Verified {
			continue
		}
		kept = append(kept, c)
	}
	s.challenges = kept
	return nil
}

func (s *challengeStore) CreateChallenge(ctx context.Context, opt repo.CreateChallengeOptions) (model.OTPChallenge, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextID++
	c := model.OTPChallenge{
		ID:        s.nextID,
		Phone:     opt.Phone,
		Code:      opt.Code,
		CreatedAt: time.Now(),
		ExpiresAt: opt.ExpiresAt,
	}
	s.challenges = append(s.challenges, c)
	return c, nil
}

func (s *challengeStore) ClaimChallenge(ctx context.Context, opt repo.ClaimChallengeOptions) (model.OTPChallenge, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, c := range s.challenges {
		if c.Phone == opt.Phone && c.Code == opt.Code && !c.Verified && opt.Now.Before(c.ExpiresAt) {
			s.challenges[i].Verified = true
			return s.challenges[i], true, nil
		}
	}
	return model.OTPChallenge{}, false, nil
}

type mockMemberRepo struct {
	members map[int64]model.Member
}

func (m *mockMemberRepo) GetMemberByID(ctx context.Context, id int64) (model.Member, error) {
	return m.members[id], nil
}

func (m *mockMemberRepo) GetMemberByContact(ctx context.Context, contact string) (model.Member, error) {
	for _, member := range m.members {
		if strings.EqualFold(member.Email, contact) || member.Phone == contact {
			return member, nil
		}
	}
	return model.Member{}, nil
}

func (m *mockMemberRepo) GetMemberByEmail(ctx context.Context, email string) (model.Member, error) {
	for _, member := range m.members {
		if strings.EqualFold(member.Email, email) {
			return member, nil
		}
	}
	return model.Member{}, nil
}

func (m *mockMemberRepo) CreateMember(ctx context.Context, opt memberRepo.CreateMemberOptions) (model.Member, error) {
	return model.Member{}, errors.New("not implemented")
}

type mockNotifier struct {
	mu    sync.Mutex
	fail  bool
	sent  []string
	dests []string
}

func (m *mockNotifier) Send(ctx context.Context, destination, body string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.fail {
		return errGatewayDown
	}
	m.sent = append(m.sent, body)
	m.dests = append(m.dests, destination)
	return nil
}

func (m *mockNotifier) sentCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.sent)
}

func (m *mockNotifier) lastBody() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.sent) == 0 {
		return ""
	}
	return m.sent[len(m.sent)-1]
}
