package usecase_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"library-lending/internal/member"
	repo "library-lending/internal/member/repository"
	"library-lending/internal/member/usecase"
	"library-lending/internal/model"
)

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

type memDirectory struct {
	nextID  int64
	members []model.Member
}

func (s *memDirectory) GetMemberByID(ctx context.Context, id int64) (model.Member, error) {
	for _, m := range s.members {
		if m.ID == id {
			return m, nil
		}
	}
	return model.Member{}, nil
}

func (s *memDirectory) GetMemberByContact(ctx context.Context, contact string) (model.Member, error) {
	for _, m := range s.members {
		if strings.EqualFold(m.Email, contact) || m.Phone == contact {
			return m, nil
		}
	}
	return model.Member{}, nil
}

func (s *memDirectory) GetMemberByEmail(ctx context.Context, email string) (model.Member, error) {
	for _, m := range s.members {
		if strings.EqualFold(m.Email, email) {
			return m, nil
		}
	}
	return model.Member{}, nil
}

func (s *memDirectory) CreateMember(ctx context.Context, opt repo.CreateMemberOptions) (model.Member, error) {
	s.nextID++
	m := model.Member{
		ID:         s.nextID,
		FirstName:  opt.FirstName,
		Surname:    opt.Surname,
		OtherNames: opt.OtherNames,
		Email:      opt.Email,
		Phone:      opt.Phone,
		Residence:  opt.Residence,
		Landmark:   opt.Landmark,
	}
	s.members = append(s.members, m)
	return m, nil
}

func newFixture(t *testing.T) (member.UseCase, *memDirectory) {
	t.Helper()
	store := &memDirectory{members: []model.Member{
		{ID: 1, FirstName: "Ama", Surname: "Mensah", Email: "ama@example.com", Phone: "0244123456"},
	}}
	store.nextID = 1
	return usecase.New(store, &mockLogger{}), store
}

func TestCheckByEmailAndPhone(t *testing.T) {
	uc, _ := newFixture(t)
	ctx := context.Background()

	for _, contact := range []string{"ama@example.com", "AMA@EXAMPLE.COM", "0244123456"} {
		out, err := uc.Check(ctx, contact)
		if err != nil {
			t.Fatalf("Check(%q): %v", contact, err)
		}
		if !out.Exists || out.DisplayName != "Ama Mensah" {
			t.Errorf("Check(%q) = %+v, want existing Ama Mensah", contact, out)
		}
	}
}

func TestCheckUnknownContact(t *testing.T) {
	uc, _ := newFixture(t)

	out, err := uc.Check(context.Background(), "nobody@example.com")
	if err != nil {
		t.Fatalf("Check: %v", err)
	}
	if out.Exists || out.DisplayName != "" {
		t.Errorf("unknown contact should report non-existence, got %+v", out)
	}
}

func TestDetailUnknownContact(t *testing.T) {
	uc, _ := newFixture(t)

	_, err := uc.Detail(context.Background(), "nobody@example.com")
	if !errors.Is(err, member.ErrMemberNotFound) {
		t.Fatalf("expected ErrMemberNotFound, got %v", err)
	}
}

func TestImportCSV(t *testing.T) {
	uc, store := newFixture(t)

	csv := strings.Join([]string{
		"first_name,surname,other_names,email,phone,residence,landmark",
		"Kojo,Asante,,kojo@example.com,0201987654,Osu,Near the post office",
		"Ama,Mensah,,ama@example.com,0244123456,,",   // duplicate email
		",,,missing-name@example.com,,,",             // no first name
		"Efua,Baidoo,,efua@example.com,0277000111,,", // fresh
	}, "\n")

	out, err := uc.ImportCSV(context.Background(), strings.NewReader(csv))
	if err != nil {
		t.Fatalf("ImportCSV: %v", err)
	}
	if out.Created != 2 || out.Skipped != 1 || out.Invalid != 1 {
		t.Fatalf("ImportCSV = %+v, want 2 created, 1 skipped, 1 invalid", out)
	}
	if len(store.members) != 3 {
		t.Errorf("directory should hold 3 members, got %d", len(store.members))
	}
}

func TestImportCSVMissingColumns(t *testing.T) {
	uc, _ := newFixture(t)

	_, err := uc.ImportCSV(context.Background(), strings.NewReader("name,phone\nAma,024"))
	if !errors.Is(err, member.ErrBadCSV) {
		t.Fatalf("expected ErrBadCSV, got %v", err)
	}
}

func TestImportCSVColumnOrderIndependent(t *testing.T) {
	uc, store := newFixture(t)

	csv := "email,first_name,surname\nadwoa@example.com,Adwoa,Badu"
	out, err := uc.ImportCSV(context.Background(), strings.NewReader(csv))
	if err != nil {
		t.Fatalf("ImportCSV: %v", err)
	}
	if out.Created != 1 {
		t.Fatalf("expected 1 created, got %+v", out)
	}
	m, _ := store.GetMemberByEmail(context.Background(), "adwoa@example.com")
	if m.FirstName != "Adwoa" || m.Surname != "Badu" {
		t.Errorf("columns mapped wrong: %+v", m)
	}
}
