package usecase_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"library-lending/internal/lending"
	"library-lending/internal/lending/usecase"
	"library-lending/internal/model"
	"library-lending/internal/session"
)

type fixture struct {
	store    *memStore
	members  *mockMemberRepo
	audit    *mockAuditRepo
	notifier *mockNotifier
	sessions *session.Store
	uc       lending.UseCase
}

func newFixture() *fixture {
	store := newMemStore()
	members := &mockMemberRepo{members: map[int64]model.Member{
		1: {ID: 1, FirstName: "Ama", Surname: "Mensah", Email: "ama@example.com", Phone: "+233200000001"},
		2: {ID: 2, FirstName: "Kojo", Surname: "Asante", Email: "kojo@example.com", Phone: "+233200000002"},
	}}
	audit := &mockAuditRepo{}
	notifier := &mockNotifier{}
	sessions := session.NewStore(64, 30*time.Minute)

	cfg := lending.Config{
		PendingHoldTTL:      5 * time.Hour,
		DigitalWeeklyLimit:  2,
		DigitalMonthlyLimit: 4,
	}
	uc := usecase.New(store, members, audit, sessions, notifier, cfg, &mockLogger{})

	return &fixture{
		store:    store,
		members:  members,
		audit:    audit,
		notifier: notifier,
		sessions: sessions,
		uc:       uc,
	}
}

func (f *fixture) sessionFor(memberID int64) string {
	m := f.members.members[memberID]
	return f.sessions.Issue(m.ID, m.Phone, time.Now()).Token
}

func digitalItem(id int64) model.Item {
	return model.Item{
		ID: id, Title: "Go Patterns", Kind: model.KindDigital,
		Location: "https://files.example.com/go-patterns",
	}
}

func physicalItem(id int64) model.Item {
	return model.Item{
		ID: id, Title: "The Pragmatic Programmer", Kind: model.KindPhysical,
		LoanDurationDays: 7, Availability: model.AvailabilityAvailable,
	}
}

func TestSubmitDigitalAutoApproved(t *testing.T) {
	f := newFixture()
	f.store.putItem(digitalItem(10))

	out, err := f.uc.Submit(context.Background(), lending.SubmitInput{
		SessionToken: f.sessionFor(1),
		ItemID:       10,
	})
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}

	if out.Request.ApprovalStatus != model.ApprovalApproved {
		t.Errorf("approval status = %s, want approved", out.Request.ApprovalStatus)
	}
	if out.Request.ReturnStatus != model.ReturnNotApplicable {
		t.Errorf("return status = %s, want not_applicable", out.Request.ReturnStatus)
	}
	if out.Request.ApprovedAt == nil {
		t.Error("approvedAt should be set on digital auto-approval")
	}
	if out.Request.DueAt != nil {
		t.Error("digital requests have no due date")
	}
	if got := f.store.item(10).Availability; got != "" {
		t.Errorf("digital item availability mutated to %q", got)
	}
	if f.notifier.sentCount() != 1 {
		t.Errorf("expected one access notification, got %d", f.notifier.sentCount())
	}
}

func TestSubmitPhysicalPlacesHold(t *testing.T) {
	f := newFixture()
	f.store.putItem(physicalItem(20))

	out, err := f.uc.Submit(context.Background(), lending.SubmitInput{
		SessionToken: f.sessionFor(1),
		ItemID:       20,
	})
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}

	if out.Request.ApprovalStatus != model.ApprovalPending {
		t.Errorf("approval status = %s, want pending", out.Request.ApprovalStatus)
	}
	if out.Request.ReturnStatus != model.ReturnNone {
		t.Errorf("return status = %q, want unset", out.Request.ReturnStatus)
	}
	if out.Item.Availability != model.AvailabilityOnHold {
		t.Errorf("returned item availability = %s, want on_hold", out.Item.Availability)
	}
	if got := f.store.item(20).Availability; got != model.AvailabilityOnHold {
		t.Errorf("stored item availability = %s, want on_hold", got)
	}
}

func TestSubmitRequiresSession(t *testing.T) {
	f := newFixture()
	f.store.putItem(digitalItem(10))

	_, err := f.uc.Submit(context.Background(), lending.SubmitInput{
		SessionToken: "bogus",
		ItemID:       10,
	})
	if !errors.Is(err, lending.ErrSessionExpired) {
		t.Errorf("got %v, want ErrSessionExpired", err)
	}
}

func TestSubmitUnknownItem(t *testing.T) {
	f := newFixture()

	_, err := f.uc.Submit(context.Background(), lending.SubmitInput{
		SessionToken: f.sessionFor(1),
		ItemID:       99,
	})
	if !errors.Is(err, lending.ErrItemNotFound) {
		t.Errorf("got %v, want ErrItemNotFound", err)
	}
}

func TestSubmitPhysicalUnavailableRollsBack(t *testing.T) {
	f := newFixture()
	item := physicalItem(20)
	item.Availability = model.AvailabilityTaken
	f.store.putItem(item)

	_, err := f.uc.Submit(context.Background(), lending.SubmitInput{
		SessionToken: f.sessionFor(1),
		ItemID:       20,
	})
	if !errors.Is(err, lending.ErrItemUnavailable) {
		t.Fatalf("got %v, want ErrItemUnavailable", err)
	}
	if n := f.store.requestCount(); n != 0 {
		t.Errorf("lost submission left %d residual request(s)", n)
	}
}

// Two concurrent submissions against one available physical item:
// exactly one wins the hold, the loser rolls back its request.
func TestSubmitConcurrentPhysical(t *testing.T) {
	f := newFixture()
	f.store.putItem(physicalItem(20))

	tokens := []string{f.sessionFor(1), f.sessionFor(2)}
	results := make([]error, 2)

	var wg sync.WaitGroup
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, err := f.uc.Submit(context.Background(), lending.SubmitInput{
				SessionToken: tokens[i],
				ItemID:       20,
			})
			results[i] = err
		}(i)
	}
	wg.Wait()

	var wins, losses int
	for _, err := range results {
		switch {
		case err == nil:
			wins++
		case errors.Is(err, lending.ErrItemUnavailable):
			losses++
		default:
			t.Fatalf("unexpected error: %v", err)
		}
	}
	if wins != 1 || losses != 1 {
		t.Fatalf("got %d wins and %d losses, want exactly 1 and 1", wins, losses)
	}
	if got := f.store.item(20).Availability; got != model.AvailabilityOnHold {
		t.Errorf("item availability = %s, want on_hold", got)
	}
	if n := f.store.requestCount(); n != 1 {
		t.Errorf("expected exactly 1 surviving request, got %d", n)
	}
}

// A failed digital auto-approval must not leave a Pending row behind.
func TestSubmitDigitalApprovalFailureRollsBack(t *testing.T) {
	f := newFixture()
	f.store.putItem(digitalItem(10))
	f.store.digitalApproveErr = errors.New("store down")

	_, err := f.uc.Submit(context.Background(), lending.SubmitInput{
		SessionToken: f.sessionFor(1),
		ItemID:       10,
	})
	if err == nil {
		t.Fatal("Submit should fail when the approval transition fails")
	}
	if n := f.store.requestCount(); n != 0 {
		t.Errorf("failed digital submission left %d residual request(s)", n)
	}
}

func TestSubmitNotificationFailureDoesNotBlock(t *testing.T) {
	f := newFixture()
	f.notifier.fail = true
	f.store.putItem(digitalItem(10))

	out, err := f.uc.Submit(context.Background(), lending.SubmitInput{
		SessionToken: f.sessionFor(1),
		ItemID:       10,
	})
	if err != nil {
		t.Fatalf("Submit should succeed despite notification failure: %v", err)
	}
	if out.Request.ApprovalStatus != model.ApprovalApproved {
		t.Errorf("approval status = %s, want approved", out.Request.ApprovalStatus)
	}
}
