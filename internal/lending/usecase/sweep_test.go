package usecase_test

import (
	"context"
	"testing"
	"time"

	"library-lending/internal/model"
)

func TestSweepExpiredReleasesStaleHolds(t *testing.T) {
	f := newFixture()
	f.store.putItem(physicalItem(20))
	item := physicalItem(21)
	f.store.putItem(item)

	now := time.Now()

	// Six hours pending: stale.
	stale := pastRequest("stale", 1, 20, 6*time.Hour, model.ApprovalPending, model.ReturnNone)
	f.store.putRequest(stale)
	f.store.SetItemAvailability(context.Background(), 20, model.AvailabilityOnHold)

	// One hour pending: fresh.
	fresh := pastRequest("fresh", 2, 21, time.Hour, model.ApprovalPending, model.ReturnNone)
	f.store.putRequest(fresh)
	f.store.SetItemAvailability(context.Background(), 21, model.AvailabilityOnHold)

	count, err := f.uc.SweepExpired(context.Background(), now)
	if err != nil {
		t.Fatalf("SweepExpired: %v", err)
	}
	if count != 1 {
		t.Fatalf("expired %d requests, want 1", count)
	}

	if got := f.store.request("stale").ApprovalStatus; got != model.ApprovalExpired {
		t.Errorf("stale request status = %s, want expired", got)
	}
	if got := f.store.item(20).Availability; got != model.AvailabilityAvailable {
		t.Errorf("stale item availability = %s, want available", got)
	}
	if got := f.store.request("fresh").ApprovalStatus; got != model.ApprovalPending {
		t.Errorf("fresh request status = %s, want pending", got)
	}
	if got := f.store.item(21).Availability; got != model.AvailabilityOnHold {
		t.Errorf("fresh item availability = %s, want on_hold", got)
	}
}

// A second sweep over the same data transitions nothing.
func TestSweepExpiredIdempotent(t *testing.T) {
	f := newFixture()
	f.store.putItem(physicalItem(20))

	f.store.putRequest(pastRequest("stale", 1, 20, 6*time.Hour, model.ApprovalPending, model.ReturnNone))
	f.store.SetItemAvailability(context.Background(), 20, model.AvailabilityOnHold)

	now := time.Now()
	first, err := f.uc.SweepExpired(context.Background(), now)
	if err != nil {
		t.Fatalf("first sweep: %v", err)
	}
	if first != 1 {
		t.Fatalf("first sweep expired %d, want 1", first)
	}

	second, err := f.uc.SweepExpired(context.Background(), now)
	if err != nil {
		t.Fatalf("second sweep: %v", err)
	}
	if second != 0 {
		t.Errorf("second sweep expired %d, want 0", second)
	}
}

func TestSweepExpiredHoldTTLBoundary(t *testing.T) {
	f := newFixture()
	f.store.putItem(physicalItem(20))

	created := time.Now()
	req := model.LoanRequest{
		Token:          "boundary",
		MemberID:       ptrInt64(1),
		ItemID:         ptrInt64(20),
		RequestStatus:  model.RequestValid,
		ApprovalStatus: model.ApprovalPending,
		CreatedAt:      created,
	}
	f.store.putRequest(req)
	f.store.SetItemAvailability(context.Background(), 20, model.AvailabilityOnHold)

	// Just short of the 5-hour TTL: not expired.
	count, err := f.uc.SweepExpired(context.Background(), created.Add(5*time.Hour-time.Second))
	if err != nil {
		t.Fatalf("sweep: %v", err)
	}
	if count != 0 {
		t.Fatalf("request expired before the TTL elapsed")
	}

	// Exactly at the TTL: expired.
	count, err = f.uc.SweepExpired(context.Background(), created.Add(5*time.Hour))
	if err != nil {
		t.Fatalf("sweep: %v", err)
	}
	if count != 1 {
		t.Errorf("request at the TTL boundary should be expired, got %d", count)
	}
}

// The sweep never expires a request approved between listing and
// transition; the conditional status update arbitrates.
func TestSweepSkipsConcurrentlyApproved(t *testing.T) {
	f := newFixture()
	f.store.putItem(physicalItem(20))

	f.store.putRequest(pastRequest("stale", 1, 20, 6*time.Hour, model.ApprovalApproved, model.ReturnPending))
	f.store.SetItemAvailability(context.Background(), 20, model.AvailabilityTaken)

	count, err := f.uc.SweepExpired(context.Background(), time.Now())
	if err != nil {
		t.Fatalf("SweepExpired: %v", err)
	}
	if count != 0 {
		t.Errorf("sweep expired an approved request")
	}
	if got := f.store.item(20).Availability; got != model.AvailabilityTaken {
		t.Errorf("item availability = %s, want taken", got)
	}
}

func ptrInt64(v int64) *int64 { return &v }
