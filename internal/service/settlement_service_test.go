package service

import (
	"context"
	"math"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/umairk/tripsplit/internal/metrics"
	"github.com/umairk/tripsplit/internal/models"
)

func TestBalances(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	svc := NewSettlementService(store)

	trip := createTrip(t, store, "Goa", "Alice", "Bob", "Carol")
	addExpense(t, store, trip.ID, "Alice", 90, "Alice", "Bob", "Carol")
	addExpense(t, store, trip.ID, "Bob", 30, "Bob", "Carol")

	sheet, err := svc.Balances(ctx, trip.ID)
	if err != nil {
		t.Fatalf("Balances failed: %v", err)
	}

	if sheet.TripID != trip.ID || sheet.TripName != "Goa" {
		t.Errorf("trip identity = (%s, %s), want (%s, Goa)", sheet.TripID, sheet.TripName, trip.ID)
	}

	want := []models.SettlementInstruction{
		{From: "Carol", To: "Alice", Amount: 45},
		{From: "Bob", To: "Alice", Amount: 15},
	}
	if len(sheet.Outstanding) != len(want) {
		t.Fatalf("Outstanding = %+v, want %+v", sheet.Outstanding, want)
	}
	for i, ins := range want {
		got := sheet.Outstanding[i]
		if got.From != ins.From || got.To != ins.To || math.Abs(got.Amount-ins.Amount) > 0.01 {
			t.Errorf("Outstanding[%d] = %+v, want %+v", i, got, ins)
		}
	}

	if len(sheet.Settled) != 0 {
		t.Errorf("Settled = %+v, want empty", sheet.Settled)
	}
	if math.Abs(sheet.OutstandingTotal-60) > 0.01 {
		t.Errorf("OutstandingTotal = %v, want 60", sheet.OutstandingTotal)
	}
	if math.Abs(sheet.NetPositions["Alice"]-60) > 0.01 {
		t.Errorf("NetPositions[Alice] = %v, want 60", sheet.NetPositions["Alice"])
	}
	if sheet.Summary.ExpenseCount != 2 || sheet.Summary.TotalExpenses != 120 {
		t.Errorf("Summary = %+v, want 2 expenses totalling 120", sheet.Summary)
	}
}

func TestBalances_UnknownTrip(t *testing.T) {
	store := newTestStore(t)
	svc := NewSettlementService(store)

	_, err := svc.Balances(context.Background(), "missing")
	assertErrType(t, err, "NOT_FOUND")
}

func TestConfirm(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	svc := NewSettlementService(store)

	trip := createTrip(t, store, "Goa", "Alice", "Bob", "Carol")
	addExpense(t, store, trip.ID, "Alice", 30, "Alice", "Bob", "Carol")

	rec, err := svc.Confirm(ctx, trip.ID, "Bob", "Alice")
	if err != nil {
		t.Fatalf("Confirm failed: %v", err)
	}
	if rec.From != "Bob" || rec.To != "Alice" {
		t.Errorf("record pair = (%s, %s), want (Bob, Alice)", rec.From, rec.To)
	}
	if math.Abs(rec.Amount-10) > 0.01 {
		t.Errorf("record amount = %v, want 10", rec.Amount)
	}
	if rec.TripID != trip.ID || rec.TripName != "Goa" {
		t.Errorf("record trip = (%s, %s), want (%s, Goa)", rec.TripID, rec.TripName, trip.ID)
	}
	if rec.ID == "" || rec.SettledAt.IsZero() {
		t.Errorf("record missing identity or timestamp: %+v", rec)
	}

	sheet, err := svc.Balances(ctx, trip.ID)
	if err != nil {
		t.Fatalf("Balances failed: %v", err)
	}
	for _, ins := range sheet.Outstanding {
		if ins.From == "Bob" && ins.To == "Alice" {
			t.Error("confirmed pair still outstanding")
		}
	}
	if len(sheet.Settled) != 1 {
		t.Fatalf("Settled = %+v, want one entry", sheet.Settled)
	}
	if !sheet.Settled[0].IsSettled || sheet.Settled[0].SettledAt == nil {
		t.Errorf("settled entry missing markers: %+v", sheet.Settled[0])
	}
}

func TestConfirm_Idempotent(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	svc := NewSettlementService(store)

	trip := createTrip(t, store, "Goa", "Alice", "Bob")
	addExpense(t, store, trip.ID, "Alice", 40, "Alice", "Bob")

	first, err := svc.Confirm(ctx, trip.ID, "Bob", "Alice")
	if err != nil {
		t.Fatalf("first Confirm failed: %v", err)
	}
	second, err := svc.Confirm(ctx, trip.ID, "Bob", "Alice")
	if err != nil {
		t.Fatalf("second Confirm failed: %v", err)
	}
	if second.ID != first.ID {
		t.Errorf("re-confirmation returned a different record: %s vs %s", second.ID, first.ID)
	}

	history, err := svc.History(ctx)
	if err != nil {
		t.Fatalf("History failed: %v", err)
	}
	if len(history) != 1 {
		t.Errorf("expected exactly one history record, got %d", len(history))
	}
}

func TestConfirm_UnknownPair(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	svc := NewSettlementService(store)

	trip := createTrip(t, store, "Goa", "Alice", "Bob")
	addExpense(t, store, trip.ID, "Alice", 40, "Alice", "Bob")

	// Alice owes nothing; the reverse direction is not in the plan.
	_, err := svc.Confirm(ctx, trip.ID, "Alice", "Bob")
	assertErrType(t, err, "NOT_FOUND")
}

func TestConfirm_Validation(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	svc := NewSettlementService(store)

	trip := createTrip(t, store, "Goa", "Alice", "Bob")

	if _, err := svc.Confirm(ctx, trip.ID, "", "Alice"); err == nil {
		t.Error("expected error for empty from")
	}
	if _, err := svc.Confirm(ctx, trip.ID, "Bob", " "); err == nil {
		t.Error("expected error for blank to")
	}
	_, err := svc.Confirm(ctx, trip.ID, "Bob", "Bob")
	assertErrType(t, err, "VALIDATION_ERROR")
}

func TestConfirm_PairStaysSettledAfterNewExpenses(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	svc := NewSettlementService(store)

	trip := createTrip(t, store, "Goa", "Alice", "Bob")
	addExpense(t, store, trip.ID, "Alice", 40, "Alice", "Bob")

	if _, err := svc.Confirm(ctx, trip.ID, "Bob", "Alice"); err != nil {
		t.Fatalf("Confirm failed: %v", err)
	}

	// A later expense makes Bob owe Alice a different amount. The pair was
	// confirmed paid and the recomputed instruction stays suppressed.
	addExpense(t, store, trip.ID, "Alice", 100, "Alice", "Bob")

	sheet, err := svc.Balances(ctx, trip.ID)
	if err != nil {
		t.Fatalf("Balances failed: %v", err)
	}
	if len(sheet.Outstanding) != 0 {
		t.Errorf("Outstanding = %+v, want empty", sheet.Outstanding)
	}
	if len(sheet.Settled) != 1 {
		t.Fatalf("Settled = %+v, want one entry", sheet.Settled)
	}
	// The settled view keeps the amount recorded at confirmation time.
	if math.Abs(sheet.Settled[0].Amount-20) > 0.01 {
		t.Errorf("settled amount = %v, want the original 20", sheet.Settled[0].Amount)
	}
}

func TestPlansComputedCountsEverySite(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	settlements := NewSettlementService(store)
	trips := NewTripService(store)

	trip := createTrip(t, store, "Goa", "Alice", "Bob")
	addExpense(t, store, trip.ID, "Alice", 40, "Alice", "Bob")

	// The counter is process-global, so assert on deltas.
	before := testutil.ToFloat64(metrics.PlansComputed)
	if _, err := settlements.Balances(ctx, trip.ID); err != nil {
		t.Fatalf("Balances failed: %v", err)
	}
	if got := testutil.ToFloat64(metrics.PlansComputed) - before; got != 1 {
		t.Errorf("Balances computed %v plans, want 1", got)
	}

	before = testutil.ToFloat64(metrics.PlansComputed)
	if _, err := settlements.Confirm(ctx, trip.ID, "Bob", "Alice"); err != nil {
		t.Fatalf("Confirm failed: %v", err)
	}
	if got := testutil.ToFloat64(metrics.PlansComputed) - before; got != 1 {
		t.Errorf("Confirm computed %v plans, want 1", got)
	}

	before = testutil.ToFloat64(metrics.PlansComputed)
	if err := trips.Delete(ctx, trip.ID); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if got := testutil.ToFloat64(metrics.PlansComputed) - before; got != 1 {
		t.Errorf("Delete computed %v plans, want 1", got)
	}
}

func TestParticipant(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	svc := NewSettlementService(store)

	trip := createTrip(t, store, "Goa", "Alice", "Bob", "Carol")
	addExpense(t, store, trip.ID, "Alice", 90, "Alice", "Bob", "Carol")

	summary, err := svc.Participant(ctx, trip.ID, "Alice")
	if err != nil {
		t.Fatalf("Participant failed: %v", err)
	}
	if summary.TotalPaid != 90 || math.Abs(summary.TotalOwed-30) > 0.01 {
		t.Errorf("summary = %+v, want paid 90 owed 30", summary)
	}
	if !summary.IsCreditor {
		t.Error("expected Alice to be a creditor")
	}

	if _, err := svc.Participant(ctx, trip.ID, " "); err == nil {
		t.Error("expected error for blank participant name")
	}
}
