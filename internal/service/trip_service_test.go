package service

import (
	"context"
	"reflect"
	"testing"
)

func TestTripCreateValidation(t *testing.T) {
	store := newTestStore(t)
	svc := NewTripService(store)

	tests := []struct {
		name  string
		input TripInput
	}{
		{
			name:  "missing name",
			input: TripInput{Participants: []string{"Alice"}},
		},
		{
			name:  "blank name",
			input: TripInput{Name: "   ", Participants: []string{"Alice"}},
		},
		{
			name:  "no participants",
			input: TripInput{Name: "Goa"},
		},
		{
			name:  "blank participant",
			input: TripInput{Name: "Goa", Participants: []string{"Alice", " "}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Create(context.Background(), tt.input)
			assertErrType(t, err, "VALIDATION_ERROR")
		})
	}
}

func TestTripCreateDeduplicatesParticipants(t *testing.T) {
	store := newTestStore(t)
	svc := NewTripService(store)

	trip, err := svc.Create(context.Background(), TripInput{
		Name:         "Goa",
		Participants: []string{"Alice", "Bob", "Alice", " Bob "},
	})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if want := []string{"Alice", "Bob"}; !reflect.DeepEqual(trip.Participants, want) {
		t.Errorf("Participants = %v, want %v", trip.Participants, want)
	}
}

func TestTripUpdate(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	svc := NewTripService(store)

	trip := createTrip(t, store, "Goa", "Alice", "Bob")

	updated, err := svc.Update(ctx, trip.ID, TripInput{
		Name:         "Goa 2024",
		Participants: []string{"Alice", "Bob", "Carol"},
	})
	if err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	if updated.Name != "Goa 2024" || len(updated.Participants) != 3 {
		t.Errorf("update not applied: %+v", updated)
	}
	if !updated.CreatedAt.Equal(trip.CreatedAt) {
		t.Error("update must preserve the original creation time")
	}

	_, err = svc.Update(ctx, "missing", TripInput{Name: "x", Participants: []string{"A"}})
	assertErrType(t, err, "NOT_FOUND")
}

func TestTripDeleteReleasesConfirmedPairs(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	trips := NewTripService(store)
	settlements := NewSettlementService(store)

	goa := createTrip(t, store, "Goa", "Alice", "Bob", "Carol")
	addExpense(t, store, goa.ID, "Alice", 30, "Alice", "Bob", "Carol")

	manali := createTrip(t, store, "Manali", "Bob", "Dan")
	addExpense(t, store, manali.ID, "Dan", 20, "Bob", "Dan")

	if _, err := settlements.Confirm(ctx, goa.ID, "Bob", "Alice"); err != nil {
		t.Fatalf("Confirm failed: %v", err)
	}
	if _, err := settlements.Confirm(ctx, manali.ID, "Bob", "Dan"); err != nil {
		t.Fatalf("Confirm failed: %v", err)
	}

	if err := trips.Delete(ctx, goa.ID); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}

	// Bob->Alice belonged to the deleted trip's plan and is released;
	// Bob->Dan came from the surviving trip and stays confirmed.
	confirmed, err := store.ListConfirmed(ctx)
	if err != nil {
		t.Fatalf("ListConfirmed failed: %v", err)
	}
	if len(confirmed) != 1 || confirmed[0].From != "Bob" || confirmed[0].To != "Dan" {
		t.Errorf("confirmed after delete = %+v, want only Bob->Dan", confirmed)
	}

	// The deleted trip's expenses are gone with it.
	if _, err := NewExpenseService(store).ListByTrip(ctx, goa.ID); err == nil {
		t.Error("expected error listing expenses of a deleted trip")
	}
}

func TestTripDelete_NotFound(t *testing.T) {
	store := newTestStore(t)
	err := NewTripService(store).Delete(context.Background(), "missing")
	assertErrType(t, err, "NOT_FOUND")
}
