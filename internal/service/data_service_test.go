package service

import (
	"context"
	"testing"
)

func TestExportAndWipe(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	data := NewDataService(store)
	settlements := NewSettlementService(store)

	trip := createTrip(t, store, "Goa", "Alice", "Bob")
	addExpense(t, store, trip.ID, "Alice", 40, "Alice", "Bob")
	if _, err := settlements.Confirm(ctx, trip.ID, "Bob", "Alice"); err != nil {
		t.Fatalf("Confirm failed: %v", err)
	}

	export, err := data.Export(ctx)
	if err != nil {
		t.Fatalf("Export failed: %v", err)
	}
	if len(export.Trips) != 1 || len(export.Expenses) != 1 || len(export.History) != 1 {
		t.Errorf("export = %d trips, %d expenses, %d records; want 1 of each",
			len(export.Trips), len(export.Expenses), len(export.History))
	}

	if err := data.Wipe(ctx); err != nil {
		t.Fatalf("Wipe failed: %v", err)
	}

	export, err = data.Export(ctx)
	if err != nil {
		t.Fatalf("Export after wipe failed: %v", err)
	}
	if len(export.Trips)+len(export.Expenses)+len(export.History) != 0 {
		t.Errorf("expected empty export after wipe, got %+v", export)
	}

	confirmed, err := store.ListConfirmed(ctx)
	if err != nil {
		t.Fatalf("ListConfirmed failed: %v", err)
	}
	if len(confirmed) != 0 {
		t.Errorf("expected empty confirmed set after wipe, got %d", len(confirmed))
	}
}
