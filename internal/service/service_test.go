package service

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/umairk/tripsplit/internal/apperrors"
	"github.com/umairk/tripsplit/internal/models"
	"github.com/umairk/tripsplit/internal/storage"
	"github.com/umairk/tripsplit/internal/storage/sqlite"
)

func newTestStore(t *testing.T) storage.Store {
	t.Helper()
	store, err := sqlite.New(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("failed to create store: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func createTrip(t *testing.T, store storage.Store, name string, participants ...string) *models.Trip {
	t.Helper()
	trip, err := NewTripService(store).Create(context.Background(), TripInput{
		Name:         name,
		Participants: participants,
	})
	if err != nil {
		t.Fatalf("failed to create trip: %v", err)
	}
	return trip
}

func addExpense(t *testing.T, store storage.Store, tripID, paidBy string, amount float64, split ...string) *models.Expense {
	t.Helper()
	expense, err := NewExpenseService(store).Create(context.Background(), tripID, ExpenseInput{
		Description:  "test expense",
		Amount:       amount,
		PaidBy:       models.PaidBy{{Participant: paidBy, Amount: amount}},
		SplitBetween: split,
	})
	if err != nil {
		t.Fatalf("failed to create expense: %v", err)
	}
	return expense
}

// assertErrType checks that err carries the given application error type.
func assertErrType(t *testing.T, err error, want apperrors.Type) {
	t.Helper()
	if err == nil {
		t.Fatalf("expected %s error, got nil", want)
	}
	var appErr *apperrors.AppError
	if !errors.As(err, &appErr) {
		t.Fatalf("expected AppError, got %T: %v", err, err)
	}
	if appErr.Type != want {
		t.Errorf("error type = %s, want %s", appErr.Type, want)
	}
}
