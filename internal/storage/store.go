// Package storage provides abstractions for persistent data storage.
package storage

import (
	"context"

	"github.com/umairk/tripsplit/internal/models"
)

// Store defines the interface for trip, expense and settlement
// persistence. This abstraction allows swapping storage backends
// (SQLite, PostgreSQL, etc.) without changing the service layer.
type Store interface {
	// CreateTrip persists a new trip. ID and timestamps are populated by
	// the store if unset.
	CreateTrip(ctx context.Context, trip *models.Trip) error

	// GetTrip retrieves a trip by ID.
	GetTrip(ctx context.Context, tripID string) (*models.Trip, error)

	// ListTrips retrieves all trips in creation order.
	ListTrips(ctx context.Context) ([]*models.Trip, error)

	// UpdateTrip replaces a trip's name and participant list.
	UpdateTrip(ctx context.Context, trip *models.Trip) error

	// DeleteTrip removes a trip and cascades to its expenses.
	DeleteTrip(ctx context.Context, tripID string) error

	// CreateExpense persists a new expense. ID and timestamps are
	// populated by the store if unset.
	CreateExpense(ctx context.Context, expense *models.Expense) error

	// GetExpense retrieves an expense by ID.
	GetExpense(ctx context.Context, expenseID string) (*models.Expense, error)

	// UpdateExpense replaces an existing expense's mutable fields.
	UpdateExpense(ctx context.Context, expense *models.Expense) error

	// DeleteExpense removes an expense by ID.
	DeleteExpense(ctx context.Context, expenseID string) error

	// ListExpenses retrieves every expense across all trips, in creation
	// order.
	ListExpenses(ctx context.Context) ([]*models.Expense, error)

	// ListExpensesByTrip retrieves a trip's expenses in creation order.
	ListExpensesByTrip(ctx context.Context, tripID string) ([]*models.Expense, error)

	// ListConfirmed retrieves the set of confirmed settlement
	// instructions.
	ListConfirmed(ctx context.Context) ([]models.SettlementInstruction, error)

	// AppendConfirmed adds an instruction to the confirmed set.
	AppendConfirmed(ctx context.Context, ins models.SettlementInstruction) error

	// ReplaceConfirmed atomically replaces the whole confirmed set.
	ReplaceConfirmed(ctx context.Context, confirmed []models.SettlementInstruction) error

	// ListHistory retrieves all settlement records, most recent first.
	ListHistory(ctx context.Context) ([]models.SettlementRecord, error)

	// AppendHistory appends an immutable settlement record.
	AppendHistory(ctx context.Context, rec models.SettlementRecord) error

	// ClearHistory deletes all settlement records.
	ClearHistory(ctx context.Context) error

	// ClearAll wipes trips, expenses, the confirmed set and history.
	ClearAll(ctx context.Context) error

	// Close releases any resources held by the store.
	Close() error
}
