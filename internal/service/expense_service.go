package service

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"strings"

	"github.com/umairk/tripsplit/internal/apperrors"
	"github.com/umairk/tripsplit/internal/metrics"
	"github.com/umairk/tripsplit/internal/models"
	"github.com/umairk/tripsplit/internal/storage"
)

// ExpenseService manages the expense records the netting engine consumes.
// All malformed input is rejected here; the engine assumes validated data.
type ExpenseService struct {
	store storage.Store
}

// NewExpenseService creates a new ExpenseService with the given storage backend.
func NewExpenseService(store storage.Store) *ExpenseService {
	return &ExpenseService{store: store}
}

// ExpenseInput carries the user-editable expense fields. PaidBy accepts
// both the single-payer string form and the multi-payer contribution list.
type ExpenseInput struct {
	Description  string        `json:"description"`
	Amount       float64       `json:"amount"`
	PaidBy       models.PaidBy `json:"paidBy"`
	SplitBetween []string      `json:"splitBetween"`
	Date         string        `json:"date"`
}

// Create validates and persists a new expense on a trip. Payers and split
// members not yet on the trip's participant list are added to it.
func (s *ExpenseService) Create(ctx context.Context, tripID string, in ExpenseInput) (*models.Expense, error) {
	trip, err := s.store.GetTrip(ctx, tripID)
	if err != nil {
		return nil, apperrors.NotFound("trip", tripID)
	}

	expense := &models.Expense{
		TripID:       trip.ID,
		Description:  strings.TrimSpace(in.Description),
		Amount:       in.Amount,
		PaidBy:       in.PaidBy,
		SplitBetween: in.SplitBetween,
		Date:         in.Date,
	}
	expense.NormalizePayers()

	if err := validateExpense(expense); err != nil {
		return nil, err
	}

	if err := s.store.CreateExpense(ctx, expense); err != nil {
		slog.Error("CreateExpense failed", "trip_id", tripID, "error", err)
		return nil, apperrors.Storage(err, "failed to save expense")
	}
	metrics.ExpensesCreated.Inc()

	s.autoAddParticipants(ctx, trip, expense)

	slog.Info("Expense created", "expense_id", expense.ID, "trip_id", trip.ID, "amount", expense.Amount)
	return expense, nil
}

// Update validates and persists changes to an existing expense.
func (s *ExpenseService) Update(ctx context.Context, expenseID string, in ExpenseInput) (*models.Expense, error) {
	existing, err := s.store.GetExpense(ctx, expenseID)
	if err != nil {
		return nil, apperrors.NotFound("expense", expenseID)
	}

	expense := &models.Expense{
		ID:           existing.ID,
		TripID:       existing.TripID,
		Description:  strings.TrimSpace(in.Description),
		Amount:       in.Amount,
		PaidBy:       in.PaidBy,
		SplitBetween: in.SplitBetween,
		Date:         in.Date,
		CreatedAt:    existing.CreatedAt,
	}
	if expense.Date == "" {
		expense.Date = existing.Date
	}
	expense.NormalizePayers()

	if err := validateExpense(expense); err != nil {
		return nil, err
	}

	if err := s.store.UpdateExpense(ctx, expense); err != nil {
		slog.Error("UpdateExpense failed", "expense_id", expenseID, "error", err)
		return nil, apperrors.Storage(err, "failed to update expense")
	}

	if trip, err := s.store.GetTrip(ctx, expense.TripID); err == nil {
		s.autoAddParticipants(ctx, trip, expense)
	}
	return expense, nil
}

// Delete removes an expense by ID.
func (s *ExpenseService) Delete(ctx context.Context, expenseID string) error {
	if _, err := s.store.GetExpense(ctx, expenseID); err != nil {
		return apperrors.NotFound("expense", expenseID)
	}
	if err := s.store.DeleteExpense(ctx, expenseID); err != nil {
		slog.Error("DeleteExpense failed", "expense_id", expenseID, "error", err)
		return apperrors.Storage(err, "failed to delete expense")
	}
	return nil
}

// ListByTrip retrieves a trip's expenses.
func (s *ExpenseService) ListByTrip(ctx context.Context, tripID string) ([]*models.Expense, error) {
	if _, err := s.store.GetTrip(ctx, tripID); err != nil {
		return nil, apperrors.NotFound("trip", tripID)
	}
	expenses, err := s.store.ListExpensesByTrip(ctx, tripID)
	if err != nil {
		slog.Error("ListExpensesByTrip failed", "trip_id", tripID, "error", err)
		return nil, apperrors.Storage(err, "failed to list expenses")
	}
	return expenses, nil
}

// autoAddParticipants adds payers and split members the trip has not seen
// before to its participant list. Best effort: a failure here leaves the
// expense saved and is only logged.
func (s *ExpenseService) autoAddParticipants(ctx context.Context, trip *models.Trip, expense *models.Expense) {
	var added bool
	for _, share := range expense.PaidBy {
		if !containsName(trip.Participants, share.Participant) {
			trip.Participants = append(trip.Participants, share.Participant)
			added = true
		}
	}
	for _, name := range expense.SplitBetween {
		if !containsName(trip.Participants, name) {
			trip.Participants = append(trip.Participants, name)
			added = true
		}
	}
	if !added {
		return
	}

	if err := s.store.UpdateTrip(ctx, trip); err != nil {
		slog.Warn("autoAddParticipants: failed to update trip", "trip_id", trip.ID, "error", err)
		return
	}
	slog.Info("Auto-added participants to trip", "trip_id", trip.ID, "participants", trip.Participants)
}

func validateExpense(expense *models.Expense) error {
	if expense.Description == "" {
		return apperrors.ValidationFailed("expense description is required", "")
	}
	if expense.Amount <= 0 {
		return apperrors.ValidationFailed("expense amount must be greater than zero",
			fmt.Sprintf("amount: %.2f", expense.Amount))
	}

	split, ok := cleanNames(expense.SplitBetween)
	if !ok || len(split) == 0 {
		return apperrors.ValidationFailed("splitBetween must list at least one participant", "")
	}
	expense.SplitBetween = split

	if len(expense.PaidBy) == 0 {
		return apperrors.ValidationFailed("paidBy must list at least one payer", "")
	}
	seenPayers := make(map[string]bool, len(expense.PaidBy))
	for _, share := range expense.PaidBy {
		if strings.TrimSpace(share.Participant) == "" {
			return apperrors.ValidationFailed("payer names must not be empty", "")
		}
		if seenPayers[share.Participant] {
			return apperrors.ValidationFailed("each payer may appear only once",
				fmt.Sprintf("duplicate payer: %s", share.Participant))
		}
		seenPayers[share.Participant] = true
		if share.Amount <= 0 {
			return apperrors.ValidationFailed("payer contributions must be greater than zero",
				fmt.Sprintf("%s: %.2f", share.Participant, share.Amount))
		}
	}

	if diff := math.Abs(expense.PaidBy.Total() - expense.Amount); diff > amountTolerance {
		return apperrors.ValidationFailed("payer contributions must sum to the expense amount",
			fmt.Sprintf("amount: %.2f, contributions: %.2f", expense.Amount, expense.PaidBy.Total()))
	}
	return nil
}
