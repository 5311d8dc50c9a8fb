package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/umairk/tripsplit/internal/models"
)

// CreateExpense persists a new expense with its payer contributions and
// split membership.
func (s *SQLiteStore) CreateExpense(ctx context.Context, expense *models.Expense) error {
	if expense.ID == "" {
		expense.ID = uuid.New().String()
	}
	now := time.Now()
	if expense.CreatedAt.IsZero() {
		expense.CreatedAt = now
	}
	if expense.UpdatedAt.IsZero() {
		expense.UpdatedAt = expense.CreatedAt
	}
	if expense.Date == "" {
		expense.Date = expense.CreatedAt.UTC().Format("2006-01-02")
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx,
		`INSERT INTO expenses (id, trip_id, description, amount, date, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		expense.ID, expense.TripID, expense.Description, expense.Amount,
		expense.Date, formatTime(expense.CreatedAt), formatTime(expense.UpdatedAt),
	)
	if err != nil {
		return fmt.Errorf("failed to insert expense: %w", err)
	}

	if err := insertExpenseParties(ctx, tx, expense); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// GetExpense retrieves an expense by ID, including payers and splits.
func (s *SQLiteStore) GetExpense(ctx context.Context, expenseID string) (*models.Expense, error) {
	expense := &models.Expense{}
	var createdAt, updatedAt string

	err := s.db.QueryRowContext(ctx,
		`SELECT id, trip_id, description, amount, date, created_at, updated_at
		 FROM expenses WHERE id = ?`,
		expenseID,
	).Scan(&expense.ID, &expense.TripID, &expense.Description, &expense.Amount,
		&expense.Date, &createdAt, &updatedAt)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("expense not found: %s", expenseID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get expense: %w", err)
	}

	if expense.CreatedAt, err = parseTime(createdAt); err != nil {
		return nil, err
	}
	if expense.UpdatedAt, err = parseTime(updatedAt); err != nil {
		return nil, err
	}

	if err := s.loadExpenseParties(ctx, expense); err != nil {
		return nil, err
	}
	return expense, nil
}

// UpdateExpense replaces an existing expense's mutable fields.
func (s *SQLiteStore) UpdateExpense(ctx context.Context, expense *models.Expense) error {
	if expense.UpdatedAt.IsZero() {
		expense.UpdatedAt = time.Now()
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx,
		`UPDATE expenses SET description = ?, amount = ?, date = ?, updated_at = ? WHERE id = ?`,
		expense.Description, expense.Amount, expense.Date, formatTime(expense.UpdatedAt), expense.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update expense: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check update result: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("expense not found: %s", expense.ID)
	}

	for _, table := range []string{"expense_payers", "expense_splits"} {
		if _, err := tx.ExecContext(ctx, "DELETE FROM "+table+" WHERE expense_id = ?", expense.ID); err != nil {
			return fmt.Errorf("failed to clear %s: %w", table, err)
		}
	}
	if err := insertExpenseParties(ctx, tx, expense); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// DeleteExpense removes an expense by ID.
func (s *SQLiteStore) DeleteExpense(ctx context.Context, expenseID string) error {
	var exists int
	err := s.db.QueryRowContext(ctx, "SELECT 1 FROM expenses WHERE id = ?", expenseID).Scan(&exists)
	if err == sql.ErrNoRows {
		return fmt.Errorf("expense not found: %s", expenseID)
	}
	if err != nil {
		return fmt.Errorf("failed to check expense existence: %w", err)
	}

	if _, err := s.db.ExecContext(ctx, "DELETE FROM expenses WHERE id = ?", expenseID); err != nil {
		return fmt.Errorf("failed to delete expense: %w", err)
	}
	return nil
}

// ListExpenses retrieves every expense across all trips in creation order.
func (s *SQLiteStore) ListExpenses(ctx context.Context) ([]*models.Expense, error) {
	return s.listExpenses(ctx,
		`SELECT id, trip_id, description, amount, date, created_at, updated_at
		 FROM expenses ORDER BY created_at, id`)
}

// ListExpensesByTrip retrieves a trip's expenses in creation order.
func (s *SQLiteStore) ListExpensesByTrip(ctx context.Context, tripID string) ([]*models.Expense, error) {
	return s.listExpenses(ctx,
		`SELECT id, trip_id, description, amount, date, created_at, updated_at
		 FROM expenses WHERE trip_id = ? ORDER BY created_at, id`, tripID)
}

func (s *SQLiteStore) listExpenses(ctx context.Context, query string, args ...any) ([]*models.Expense, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list expenses: %w", err)
	}
	defer rows.Close()

	var expenses []*models.Expense
	for rows.Next() {
		expense := &models.Expense{}
		var createdAt, updatedAt string
		if err := rows.Scan(&expense.ID, &expense.TripID, &expense.Description, &expense.Amount,
			&expense.Date, &createdAt, &updatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan expense: %w", err)
		}
		if expense.CreatedAt, err = parseTime(createdAt); err != nil {
			return nil, err
		}
		if expense.UpdatedAt, err = parseTime(updatedAt); err != nil {
			return nil, err
		}
		expenses = append(expenses, expense)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate expenses: %w", err)
	}

	for _, expense := range expenses {
		if err := s.loadExpenseParties(ctx, expense); err != nil {
			return nil, err
		}
	}
	return expenses, nil
}

func insertExpenseParties(ctx context.Context, tx *sql.Tx, expense *models.Expense) error {
	for i, share := range expense.PaidBy {
		_, err := tx.ExecContext(ctx,
			"INSERT INTO expense_payers (expense_id, participant, amount, position) VALUES (?, ?, ?, ?)",
			expense.ID, share.Participant, share.Amount, i,
		)
		if err != nil {
			return fmt.Errorf("failed to insert expense payer: %w", err)
		}
	}
	for i, name := range expense.SplitBetween {
		_, err := tx.ExecContext(ctx,
			"INSERT INTO expense_splits (expense_id, participant, position) VALUES (?, ?, ?)",
			expense.ID, name, i,
		)
		if err != nil {
			return fmt.Errorf("failed to insert expense split: %w", err)
		}
	}
	return nil
}

func (s *SQLiteStore) loadExpenseParties(ctx context.Context, expense *models.Expense) error {
	payerRows, err := s.db.QueryContext(ctx,
		"SELECT participant, amount FROM expense_payers WHERE expense_id = ? ORDER BY position",
		expense.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to get expense payers: %w", err)
	}
	defer payerRows.Close()

	expense.PaidBy = nil
	for payerRows.Next() {
		var share models.PayerShare
		if err := payerRows.Scan(&share.Participant, &share.Amount); err != nil {
			return fmt.Errorf("failed to scan expense payer: %w", err)
		}
		expense.PaidBy = append(expense.PaidBy, share)
	}
	if err := payerRows.Err(); err != nil {
		return fmt.Errorf("failed to iterate expense payers: %w", err)
	}

	splitRows, err := s.db.QueryContext(ctx,
		"SELECT participant FROM expense_splits WHERE expense_id = ? ORDER BY position",
		expense.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to get expense splits: %w", err)
	}
	defer splitRows.Close()

	expense.SplitBetween = nil
	for splitRows.Next() {
		var name string
		if err := splitRows.Scan(&name); err != nil {
			return fmt.Errorf("failed to scan expense split: %w", err)
		}
		expense.SplitBetween = append(expense.SplitBetween, name)
	}
	if err := splitRows.Err(); err != nil {
		return fmt.Errorf("failed to iterate expense splits: %w", err)
	}
	return nil
}
