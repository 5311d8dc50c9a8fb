package sqlite

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/umairk/tripsplit/internal/models"
)

// ListConfirmed retrieves the confirmed settlement instructions in
// confirmation order.
func (s *SQLiteStore) ListConfirmed(ctx context.Context) ([]models.SettlementInstruction, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT from_name, to_name, amount, settled_at FROM confirmed_settlements ORDER BY settled_at, from_name, to_name",
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list confirmed settlements: %w", err)
	}
	defer rows.Close()

	var confirmed []models.SettlementInstruction
	for rows.Next() {
		var ins models.SettlementInstruction
		var settledAt string
		if err := rows.Scan(&ins.From, &ins.To, &ins.Amount, &settledAt); err != nil {
			return nil, fmt.Errorf("failed to scan confirmed settlement: %w", err)
		}
		t, err := parseTime(settledAt)
		if err != nil {
			return nil, err
		}
		ins.IsSettled = true
		ins.SettledAt = &t
		confirmed = append(confirmed, ins)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate confirmed settlements: %w", err)
	}
	return confirmed, nil
}

// AppendConfirmed adds an instruction to the confirmed set. Inserting an
// already-confirmed (from, to) pair again is a no-op, which keeps
// double-confirmation races harmless.
func (s *SQLiteStore) AppendConfirmed(ctx context.Context, ins models.SettlementInstruction) error {
	settledAt := time.Now()
	if ins.SettledAt != nil {
		settledAt = *ins.SettledAt
	}

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO confirmed_settlements (from_name, to_name, amount, settled_at)
		 VALUES (?, ?, ?, ?)
		 ON CONFLICT (from_name, to_name) DO NOTHING`,
		ins.From, ins.To, ins.Amount, formatTime(settledAt),
	)
	if err != nil {
		return fmt.Errorf("failed to insert confirmed settlement: %w", err)
	}
	return nil
}

// ReplaceConfirmed atomically replaces the whole confirmed set.
func (s *SQLiteStore) ReplaceConfirmed(ctx context.Context, confirmed []models.SettlementInstruction) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, "DELETE FROM confirmed_settlements"); err != nil {
		return fmt.Errorf("failed to clear confirmed settlements: %w", err)
	}

	for _, ins := range confirmed {
		settledAt := time.Now()
		if ins.SettledAt != nil {
			settledAt = *ins.SettledAt
		}
		_, err := tx.ExecContext(ctx,
			"INSERT INTO confirmed_settlements (from_name, to_name, amount, settled_at) VALUES (?, ?, ?, ?)",
			ins.From, ins.To, ins.Amount, formatTime(settledAt),
		)
		if err != nil {
			return fmt.Errorf("failed to insert confirmed settlement: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// ListHistory retrieves all settlement records, most recent first.
func (s *SQLiteStore) ListHistory(ctx context.Context) ([]models.SettlementRecord, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, from_name, to_name, amount, trip_id, trip_name, settled_at
		 FROM settlement_history ORDER BY settled_at DESC, id`,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list settlement history: %w", err)
	}
	defer rows.Close()

	var records []models.SettlementRecord
	for rows.Next() {
		var rec models.SettlementRecord
		var settledAt string
		if err := rows.Scan(&rec.ID, &rec.From, &rec.To, &rec.Amount,
			&rec.TripID, &rec.TripName, &settledAt); err != nil {
			return nil, fmt.Errorf("failed to scan settlement record: %w", err)
		}
		if rec.SettledAt, err = parseTime(settledAt); err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate settlement history: %w", err)
	}
	return records, nil
}

// AppendHistory appends an immutable settlement record.
func (s *SQLiteStore) AppendHistory(ctx context.Context, rec models.SettlementRecord) error {
	if rec.ID == "" {
		rec.ID = uuid.New().String()
	}
	if rec.SettledAt.IsZero() {
		rec.SettledAt = time.Now()
	}

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO settlement_history (id, from_name, to_name, amount, trip_id, trip_name, settled_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		rec.ID, rec.From, rec.To, rec.Amount, rec.TripID, rec.TripName, formatTime(rec.SettledAt),
	)
	if err != nil {
		return fmt.Errorf("failed to insert settlement record: %w", err)
	}
	return nil
}

// ClearHistory deletes all settlement records.
func (s *SQLiteStore) ClearHistory(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, "DELETE FROM settlement_history"); err != nil {
		return fmt.Errorf("failed to clear settlement history: %w", err)
	}
	return nil
}
