package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/umairk/tripsplit/internal/models"
)

// CreateTrip persists a new trip to the database.
func (s *SQLiteStore) CreateTrip(ctx context.Context, trip *models.Trip) error {
	if trip.ID == "" {
		trip.ID = uuid.New().String()
	}
	now := time.Now()
	if trip.CreatedAt.IsZero() {
		trip.CreatedAt = now
	}
	if trip.UpdatedAt.IsZero() {
		trip.UpdatedAt = trip.CreatedAt
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx,
		"INSERT INTO trips (id, name, created_at, updated_at) VALUES (?, ?, ?, ?)",
		trip.ID, trip.Name, formatTime(trip.CreatedAt), formatTime(trip.UpdatedAt),
	)
	if err != nil {
		return fmt.Errorf("failed to insert trip: %w", err)
	}

	if err := insertTripParticipants(ctx, tx, trip.ID, trip.Participants); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// GetTrip retrieves a trip by ID, including its participant list.
func (s *SQLiteStore) GetTrip(ctx context.Context, tripID string) (*models.Trip, error) {
	trip := &models.Trip{}
	var createdAt, updatedAt string

	err := s.db.QueryRowContext(ctx,
		"SELECT id, name, created_at, updated_at FROM trips WHERE id = ?",
		tripID,
	).Scan(&trip.ID, &trip.Name, &createdAt, &updatedAt)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("trip not found: %s", tripID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get trip: %w", err)
	}

	if trip.CreatedAt, err = parseTime(createdAt); err != nil {
		return nil, err
	}
	if trip.UpdatedAt, err = parseTime(updatedAt); err != nil {
		return nil, err
	}

	if trip.Participants, err = s.tripParticipants(ctx, trip.ID); err != nil {
		return nil, err
	}
	return trip, nil
}

// ListTrips retrieves all trips in creation order.
func (s *SQLiteStore) ListTrips(ctx context.Context) ([]*models.Trip, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT id, name, created_at, updated_at FROM trips ORDER BY created_at, id",
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list trips: %w", err)
	}
	defer rows.Close()

	var trips []*models.Trip
	for rows.Next() {
		trip := &models.Trip{}
		var createdAt, updatedAt string
		if err := rows.Scan(&trip.ID, &trip.Name, &createdAt, &updatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan trip: %w", err)
		}
		if trip.CreatedAt, err = parseTime(createdAt); err != nil {
			return nil, err
		}
		if trip.UpdatedAt, err = parseTime(updatedAt); err != nil {
			return nil, err
		}
		trips = append(trips, trip)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate trips: %w", err)
	}

	for _, trip := range trips {
		if trip.Participants, err = s.tripParticipants(ctx, trip.ID); err != nil {
			return nil, err
		}
	}
	return trips, nil
}

// UpdateTrip replaces a trip's name and participant list.
func (s *SQLiteStore) UpdateTrip(ctx context.Context, trip *models.Trip) error {
	if trip.UpdatedAt.IsZero() {
		trip.UpdatedAt = time.Now()
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx,
		"UPDATE trips SET name = ?, updated_at = ? WHERE id = ?",
		trip.Name, formatTime(trip.UpdatedAt), trip.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update trip: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check update result: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("trip not found: %s", trip.ID)
	}

	if _, err := tx.ExecContext(ctx, "DELETE FROM trip_participants WHERE trip_id = ?", trip.ID); err != nil {
		return fmt.Errorf("failed to clear trip participants: %w", err)
	}
	if err := insertTripParticipants(ctx, tx, trip.ID, trip.Participants); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// DeleteTrip removes a trip; expenses, payers and splits cascade.
func (s *SQLiteStore) DeleteTrip(ctx context.Context, tripID string) error {
	var exists int
	err := s.db.QueryRowContext(ctx, "SELECT 1 FROM trips WHERE id = ?", tripID).Scan(&exists)
	if err == sql.ErrNoRows {
		return fmt.Errorf("trip not found: %s", tripID)
	}
	if err != nil {
		return fmt.Errorf("failed to check trip existence: %w", err)
	}

	if _, err := s.db.ExecContext(ctx, "DELETE FROM trips WHERE id = ?", tripID); err != nil {
		return fmt.Errorf("failed to delete trip: %w", err)
	}
	return nil
}

func insertTripParticipants(ctx context.Context, tx *sql.Tx, tripID string, participants []string) error {
	for i, name := range participants {
		_, err := tx.ExecContext(ctx,
			"INSERT INTO trip_participants (trip_id, name, position) VALUES (?, ?, ?)",
			tripID, name, i,
		)
		if err != nil {
			return fmt.Errorf("failed to insert trip participant: %w", err)
		}
	}
	return nil
}

func (s *SQLiteStore) tripParticipants(ctx context.Context, tripID string) ([]string, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT name FROM trip_participants WHERE trip_id = ? ORDER BY position",
		tripID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get trip participants: %w", err)
	}
	defer rows.Close()

	var participants []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("failed to scan trip participant: %w", err)
		}
		participants = append(participants, name)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate trip participants: %w", err)
	}
	return participants, nil
}
