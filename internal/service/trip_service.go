package service

import (
	"context"
	"log/slog"
	"strings"

	"github.com/umairk/tripsplit/internal/apperrors"
	"github.com/umairk/tripsplit/internal/ledger"
	"github.com/umairk/tripsplit/internal/metrics"
	"github.com/umairk/tripsplit/internal/models"
	"github.com/umairk/tripsplit/internal/storage"
)

// TripService manages trips and the cascading cleanup their deletion
// triggers.
type TripService struct {
	store storage.Store
}

// NewTripService creates a new TripService with the given storage backend.
func NewTripService(store storage.Store) *TripService {
	return &TripService{store: store}
}

// TripInput carries the user-editable trip fields.
type TripInput struct {
	Name         string   `json:"name"`
	Participants []string `json:"participants"`
}

// Create validates and persists a new trip.
func (s *TripService) Create(ctx context.Context, in TripInput) (*models.Trip, error) {
	trip, err := tripFromInput(in)
	if err != nil {
		return nil, err
	}

	if err := s.store.CreateTrip(ctx, trip); err != nil {
		slog.Error("CreateTrip failed", "error", err)
		return nil, apperrors.Storage(err, "failed to save trip")
	}

	slog.Info("Trip created", "trip_id", trip.ID, "name", trip.Name, "participants", len(trip.Participants))
	return trip, nil
}

// Get retrieves a trip by ID.
func (s *TripService) Get(ctx context.Context, tripID string) (*models.Trip, error) {
	trip, err := s.store.GetTrip(ctx, tripID)
	if err != nil {
		return nil, apperrors.NotFound("trip", tripID)
	}
	return trip, nil
}

// List retrieves all trips.
func (s *TripService) List(ctx context.Context) ([]*models.Trip, error) {
	trips, err := s.store.ListTrips(ctx)
	if err != nil {
		slog.Error("ListTrips failed", "error", err)
		return nil, apperrors.Storage(err, "failed to list trips")
	}
	return trips, nil
}

// Update validates and persists changes to a trip's name and participants.
func (s *TripService) Update(ctx context.Context, tripID string, in TripInput) (*models.Trip, error) {
	existing, err := s.store.GetTrip(ctx, tripID)
	if err != nil {
		return nil, apperrors.NotFound("trip", tripID)
	}

	updated, err := tripFromInput(in)
	if err != nil {
		return nil, err
	}
	updated.ID = existing.ID
	updated.CreatedAt = existing.CreatedAt

	if err := s.store.UpdateTrip(ctx, updated); err != nil {
		slog.Error("UpdateTrip failed", "trip_id", tripID, "error", err)
		return nil, apperrors.Storage(err, "failed to update trip")
	}
	return updated, nil
}

// Delete removes a trip, cascades to its expenses, and reconciles the
// confirmed-settlement set: pairs settled for the deleted trip's own plan
// are released so they can reappear as outstanding elsewhere.
func (s *TripService) Delete(ctx context.Context, tripID string) error {
	if _, err := s.store.GetTrip(ctx, tripID); err != nil {
		return apperrors.NotFound("trip", tripID)
	}

	expenses, err := s.store.ListExpensesByTrip(ctx, tripID)
	if err != nil {
		slog.Error("Delete: failed to list trip expenses", "trip_id", tripID, "error", err)
		return apperrors.Storage(err, "failed to load trip expenses")
	}

	confirmed, err := s.store.ListConfirmed(ctx)
	if err != nil {
		slog.Error("Delete: failed to list confirmed settlements", "trip_id", tripID, "error", err)
		return apperrors.Storage(err, "failed to load confirmed settlements")
	}

	if err := s.store.DeleteTrip(ctx, tripID); err != nil {
		slog.Error("DeleteTrip failed", "trip_id", tripID, "error", err)
		return apperrors.Storage(err, "failed to delete trip")
	}

	// Reconcile recomputes the deleted trip's plan to find its pairs.
	kept := ledger.Reconcile(expenseValues(expenses), confirmed)
	metrics.PlansComputed.Inc()
	if err := s.store.ReplaceConfirmed(ctx, kept); err != nil {
		slog.Error("Delete: failed to reconcile confirmed settlements", "trip_id", tripID, "error", err)
		return apperrors.Storage(err, "failed to reconcile confirmed settlements")
	}

	slog.Info("Trip deleted", "trip_id", tripID,
		"expenses_removed", len(expenses),
		"settlements_released", len(confirmed)-len(kept),
	)
	return nil
}

func tripFromInput(in TripInput) (*models.Trip, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, apperrors.ValidationFailed("trip name is required", "")
	}

	participants, ok := cleanNames(in.Participants)
	if !ok {
		return nil, apperrors.ValidationFailed("participant names must not be empty", "")
	}
	if len(participants) == 0 {
		return nil, apperrors.ValidationFailed("a trip needs at least one participant", "")
	}

	return &models.Trip{Name: name, Participants: participants}, nil
}
