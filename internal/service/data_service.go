package service

import (
	"context"
	"log/slog"

	"github.com/umairk/tripsplit/internal/apperrors"
	"github.com/umairk/tripsplit/internal/models"
	"github.com/umairk/tripsplit/internal/storage"
)

// DataService handles whole-database operations: export and the full wipe.
type DataService struct {
	store storage.Store
}

// NewDataService creates a new DataService with the given storage backend.
func NewDataService(store storage.Store) *DataService {
	return &DataService{store: store}
}

// DataExport is the full snapshot returned by the export endpoint.
type DataExport struct {
	Trips    []*models.Trip            `json:"trips"`
	Expenses []*models.Expense         `json:"expenses"`
	History  []models.SettlementRecord `json:"settlementHistory"`
}

// Export returns every trip, expense and settlement record.
func (s *DataService) Export(ctx context.Context) (*DataExport, error) {
	trips, err := s.store.ListTrips(ctx)
	if err != nil {
		return nil, apperrors.Storage(err, "failed to export trips")
	}
	expenses, err := s.store.ListExpenses(ctx)
	if err != nil {
		return nil, apperrors.Storage(err, "failed to export expenses")
	}
	history, err := s.store.ListHistory(ctx)
	if err != nil {
		return nil, apperrors.Storage(err, "failed to export settlement history")
	}

	return &DataExport{Trips: trips, Expenses: expenses, History: history}, nil
}

// Wipe deletes all trips, expenses, confirmed settlements and history.
// This is the only operation that removes settlement records.
func (s *DataService) Wipe(ctx context.Context) error {
	if err := s.store.ClearAll(ctx); err != nil {
		slog.Error("ClearAll failed", "error", err)
		return apperrors.Storage(err, "failed to clear data")
	}
	slog.Info("All data cleared")
	return nil
}
