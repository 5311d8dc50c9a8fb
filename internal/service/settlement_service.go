package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/umairk/tripsplit/internal/apperrors"
	"github.com/umairk/tripsplit/internal/ledger"
	"github.com/umairk/tripsplit/internal/metrics"
	"github.com/umairk/tripsplit/internal/models"
	"github.com/umairk/tripsplit/internal/storage"
)

// SettlementService computes balance sheets and tracks which payment
// instructions have been confirmed paid across plan recomputations.
type SettlementService struct {
	store storage.Store
	now   func() time.Time
}

// NewSettlementService creates a new SettlementService with the given
// storage backend.
func NewSettlementService(store storage.Store) *SettlementService {
	return &SettlementService{store: store, now: time.Now}
}

// BalanceSheet is the complete who-owes-whom view for one trip.
type BalanceSheet struct {
	TripID           string                         `json:"tripId"`
	TripName         string                         `json:"tripName"`
	NetPositions     map[string]float64             `json:"netPositions"`
	Outstanding      []models.SettlementInstruction `json:"outstanding"`
	Settled          []models.SettlementInstruction `json:"settled"`
	OutstandingTotal float64                        `json:"outstandingTotal"`
	SettledTotal     float64                        `json:"settledTotal"`
	Summary          ledger.TripSummary             `json:"summary"`
}

// Balances recomputes the settlement plan for a trip's current expense
// set and partitions it into outstanding and already-settled instructions.
func (s *SettlementService) Balances(ctx context.Context, tripID string) (*BalanceSheet, error) {
	trip, expenses, confirmed, err := s.snapshot(ctx, tripID)
	if err != nil {
		return nil, err
	}

	plan := ledger.ComputePlan(expenses)
	metrics.PlansComputed.Inc()

	outstanding := ledger.Outstanding(plan, confirmed)
	settled := ledger.Settled(plan, confirmed)

	return &BalanceSheet{
		TripID:           trip.ID,
		TripName:         trip.Name,
		NetPositions:     ledger.NetPositions(expenses),
		Outstanding:      outstanding,
		Settled:          settled,
		OutstandingTotal: ledger.TotalAmount(outstanding),
		SettledTotal:     ledger.TotalAmount(settled),
		Summary:          ledger.SummarizeTrip(expenses),
	}, nil
}

// Participant summarizes one participant's standing on a trip.
func (s *SettlementService) Participant(ctx context.Context, tripID, name string) (*ledger.ParticipantSummary, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, apperrors.ValidationFailed("participant name is required", "")
	}

	_, expenses, _, err := s.snapshot(ctx, tripID)
	if err != nil {
		return nil, err
	}

	summary := ledger.SummarizeParticipant(expenses, name)
	return &summary, nil
}

// Confirm marks the outstanding (from, to) instruction of a trip's
// current plan as paid: it appends an immutable history record and adds
// the pair to the confirmed set. Confirming an already-confirmed pair is
// a no-op that returns the existing record; confirming a pair with no
// outstanding instruction is an error.
func (s *SettlementService) Confirm(ctx context.Context, tripID, from, to string) (*models.SettlementRecord, error) {
	from, to = strings.TrimSpace(from), strings.TrimSpace(to)
	if from == "" || to == "" {
		return nil, apperrors.ValidationFailed("both from and to are required", "")
	}
	if from == to {
		return nil, apperrors.ValidationFailed("a participant cannot settle with themselves", from)
	}

	trip, expenses, confirmed, err := s.snapshot(ctx, tripID)
	if err != nil {
		return nil, err
	}

	for _, ins := range confirmed {
		if ins.From == from && ins.To == to {
			return s.existingRecord(ctx, trip, ins)
		}
	}

	plan := ledger.ComputePlan(expenses)
	metrics.PlansComputed.Inc()
	outstanding := ledger.Outstanding(plan, confirmed)

	var match *models.SettlementInstruction
	for i := range outstanding {
		if outstanding[i].From == from && outstanding[i].To == to {
			match = &outstanding[i]
			break
		}
	}
	if match == nil {
		return nil, apperrors.New(apperrors.TypeNotFound,
			"no outstanding settlement between these participants",
			fmt.Sprintf("from: %s, to: %s", from, to))
	}

	now := s.now()
	rec := models.SettlementRecord{
		ID:        uuid.New().String(),
		From:      from,
		To:        to,
		Amount:    match.Amount,
		TripID:    trip.ID,
		TripName:  trip.Name,
		SettledAt: now,
	}

	// History first, then the confirmed set. A failure between the two
	// leaves an audit row for a pair still outstanding, which a retry
	// resolves; the reverse order could close a pair with no record.
	if err := s.store.AppendHistory(ctx, rec); err != nil {
		slog.Error("Confirm: failed to append settlement record", "from", from, "to", to, "error", err)
		return nil, apperrors.Storage(err, "failed to record settlement")
	}

	match.IsSettled = true
	match.SettledAt = &now
	if err := s.store.AppendConfirmed(ctx, *match); err != nil {
		slog.Error("Confirm: failed to append confirmed settlement", "from", from, "to", to, "error", err)
		return nil, apperrors.Storage(err, "failed to mark settlement as paid")
	}
	metrics.SettlementsConfirmed.Inc()

	slog.Info("Settlement confirmed", "trip_id", trip.ID, "from", from, "to", to, "amount", rec.Amount)
	return &rec, nil
}

// History retrieves all settlement records, most recent first.
func (s *SettlementService) History(ctx context.Context) ([]models.SettlementRecord, error) {
	records, err := s.store.ListHistory(ctx)
	if err != nil {
		slog.Error("ListHistory failed", "error", err)
		return nil, apperrors.Storage(err, "failed to list settlement history")
	}
	return records, nil
}

// snapshot loads the consistent view a computation runs over: the trip,
// its full expense list and the confirmed set.
func (s *SettlementService) snapshot(ctx context.Context, tripID string) (*models.Trip, []models.Expense, []models.SettlementInstruction, error) {
	trip, err := s.store.GetTrip(ctx, tripID)
	if err != nil {
		return nil, nil, nil, apperrors.NotFound("trip", tripID)
	}

	expenses, err := s.store.ListExpensesByTrip(ctx, tripID)
	if err != nil {
		slog.Error("snapshot: failed to list expenses", "trip_id", tripID, "error", err)
		return nil, nil, nil, apperrors.Storage(err, "failed to load expenses")
	}

	confirmed, err := s.store.ListConfirmed(ctx)
	if err != nil {
		slog.Error("snapshot: failed to list confirmed settlements", "trip_id", tripID, "error", err)
		return nil, nil, nil, apperrors.Storage(err, "failed to load confirmed settlements")
	}

	return trip, expenseValues(expenses), confirmed, nil
}

// existingRecord resolves the idempotent re-confirmation of an
// already-settled pair without writing anything.
func (s *SettlementService) existingRecord(ctx context.Context, trip *models.Trip, ins models.SettlementInstruction) (*models.SettlementRecord, error) {
	records, err := s.store.ListHistory(ctx)
	if err != nil {
		slog.Error("Confirm: failed to list settlement history", "error", err)
		return nil, apperrors.Storage(err, "failed to load settlement history")
	}
	for i := range records {
		if records[i].From == ins.From && records[i].To == ins.To {
			return &records[i], nil
		}
	}

	// Confirmed without a surviving record; report the settled state
	// rather than writing a late history row.
	rec := models.SettlementRecord{
		From:     ins.From,
		To:       ins.To,
		Amount:   ins.Amount,
		TripID:   trip.ID,
		TripName: trip.Name,
	}
	if ins.SettledAt != nil {
		rec.SettledAt = *ins.SettledAt
	}
	return &rec, nil
}
