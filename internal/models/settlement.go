package models

import "time"

// SettlementInstruction directs one participant to pay another to reduce
// outstanding debt. Instructions are recomputed from the current expense
// set on demand; they have no independent lifecycle.
type SettlementInstruction struct {
	// From is the participant who owes (debtor settling up).
	From string `json:"from"`

	// To is the participant who is owed (creditor being paid).
	To string `json:"to"`

	// Amount is the payment amount, two-decimal precision.
	Amount float64 `json:"amount"`

	// IsSettled reports whether this instruction has been confirmed paid.
	IsSettled bool `json:"isSettled"`

	// SettledAt is when the payment was confirmed, if it was.
	SettledAt *time.Time `json:"settledAt,omitempty"`
}

// SettlementRecord is the immutable history entry created the moment an
// instruction is confirmed paid. Records are never mutated or deleted
// except by a full data wipe.
type SettlementRecord struct {
	// ID is the unique identifier for the record (UUID format).
	ID string `json:"id"`

	// From is the participant who paid.
	From string `json:"from"`

	// To is the participant who received payment.
	To string `json:"to"`

	// Amount is the settled amount.
	Amount float64 `json:"amount"`

	// TripID is the trip the settled instruction was computed for.
	TripID string `json:"tripId"`

	// TripName is the trip's display name at confirmation time, kept for
	// display after the trip itself is deleted.
	TripName string `json:"tripName"`

	// SettledAt is when the payment was confirmed.
	SettledAt time.Time `json:"settledAt"`
}
