package models

import (
	"encoding/json"
	"fmt"
	"time"
)

// PayerShare is one payer's contribution toward an expense fronted by
// more than one person.
type PayerShare struct {
	Participant string  `json:"participant"`
	Amount      float64 `json:"amount"`
}

// PaidBy is the ordered list of contributions that covered an expense.
// The single-payer case is a one-element list whose amount equals the
// expense total.
type PaidBy []PayerShare

// UnmarshalJSON accepts either the legacy single-payer form (a bare
// participant name) or a list of {participant, amount} contributions.
// In the legacy form the contribution amount is unknown at decode time;
// Expense.NormalizePayers fills it in from the expense total.
func (p *PaidBy) UnmarshalJSON(data []byte) error {
	var name string
	if err := json.Unmarshal(data, &name); err == nil {
		*p = PaidBy{{Participant: name}}
		return nil
	}

	var shares []PayerShare
	if err := json.Unmarshal(data, &shares); err != nil {
		return fmt.Errorf("paidBy must be a participant name or a list of contributions: %w", err)
	}
	*p = shares
	return nil
}

// Total returns the sum of all declared contributions.
func (p PaidBy) Total() float64 {
	var total float64
	for _, share := range p {
		total += share.Amount
	}
	return total
}

// Expense is an immutable-once-created record of money spent on a trip.
type Expense struct {
	// ID is the unique identifier for the expense (UUID format).
	ID string `json:"id"`

	// TripID is the trip this expense belongs to.
	TripID string `json:"tripId"`

	// Description is the human-readable label (e.g., "Dinner", "Fuel").
	Description string `json:"description"`

	// Amount is the full cost of the expense, two-decimal precision.
	Amount float64 `json:"amount"`

	// PaidBy lists who fronted the cost and how much of it each fronted.
	// Contributions must sum to Amount within a cent.
	PaidBy PaidBy `json:"paidBy"`

	// SplitBetween is the set of participant names sharing the cost.
	// Each member owes Amount / len(SplitBetween); duplicates carry no meaning.
	SplitBetween []string `json:"splitBetween"`

	// Date is the day of the expense, formatted as YYYY-MM-DD.
	Date string `json:"date"`

	// CreatedAt is when the expense was recorded.
	CreatedAt time.Time `json:"createdAt"`

	// UpdatedAt is when the expense was last modified.
	UpdatedAt time.Time `json:"updatedAt"`
}

// NormalizePayers collapses the legacy single-payer form onto the unified
// representation: a lone contribution with a zero amount is assumed to
// cover the full expense.
func (e *Expense) NormalizePayers() {
	if len(e.PaidBy) == 1 && e.PaidBy[0].Amount == 0 {
		e.PaidBy[0].Amount = e.Amount
	}
}
