package ledger

import "github.com/umairk/tripsplit/internal/models"

// pairKey identifies a debtor/creditor pair. Settled state is keyed by
// the pair alone, never by amount: once (from, to) is confirmed paid, the
// pair stays closed until it is reconciled away, even if later expenses
// would produce a differently-sized debt between the same two people.
type pairKey struct {
	from, to string
}

func pairSet(instructions []models.SettlementInstruction) map[pairKey]bool {
	set := make(map[pairKey]bool, len(instructions))
	for _, ins := range instructions {
		set[pairKey{from: ins.From, to: ins.To}] = true
	}
	return set
}

// Outstanding filters a freshly computed plan down to the instructions
// whose (from, to) pair has not already been confirmed paid.
func Outstanding(plan, confirmed []models.SettlementInstruction) []models.SettlementInstruction {
	settled := pairSet(confirmed)
	var outstanding []models.SettlementInstruction
	for _, ins := range plan {
		if !settled[pairKey{from: ins.From, to: ins.To}] {
			outstanding = append(outstanding, ins)
		}
	}
	return outstanding
}

// Settled returns the confirmed instructions that suppress an entry of
// the current plan. Amounts and timestamps are the ones captured at
// confirmation time, not the recomputed ones.
func Settled(plan, confirmed []models.SettlementInstruction) []models.SettlementInstruction {
	planned := pairSet(plan)
	var settled []models.SettlementInstruction
	for _, ins := range confirmed {
		if planned[pairKey{from: ins.From, to: ins.To}] {
			settled = append(settled, ins)
		}
	}
	return settled
}

// Reconcile computes the new confirmed set after a trip is deleted: any
// confirmed pair that matches an instruction of the deleted trip's own
// plan was specific to that trip and is removed, freeing the pair to
// reappear as outstanding elsewhere.
func Reconcile(tripExpenses []models.Expense, confirmed []models.SettlementInstruction) []models.SettlementInstruction {
	removed := pairSet(ComputePlan(tripExpenses))
	var kept []models.SettlementInstruction
	for _, ins := range confirmed {
		if !removed[pairKey{from: ins.From, to: ins.To}] {
			kept = append(kept, ins)
		}
	}
	return kept
}

// TotalAmount sums the amounts of the given instructions.
func TotalAmount(instructions []models.SettlementInstruction) float64 {
	var total float64
	for _, ins := range instructions {
		total += ins.Amount
	}
	return total
}
