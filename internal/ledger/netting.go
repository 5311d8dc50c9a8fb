package ledger

import (
	"math"
	"sort"

	"github.com/umairk/tripsplit/internal/models"
)

// epsilon is the tolerance below which a remaining balance counts as zero.
// Binary floating point leaves residue like 1.42e-14 after repeated
// add/subtract of cent amounts; without this the greedy loop would emit
// spurious near-zero instructions.
const epsilon = 1e-9

// party pairs a participant with a positive remaining amount during matching.
type party struct {
	name   string
	amount float64
}

// NetPositions computes each participant's signed net position across the
// given expenses: positive means they are owed money overall, negative
// means they owe, zero means settled.
func NetPositions(expenses []models.Expense) map[string]float64 {
	net, _ := accumulate(expenses)
	return net
}

// accumulate builds the net-position map and the order in which
// participants first appear. The order is what makes tie-breaking in
// ComputePlan deterministic for identical input.
func accumulate(expenses []models.Expense) (map[string]float64, []string) {
	net := make(map[string]float64)
	var order []string
	touch := func(name string) {
		if _, ok := net[name]; !ok {
			net[name] = 0
			order = append(order, name)
		}
	}

	for _, exp := range expenses {
		split := uniqueNames(exp.SplitBetween)
		if len(split) == 0 {
			// Malformed input is rejected upstream; skipping here keeps the
			// ledger zero-sum instead of dividing by zero or minting credit.
			continue
		}

		for _, share := range exp.PaidBy {
			touch(share.Participant)
			net[share.Participant] += share.Amount
		}

		owed := exp.Amount / float64(len(split))
		for _, name := range split {
			touch(name)
			net[name] -= owed
		}
	}

	return net, order
}

// ComputePlan turns a snapshot of expenses into the minimal set of
// pairwise payment instructions that discharges all debts.
//
// Algorithm:
//   - accumulate net positions per participant
//   - partition into debtors and creditors, largest amounts first
//     (stable sort: equal amounts keep first-appearance order)
//   - greedily match the largest debtor against the largest creditor for
//     min(remaining, remaining), advancing past anyone who reaches zero
//
// Each instruction zeroes out at least one side, so the plan has at most
// N-1 instructions for N participants with nonzero positions. The
// function is pure and total: same input, same plan, no error paths.
func ComputePlan(expenses []models.Expense) []models.SettlementInstruction {
	net, order := accumulate(expenses)

	var debtors, creditors []party
	for _, name := range order {
		switch amount := net[name]; {
		case amount < -epsilon:
			debtors = append(debtors, party{name: name, amount: -amount})
		case amount > epsilon:
			creditors = append(creditors, party{name: name, amount: amount})
		}
	}

	sort.SliceStable(debtors, func(i, j int) bool { return debtors[i].amount > debtors[j].amount })
	sort.SliceStable(creditors, func(i, j int) bool { return creditors[i].amount > creditors[j].amount })

	var plan []models.SettlementInstruction
	i, j := 0, 0
	for i < len(debtors) && j < len(creditors) {
		amount := math.Min(debtors[i].amount, creditors[j].amount)

		if rounded := round2(amount); rounded > 0 {
			plan = append(plan, models.SettlementInstruction{
				From:   debtors[i].name,
				To:     creditors[j].name,
				Amount: rounded,
			})
		}

		// Decrement by the unrounded match so residue never compounds.
		debtors[i].amount -= amount
		creditors[j].amount -= amount

		if debtors[i].amount < epsilon {
			i++
		}
		if creditors[j].amount < epsilon {
			j++
		}
	}

	return plan
}

// uniqueNames drops duplicate split members while preserving order.
func uniqueNames(names []string) []string {
	seen := make(map[string]bool, len(names))
	unique := names[:0:0]
	for _, name := range names {
		if !seen[name] {
			seen[name] = true
			unique = append(unique, name)
		}
	}
	return unique
}

// round2 rounds to two decimals (cent granularity).
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
