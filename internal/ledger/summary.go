package ledger

import "github.com/umairk/tripsplit/internal/models"

// TripSummary aggregates a trip's expenses for display.
type TripSummary struct {
	TotalExpenses     float64 `json:"totalExpenses"`
	ExpenseCount      int     `json:"expenseCount"`
	ParticipantCount  int     `json:"participantCount"`
	AveragePerExpense float64 `json:"averagePerExpense"`
}

// SummarizeTrip computes totals across a trip's expense set.
func SummarizeTrip(expenses []models.Expense) TripSummary {
	var summary TripSummary
	participants := make(map[string]bool)

	for _, exp := range expenses {
		summary.TotalExpenses += exp.Amount
		summary.ExpenseCount++
		for _, share := range exp.PaidBy {
			participants[share.Participant] = true
		}
		for _, name := range exp.SplitBetween {
			participants[name] = true
		}
	}

	summary.ParticipantCount = len(participants)
	if summary.ExpenseCount > 0 {
		summary.AveragePerExpense = summary.TotalExpenses / float64(summary.ExpenseCount)
	}
	return summary
}

// ParticipantSummary describes one participant's standing across a
// trip's expenses.
type ParticipantSummary struct {
	TotalPaid    float64 `json:"totalPaid"`
	TotalOwed    float64 `json:"totalOwed"`
	NetAmount    float64 `json:"netAmount"`
	ExpenseCount int     `json:"expenseCount"`
	IsCreditor   bool    `json:"isCreditor"`
	IsDebtor     bool    `json:"isDebtor"`
	IsSettled    bool    `json:"isSettled"`
}

// SummarizeParticipant computes one participant's paid/owed totals.
// ExpenseCount counts the expenses the participant fronted money for.
func SummarizeParticipant(expenses []models.Expense, name string) ParticipantSummary {
	var summary ParticipantSummary

	for _, exp := range expenses {
		for _, share := range exp.PaidBy {
			if share.Participant == name {
				summary.TotalPaid += share.Amount
				summary.ExpenseCount++
				break
			}
		}

		split := uniqueNames(exp.SplitBetween)
		if len(split) == 0 {
			continue
		}
		for _, member := range split {
			if member == name {
				summary.TotalOwed += exp.Amount / float64(len(split))
				break
			}
		}
	}

	summary.NetAmount = summary.TotalPaid - summary.TotalOwed
	summary.IsCreditor = summary.NetAmount > epsilon
	summary.IsDebtor = summary.NetAmount < -epsilon
	summary.IsSettled = !summary.IsCreditor && !summary.IsDebtor
	return summary
}
