package ledger

import (
	"math"
	"testing"

	"github.com/umairk/tripsplit/internal/models"
)

func TestSummarizeTrip(t *testing.T) {
	expenses := []models.Expense{
		exp("A", 90, "A", "B", "C"),
		exp("B", 30, "B", "C"),
	}

	got := SummarizeTrip(expenses)

	if got.TotalExpenses != 120 {
		t.Errorf("TotalExpenses = %v, want 120", got.TotalExpenses)
	}
	if got.ExpenseCount != 2 {
		t.Errorf("ExpenseCount = %d, want 2", got.ExpenseCount)
	}
	if got.ParticipantCount != 3 {
		t.Errorf("ParticipantCount = %d, want 3", got.ParticipantCount)
	}
	if got.AveragePerExpense != 60 {
		t.Errorf("AveragePerExpense = %v, want 60", got.AveragePerExpense)
	}
}

func TestSummarizeTrip_Empty(t *testing.T) {
	got := SummarizeTrip(nil)
	if got.TotalExpenses != 0 || got.ExpenseCount != 0 || got.AveragePerExpense != 0 {
		t.Errorf("empty summary not zero: %+v", got)
	}
}

func TestSummarizeParticipant(t *testing.T) {
	expenses := []models.Expense{
		exp("A", 90, "A", "B", "C"),
		exp("B", 30, "B", "C"),
	}

	tests := []struct {
		name         string
		participant  string
		wantPaid     float64
		wantOwed     float64
		wantCount    int
		wantCreditor bool
		wantDebtor   bool
	}{
		{
			name:         "net creditor",
			participant:  "A",
			wantPaid:     90,
			wantOwed:     30,
			wantCount:    1,
			wantCreditor: true,
		},
		{
			name:        "net debtor despite fronting an expense",
			participant: "B",
			wantPaid:    30,
			wantOwed:    45,
			wantCount:   1,
			wantDebtor:  true,
		},
		{
			name:        "pure debtor",
			participant: "C",
			wantPaid:    0,
			wantOwed:    45,
			wantCount:   0,
			wantDebtor:  true,
		},
		{
			name:        "unknown participant is settled",
			participant: "Z",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SummarizeParticipant(expenses, tt.participant)

			if math.Abs(got.TotalPaid-tt.wantPaid) > 1e-9 {
				t.Errorf("TotalPaid = %v, want %v", got.TotalPaid, tt.wantPaid)
			}
			if math.Abs(got.TotalOwed-tt.wantOwed) > 1e-9 {
				t.Errorf("TotalOwed = %v, want %v", got.TotalOwed, tt.wantOwed)
			}
			if got.ExpenseCount != tt.wantCount {
				t.Errorf("ExpenseCount = %d, want %d", got.ExpenseCount, tt.wantCount)
			}
			if got.IsCreditor != tt.wantCreditor {
				t.Errorf("IsCreditor = %v, want %v", got.IsCreditor, tt.wantCreditor)
			}
			if got.IsDebtor != tt.wantDebtor {
				t.Errorf("IsDebtor = %v, want %v", got.IsDebtor, tt.wantDebtor)
			}
			if wantSettled := !tt.wantCreditor && !tt.wantDebtor; got.IsSettled != wantSettled {
				t.Errorf("IsSettled = %v, want %v", got.IsSettled, wantSettled)
			}
		})
	}
}

func TestSummarizeParticipant_DuplicateSplitCountedOnce(t *testing.T) {
	expenses := []models.Expense{
		exp("A", 30, "A", "B", "B", "C"),
	}
	got := SummarizeParticipant(expenses, "B")
	if math.Abs(got.TotalOwed-10) > 1e-9 {
		t.Errorf("TotalOwed = %v, want 10", got.TotalOwed)
	}
}
