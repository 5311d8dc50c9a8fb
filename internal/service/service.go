// Package service orchestrates validation, storage and the ledger core.
// All input validation lives here; by the time expenses reach the
// netting engine they are well-formed.
package service

import (
	"strings"

	"github.com/umairk/tripsplit/internal/models"
)

// amountTolerance is the cent-level slack allowed when multi-payer
// contributions are checked against the expense total.
const amountTolerance = 0.01

// expenseValues dereferences a store result for the pure ledger functions.
func expenseValues(expenses []*models.Expense) []models.Expense {
	values := make([]models.Expense, len(expenses))
	for i, exp := range expenses {
		values[i] = *exp
	}
	return values
}

// cleanNames trims and deduplicates names, preserving order. Reports
// false when any name is empty after trimming.
func cleanNames(names []string) ([]string, bool) {
	seen := make(map[string]bool, len(names))
	var cleaned []string
	for _, name := range names {
		name = strings.TrimSpace(name)
		if name == "" {
			return nil, false
		}
		if !seen[name] {
			seen[name] = true
			cleaned = append(cleaned, name)
		}
	}
	return cleaned, true
}

func containsName(names []string, name string) bool {
	for _, n := range names {
		if n == name {
			return true
		}
	}
	return false
}
