package store

import (
	"sync"

	"github.com/moneta-app/moneta-backend/internal/domain"
	"github.com/shopspring/decimal"
)

// BudgetStore maps category names to budgeted amounts. The "income" key holds
// the income target and is excluded from expense-budget comparisons by the
// analytics engine. Last write wins; no history is retained.
type BudgetStore struct {
	mu      sync.RWMutex
	amounts map[string]decimal.Decimal
}

// NewBudgetStore creates a BudgetStore seeded with the default categories at
// zero.
func NewBudgetStore() *BudgetStore {
	amounts := make(map[string]decimal.Decimal, len(domain.DefaultCategories))
	for _, c := range domain.DefaultCategories {
		amounts[c] = decimal.Zero
	}
	return &BudgetStore{amounts: amounts}
}

// Set upserts the budget for a category. Negative amounts clamp to zero.
func (s *BudgetStore) Set(category string, amount decimal.Decimal) {
	if amount.IsNegative() {
		amount = decimal.Zero
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.amounts[category] = amount
}

// Amount returns the budget for a category, zero when unset.
func (s *BudgetStore) Amount(category string) decimal.Decimal {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if amount, ok := s.amounts[category]; ok {
		return amount
	}
	return decimal.Zero
}

// Get returns a snapshot of the full mapping.
func (s *BudgetStore) Get() map[string]decimal.Decimal {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make(map[string]decimal.Decimal, len(s.amounts))
	for category, amount := range s.amounts {
		out[category] = amount
	}
	return out
}
