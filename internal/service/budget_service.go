package service

import (
	"strings"

	"github.com/moneta-app/moneta-backend/internal/domain"
	"github.com/shopspring/decimal"
)

// BudgetRepository is the budget mapping contract the service drives.
type BudgetRepository interface {
	Set(category string, amount decimal.Decimal)
	Amount(category string) decimal.Decimal
	Get() map[string]decimal.Decimal
}

// BudgetService handles budget mapping business logic.
type BudgetService struct {
	repo BudgetRepository
}

// NewBudgetService creates a new BudgetService.
func NewBudgetService(repo BudgetRepository) *BudgetService {
	return &BudgetService{repo: repo}
}

// Set upserts the budget for a category. Amounts arrive already coerced to
// non-negative values; the store clamps again as a backstop. Budgets may be
// set for categories that are not (or no longer) registered.
func (s *BudgetService) Set(category string, amount decimal.Decimal) (decimal.Decimal, error) {
	category = strings.TrimSpace(category)
	if category == "" {
		return decimal.Zero, domain.ErrNameRequired
	}
	s.repo.Set(category, amount)
	return s.repo.Amount(category), nil
}

// Get returns a snapshot of the full mapping.
func (s *BudgetService) Get() map[string]decimal.Decimal {
	return s.repo.Get()
}
