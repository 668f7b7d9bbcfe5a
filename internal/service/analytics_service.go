package service

import (
	"sort"
	"time"

	"github.com/moneta-app/moneta-backend/internal/domain"
	"github.com/moneta-app/moneta-backend/internal/util"
	"github.com/shopspring/decimal"
)

// trendMonths is how many monthly buckets the spending trend retains.
const trendMonths = 6

// TransactionSource provides the transaction snapshot the engine reads.
type TransactionSource interface {
	List() []*domain.Transaction
}

// BudgetSource provides the budget mapping snapshot the engine reads.
type BudgetSource interface {
	Get() map[string]decimal.Decimal
}

// AnalyticsService derives all dashboard values from the raw transaction and
// budget state. Every call recomputes from scratch; nothing is memoized.
type AnalyticsService struct {
	transactions TransactionSource
	budgets      BudgetSource
}

// NewAnalyticsService creates a new AnalyticsService.
func NewAnalyticsService(transactions TransactionSource, budgets BudgetSource) *AnalyticsService {
	return &AnalyticsService{
		transactions: transactions,
		budgets:      budgets,
	}
}

// CategoryTotal is a summed expense amount for one category.
type CategoryTotal struct {
	Category string
	Amount   decimal.Decimal
}

// BudgetComparison compares actual spend against the budgeted amount for one
// category. Remaining may be negative. PercentUsed is 0 whenever the budget
// is 0, never infinity.
type BudgetComparison struct {
	Category    string
	Spent       decimal.Decimal
	Budget      decimal.Decimal
	Remaining   decimal.Decimal
	PercentUsed int64
}

// TrendBucket is the summed expense amount for one calendar month.
type TrendBucket struct {
	Label  string
	Year   int
	Month  time.Month
	Amount decimal.Decimal
}

// Summary holds every derived analytics value.
type Summary struct {
	TotalIncome        decimal.Decimal
	TotalExpenses      decimal.Decimal
	Balance            decimal.Decimal
	ExpensesByCategory []CategoryTotal
	BudgetComparison   []BudgetComparison
	MonthlyTrend       []TrendBucket
	TopCategory        *CategoryTotal
	AverageTransaction decimal.Decimal
	TransactionCount   int
}

// Summary recomputes the full derived state from the current snapshots.
func (s *AnalyticsService) Summary() *Summary {
	return Summarize(s.transactions.List(), s.budgets.Get())
}

// RecentTransactions returns up to limit transactions sorted by date, newest
// first. Same-date transactions keep their insertion order.
func (s *AnalyticsService) RecentTransactions(limit int) []*domain.Transaction {
	transactions := s.transactions.List()
	sort.SliceStable(transactions, func(i, j int) bool {
		return transactions[i].Date.After(transactions[j].Date)
	})
	if limit > 0 && len(transactions) > limit {
		transactions = transactions[:limit]
	}
	return transactions
}

// Summarize is the pure derivation over a transaction collection and a budget
// mapping.
func Summarize(transactions []*domain.Transaction, budgets map[string]decimal.Decimal) *Summary {
	summary := &Summary{
		TotalIncome:        decimal.Zero,
		TotalExpenses:      decimal.Zero,
		AverageTransaction: decimal.Zero,
		TransactionCount:   len(transactions),
	}

	// Expense totals per category, ordered by first occurrence in the
	// collection. The order matters: it breaks top-category ties.
	index := make(map[string]int)
	for _, t := range transactions {
		switch t.Type {
		case domain.TransactionTypeIncome:
			summary.TotalIncome = summary.TotalIncome.Add(t.Amount)
		case domain.TransactionTypeExpense:
			summary.TotalExpenses = summary.TotalExpenses.Add(t.Amount)
			i, ok := index[t.Category]
			if !ok {
				i = len(summary.ExpensesByCategory)
				index[t.Category] = i
				summary.ExpensesByCategory = append(summary.ExpensesByCategory, CategoryTotal{
					Category: t.Category,
					Amount:   decimal.Zero,
				})
			}
			summary.ExpensesByCategory[i].Amount = summary.ExpensesByCategory[i].Amount.Add(t.Amount)
		}
	}

	summary.Balance = summary.TotalIncome.Sub(summary.TotalExpenses)
	summary.BudgetComparison = compareBudgets(summary.ExpensesByCategory, budgets)
	summary.MonthlyTrend = monthlyTrend(transactions)
	summary.TopCategory = topCategory(summary.ExpensesByCategory)

	if len(transactions) > 0 {
		summary.AverageTransaction = summary.TotalIncome.
			Add(summary.TotalExpenses).
			Div(decimal.NewFromInt(int64(len(transactions))))
	}

	return summary
}

// compareBudgets builds the budget-vs-actual rows. Only categories with at
// least one expense transaction appear; a budgeted but unspent category stays
// hidden. Unset budgets count as zero.
func compareBudgets(expenses []CategoryTotal, budgets map[string]decimal.Decimal) []BudgetComparison {
	var out []BudgetComparison
	for _, ct := range expenses {
		if ct.Category == domain.CategoryIncome {
			continue
		}

		budget, ok := budgets[ct.Category]
		if !ok {
			budget = decimal.Zero
		}

		var percentUsed int64
		if budget.IsPositive() {
			percentUsed = ct.Amount.
				Div(budget).
				Mul(decimal.NewFromInt(100)).
				Round(0).
				IntPart()
		}

		out = append(out, BudgetComparison{
			Category:    ct.Category,
			Spent:       ct.Amount,
			Budget:      budget,
			Remaining:   budget.Sub(ct.Amount),
			PercentUsed: percentUsed,
		})
	}
	return out
}

// monthlyTrend buckets expense amounts by calendar month, sorts the buckets
// chronologically and keeps the most recent six. Sorting happens before
// truncation, so out-of-order input dates cannot push a recent month out.
func monthlyTrend(transactions []*domain.Transaction) []TrendBucket {
	type yearMonth struct {
		year  int
		month time.Month
	}

	totals := make(map[yearMonth]decimal.Decimal)
	for _, t := range transactions {
		if t.Type != domain.TransactionTypeExpense {
			continue
		}
		k := yearMonth{year: t.Date.Year(), month: t.Date.Month()}
		totals[k] = totals[k].Add(t.Amount)
	}

	keys := make([]yearMonth, 0, len(totals))
	for k := range totals {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		return util.BeforeYearMonth(keys[i].year, keys[i].month, keys[j].year, keys[j].month)
	})
	if len(keys) > trendMonths {
		keys = keys[len(keys)-trendMonths:]
	}

	out := make([]TrendBucket, len(keys))
	for i, k := range keys {
		out[i] = TrendBucket{
			Label:  util.MonthLabel(k.year, k.month),
			Year:   k.year,
			Month:  k.month,
			Amount: totals[k],
		}
	}
	return out
}

// topCategory picks the expense category with the largest summed amount. Ties
// break to whichever category first appeared in the collection, via a stable
// descending sort on amount only.
func topCategory(expenses []CategoryTotal) *CategoryTotal {
	if len(expenses) == 0 {
		return nil
	}

	sorted := make([]CategoryTotal, len(expenses))
	copy(sorted, expenses)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Amount.GreaterThan(sorted[j].Amount)
	})

	top := sorted[0]
	return &top
}
