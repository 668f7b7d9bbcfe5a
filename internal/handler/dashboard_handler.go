package handler

import (
	"net/http"

	"github.com/moneta-app/moneta-backend/internal/service"
	"github.com/labstack/echo/v4"
)

// DashboardHandler handles dashboard HTTP requests
type DashboardHandler struct {
	analyticsService *service.AnalyticsService
}

// NewDashboardHandler creates a new DashboardHandler
func NewDashboardHandler(analyticsService *service.AnalyticsService) *DashboardHandler {
	return &DashboardHandler{analyticsService: analyticsService}
}

// CategoryTotalResponse represents a summed expense category in API responses
type CategoryTotalResponse struct {
	Category string `json:"category"`
	Amount   string `json:"amount"`
}

// BudgetComparisonResponse represents one budget-vs-actual row
type BudgetComparisonResponse struct {
	Category    string `json:"category"`
	Spent       string `json:"spent"`
	Budget      string `json:"budget"`
	Remaining   string `json:"remaining"`
	PercentUsed int64  `json:"percentUsed"`
}

// TrendBucketResponse represents one monthly spending bucket
type TrendBucketResponse struct {
	Month  string `json:"month"`
	Amount string `json:"amount"`
}

// DashboardSummaryResponse represents the dashboard summary API response
type DashboardSummaryResponse struct {
	TotalIncome        string                     `json:"totalIncome"`
	TotalExpenses      string                     `json:"totalExpenses"`
	Balance            string                     `json:"balance"`
	ExpensesByCategory []CategoryTotalResponse    `json:"expensesByCategory"`
	BudgetComparison   []BudgetComparisonResponse `json:"budgetComparison"`
	MonthlyTrend       []TrendBucketResponse      `json:"monthlyTrend"`
	TopCategory        *CategoryTotalResponse     `json:"topCategory,omitempty"`
	AverageTransaction string                     `json:"averageTransaction"`
	TransactionCount   int                        `json:"transactionCount"`
}

// GetSummary handles GET /api/v1/dashboard/summary
func (h *DashboardHandler) GetSummary(c echo.Context) error {
	summary := h.analyticsService.Summary()

	expenses := make([]CategoryTotalResponse, len(summary.ExpensesByCategory))
	for i, ct := range summary.ExpensesByCategory {
		expenses[i] = CategoryTotalResponse{Category: ct.Category, Amount: ct.Amount.StringFixed(2)}
	}

	comparisons := make([]BudgetComparisonResponse, len(summary.BudgetComparison))
	for i, bc := range summary.BudgetComparison {
		comparisons[i] = BudgetComparisonResponse{
			Category:    bc.Category,
			Spent:       bc.Spent.StringFixed(2),
			Budget:      bc.Budget.StringFixed(2),
			Remaining:   bc.Remaining.StringFixed(2),
			PercentUsed: bc.PercentUsed,
		}
	}

	trend := make([]TrendBucketResponse, len(summary.MonthlyTrend))
	for i, bucket := range summary.MonthlyTrend {
		trend[i] = TrendBucketResponse{Month: bucket.Label, Amount: bucket.Amount.StringFixed(2)}
	}

	var top *CategoryTotalResponse
	if summary.TopCategory != nil {
		top = &CategoryTotalResponse{
			Category: summary.TopCategory.Category,
			Amount:   summary.TopCategory.Amount.StringFixed(2),
		}
	}

	return c.JSON(http.StatusOK, DashboardSummaryResponse{
		TotalIncome:        summary.TotalIncome.StringFixed(2),
		TotalExpenses:      summary.TotalExpenses.StringFixed(2),
		Balance:            summary.Balance.StringFixed(2),
		ExpensesByCategory: expenses,
		BudgetComparison:   comparisons,
		MonthlyTrend:       trend,
		TopCategory:        top,
		AverageTransaction: summary.AverageTransaction.StringFixed(2),
		TransactionCount:   summary.TransactionCount,
	})
}
