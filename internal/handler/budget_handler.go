package handler

import (
	"errors"
	"net/http"

	"github.com/moneta-app/moneta-backend/internal/domain"
	"github.com/moneta-app/moneta-backend/internal/service"
	"github.com/moneta-app/moneta-backend/internal/websocket"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
)

// BudgetHandler handles budget mapping HTTP requests
type BudgetHandler struct {
	budgetService *service.BudgetService
	publisher     websocket.EventPublisher
}

// NewBudgetHandler creates a new BudgetHandler
func NewBudgetHandler(budgetService *service.BudgetService, publisher websocket.EventPublisher) *BudgetHandler {
	return &BudgetHandler{budgetService: budgetService, publisher: publisher}
}

// SetBudgetRequest represents the per-category budget upsert body
type SetBudgetRequest struct {
	Amount amountField `json:"amount"`
}

// BudgetEntryResponse represents one category budget in API responses
type BudgetEntryResponse struct {
	Category string `json:"category"`
	Amount   string `json:"amount"`
}

// GetBudgets handles GET /api/v1/budgets
func (h *BudgetHandler) GetBudgets(c echo.Context) error {
	budgets := h.budgetService.Get()
	response := make(map[string]string, len(budgets))
	for category, amount := range budgets {
		response[category] = amount.StringFixed(2)
	}
	return c.JSON(http.StatusOK, response)
}

// SetBudget handles PUT /api/v1/budgets/:category
// Invalid or negative amounts coerce to zero rather than being rejected.
func (h *BudgetHandler) SetBudget(c echo.Context) error {
	category := c.Param("category")

	var req SetBudgetRequest
	if err := c.Bind(&req); err != nil {
		return NewValidationError(c, "Invalid request body", nil)
	}

	amount, err := h.budgetService.Set(category, req.Amount.Decimal)
	if err != nil {
		if errors.Is(err, domain.ErrNameRequired) {
			return NewValidationError(c, "Category name is required", []ValidationError{
				{Field: "category", Message: "Name cannot be empty"},
			})
		}
		log.Error().Err(err).Str("category", category).Msg("Failed to set budget")
		return NewInternalError(c, "Failed to set budget")
	}

	log.Info().Str("category", category).Str("amount", amount.StringFixed(2)).Msg("Budget updated")

	response := BudgetEntryResponse{Category: category, Amount: amount.StringFixed(2)}
	h.publisher.Publish(websocket.BudgetUpdated(response))
	return c.JSON(http.StatusOK, response)
}
