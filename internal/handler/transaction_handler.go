package handler

import (
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/moneta-app/moneta-backend/internal/domain"
	"github.com/moneta-app/moneta-backend/internal/service"
	"github.com/moneta-app/moneta-backend/internal/websocket"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

// amountField accepts a JSON number or string and coerces anything invalid or
// negative to zero (forgiving-input contract for amount fields).
type amountField struct {
	decimal.Decimal
}

func (a *amountField) UnmarshalJSON(data []byte) error {
	s := strings.Trim(strings.TrimSpace(string(data)), `"`)
	a.Decimal = domain.CoerceAmount(s)
	return nil
}

// TransactionHandler handles transaction HTTP requests
type TransactionHandler struct {
	transactionService *service.TransactionService
	analyticsService   *service.AnalyticsService
	publisher          websocket.EventPublisher
}

// NewTransactionHandler creates a new TransactionHandler
func NewTransactionHandler(transactionService *service.TransactionService, analyticsService *service.AnalyticsService, publisher websocket.EventPublisher) *TransactionHandler {
	return &TransactionHandler{
		transactionService: transactionService,
		analyticsService:   analyticsService,
		publisher:          publisher,
	}
}

// TransactionRequest represents the create/update request body
type TransactionRequest struct {
	Amount      amountField `json:"amount"`
	Category    string      `json:"category"`
	Date        string      `json:"date"`
	Description string      `json:"description"`
	Type        string      `json:"type"`
}

// TransactionResponse represents a transaction in API responses
type TransactionResponse struct {
	ID          int64  `json:"id"`
	Amount      string `json:"amount"`
	Category    string `json:"category"`
	Date        string `json:"date"`
	Description string `json:"description,omitempty"`
	Type        string `json:"type"`
}

func toTransactionResponse(t *domain.Transaction) TransactionResponse {
	return TransactionResponse{
		ID:          t.ID,
		Amount:      t.Amount.StringFixed(2),
		Category:    t.Category,
		Date:        t.Date.Format(domain.DateLayout),
		Description: t.Description,
		Type:        string(t.Type),
	}
}

func (h *TransactionHandler) bind(c echo.Context) (domain.Transaction, error) {
	var req TransactionRequest
	if err := c.Bind(&req); err != nil {
		return domain.Transaction{}, NewValidationError(c, "Invalid request body", nil)
	}

	date, err := time.Parse(domain.DateLayout, req.Date)
	if err != nil {
		return domain.Transaction{}, NewValidationError(c, "Invalid date", []ValidationError{
			{Field: "date", Message: "Must be a calendar date in YYYY-MM-DD format"},
		})
	}

	return domain.Transaction{
		Amount:      req.Amount.Decimal,
		Category:    req.Category,
		Date:        date,
		Description: req.Description,
		Type:        domain.TransactionType(req.Type),
	}, nil
}

// CreateTransaction handles POST /api/v1/transactions
func (h *TransactionHandler) CreateTransaction(c echo.Context) error {
	record, err := h.bind(c)
	if err != nil {
		return err
	}

	created, err := h.transactionService.Create(record)
	if err != nil {
		return h.mapValidation(c, err)
	}

	log.Info().Int64("transaction_id", created.ID).Str("category", created.Category).Str("type", string(created.Type)).Msg("Transaction created")

	response := toTransactionResponse(created)
	h.publisher.Publish(websocket.TransactionCreated(response))
	return c.JSON(http.StatusCreated, response)
}

// GetTransactions handles GET /api/v1/transactions
func (h *TransactionHandler) GetTransactions(c echo.Context) error {
	transactions := h.transactionService.List()
	response := make([]TransactionResponse, len(transactions))
	for i, t := range transactions {
		response[i] = toTransactionResponse(t)
	}
	return c.JSON(http.StatusOK, response)
}

// GetRecentTransactions handles GET /api/v1/transactions/recent
func (h *TransactionHandler) GetRecentTransactions(c echo.Context) error {
	limit := 5
	if limitStr := c.QueryParam("limit"); limitStr != "" {
		parsed, err := strconv.Atoi(limitStr)
		if err != nil || parsed < 1 {
			return NewValidationError(c, "Invalid limit", []ValidationError{
				{Field: "limit", Message: "Must be a positive integer"},
			})
		}
		limit = parsed
	}

	transactions := h.analyticsService.RecentTransactions(limit)
	response := make([]TransactionResponse, len(transactions))
	for i, t := range transactions {
		response[i] = toTransactionResponse(t)
	}
	return c.JSON(http.StatusOK, response)
}

// UpdateTransaction handles PUT /api/v1/transactions/:id
// Updating an id that was never added is a silent no-op, not an error.
func (h *TransactionHandler) UpdateTransaction(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return NewValidationError(c, "Invalid transaction ID", nil)
	}

	record, err := h.bind(c)
	if err != nil {
		return err
	}
	record.ID = id

	updated, replaced, err := h.transactionService.Update(record)
	if err != nil {
		return h.mapValidation(c, err)
	}

	response := toTransactionResponse(updated)
	if replaced {
		log.Info().Int64("transaction_id", id).Msg("Transaction updated")
		h.publisher.Publish(websocket.TransactionUpdated(response))
	}
	return c.JSON(http.StatusOK, response)
}

// DeleteTransaction handles DELETE /api/v1/transactions/:id
// Deleting an id that was never added is a silent no-op, not an error.
func (h *TransactionHandler) DeleteTransaction(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return NewValidationError(c, "Invalid transaction ID", nil)
	}

	if h.transactionService.Delete(id) {
		log.Info().Int64("transaction_id", id).Msg("Transaction deleted")
		h.publisher.Publish(websocket.TransactionDeleted(map[string]int64{"id": id}))
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *TransactionHandler) mapValidation(c echo.Context, err error) error {
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		return NewValidationError(c, "Invalid transaction type", []ValidationError{
			{Field: "type", Message: "Must be income or expense"},
		})
	case errors.Is(err, domain.ErrInvalidDate):
		return NewValidationError(c, "Invalid date", []ValidationError{
			{Field: "date", Message: "Must be a calendar date in YYYY-MM-DD format"},
		})
	case errors.Is(err, domain.ErrUnknownCategory):
		return NewValidationError(c, "Unknown category", []ValidationError{
			{Field: "category", Message: "Must be a registered category"},
		})
	}
	log.Error().Err(err).Msg("Failed to save transaction")
	return NewInternalError(c, "Failed to save transaction")
}
