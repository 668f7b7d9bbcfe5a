package handler

import (
	"net/http"

	"github.com/moneta-app/moneta-backend/internal/domain"
	"github.com/moneta-app/moneta-backend/internal/service"
	"github.com/labstack/echo/v4"
)

// TipsHandler handles financial tips HTTP requests
type TipsHandler struct {
	tipsService *service.TipsService
}

// NewTipsHandler creates a new TipsHandler
func NewTipsHandler(tipsService *service.TipsService) *TipsHandler {
	return &TipsHandler{tipsService: tipsService}
}

// TipsResponse represents the tips panel state in API responses
type TipsResponse struct {
	Status string       `json:"status"`
	Tips   []domain.Tip `json:"tips"`
	Error  string       `json:"error,omitempty"`
}

func toTipsResponse(state domain.TipsState) TipsResponse {
	return TipsResponse{
		Status: string(state.Status),
		Tips:   state.Tips,
		Error:  state.Error,
	}
}

// GetTips handles GET /api/v1/tips
func (h *TipsHandler) GetTips(c echo.Context) error {
	return c.JSON(http.StatusOK, toTipsResponse(h.tipsService.State()))
}

// RefreshTips handles POST /api/v1/tips/refresh
// The fetch runs in the background; the response reports the loading state.
// A fetch failure is surfaced through GET /api/v1/tips for manual retry;
// there is no automatic retry.
func (h *TipsHandler) RefreshTips(c echo.Context) error {
	h.tipsService.Refresh()
	return c.JSON(http.StatusAccepted, toTipsResponse(h.tipsService.State()))
}
