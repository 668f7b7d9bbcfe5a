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

// PreferencesHandler handles accessibility preference HTTP requests
type PreferencesHandler struct {
	preferencesService *service.PreferencesService
	publisher          websocket.EventPublisher
}

// NewPreferencesHandler creates a new PreferencesHandler
func NewPreferencesHandler(preferencesService *service.PreferencesService, publisher websocket.EventPublisher) *PreferencesHandler {
	return &PreferencesHandler{preferencesService: preferencesService, publisher: publisher}
}

// UpdatePreferencesRequest carries per-field preference updates; only fields
// present in the body are applied. Each applied field re-persists the full
// record.
type UpdatePreferencesRequest struct {
	HighContrast   *bool    `json:"highContrast"`
	TextSize       *float64 `json:"textSize"`
	ReducedMotion  *bool    `json:"reducedMotion"`
	EnhancedFocus  *bool    `json:"enhancedFocus"`
	KeyboardHelper *bool    `json:"keyboardHelper"`
}

// GetPreferences handles GET /api/v1/preferences
func (h *PreferencesHandler) GetPreferences(c echo.Context) error {
	return c.JSON(http.StatusOK, h.preferencesService.Get())
}

// UpdatePreferences handles PATCH /api/v1/preferences
func (h *PreferencesHandler) UpdatePreferences(c echo.Context) error {
	var req UpdatePreferencesRequest
	if err := c.Bind(&req); err != nil {
		return NewValidationError(c, "Invalid request body", nil)
	}

	ctx := c.Request().Context()
	prefs := h.preferencesService.Get()

	if req.TextSize != nil {
		var err error
		prefs, err = h.preferencesService.SetTextSize(ctx, *req.TextSize)
		if err != nil {
			if errors.Is(err, domain.ErrInvalidTextSize) {
				return NewValidationError(c, "Invalid text size", []ValidationError{
					{Field: "textSize", Message: "Must be one of 1, 1.1, 1.25, 1.5"},
				})
			}
			log.Error().Err(err).Msg("Failed to update text size")
			return NewInternalError(c, "Failed to update preferences")
		}
	}
	if req.HighContrast != nil {
		prefs = h.preferencesService.SetHighContrast(ctx, *req.HighContrast)
	}
	if req.ReducedMotion != nil {
		prefs = h.preferencesService.SetReducedMotion(ctx, *req.ReducedMotion)
	}
	if req.EnhancedFocus != nil {
		prefs = h.preferencesService.SetEnhancedFocus(ctx, *req.EnhancedFocus)
	}
	if req.KeyboardHelper != nil {
		prefs = h.preferencesService.SetKeyboardHelper(ctx, *req.KeyboardHelper)
	}

	h.publisher.Publish(websocket.PreferencesUpdated(prefs))
	return c.JSON(http.StatusOK, prefs)
}

// ResetPreferences handles POST /api/v1/preferences/reset
func (h *PreferencesHandler) ResetPreferences(c echo.Context) error {
	prefs := h.preferencesService.Reset(c.Request().Context())

	log.Info().Msg("Accessibility preferences reset to defaults")
	h.publisher.Publish(websocket.PreferencesReset(prefs))
	return c.JSON(http.StatusOK, prefs)
}
