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

// CategoryHandler handles category registry HTTP requests
type CategoryHandler struct {
	categoryService *service.CategoryService
	publisher       websocket.EventPublisher
}

// NewCategoryHandler creates a new CategoryHandler
func NewCategoryHandler(categoryService *service.CategoryService, publisher websocket.EventPublisher) *CategoryHandler {
	return &CategoryHandler{categoryService: categoryService, publisher: publisher}
}

// CreateCategoryRequest represents the create category request body
type CreateCategoryRequest struct {
	Name string `json:"name"`
}

// CategoryResponse represents a category in API responses
type CategoryResponse struct {
	Name string `json:"name"`
}

// GetCategories handles GET /api/v1/categories
func (h *CategoryHandler) GetCategories(c echo.Context) error {
	return c.JSON(http.StatusOK, h.categoryService.List())
}

// GetExpenseCategories handles GET /api/v1/categories/expense
func (h *CategoryHandler) GetExpenseCategories(c echo.Context) error {
	return c.JSON(http.StatusOK, h.categoryService.ExpenseCategories())
}

// CreateCategory handles POST /api/v1/categories
// Registering a name that already exists is a no-op and returns 200.
func (h *CategoryHandler) CreateCategory(c echo.Context) error {
	var req CreateCategoryRequest
	if err := c.Bind(&req); err != nil {
		return NewValidationError(c, "Invalid request body", nil)
	}

	name, added, err := h.categoryService.Create(req.Name)
	if err != nil {
		if errors.Is(err, domain.ErrNameRequired) {
			return NewValidationError(c, "Category name is required", []ValidationError{
				{Field: "name", Message: "Name cannot be empty"},
			})
		}
		if errors.Is(err, domain.ErrNameTooLong) {
			return NewValidationError(c, "Validation failed", []ValidationError{
				{Field: "name", Message: "Name must be 100 characters or less"},
			})
		}
		log.Error().Err(err).Msg("Failed to create category")
		return NewInternalError(c, "Failed to create category")
	}

	response := CategoryResponse{Name: name}
	if !added {
		return c.JSON(http.StatusOK, response)
	}

	log.Info().Str("name", name).Msg("Category created")
	h.publisher.Publish(websocket.CategoryCreated(response))
	return c.JSON(http.StatusCreated, response)
}

// DeleteCategory handles DELETE /api/v1/categories/:name
// Removal never cascades to transactions that reference the category.
func (h *CategoryHandler) DeleteCategory(c echo.Context) error {
	name := c.Param("name")

	removed, err := h.categoryService.Delete(name)
	if err != nil {
		if errors.Is(err, domain.ErrCategoryReserved) {
			return NewConflictError(c, "The income category is reserved and cannot be removed")
		}
		log.Error().Err(err).Str("name", name).Msg("Failed to delete category")
		return NewInternalError(c, "Failed to delete category")
	}

	if removed {
		log.Info().Str("name", name).Msg("Category deleted")
		h.publisher.Publish(websocket.CategoryDeleted(CategoryResponse{Name: name}))
	}
	return c.NoContent(http.StatusNoContent)
}
