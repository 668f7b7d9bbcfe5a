package service

import (
	"strings"

	"github.com/moneta-app/moneta-backend/internal/domain"
)

// CategoryRepository is the registry contract the service drives.
type CategoryRepository interface {
	Add(name string) bool
	Remove(name string) bool
	List() []string
	ExpenseCategories() []string
}

// CategoryService handles category registry business logic.
type CategoryService struct {
	repo CategoryRepository
}

// NewCategoryService creates a new CategoryService.
func NewCategoryService(repo CategoryRepository) *CategoryService {
	return &CategoryService{repo: repo}
}

// Create registers a category name. Registering an existing name is a no-op;
// the bool result reports whether the registry changed.
func (s *CategoryService) Create(name string) (string, bool, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", false, domain.ErrNameRequired
	}
	if len(name) > domain.MaxCategoryNameLength {
		return "", false, domain.ErrNameTooLong
	}
	return name, s.repo.Add(name), nil
}

// Delete removes a category. The reserved income category cannot be removed.
// Removing a category does not cascade: transactions referencing it keep the
// name as a display-only string.
func (s *CategoryService) Delete(name string) (bool, error) {
	if name == domain.CategoryIncome {
		return false, domain.ErrCategoryReserved
	}
	return s.repo.Remove(name), nil
}

// List returns all registered categories in insertion order.
func (s *CategoryService) List() []string {
	return s.repo.List()
}

// ExpenseCategories returns all categories except the reserved income one.
func (s *CategoryService) ExpenseCategories() []string {
	return s.repo.ExpenseCategories()
}
