package store

import (
	"sync"

	"github.com/moneta-app/moneta-backend/internal/domain"
)

// CategoryStore holds the ordered set of valid category names. "income" is
// reserved: always present, never removable. Removing a category does not
// cascade to transactions that reference it; existing records keep the name
// as a display-only string.
type CategoryStore struct {
	mu    sync.RWMutex
	names []string
}

// NewCategoryStore creates a CategoryStore seeded with the default categories.
func NewCategoryStore() *CategoryStore {
	names := make([]string, len(domain.DefaultCategories))
	copy(names, domain.DefaultCategories)
	return &CategoryStore{names: names}
}

// Add appends a category name. The insert is idempotent: adding a name that
// is already present is a no-op. The return value reports whether the set
// changed.
func (s *CategoryStore) Add(name string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, n := range s.names {
		if n == name {
			return false
		}
	}
	s.names = append(s.names, name)
	return true
}

// Remove deletes a category name if present. The reserved income category is
// never removed.
func (s *CategoryStore) Remove(name string) bool {
	if name == domain.CategoryIncome {
		return false
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i, n := range s.names {
		if n == name {
			s.names = append(s.names[:i], s.names[i+1:]...)
			return true
		}
	}
	return false
}

// Contains reports whether name is a registered category.
func (s *CategoryStore) Contains(name string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, n := range s.names {
		if n == name {
			return true
		}
	}
	return false
}

// List returns all category names in insertion order.
func (s *CategoryStore) List() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]string, len(s.names))
	copy(out, s.names)
	return out
}

// ExpenseCategories returns all category names except the reserved income
// category.
func (s *CategoryStore) ExpenseCategories() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]string, 0, len(s.names))
	for _, n := range s.names {
		if n != domain.CategoryIncome {
			out = append(out, n)
		}
	}
	return out
}
