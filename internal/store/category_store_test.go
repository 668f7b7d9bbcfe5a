package store

import (
	"reflect"
	"testing"

	"github.com/moneta-app/moneta-backend/internal/domain"
)

func TestCategoryStore_SeededWithDefaults(t *testing.T) {
	s := NewCategoryStore()

	if !reflect.DeepEqual(s.List(), domain.DefaultCategories) {
		t.Errorf("Expected default categories, got %v", s.List())
	}
}

func TestCategoryStore_AddIsIdempotent(t *testing.T) {
	s := NewCategoryStore()

	if !s.Add("travel") {
		t.Error("Expected first add to change the set")
	}
	if s.Add("travel") {
		t.Error("Expected duplicate add to be a no-op")
	}

	count := 0
	for _, n := range s.List() {
		if n == "travel" {
			count++
		}
	}
	if count != 1 {
		t.Errorf("Expected exactly one travel entry, got %d", count)
	}
}

func TestCategoryStore_RemoveIncomeIsNoOp(t *testing.T) {
	s := NewCategoryStore()

	if s.Remove(domain.CategoryIncome) {
		t.Error("Expected income removal to be refused")
	}
	if !s.Contains(domain.CategoryIncome) {
		t.Error("Expected income to remain registered")
	}
}

func TestCategoryStore_RemoveUnknownIsNoOp(t *testing.T) {
	s := NewCategoryStore()

	if s.Remove("travel") {
		t.Error("Expected removal of unknown category to report no change")
	}
}

func TestCategoryStore_ExpenseCategoriesExcludeIncome(t *testing.T) {
	s := NewCategoryStore()
	s.Add("travel")

	for _, n := range s.ExpenseCategories() {
		if n == domain.CategoryIncome {
			t.Fatal("Expected income to be excluded from expense categories")
		}
	}
	if len(s.ExpenseCategories()) != len(s.List())-1 {
		t.Errorf("Expected %d expense categories, got %d", len(s.List())-1, len(s.ExpenseCategories()))
	}
}

func TestCategoryStore_RemoveKeepsOrder(t *testing.T) {
	s := NewCategoryStore()

	s.Remove("utilities")
	expected := []string{"income", "groceries", "entertainment", "other"}
	if !reflect.DeepEqual(s.List(), expected) {
		t.Errorf("Expected %v, got %v", expected, s.List())
	}
}
