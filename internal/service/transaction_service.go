package service

import (
	"strings"

	"github.com/moneta-app/moneta-backend/internal/domain"
	"github.com/shopspring/decimal"
)

// TransactionRepository is the store contract the service drives. Delete and
// Update report whether anything changed; operating on an unknown id is a
// silent no-op, never an error.
type TransactionRepository interface {
	Add(t domain.Transaction) *domain.Transaction
	Update(t domain.Transaction) bool
	Delete(id int64) bool
	Get(id int64) (*domain.Transaction, bool)
	List() []*domain.Transaction
}

// CategoryChecker reports category registry membership.
type CategoryChecker interface {
	Contains(name string) bool
}

// TransactionService validates incoming records before handing them to the
// store. Category membership is checked at creation time only; it is not
// re-enforced if the registry later shrinks.
type TransactionService struct {
	repo       TransactionRepository
	categories CategoryChecker
}

// NewTransactionService creates a new TransactionService.
func NewTransactionService(repo TransactionRepository, categories CategoryChecker) *TransactionService {
	return &TransactionService{repo: repo, categories: categories}
}

// Create validates and appends a new transaction, assigning its id.
func (s *TransactionService) Create(t domain.Transaction) (*domain.Transaction, error) {
	if err := s.validate(&t); err != nil {
		return nil, err
	}
	return s.repo.Add(t), nil
}

// Update validates and replaces the transaction with a matching id. The bool
// result reports whether a record was actually replaced.
func (s *TransactionService) Update(t domain.Transaction) (*domain.Transaction, bool, error) {
	if err := s.validate(&t); err != nil {
		return nil, false, err
	}
	replaced := s.repo.Update(t)
	return &t, replaced, nil
}

// Delete removes the transaction with the given id, reporting whether a
// record existed.
func (s *TransactionService) Delete(id int64) bool {
	return s.repo.Delete(id)
}

// List returns the full collection in insertion order.
func (s *TransactionService) List() []*domain.Transaction {
	return s.repo.List()
}

func (s *TransactionService) validate(t *domain.Transaction) error {
	if !domain.ValidTransactionType(t.Type) {
		return domain.ErrInvalidInput
	}
	if t.Date.IsZero() {
		return domain.ErrInvalidDate
	}

	t.Category = strings.TrimSpace(t.Category)
	if !s.categories.Contains(t.Category) {
		return domain.ErrUnknownCategory
	}

	if t.Amount.IsNegative() {
		t.Amount = decimal.Zero
	}
	return nil
}
