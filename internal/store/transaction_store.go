package store

import (
	"sync"
	"time"

	"github.com/moneta-app/moneta-backend/internal/domain"
)

// TransactionStore holds the ordered transaction collection in memory.
// Insertion order is preserved and significant for recent-activity views.
// It is safe for concurrent use.
type TransactionStore struct {
	mu     sync.RWMutex
	items  []*domain.Transaction
	lastID int64
}

// NewTransactionStore creates an empty TransactionStore.
func NewTransactionStore() *TransactionStore {
	return &TransactionStore{}
}

// Add assigns a fresh id to t and appends it. IDs are wall-clock milliseconds
// bumped to stay strictly increasing, so rapid adds never collide and ids are
// never reused. Add performs no validation; callers validate before calling.
func (s *TransactionStore) Add(t domain.Transaction) *domain.Transaction {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := time.Now().UnixMilli()
	if id <= s.lastID {
		id = s.lastID + 1
	}
	s.lastID = id
	t.ID = id

	stored := t
	s.items = append(s.items, &stored)

	out := stored
	return &out
}

// Delete removes the transaction with the given id. Deleting an id that was
// never added is a no-op; the return value reports whether anything changed.
func (s *TransactionStore) Delete(id int64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, t := range s.items {
		if t.ID == id {
			s.items = append(s.items[:i], s.items[i+1:]...)
			return true
		}
	}
	return false
}

// Update replaces the transaction with a matching id in place, preserving its
// position in the collection. Updating an unknown id is a no-op.
func (s *TransactionStore) Update(t domain.Transaction) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, existing := range s.items {
		if existing.ID == t.ID {
			replacement := t
			s.items[i] = &replacement
			return true
		}
	}
	return false
}

// Get returns a copy of the transaction with the given id, if present.
func (s *TransactionStore) Get(id int64) (*domain.Transaction, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, t := range s.items {
		if t.ID == id {
			out := *t
			return &out, true
		}
	}
	return nil, false
}

// List returns the full collection in insertion order. The returned slice and
// records are copies; mutating them does not affect the store.
func (s *TransactionStore) List() []*domain.Transaction {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*domain.Transaction, len(s.items))
	for i, t := range s.items {
		cp := *t
		out[i] = &cp
	}
	return out
}
