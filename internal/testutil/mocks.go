package testutil

import (
	"context"
	"sync"

	"github.com/moneta-app/moneta-backend/internal/domain"
)

// MockKeyValueStore is an in-memory implementation of domain.KeyValueStore.
type MockKeyValueStore struct {
	mu   sync.Mutex
	Data map[string][]byte

	// GetErr and SetErr, when set, are returned by every Get/Set call.
	GetErr error
	SetErr error

	// SetCalls counts Set invocations.
	SetCalls int
}

// NewMockKeyValueStore creates an empty MockKeyValueStore.
func NewMockKeyValueStore() *MockKeyValueStore {
	return &MockKeyValueStore{Data: make(map[string][]byte)}
}

// Get returns the stored value or domain.ErrKeyNotFound.
func (m *MockKeyValueStore) Get(ctx context.Context, key string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.GetErr != nil {
		return nil, m.GetErr
	}
	value, ok := m.Data[key]
	if !ok {
		return nil, domain.ErrKeyNotFound
	}
	out := make([]byte, len(value))
	copy(out, value)
	return out, nil
}

// Set stores the value under key.
func (m *MockKeyValueStore) Set(ctx context.Context, key string, value []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.SetCalls++
	if m.SetErr != nil {
		return m.SetErr
	}
	cp := make([]byte, len(value))
	copy(cp, value)
	m.Data[key] = cp
	return nil
}
