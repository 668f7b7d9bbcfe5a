package websocket

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEventType_String(t *testing.T) {
	tests := []struct {
		name     string
		et       EventType
		expected string
	}{
		{"created", EventTypeCreated, "created"},
		{"updated", EventTypeUpdated, "updated"},
		{"deleted", EventTypeDeleted, "deleted"},
		{"refreshed", EventTypeRefreshed, "refreshed"},
		{"reset", EventTypeReset, "reset"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, string(tt.et))
		})
	}
}

func TestEntityType_String(t *testing.T) {
	tests := []struct {
		name     string
		et       EntityType
		expected string
	}{
		{"transaction", EntityTypeTransaction, "transaction"},
		{"budget", EntityTypeBudget, "budget"},
		{"category", EntityTypeCategory, "category"},
		{"preferences", EntityTypePreferences, "preferences"},
		{"tips", EntityTypeTips, "tips"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, string(tt.et))
		})
	}
}

func TestNewEvent(t *testing.T) {
	payload := map[string]interface{}{
		"id":       1,
		"category": "groceries",
		"amount":   "50.00",
	}

	before := time.Now()
	evt := NewEvent(EventTypeCreated, EntityTypeTransaction, payload)
	after := time.Now()

	assert.Equal(t, "transaction.created", evt.Type)
	assert.Equal(t, EntityTypeTransaction, evt.Entity)
	assert.Equal(t, payload, evt.Payload)
	assert.True(t, !evt.Timestamp.Before(before) && !evt.Timestamp.After(after))
}

func TestEvent_ToJSON(t *testing.T) {
	payload := map[string]interface{}{
		"id": float64(42),
	}

	evt := NewEvent(EventTypeUpdated, EntityTypeTransaction, payload)

	data, err := evt.ToJSON()
	require.NoError(t, err)
	assert.NotEmpty(t, data)

	var decoded map[string]interface{}
	err = json.Unmarshal(data, &decoded)
	require.NoError(t, err)

	assert.Equal(t, "transaction.updated", decoded["type"])
	assert.Equal(t, "transaction", decoded["entity"])
	assert.NotNil(t, decoded["payload"])
	assert.NotNil(t, decoded["timestamp"])
}

func TestTransactionEvent_Helpers(t *testing.T) {
	payload := map[string]interface{}{
		"id":       float64(1),
		"category": "groceries",
		"amount":   "50.00",
	}

	t.Run("TransactionCreated", func(t *testing.T) {
		evt := TransactionCreated(payload)
		assert.Equal(t, "transaction.created", evt.Type)
		assert.Equal(t, EntityTypeTransaction, evt.Entity)
		assert.Equal(t, payload, evt.Payload)
	})

	t.Run("TransactionUpdated", func(t *testing.T) {
		evt := TransactionUpdated(payload)
		assert.Equal(t, "transaction.updated", evt.Type)
		assert.Equal(t, EntityTypeTransaction, evt.Entity)
		assert.Equal(t, payload, evt.Payload)
	})

	t.Run("TransactionDeleted", func(t *testing.T) {
		evt := TransactionDeleted(payload)
		assert.Equal(t, "transaction.deleted", evt.Type)
		assert.Equal(t, EntityTypeTransaction, evt.Entity)
		assert.Equal(t, payload, evt.Payload)
	})
}

func TestStoreEvent_Helpers(t *testing.T) {
	payload := map[string]interface{}{"name": "travel"}

	t.Run("BudgetUpdated", func(t *testing.T) {
		evt := BudgetUpdated(payload)
		assert.Equal(t, "budget.updated", evt.Type)
		assert.Equal(t, EntityTypeBudget, evt.Entity)
	})

	t.Run("CategoryCreated", func(t *testing.T) {
		evt := CategoryCreated(payload)
		assert.Equal(t, "category.created", evt.Type)
		assert.Equal(t, EntityTypeCategory, evt.Entity)
	})

	t.Run("CategoryDeleted", func(t *testing.T) {
		evt := CategoryDeleted(payload)
		assert.Equal(t, "category.deleted", evt.Type)
		assert.Equal(t, EntityTypeCategory, evt.Entity)
	})

	t.Run("PreferencesUpdated", func(t *testing.T) {
		evt := PreferencesUpdated(payload)
		assert.Equal(t, "preferences.updated", evt.Type)
		assert.Equal(t, EntityTypePreferences, evt.Entity)
	})

	t.Run("PreferencesReset", func(t *testing.T) {
		evt := PreferencesReset(payload)
		assert.Equal(t, "preferences.reset", evt.Type)
		assert.Equal(t, EntityTypePreferences, evt.Entity)
	})

	t.Run("TipsRefreshed", func(t *testing.T) {
		evt := TipsRefreshed(payload)
		assert.Equal(t, "tips.refreshed", evt.Type)
		assert.Equal(t, EntityTypeTips, evt.Entity)
	})
}
