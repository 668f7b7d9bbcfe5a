package domain

import "context"

// PreferencesKey is the key-value entry holding the accessibility preferences
// record.
const PreferencesKey = "accessibility-preferences"

// Preferences is the accessibility preference record. The whole record is
// persisted on every change.
type Preferences struct {
	HighContrast   bool    `json:"highContrast"`
	TextSize       float64 `json:"textSize"`
	ReducedMotion  bool    `json:"reducedMotion"`
	EnhancedFocus  bool    `json:"enhancedFocus"`
	KeyboardHelper bool    `json:"keyboardHelper"`
}

// TextSizes are the accepted text scale factors.
var TextSizes = []float64{1, 1.1, 1.25, 1.5}

// DefaultPreferences returns the documented defaults used when nothing is
// persisted or the persisted record is unreadable.
func DefaultPreferences() Preferences {
	return Preferences{TextSize: 1.1}
}

// ValidTextSize reports whether v is one of the accepted scale factors.
func ValidTextSize(v float64) bool {
	for _, s := range TextSizes {
		if s == v {
			return true
		}
	}
	return false
}

// KeyValueStore is the persistence contract for single-record slices such as
// the accessibility preferences. Get returns ErrKeyNotFound when the key has
// never been written.
type KeyValueStore interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
}
