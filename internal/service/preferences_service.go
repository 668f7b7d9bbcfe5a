package service

import (
	"context"
	"encoding/json"
	"errors"
	"sync"

	"github.com/moneta-app/moneta-backend/internal/domain"
	"github.com/rs/zerolog/log"
)

// PreferencesService holds the accessibility preference record. The record is
// read from the key-value store once at construction and written through on
// every mutation. Persistence failures are logged and swallowed: preferences
// are not safety-critical and a storage problem must never surface as an
// operation failure.
type PreferencesService struct {
	mu    sync.RWMutex
	kv    domain.KeyValueStore
	prefs domain.Preferences
}

// NewPreferencesService creates the service and rehydrates the record.
// Absent or unreadable stored data falls back to the defaults; the stored
// payload is decoded over a defaults-initialized record, so fields missing
// from older payloads keep their default values.
func NewPreferencesService(kv domain.KeyValueStore) *PreferencesService {
	prefs := domain.DefaultPreferences()

	data, err := kv.Get(context.Background(), domain.PreferencesKey)
	switch {
	case err == nil:
		if err := json.Unmarshal(data, &prefs); err != nil {
			log.Warn().Err(err).Msg("Stored accessibility preferences are unreadable, using defaults")
			prefs = domain.DefaultPreferences()
		}
	case !errors.Is(err, domain.ErrKeyNotFound):
		log.Warn().Err(err).Msg("Failed to load accessibility preferences, using defaults")
	}

	return &PreferencesService{kv: kv, prefs: prefs}
}

// Get returns the current record.
func (s *PreferencesService) Get() domain.Preferences {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.prefs
}

// SetHighContrast updates the high-contrast toggle.
func (s *PreferencesService) SetHighContrast(ctx context.Context, v bool) domain.Preferences {
	return s.update(ctx, func(p *domain.Preferences) { p.HighContrast = v })
}

// SetTextSize updates the text scale factor. Values outside the accepted set
// are rejected.
func (s *PreferencesService) SetTextSize(ctx context.Context, v float64) (domain.Preferences, error) {
	if !domain.ValidTextSize(v) {
		return s.Get(), domain.ErrInvalidTextSize
	}
	return s.update(ctx, func(p *domain.Preferences) { p.TextSize = v }), nil
}

// SetReducedMotion updates the reduced-motion toggle.
func (s *PreferencesService) SetReducedMotion(ctx context.Context, v bool) domain.Preferences {
	return s.update(ctx, func(p *domain.Preferences) { p.ReducedMotion = v })
}

// SetEnhancedFocus updates the enhanced-focus toggle.
func (s *PreferencesService) SetEnhancedFocus(ctx context.Context, v bool) domain.Preferences {
	return s.update(ctx, func(p *domain.Preferences) { p.EnhancedFocus = v })
}

// SetKeyboardHelper updates the keyboard-helper toggle.
func (s *PreferencesService) SetKeyboardHelper(ctx context.Context, v bool) domain.Preferences {
	return s.update(ctx, func(p *domain.Preferences) { p.KeyboardHelper = v })
}

// Reset restores the documented defaults and persists them.
func (s *PreferencesService) Reset(ctx context.Context) domain.Preferences {
	return s.update(ctx, func(p *domain.Preferences) { *p = domain.DefaultPreferences() })
}

func (s *PreferencesService) update(ctx context.Context, mutate func(*domain.Preferences)) domain.Preferences {
	s.mu.Lock()
	mutate(&s.prefs)
	prefs := s.prefs
	s.mu.Unlock()

	s.persist(ctx, prefs)
	return prefs
}

// persist writes the full record through to the key-value store, best effort.
func (s *PreferencesService) persist(ctx context.Context, prefs domain.Preferences) {
	data, err := json.Marshal(prefs)
	if err != nil {
		log.Warn().Err(err).Msg("Failed to encode accessibility preferences")
		return
	}
	if err := s.kv.Set(ctx, domain.PreferencesKey, data); err != nil {
		log.Warn().Err(err).Msg("Failed to save accessibility preferences")
	}
}
