package service

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/moneta-app/moneta-backend/internal/domain"
	"github.com/rs/zerolog/log"
)

// TipsService fetches financial quotes from the external quotes API and holds
// the idle/loading/succeeded/failed panel state. A failed fetch keeps the
// previously fetched tips. Fetches are never retried automatically; retry is
// a manual, user-triggered Refresh.
//
// Concurrent refreshes are permitted: there is no in-flight guard, so the
// last response to resolve wins. Tips are cosmetic, so a stale overwrite is
// an accepted risk rather than a correctness problem.
type TipsService struct {
	mu       sync.RWMutex
	client   *http.Client
	url      string
	apiKey   string
	state    domain.TipsState
	listener func(domain.TipsState)
}

// NewTipsService creates a TipsService against the given quotes endpoint.
func NewTipsService(url, apiKey string, timeout time.Duration) *TipsService {
	return &TipsService{
		client: &http.Client{Timeout: timeout},
		url:    url,
		apiKey: apiKey,
		state: domain.TipsState{
			Status: domain.TipsStatusIdle,
			Tips:   []domain.Tip{},
		},
	}
}

// SetListener registers a callback invoked with a state snapshot whenever a
// fetch reaches a terminal state. Used to push refreshes to connected clients.
func (s *TipsService) SetListener(fn func(domain.TipsState)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listener = fn
}

// State returns a snapshot of the panel state.
func (s *TipsService) State() domain.TipsState {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := s.state
	out.Tips = make([]domain.Tip, len(s.state.Tips))
	copy(out.Tips, s.state.Tips)
	return out
}

// Refresh enters the loading state and fetches in the background. It returns
// immediately; callers observe the outcome through State.
func (s *TipsService) Refresh() {
	s.setLoading()
	go s.fetch(context.Background())
}

func (s *TipsService) setLoading() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Status = domain.TipsStatusLoading
}

// fetch performs one GET against the quotes endpoint and records the outcome.
func (s *TipsService) fetch(ctx context.Context) {
	tips, err := s.request(ctx)

	s.mu.Lock()
	if err != nil {
		s.state.Status = domain.TipsStatusFailed
		s.state.Error = err.Error()
	} else {
		s.state.Status = domain.TipsStatusSucceeded
		s.state.Tips = tips
		s.state.Error = ""
	}
	listener := s.listener
	s.mu.Unlock()

	if err != nil {
		log.Warn().Err(err).Msg("Financial tips fetch failed")
	} else {
		log.Info().Int("count", len(tips)).Msg("Financial tips refreshed")
	}

	if listener != nil {
		listener(s.State())
	}
}

func (s *TipsService) request(ctx context.Context) ([]domain.Tip, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.url+"?category=money", nil)
	if err != nil {
		return nil, fmt.Errorf("build tips request: %w", err)
	}
	if s.apiKey != "" {
		req.Header.Set("X-Api-Key", s.apiKey)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch tips: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("tips endpoint returned status %d", resp.StatusCode)
	}

	var tips []domain.Tip
	if err := json.NewDecoder(resp.Body).Decode(&tips); err != nil {
		return nil, fmt.Errorf("decode tips response: %w", err)
	}
	if tips == nil {
		tips = []domain.Tip{}
	}
	return tips, nil
}
