package service

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/moneta-app/moneta-backend/internal/domain"
)

func tipsServer(t *testing.T, apiKey string, status int, body string) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("category") != "money" {
			t.Errorf("Expected category=money, got %q", r.URL.Query().Get("category"))
		}
		if got := r.Header.Get("X-Api-Key"); got != apiKey {
			t.Errorf("Expected api key %q, got %q", apiKey, got)
		}
		w.WriteHeader(status)
		w.Write([]byte(body))
	}))
	t.Cleanup(server.Close)
	return server
}

func TestTipsService_InitialStateIsIdle(t *testing.T) {
	svc := NewTipsService("http://localhost", "", time.Second)

	state := svc.State()
	if state.Status != domain.TipsStatusIdle {
		t.Errorf("Expected idle, got %s", state.Status)
	}
	if state.Tips == nil || len(state.Tips) != 0 {
		t.Errorf("Expected empty tips slice, got %v", state.Tips)
	}
}

func TestTipsService_FetchSuccess(t *testing.T) {
	server := tipsServer(t, "secret", http.StatusOK,
		`[{"quote":"A penny saved is a penny earned.","author":"Benjamin Franklin"}]`)

	svc := NewTipsService(server.URL, "secret", time.Second)
	svc.fetch(context.Background())

	state := svc.State()
	if state.Status != domain.TipsStatusSucceeded {
		t.Fatalf("Expected succeeded, got %s", state.Status)
	}
	if len(state.Tips) != 1 {
		t.Fatalf("Expected 1 tip, got %d", len(state.Tips))
	}
	if state.Tips[0].Author != "Benjamin Franklin" {
		t.Errorf("Expected Benjamin Franklin, got %s", state.Tips[0].Author)
	}
	if state.Error != "" {
		t.Errorf("Expected no error, got %q", state.Error)
	}
}

func TestTipsService_FetchFailureKeepsPriorTips(t *testing.T) {
	server := tipsServer(t, "", http.StatusOK, `[{"quote":"Spend less than you earn.","author":"Anonymous"}]`)

	svc := NewTipsService(server.URL, "", time.Second)
	svc.fetch(context.Background())
	if len(svc.State().Tips) != 1 {
		t.Fatal("Expected the first fetch to succeed")
	}

	server.Close()
	svc.fetch(context.Background())

	state := svc.State()
	if state.Status != domain.TipsStatusFailed {
		t.Errorf("Expected failed, got %s", state.Status)
	}
	if state.Error == "" {
		t.Error("Expected an error message")
	}
	if len(state.Tips) != 1 {
		t.Errorf("Expected prior tips retained, got %d", len(state.Tips))
	}
}

func TestTipsService_NonOKStatusFails(t *testing.T) {
	server := tipsServer(t, "", http.StatusTooManyRequests, `{"error":"rate limited"}`)

	svc := NewTipsService(server.URL, "", time.Second)
	svc.fetch(context.Background())

	state := svc.State()
	if state.Status != domain.TipsStatusFailed {
		t.Errorf("Expected failed, got %s", state.Status)
	}
	if !strings.Contains(state.Error, "429") {
		t.Errorf("Expected error to mention status 429, got %q", state.Error)
	}
}

func TestTipsService_MalformedResponseFails(t *testing.T) {
	server := tipsServer(t, "", http.StatusOK, `{"not":"an array"}`)

	svc := NewTipsService(server.URL, "", time.Second)
	svc.fetch(context.Background())

	if state := svc.State(); state.Status != domain.TipsStatusFailed {
		t.Errorf("Expected failed on malformed body, got %s", state.Status)
	}
}

func TestTipsService_SuccessAfterFailureClearsError(t *testing.T) {
	failing := tipsServer(t, "", http.StatusInternalServerError, ``)
	svc := NewTipsService(failing.URL, "", time.Second)
	svc.fetch(context.Background())
	if svc.State().Error == "" {
		t.Fatal("Expected an error after the failed fetch")
	}

	working := tipsServer(t, "", http.StatusOK, `[]`)
	svc.url = working.URL
	svc.fetch(context.Background())

	state := svc.State()
	if state.Status != domain.TipsStatusSucceeded {
		t.Errorf("Expected succeeded, got %s", state.Status)
	}
	if state.Error != "" {
		t.Errorf("Expected error cleared on success, got %q", state.Error)
	}
}

func TestTipsService_RefreshEntersLoading(t *testing.T) {
	release := make(chan struct{})
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-release
		w.Write([]byte(`[]`))
	}))
	t.Cleanup(server.Close)
	t.Cleanup(func() { close(release) })

	svc := NewTipsService(server.URL, "", time.Second)
	svc.Refresh()

	if state := svc.State(); state.Status != domain.TipsStatusLoading {
		t.Errorf("Expected loading while the fetch is in flight, got %s", state.Status)
	}
}

func TestTipsService_ListenerSeesTerminalState(t *testing.T) {
	server := tipsServer(t, "", http.StatusOK, `[{"quote":"Pay yourself first.","author":"George Clason"}]`)

	svc := NewTipsService(server.URL, "", time.Second)
	seen := make([]domain.TipsState, 0, 1)
	svc.SetListener(func(state domain.TipsState) {
		seen = append(seen, state)
	})

	svc.fetch(context.Background())

	if len(seen) != 1 {
		t.Fatalf("Expected 1 listener call, got %d", len(seen))
	}
	if seen[0].Status != domain.TipsStatusSucceeded {
		t.Errorf("Expected listener to see succeeded, got %s", seen[0].Status)
	}
	if len(seen[0].Tips) != 1 {
		t.Errorf("Expected listener to see 1 tip, got %d", len(seen[0].Tips))
	}
}

func TestTipsService_StateReturnsSnapshot(t *testing.T) {
	server := tipsServer(t, "", http.StatusOK, `[{"quote":"Budget first.","author":"Anonymous"}]`)

	svc := NewTipsService(server.URL, "", time.Second)
	svc.fetch(context.Background())

	state := svc.State()
	state.Tips[0].Quote = "mutated"

	if svc.State().Tips[0].Quote != "Budget first." {
		t.Error("Expected internal tips to be unaffected by caller mutation")
	}
}
