package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/moneta-app/moneta-backend/internal/service"
)

func TestGetTips_InitialStateIsIdle(t *testing.T) {
	e := echo.New()
	handler := NewTipsHandler(service.NewTipsService("http://localhost", "", time.Second))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/tips", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := handler.GetTips(c); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if rec.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", rec.Code)
	}

	var response TipsResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &response); err != nil {
		t.Fatalf("Failed to unmarshal response: %v", err)
	}
	if response.Status != "idle" {
		t.Errorf("Expected idle, got %s", response.Status)
	}
	if response.Tips == nil || len(response.Tips) != 0 {
		t.Errorf("Expected empty tips array, got %v", response.Tips)
	}
}

func TestRefreshTips_ReturnsAccepted(t *testing.T) {
	release := make(chan struct{})
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-release
		w.Write([]byte(`[]`))
	}))
	t.Cleanup(server.Close)
	t.Cleanup(func() { close(release) })

	e := echo.New()
	handler := NewTipsHandler(service.NewTipsService(server.URL, "key", time.Second))

	req := httptest.NewRequest(http.MethodPost, "/api/v1/tips/refresh", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := handler.RefreshTips(c); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if rec.Code != http.StatusAccepted {
		t.Errorf("Expected status 202, got %d", rec.Code)
	}

	var response TipsResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &response); err != nil {
		t.Fatalf("Failed to unmarshal response: %v", err)
	}
	if response.Status != "loading" {
		t.Errorf("Expected loading, got %s", response.Status)
	}
}
