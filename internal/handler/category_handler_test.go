package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/moneta-app/moneta-backend/internal/domain"
	"github.com/moneta-app/moneta-backend/internal/service"
	"github.com/moneta-app/moneta-backend/internal/store"
)

func newCategoryHandler() (*CategoryHandler, *recordingPublisher) {
	publisher := &recordingPublisher{}
	return NewCategoryHandler(service.NewCategoryService(store.NewCategoryStore()), publisher), publisher
}

func TestCreateCategory_Success(t *testing.T) {
	e := echo.New()
	handler, publisher := newCategoryHandler()

	c, rec := postJSON(e, "/api/v1/categories", `{"name": "travel"}`)

	if err := handler.CreateCategory(c); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if rec.Code != http.StatusCreated {
		t.Errorf("Expected status 201, got %d", rec.Code)
	}

	var response CategoryResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &response); err != nil {
		t.Fatalf("Failed to unmarshal response: %v", err)
	}
	if response.Name != "travel" {
		t.Errorf("Expected name 'travel', got %s", response.Name)
	}

	if len(publisher.events) != 1 || publisher.events[0].Type != "category.created" {
		t.Errorf("Expected one category.created event, got %v", publisher.events)
	}
}

func TestCreateCategory_DuplicateReturnsOK(t *testing.T) {
	e := echo.New()
	handler, publisher := newCategoryHandler()

	c, rec := postJSON(e, "/api/v1/categories", `{"name": "groceries"}`)

	if err := handler.CreateCategory(c); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if rec.Code != http.StatusOK {
		t.Errorf("Expected status 200 for a duplicate, got %d", rec.Code)
	}
	if len(publisher.events) != 0 {
		t.Errorf("Expected no events for a duplicate, got %d", len(publisher.events))
	}
}

func TestCreateCategory_BlankName(t *testing.T) {
	e := echo.New()
	handler, _ := newCategoryHandler()

	c, rec := postJSON(e, "/api/v1/categories", `{"name": "   "}`)

	if err := handler.CreateCategory(c); err != nil {
		t.Fatalf("Expected JSON response, got error: %v", err)
	}

	if rec.Code != http.StatusBadRequest {
		t.Errorf("Expected status 400, got %d", rec.Code)
	}

	var problemDetails ProblemDetails
	if err := json.Unmarshal(rec.Body.Bytes(), &problemDetails); err != nil {
		t.Fatalf("Failed to unmarshal response: %v", err)
	}
	if len(problemDetails.Errors) != 1 || problemDetails.Errors[0].Field != "name" {
		t.Error("Expected validation error for 'name' field")
	}
}

func TestCreateCategory_OverlongName(t *testing.T) {
	e := echo.New()
	handler, _ := newCategoryHandler()

	long := strings.Repeat("x", domain.MaxCategoryNameLength+1)
	c, rec := postJSON(e, "/api/v1/categories", `{"name": "`+long+`"}`)

	if err := handler.CreateCategory(c); err != nil {
		t.Fatalf("Expected JSON response, got error: %v", err)
	}

	if rec.Code != http.StatusBadRequest {
		t.Errorf("Expected status 400, got %d", rec.Code)
	}
}

func TestDeleteCategory_Success(t *testing.T) {
	e := echo.New()
	handler, publisher := newCategoryHandler()

	req := httptest.NewRequest(http.MethodDelete, "/api/v1/categories/entertainment", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("name")
	c.SetParamValues("entertainment")

	if err := handler.DeleteCategory(c); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if rec.Code != http.StatusNoContent {
		t.Errorf("Expected status 204, got %d", rec.Code)
	}
	if len(publisher.events) != 1 || publisher.events[0].Type != "category.deleted" {
		t.Errorf("Expected one category.deleted event, got %v", publisher.events)
	}
}

func TestDeleteCategory_IncomeIsReserved(t *testing.T) {
	e := echo.New()
	handler, publisher := newCategoryHandler()

	req := httptest.NewRequest(http.MethodDelete, "/api/v1/categories/income", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("name")
	c.SetParamValues("income")

	if err := handler.DeleteCategory(c); err != nil {
		t.Fatalf("Expected JSON response, got error: %v", err)
	}

	if rec.Code != http.StatusConflict {
		t.Errorf("Expected status 409, got %d", rec.Code)
	}
	if len(publisher.events) != 0 {
		t.Errorf("Expected no events, got %d", len(publisher.events))
	}
}

func TestDeleteCategory_UnknownIsNoOp(t *testing.T) {
	e := echo.New()
	handler, publisher := newCategoryHandler()

	req := httptest.NewRequest(http.MethodDelete, "/api/v1/categories/yachts", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("name")
	c.SetParamValues("yachts")

	if err := handler.DeleteCategory(c); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if rec.Code != http.StatusNoContent {
		t.Errorf("Expected status 204 for unknown name, got %d", rec.Code)
	}
	if len(publisher.events) != 0 {
		t.Errorf("Expected no events for a no-op delete, got %d", len(publisher.events))
	}
}

func TestGetCategories_SeededWithDefaults(t *testing.T) {
	e := echo.New()
	handler, _ := newCategoryHandler()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/categories", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := handler.GetCategories(c); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	var response []string
	if err := json.Unmarshal(rec.Body.Bytes(), &response); err != nil {
		t.Fatalf("Failed to unmarshal response: %v", err)
	}
	if len(response) != len(domain.DefaultCategories) {
		t.Errorf("Expected %d categories, got %d", len(domain.DefaultCategories), len(response))
	}
	if response[0] != "income" {
		t.Errorf("Expected income first, got %s", response[0])
	}
}

func TestGetExpenseCategories_ExcludesIncome(t *testing.T) {
	e := echo.New()
	handler, _ := newCategoryHandler()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/categories/expense", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := handler.GetExpenseCategories(c); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	var response []string
	if err := json.Unmarshal(rec.Body.Bytes(), &response); err != nil {
		t.Fatalf("Failed to unmarshal response: %v", err)
	}
	for _, name := range response {
		if name == "income" {
			t.Error("Expected income to be excluded")
		}
	}
}
