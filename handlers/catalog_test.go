package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"labura/catalog"

	"github.com/gin-gonic/gin"
)

func newCatalogRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewCatalogHandler()
	r.GET("/api/catalog/categories", h.ListCategoriesHandler)
	r.GET("/api/catalog/categories/:id/services", h.ListServicesHandler)
	return r
}

func TestListCategoriesHandler(t *testing.T) {
	r := newCatalogRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/catalog/categories", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var body struct {
		Categories []catalog.Entry `json:"categories"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if len(body.Categories) != 6 {
		t.Errorf("expected 6 categories, got %d", len(body.Categories))
	}
	if body.Categories[0].ID != catalog.Hogar {
		t.Errorf("expected hogar first, got %q", body.Categories[0].ID)
	}
}

func TestListServicesHandler(t *testing.T) {
	r := newCatalogRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/catalog/categories/deporte/services", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var body struct {
		Category string          `json:"category"`
		Services []catalog.Entry `json:"services"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if body.Category != "deporte" || len(body.Services) != 8 {
		t.Errorf("unexpected body %+v", body)
	}
}

func TestListServicesHandlerUnknownCategory(t *testing.T) {
	r := newCatalogRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/catalog/categories/autos/services", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
}
