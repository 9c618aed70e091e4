package router

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/merchline/merchline/internal/domain/model"
	"github.com/merchline/merchline/internal/server/http/handlers"
	facade "github.com/merchline/merchline/internal/test/facade"
)

func TestSetupRoutes(t *testing.T) {
	gin.SetMode(gin.TestMode)
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	facade := &facade.CommerceFacadeStub{}
	engine := Setup(facade, logger)

	body, _ := json.Marshal(map[string]string{"login": "shop", "password": "pass", "role": "retailer"})
	req := httptest.NewRequest(http.MethodPost, "/api/auth/register", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	engine.ServeHTTP(resp, req)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200 for register, got %d", resp.Code)
	}

	req = httptest.NewRequest(http.MethodGet, "/api/catalog", nil)
	req.Header.Set("Authorization", "Bearer token")
	resp = httptest.NewRecorder()
	engine.ServeHTTP(resp, req)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200 for catalog, got %d", resp.Code)
	}

	req = httptest.NewRequest(http.MethodGet, "/api/retailer/cart", nil)
	req.Header.Set("Authorization", "Bearer token")
	resp = httptest.NewRecorder()
	engine.ServeHTTP(resp, req)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200 for cart, got %d", resp.Code)
	}
}

func TestSetupRejectsUnauthenticated(t *testing.T) {
	gin.SetMode(gin.TestMode)
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	engine := Setup(&facade.CommerceFacadeStub{}, logger)

	req := httptest.NewRequest(http.MethodGet, "/api/catalog", nil)
	resp := httptest.NewRecorder()
	engine.ServeHTTP(resp, req)
	if resp.Code != http.StatusUnauthorized {
		t.Fatalf("expected status 401 without token, got %d", resp.Code)
	}
}

func TestSetupEnforcesRoles(t *testing.T) {
	gin.SetMode(gin.TestMode)
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))

	// Token parses to a retailer; wholesaler routes must refuse it.
	engine := Setup(&facade.CommerceFacadeStub{}, logger)

	req := httptest.NewRequest(http.MethodGet, "/api/wholesaler/orders", nil)
	req.Header.Set("Authorization", "Bearer token")
	resp := httptest.NewRecorder()
	engine.ServeHTTP(resp, req)
	if resp.Code != http.StatusForbidden {
		t.Fatalf("expected status 403 for retailer on wholesaler route, got %d", resp.Code)
	}

	wholesaler := &facade.CommerceFacadeStub{ParseTokenFn: func(string) (int64, model.Role, error) {
		return 2, model.RoleWholesaler, nil
	}}
	engine = Setup(wholesaler, logger)

	req = httptest.NewRequest(http.MethodGet, "/api/wholesaler/orders", nil)
	req.Header.Set("Authorization", "Bearer token")
	resp = httptest.NewRecorder()
	engine.ServeHTTP(resp, req)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200 for wholesaler orders, got %d", resp.Code)
	}
}

var _ handlers.CommerceFacade = (*facade.CommerceFacadeStub)(nil)
