package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/quickcart/quickcart-backend/api/middleware"
	cartsvc "github.com/quickcart/quickcart-backend/internal/cart"
	dbtypes "github.com/quickcart/quickcart-backend/pkg/db/types"
	pkgerrors "github.com/quickcart/quickcart-backend/pkg/errors"
)

type stubCartService struct {
	replaced   dbtypes.CartItems
	replaceErr error
	snapshot   *cartsvc.Snapshot
	getErr     error
}

func (s *stubCartService) Replace(ctx context.Context, userID string, items dbtypes.CartItems) error {
	s.replaced = items
	return s.replaceErr
}

func (s *stubCartService) Get(ctx context.Context, userID string) (*cartsvc.Snapshot, error) {
	return s.snapshot, s.getErr
}

func authedRequest(method, target, body string) *http.Request {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
	}
	return req.WithContext(middleware.WithUserID(req.Context(), "user_2abc"))
}

func TestUpdateCartSuccess(t *testing.T) {
	svc := &stubCartService{}
	handler := UpdateCart(svc, nil)

	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, authedRequest(http.MethodPost, "/api/cart/update", `{"cartData":{"p1":2,"p2":1}}`))

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", resp.Code)
	}
	if svc.replaced["p1"] != 2 || svc.replaced["p2"] != 1 {
		t.Fatalf("unexpected mapping %v", svc.replaced)
	}

	var envelope struct {
		Success bool   `json:"success"`
		Message string `json:"message"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if !envelope.Success || envelope.Message != "Cart Updated" {
		t.Fatalf("unexpected envelope %+v", envelope)
	}
}

func TestUpdateCartMissingUserContext(t *testing.T) {
	handler := UpdateCart(&stubCartService{}, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/cart/update", strings.NewReader(`{"cartData":{}}`))
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 got %d", resp.Code)
	}
}

func TestUpdateCartPersistenceFailure(t *testing.T) {
	svc := &stubCartService{replaceErr: pkgerrors.New(pkgerrors.CodePersistence, "cart write did not apply")}
	handler := UpdateCart(svc, nil)

	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, authedRequest(http.MethodPost, "/api/cart/update", `{"cartData":{"p1":1}}`))

	if resp.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500 got %d", resp.Code)
	}

	var envelope struct {
		Success bool   `json:"success"`
		Code    string `json:"code"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if envelope.Success || envelope.Code != string(pkgerrors.CodePersistence) {
		t.Fatalf("unexpected envelope %+v", envelope)
	}
}

func TestGetCartSuccess(t *testing.T) {
	svc := &stubCartService{snapshot: &cartsvc.Snapshot{
		Items:  dbtypes.CartItems{"p1": 2},
		Count:  2,
		Amount: 39.99,
	}}
	handler := GetCart(svc, nil)

	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, authedRequest(http.MethodGet, "/api/cart/get", ""))

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", resp.Code)
	}

	var envelope struct {
		Success   bool           `json:"success"`
		CartItems map[string]int `json:"cartItems"`
		Count     int            `json:"count"`
		Amount    float64        `json:"amount"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if !envelope.Success || envelope.CartItems["p1"] != 2 || envelope.Count != 2 || envelope.Amount != 39.99 {
		t.Fatalf("unexpected envelope %+v", envelope)
	}
}

func TestGetCartUserMissing(t *testing.T) {
	svc := &stubCartService{getErr: pkgerrors.New(pkgerrors.CodeNotFound, "User Not Found")}
	handler := GetCart(svc, nil)

	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, authedRequest(http.MethodGet, "/api/cart/get", ""))

	if resp.Code != http.StatusNotFound {
		t.Fatalf("expected 404 got %d", resp.Code)
	}
}
