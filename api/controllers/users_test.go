package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	usersvc "github.com/quickcart/quickcart-backend/internal/users"
	"github.com/quickcart/quickcart-backend/pkg/db/models"
	dbtypes "github.com/quickcart/quickcart-backend/pkg/db/types"
	pkgerrors "github.com/quickcart/quickcart-backend/pkg/errors"
)

type stubUserService struct {
	synced    *usersvc.SyncUserDTO
	user      *models.User
	err       error
	removedID string
}

func (s *stubUserService) Sync(ctx context.Context, dto usersvc.SyncUserDTO) (*models.User, error) {
	s.synced = &dto
	if s.err != nil {
		return nil, s.err
	}
	return dto.ToModel(), nil
}

func (s *stubUserService) GetByID(ctx context.Context, id string) (*models.User, error) {
	return s.user, s.err
}

func (s *stubUserService) Remove(ctx context.Context, id string) error {
	s.removedID = id
	return s.err
}

func TestSyncUserCreated(t *testing.T) {
	svc := &stubUserService{}
	handler := SyncUser(svc, nil)

	body := `{"type":"user.created","data":{"id":"user_2abc","name":"Jane Roe","email":"jane@example.com"}}`
	req := httptest.NewRequest(http.MethodPost, "/api/user/sync", strings.NewReader(body))
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", resp.Code)
	}
	if svc.synced == nil || svc.synced.ID != "user_2abc" {
		t.Fatalf("unexpected sync call %+v", svc.synced)
	}
}

func TestSyncUserDeleted(t *testing.T) {
	svc := &stubUserService{}
	handler := SyncUser(svc, nil)

	body := `{"type":"user.deleted","data":{"id":"user_2abc"}}`
	req := httptest.NewRequest(http.MethodPost, "/api/user/sync", strings.NewReader(body))
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", resp.Code)
	}
	if svc.removedID != "user_2abc" {
		t.Fatalf("expected removal of user_2abc, got %q", svc.removedID)
	}
}

func TestSyncUserUnsupportedEvent(t *testing.T) {
	handler := SyncUser(&stubUserService{}, nil)

	body := `{"type":"session.created","data":{"id":"user_2abc"}}`
	req := httptest.NewRequest(http.MethodPost, "/api/user/sync", strings.NewReader(body))
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", resp.Code)
	}
}

func TestUserDataSuccess(t *testing.T) {
	svc := &stubUserService{user: &models.User{
		ID:        "user_2abc",
		Name:      "Jane Roe",
		Email:     "jane@example.com",
		CartItems: dbtypes.CartItems{"p1": 2},
	}}
	handler := UserData(svc, nil)

	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, authedRequest(http.MethodGet, "/api/user/data", ""))

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", resp.Code)
	}

	var envelope struct {
		Success bool        `json:"success"`
		User    models.User `json:"user"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if !envelope.Success || envelope.User.ID != "user_2abc" || envelope.User.CartItems["p1"] != 2 {
		t.Fatalf("unexpected envelope %+v", envelope)
	}
}

func TestUserDataNotFound(t *testing.T) {
	svc := &stubUserService{err: pkgerrors.New(pkgerrors.CodeNotFound, "User Not Found")}
	handler := UserData(svc, nil)

	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, authedRequest(http.MethodGet, "/api/user/data", ""))

	if resp.Code != http.StatusNotFound {
		t.Fatalf("expected 404 got %d", resp.Code)
	}
}
