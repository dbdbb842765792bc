package session

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	redislib "github.com/redis/go-redis/v9"
)

type mockStore struct {
	mu   sync.Mutex
	data map[string]string
}

func newMockStore() *mockStore {
	return &mockStore{data: make(map[string]string)}
}

func (m *mockStore) Set(ctx context.Context, key string, value any, ttl time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = fmt.Sprint(value)
	return nil
}

func (m *mockStore) Get(ctx context.Context, key string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	val, ok := m.data[key]
	if !ok {
		return "", redislib.Nil
	}
	return val, nil
}

func (m *mockStore) Del(ctx context.Context, keys ...string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, key := range keys {
		delete(m.data, key)
	}
	return nil
}

func (m *mockStore) RevokedTokenKey(tokenID string) string {
	return fmt.Sprintf("revoked:%s", tokenID)
}

func TestManagerRevokeAndCheck(t *testing.T) {
	store := newMockStore()
	manager := &Manager{store: store, keyer: store}
	ctx := context.Background()

	revoked, err := manager.IsRevoked(ctx, "jti-1")
	if err != nil {
		t.Fatalf("IsRevoked: %v", err)
	}
	if revoked {
		t.Fatal("fresh token should not be revoked")
	}

	if err := manager.Revoke(ctx, "jti-1", time.Hour); err != nil {
		t.Fatalf("Revoke: %v", err)
	}

	revoked, err = manager.IsRevoked(ctx, "jti-1")
	if err != nil {
		t.Fatalf("IsRevoked after revoke: %v", err)
	}
	if !revoked {
		t.Fatal("revoked token should report revoked")
	}
}

func TestManagerValidatesInputs(t *testing.T) {
	store := newMockStore()
	manager := &Manager{store: store, keyer: store}
	ctx := context.Background()

	if err := manager.Revoke(ctx, " ", time.Hour); err == nil {
		t.Fatal("expected blank token id to fail")
	}
	if err := manager.Revoke(ctx, "jti-1", 0); err == nil {
		t.Fatal("expected non-positive ttl to fail")
	}
	if _, err := manager.IsRevoked(ctx, ""); err == nil {
		t.Fatal("expected blank token id to fail")
	}
}

func TestNewManagerRequiresClient(t *testing.T) {
	if _, err := NewManager(nil); err == nil {
		t.Fatal("expected nil client to fail")
	}
}
