package session

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	redisclient "github.com/quickcart/quickcart-backend/pkg/redis"
	redislib "github.com/redis/go-redis/v9"
)

type denyListStore interface {
	Set(ctx context.Context, key string, value any, ttl time.Duration) error
	Get(ctx context.Context, key string) (string, error)
}

type denyListKeyer interface {
	RevokedTokenKey(tokenID string) string
}

// Manager keeps a Redis deny list for tokens the identity provider issued.
// Tokens are minted elsewhere; revocation is the only session state held
// locally, keyed by the token's jti with the token's remaining lifetime.
type Manager struct {
	store denyListStore
	keyer denyListKeyer
}

// RevocationChecker exposes the read-only surface needed by middleware.
type RevocationChecker interface {
	IsRevoked(ctx context.Context, tokenID string) (bool, error)
}

// NewManager constructs a deny-list manager backed by Redis.
func NewManager(client *redisclient.Client) (*Manager, error) {
	if client == nil {
		return nil, fmt.Errorf("redis client is required")
	}
	return &Manager{store: client, keyer: client}, nil
}

// Revoke marks the token id as unusable until it would have expired anyway.
func (m *Manager) Revoke(ctx context.Context, tokenID string, ttl time.Duration) error {
	if strings.TrimSpace(tokenID) == "" {
		return fmt.Errorf("token id is required")
	}
	if ttl <= 0 {
		return fmt.Errorf("revocation ttl must be positive")
	}
	return m.store.Set(ctx, m.keyer.RevokedTokenKey(tokenID), "1", ttl)
}

// IsRevoked reports whether the token id is on the deny list.
func (m *Manager) IsRevoked(ctx context.Context, tokenID string) (bool, error) {
	if strings.TrimSpace(tokenID) == "" {
		return false, fmt.Errorf("token id is required")
	}
	if _, err := m.store.Get(ctx, m.keyer.RevokedTokenKey(tokenID)); err != nil {
		if errors.Is(err, redislib.Nil) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}
