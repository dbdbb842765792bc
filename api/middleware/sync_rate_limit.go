package middleware

import (
	"context"
	"crypto/subtle"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/quickcart/quickcart-backend/api/responses"
	"github.com/quickcart/quickcart-backend/pkg/config"
	pkgerrors "github.com/quickcart/quickcart-backend/pkg/errors"
	"github.com/quickcart/quickcart-backend/pkg/logger"
)

const syncSecretHeader = "X-Sync-Secret"

type syncLimiterStore interface {
	IncrWithTTL(ctx context.Context, key string, ttl time.Duration) (int64, error)
	RateLimitKey(scope string) string
}

// SyncGuard protects the identity-sync webhook: it verifies the shared
// secret the identity provider signs requests with and applies a fixed
// window per-IP counter.
func SyncGuard(cfg config.SyncRateLimitConfig, store syncLimiterStore, logg *logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			if cfg.Secret != "" {
				supplied := strings.TrimSpace(r.Header.Get(syncSecretHeader))
				if subtle.ConstantTimeCompare([]byte(supplied), []byte(cfg.Secret)) != 1 {
					responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeUnauthorized, "invalid sync credentials"))
					return
				}
			}

			if store != nil && cfg.Window > 0 && cfg.IPLimit > 0 {
				ip := clientIP(r)
				if ip != "" {
					key := store.RateLimitKey("sync:ip:" + ip)
					count, err := store.IncrWithTTL(ctx, key, cfg.Window)
					if err != nil {
						responses.WriteError(ctx, logg, w, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "rate limiting"))
						return
					}
					if count > int64(cfg.IPLimit) {
						if logg != nil {
							logCtx := logg.WithFields(ctx, map[string]any{
								"ip":             ip,
								"attempts":       count,
								"limit":          cfg.IPLimit,
								"window_seconds": int(cfg.Window.Seconds()),
							})
							logg.Warn(logCtx, "sync.rate_limit.blocked")
						}
						responses.WriteError(ctx, nil, w, pkgerrors.New(pkgerrors.CodeRateLimit, "rate limit exceeded"))
						return
					}
				}
			}

			next.ServeHTTP(w, r)
		})
	}
}

func clientIP(r *http.Request) string {
	if r == nil {
		return ""
	}
	if header := r.Header.Get("X-Forwarded-For"); header != "" {
		for _, part := range strings.Split(header, ",") {
			if ip := strings.TrimSpace(part); ip != "" {
				return ip
			}
		}
	}
	if ip := strings.TrimSpace(r.Header.Get("X-Real-IP")); ip != "" {
		return ip
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err == nil && host != "" {
		return host
	}
	return r.RemoteAddr
}
