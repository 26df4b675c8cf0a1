package session

import (
	"context"
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"strings"
	"time"

	"github.com/go-redis/redis/v8"
)

// CookieName is the session cookie the router sets and the middleware reads.
const CookieName = "portfolio_session"

const keyPrefix = "sess:"

// ErrInvalid covers absent, malformed, tampered, expired and revoked
// tokens uniformly so callers cannot distinguish the cases.
var ErrInvalid = errors.New("invalid session")

// Manager issues and resolves opaque session tokens backed by redis.
// The cookie value is "<token>.<hmac>"; the signature is checked before
// redis is consulted, so forged cookies never reach the store. Expiry is
// fixed at creation via the redis key TTL and is never extended, and
// expired keys vanish without any sweeper.
type Manager struct {
	redis  *redis.Client
	secret []byte
	ttl    time.Duration
}

func NewManager(rdb *redis.Client, secret string, ttl time.Duration) (*Manager, error) {
	if secret == "" {
		return nil, errors.New("session secret is required")
	}
	return &Manager{redis: rdb, secret: []byte(secret), ttl: ttl}, nil
}

// TTL reports the fixed session lifetime, used for the cookie max age.
func (m *Manager) TTL() time.Duration {
	return m.ttl
}

// Create mints a session for userID and returns the signed cookie value.
func (m *Manager) Create(ctx context.Context, userID string) (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	token := hex.EncodeToString(buf)

	if err := m.redis.Set(ctx, keyPrefix+token, userID, m.ttl).Err(); err != nil {
		return "", err
	}
	return token + "." + m.sign(token), nil
}

// Resolve returns the user id bound to a cookie value, or ErrInvalid.
func (m *Manager) Resolve(ctx context.Context, cookie string) (string, error) {
	token, sig, ok := strings.Cut(cookie, ".")
	if !ok || !hmac.Equal([]byte(sig), []byte(m.sign(token))) {
		return "", ErrInvalid
	}

	userID, err := m.redis.Get(ctx, keyPrefix+token).Result()
	if errors.Is(err, redis.Nil) {
		return "", ErrInvalid
	}
	if err != nil {
		return "", err
	}
	return userID, nil
}

// Revoke deletes the session immediately. Unknown or malformed cookies
// are a no-op, which makes logout idempotent.
func (m *Manager) Revoke(ctx context.Context, cookie string) error {
	token, _, ok := strings.Cut(cookie, ".")
	if !ok {
		return nil
	}
	return m.redis.Del(ctx, keyPrefix+token).Err()
}

func (m *Manager) sign(token string) string {
	mac := hmac.New(sha256.New, m.secret)
	mac.Write([]byte(token))
	return hex.EncodeToString(mac.Sum(nil))
}
