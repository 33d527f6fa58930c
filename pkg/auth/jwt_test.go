// pkg/auth/jwt_test.go
package auth

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memoryRevocations struct {
	mu  sync.Mutex
	ids map[string]time.Duration
}

func (m *memoryRevocations) Revoke(ctx context.Context, tokenID string, ttl time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.ids == nil {
		m.ids = map[string]time.Duration{}
	}
	m.ids[tokenID] = ttl
	return nil
}

func (m *memoryRevocations) IsRevoked(ctx context.Context, tokenID string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.ids[tokenID]
	return ok, nil
}

func TestTokenManager_GenerateAndValidate(t *testing.T) {
	m := NewTokenManager("test-secret-0123456789", time.Hour, &memoryRevocations{})

	token, claims, err := m.GenerateToken("admin-1", "ops@example.com", "admin")
	require.NoError(t, err)
	require.NotEmpty(t, token)
	assert.NotEmpty(t, claims.ID)

	got, err := m.ValidateToken(context.Background(), token)
	require.NoError(t, err)
	assert.Equal(t, "admin-1", got.AdminID)
	assert.Equal(t, "ops@example.com", got.Email)
	assert.Equal(t, "admin", got.Role)
	assert.Equal(t, claims.ID, got.ID)
}

func TestTokenManager_RejectsForeignSignature(t *testing.T) {
	issuer := NewTokenManager("issuer-secret-0123456789", time.Hour, nil)
	verifier := NewTokenManager("other-secret-0123456789", time.Hour, nil)

	token, _, err := issuer.GenerateToken("admin-1", "ops@example.com", "admin")
	require.NoError(t, err)

	_, err = verifier.ValidateToken(context.Background(), token)
	assert.True(t, errors.Is(err, ErrInvalidToken), "err = %v", err)
}

func TestTokenManager_RejectsExpired(t *testing.T) {
	m := NewTokenManager("test-secret-0123456789", time.Minute, nil)
	m.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }
	token, _, err := m.GenerateToken("admin-1", "ops@example.com", "admin")
	require.NoError(t, err)

	m.now = time.Now
	_, err = m.ValidateToken(context.Background(), token)
	assert.True(t, errors.Is(err, ErrInvalidToken), "err = %v", err)
}

func TestTokenManager_Revoke(t *testing.T) {
	store := &memoryRevocations{}
	m := NewTokenManager("test-secret-0123456789", time.Hour, store)

	token, claims, err := m.GenerateToken("admin-1", "ops@example.com", "admin")
	require.NoError(t, err)
	require.NoError(t, m.Revoke(context.Background(), claims))

	ttl, ok := store.ids[claims.ID]
	require.True(t, ok)
	assert.InDelta(t, time.Hour.Seconds(), ttl.Seconds(), 5)

	_, err = m.ValidateToken(context.Background(), token)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "token is blacklisted")
}

func TestTokenManager_RevokeWithoutID(t *testing.T) {
	m := NewTokenManager("test-secret-0123456789", time.Hour, &memoryRevocations{})
	assert.ErrorIs(t, m.Revoke(context.Background(), &Claims{}), ErrInvalidToken)
	assert.ErrorIs(t, m.Revoke(context.Background(), nil), ErrInvalidToken)
}
