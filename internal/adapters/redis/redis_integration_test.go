//go:build integration

// internal/adapters/redis/redis_integration_test.go
package redis

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mahabubulhasibshawon/marketplace-admin/internal/testhelpers"
)

func TestCache_Integration(t *testing.T) {
	c := NewCache(Options{Addr: testhelpers.StartRedis(t), TTL: time.Minute})
	t.Cleanup(func() { c.Close() })
	ctx := context.Background()

	require.NoError(t, c.Ping(ctx))

	require.NoError(t, c.Set(ctx, "users:abc", map[string]int{"total": 3}))
	require.NoError(t, c.Set(ctx, "users:def", []string{"x"}))
	require.NoError(t, c.Set(ctx, "orders:abc", 1))

	data, err := c.Get(ctx, "users:abc")
	require.NoError(t, err)
	assert.JSONEq(t, `{"total":3}`, string(data))

	require.NoError(t, c.Revoke(ctx, "jti-1", time.Minute))
	require.NoError(t, c.DeleteByPrefix(ctx, "users:"))

	_, err = c.Get(ctx, "users:abc")
	assert.Error(t, err)
	_, err = c.Get(ctx, "orders:abc")
	assert.NoError(t, err)

	revoked, err := c.IsRevoked(ctx, "jti-1")
	require.NoError(t, err)
	assert.True(t, revoked)

	revoked, err = c.IsRevoked(ctx, "jti-2")
	require.NoError(t, err)
	assert.False(t, revoked)
}
