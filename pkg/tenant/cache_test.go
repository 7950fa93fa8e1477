package tenant_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/greyhound/greyhound/pkg/tenant"
)

func TestInMemoryCache(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("stores and retrieves tenant", func(t *testing.T) {
		t.Parallel()

		c := tenant.NewInMemoryCache(10)
		acme := createTestTenant("acme")

		require.NoError(t, c.Set(ctx, "acme", acme, time.Hour))

		got, ok := c.Get(ctx, "acme")
		require.True(t, ok)
		assert.Same(t, acme, got)
	})

	t.Run("returns false for missing key", func(t *testing.T) {
		t.Parallel()

		c := tenant.NewInMemoryCache(10)
		got, ok := c.Get(ctx, "missing")
		assert.False(t, ok)
		assert.Nil(t, got)
	})

	t.Run("respects TTL expiration", func(t *testing.T) {
		t.Parallel()

		c := tenant.NewInMemoryCache(10)
		require.NoError(t, c.Set(ctx, "acme", createTestTenant("acme"), 10*time.Millisecond))

		assert.Eventually(t, func() bool {
			_, ok := c.Get(ctx, "acme")
			return !ok
		}, time.Second, 5*time.Millisecond)
	})

	t.Run("deletes tenant", func(t *testing.T) {
		t.Parallel()

		c := tenant.NewInMemoryCache(10)
		require.NoError(t, c.Set(ctx, "acme", createTestTenant("acme"), time.Hour))
		require.NoError(t, c.Delete(ctx, "acme"))

		_, ok := c.Get(ctx, "acme")
		assert.False(t, ok)
	})

	t.Run("evicts beyond size", func(t *testing.T) {
		t.Parallel()

		c := tenant.NewInMemoryCache(1)
		require.NoError(t, c.Set(ctx, "acme", createTestTenant("acme"), time.Hour))
		require.NoError(t, c.Set(ctx, "globex", createTestTenant("globex"), time.Hour))

		_, ok := c.Get(ctx, "acme")
		assert.False(t, ok)
		_, ok = c.Get(ctx, "globex")
		assert.True(t, ok)
	})

	t.Run("non-positive size uses default", func(t *testing.T) {
		t.Parallel()

		assert.NotPanics(t, func() { tenant.NewInMemoryCache(0) })
	})
}

func TestNoOpCache(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	c := tenant.NoOpCache{}

	require.NoError(t, c.Set(ctx, "acme", createTestTenant("acme"), time.Hour))
	_, ok := c.Get(ctx, "acme")
	assert.False(t, ok)
	assert.NoError(t, c.Delete(ctx, "acme"))
}
