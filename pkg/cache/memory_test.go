package cache

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemory_SetGetDelete(t *testing.T) {
	ctx := context.Background()
	c := NewMemory()

	require.NoError(t, c.Set(ctx, "arena:settings:all", map[string]string{"currency": "SAR"}, time.Minute))

	var got map[string]string
	require.NoError(t, c.Get(ctx, "arena:settings:all", &got))
	assert.Equal(t, "SAR", got["currency"])

	require.NoError(t, c.Delete(ctx, "arena:settings:all"))
	assert.ErrorIs(t, c.Get(ctx, "arena:settings:all", &got), ErrCacheMiss)
}

func TestMemory_Expiry(t *testing.T) {
	ctx := context.Background()
	c := NewMemory()

	require.NoError(t, c.Set(ctx, "short", 1, 20*time.Millisecond))
	require.NoError(t, c.Set(ctx, "forever", 2, 0))

	assert.Eventually(t, func() bool {
		var v int
		return errors.Is(c.Get(ctx, "short", &v), ErrCacheMiss)
	}, time.Second, 5*time.Millisecond)

	var v int
	require.NoError(t, c.Get(ctx, "forever", &v))
	assert.Equal(t, 2, v)
}

func TestMemory_DeletePattern(t *testing.T) {
	ctx := context.Background()
	c := NewMemory()
	_ = c.Set(ctx, "arena:events:detail:1", 1, 0)
	_ = c.Set(ctx, "arena:events:detail:2", 2, 0)
	_ = c.Set(ctx, "arena:settings:all", 3, 0)

	require.NoError(t, c.DeletePattern(ctx, "arena:events:*"))

	var v int
	assert.ErrorIs(t, c.Get(ctx, "arena:events:detail:1", &v), ErrCacheMiss)
	assert.NoError(t, c.Get(ctx, "arena:settings:all", &v))
}

func TestMemory_GetOrSet(t *testing.T) {
	ctx := context.Background()
	c := NewMemory()
	calls := 0
	fetch := func() (interface{}, error) {
		calls++
		return []string{"a", "b"}, nil
	}

	var got []string
	require.NoError(t, c.GetOrSet(ctx, "k", time.Minute, fetch, &got))
	require.NoError(t, c.GetOrSet(ctx, "k", time.Minute, fetch, &got))

	assert.Equal(t, []string{"a", "b"}, got)
	assert.Equal(t, 1, calls)

	err := c.GetOrSet(ctx, "other", time.Minute, func() (interface{}, error) {
		return nil, errors.New("db down")
	}, &got)
	assert.Error(t, err)
}
