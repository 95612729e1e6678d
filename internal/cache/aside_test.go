package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type cachedThing struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

func setupMiniredis(t *testing.T) *miniredis.Miniredis {
	t.Helper()
	mr := miniredis.RunT(t)
	SetClient(redis.NewClient(&redis.Options{Addr: mr.Addr()}))
	t.Cleanup(func() { SetClient(nil) })
	return mr
}

func TestAside_MissThenHit(t *testing.T) {
	setupMiniredis(t)
	ctx := context.Background()

	fetches := 0
	fetch := func(dest *cachedThing) func() error {
		return func() error {
			fetches++
			dest.ID = 7
			dest.Name = "from-db"
			return nil
		}
	}

	var first cachedThing
	require.NoError(t, Aside(ctx, PostKey(7), &first, PostTTL, fetch(&first)))
	assert.Equal(t, 1, fetches)
	assert.Equal(t, "from-db", first.Name)

	var second cachedThing
	require.NoError(t, Aside(ctx, PostKey(7), &second, PostTTL, fetch(&second)))
	assert.Equal(t, 1, fetches, "second read should be served from cache")
	assert.Equal(t, uint(7), second.ID)
}

func TestAside_InvalidateForcesRefetch(t *testing.T) {
	setupMiniredis(t)
	ctx := context.Background()

	fetches := 0
	var thing cachedThing
	fetch := func() error {
		fetches++
		thing.Name = "fresh"
		return nil
	}

	require.NoError(t, Aside(ctx, PostKey(3), &thing, PostTTL, fetch))
	InvalidatePost(ctx, 3)
	require.NoError(t, Aside(ctx, PostKey(3), &thing, PostTTL, fetch))

	assert.Equal(t, 2, fetches)
}

func TestAside_ExpiredEntryRefetches(t *testing.T) {
	mr := setupMiniredis(t)
	ctx := context.Background()

	fetches := 0
	var thing cachedThing
	fetch := func() error {
		fetches++
		return nil
	}

	require.NoError(t, Aside(ctx, PostKey(1), &thing, 1*time.Second, fetch))
	mr.FastForward(2 * time.Second)
	require.NoError(t, Aside(ctx, PostKey(1), &thing, 1*time.Second, fetch))

	assert.Equal(t, 2, fetches)
}

func TestAside_NilClientAlwaysFetches(t *testing.T) {
	SetClient(nil)
	ctx := context.Background()

	fetches := 0
	var thing cachedThing
	fetch := func() error {
		fetches++
		return nil
	}

	require.NoError(t, Aside(ctx, PostKey(9), &thing, PostTTL, fetch))
	require.NoError(t, Aside(ctx, PostKey(9), &thing, PostTTL, fetch))
	assert.Equal(t, 2, fetches)
}
