package cache

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countingEmbedder struct {
	calls int
	err   error
}

func (e *countingEmbedder) Embed(ctx context.Context, text string) ([]float32, error) {
	e.calls++
	if e.err != nil {
		return nil, e.err
	}
	return []float32{float32(len(text)), 0.5}, nil
}

func setupTestCache(t *testing.T, next *countingEmbedder) (*EmbeddingCache, *miniredis.Miniredis) {
	mr, err := miniredis.Run()
	require.NoError(t, err)

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() {
		_ = client.Close()
		mr.Close()
	})

	c, err := NewEmbeddingCache(next, client, "text-embedding-004", time.Hour, nil)
	require.NoError(t, err)
	return c, mr
}

func TestNewEmbeddingCacheRequiresDeps(t *testing.T) {
	_, err := NewEmbeddingCache(nil, nil, "m", time.Hour, nil)
	assert.Error(t, err)

	_, err = NewEmbeddingCache(&countingEmbedder{}, nil, "m", time.Hour, nil)
	assert.ErrorContains(t, err, "redis client is required")
}

func TestEmbeddingCacheHit(t *testing.T) {
	next := &countingEmbedder{}
	c, mr := setupTestCache(t, next)
	ctx := context.Background()

	first, err := c.Embed(ctx, "xi măng")
	require.NoError(t, err)
	second, err := c.Embed(ctx, "xi măng")
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, 1, next.calls)
	assert.True(t, mr.Exists(c.Key("xi măng")))
	assert.Equal(t, time.Hour, mr.TTL(c.Key("xi măng")))
}

func TestEmbeddingCacheErrorNotCached(t *testing.T) {
	next := &countingEmbedder{err: errors.New("provider down")}
	c, mr := setupTestCache(t, next)

	_, err := c.Embed(context.Background(), "gạch")
	require.Error(t, err)
	assert.False(t, mr.Exists(c.Key("gạch")))
}

func TestEmbeddingCacheFailsOpen(t *testing.T) {
	next := &countingEmbedder{}
	c, mr := setupTestCache(t, next)
	mr.Close()

	vec, err := c.Embed(context.Background(), "cát vàng")
	require.NoError(t, err)
	assert.NotEmpty(t, vec)
	assert.Equal(t, 1, next.calls)
}

func TestEmbeddingCacheCorruptEntry(t *testing.T) {
	next := &countingEmbedder{}
	c, mr := setupTestCache(t, next)
	require.NoError(t, mr.Set(c.Key("đá 1x2"), "not-json"))

	_, err := c.Embed(context.Background(), "đá 1x2")
	require.NoError(t, err)
	assert.Equal(t, 1, next.calls)
}

func TestEmbeddingCachePurge(t *testing.T) {
	next := &countingEmbedder{}
	c, mr := setupTestCache(t, next)
	ctx := context.Background()
	require.NoError(t, mr.Set("other:key", "keep"))

	for _, text := range []string{"a", "b", "c"} {
		_, err := c.Embed(ctx, text)
		require.NoError(t, err)
	}

	n, err := c.Purge(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, n)
	assert.True(t, mr.Exists("other:key"))
}
