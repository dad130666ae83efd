package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"material-advisor/internal/ai"
	"material-advisor/internal/logger"
	"material-advisor/internal/telemetry"
	"material-advisor/utils"

	"github.com/redis/go-redis/v9"
)

const keyPrefix = "emb:"

// EmbeddingCache memoizes vectors in Redis in front of another Embedder.
// Redis failures are logged and the call falls through to the provider.
type EmbeddingCache struct {
	next    ai.Embedder
	redis   *redis.Client
	model   string
	ttl     time.Duration
	metrics *telemetry.Metrics
}

func NewEmbeddingCache(next ai.Embedder, client *redis.Client, model string, ttl time.Duration, metrics *telemetry.Metrics) (*EmbeddingCache, error) {
	if next == nil {
		return nil, errors.New("embedder is required")
	}
	if client == nil {
		return nil, errors.New("redis client is required")
	}
	return &EmbeddingCache{
		next:    next,
		redis:   client,
		model:   model,
		ttl:     ttl,
		metrics: metrics,
	}, nil
}

// Key is namespaced by model so switching models never serves stale dimensions
func (c *EmbeddingCache) Key(text string) string {
	return keyPrefix + c.model + ":" + utils.HashText(text)
}

func (c *EmbeddingCache) Embed(ctx context.Context, text string) ([]float32, error) {
	key := c.Key(text)

	if vec, ok := c.get(ctx, key); ok {
		c.metrics.RecordEmbeddingCache(true)
		return vec, nil
	}
	c.metrics.RecordEmbeddingCache(false)

	vec, err := c.next.Embed(ctx, text)
	if err != nil {
		return nil, err
	}

	data, err := json.Marshal(vec)
	if err == nil {
		err = c.redis.Set(ctx, key, data, c.ttl).Err()
	}
	if err != nil {
		logger.Warn("Failed to cache embedding", "key", key, "error", err)
	}
	return vec, nil
}

func (c *EmbeddingCache) get(ctx context.Context, key string) ([]float32, bool) {
	data, err := c.redis.Get(ctx, key).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			logger.Warn("Embedding cache read failed", "key", key, "error", err)
		}
		return nil, false
	}

	var vec []float32
	if err := json.Unmarshal(data, &vec); err != nil || len(vec) == 0 {
		logger.Warn("Discarding corrupt cached embedding", "key", key, "error", err)
		return nil, false
	}
	return vec, true
}

// Purge deletes every cached vector for this model
func (c *EmbeddingCache) Purge(ctx context.Context) (int, error) {
	ctx, cancel := utils.WithTimeout(ctx)
	defer cancel()

	var keys []string
	iter := c.redis.Scan(ctx, 0, keyPrefix+c.model+":*", 100).Iterator()
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		return 0, fmt.Errorf("failed to scan embedding cache: %w", err)
	}
	if len(keys) == 0 {
		return 0, nil
	}
	n, err := c.redis.Del(ctx, keys...).Result()
	if err != nil {
		return 0, fmt.Errorf("failed to purge embedding cache: %w", err)
	}
	return int(n), nil
}
