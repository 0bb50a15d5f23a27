package repository

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"face-quiz/internal/domain"
)

// ResultCache cachea lecturas por id. Es best-effort: cualquier fallo de
// redis se trata como cache miss y no interrumpe el flujo.
type ResultCache interface {
	Get(ctx context.Context, id string) (domain.TestResult, bool)
	Set(ctx context.Context, result domain.TestResult)
}

type redisGetSetter interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
}

type redisResultCache struct {
	client redisGetSetter
	ttl    time.Duration
	prefix string
}

func NewRedisResultCache(client *redis.Client, ttl time.Duration) ResultCache {
	if client == nil {
		return nil
	}
	if ttl <= 0 {
		ttl = 10 * time.Minute
	}
	return &redisResultCache{
		client: client,
		ttl:    ttl,
		prefix: "result:",
	}
}

func (c *redisResultCache) Get(ctx context.Context, id string) (domain.TestResult, bool) {
	if c == nil || c.client == nil || id == "" {
		return domain.TestResult{}, false
	}

	ctx, cancel := context.WithTimeout(ctx, 500*time.Millisecond)
	defer cancel()

	raw, err := c.client.Get(ctx, c.prefix+id).Bytes()
	if err != nil {
		return domain.TestResult{}, false
	}

	var result domain.TestResult
	if err := json.Unmarshal(raw, &result); err != nil {
		return domain.TestResult{}, false
	}
	return result, true
}

func (c *redisResultCache) Set(ctx context.Context, result domain.TestResult) {
	if c == nil || c.client == nil || result.ID == "" {
		return
	}

	raw, err := json.Marshal(result)
	if err != nil {
		return
	}

	ctx, cancel := context.WithTimeout(ctx, 500*time.Millisecond)
	defer cancel()
	c.client.Set(ctx, c.prefix+result.ID, raw, c.ttl)
}
