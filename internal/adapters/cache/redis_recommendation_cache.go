package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/viralforge/creator-match/internal/domain"
)

const recommendationKeyPrefix = "match:rec:"

// RedisRecommendationCache stores recent recommendation envelopes so a
// repeated campaign/brand request within the TTL skips the embedding and
// scoring pass.
type RedisRecommendationCache struct {
	client *redis.Client
}

func NewRedisRecommendationCache(client *redis.Client) *RedisRecommendationCache {
	return &RedisRecommendationCache{client: client}
}

func (c *RedisRecommendationCache) Get(ctx context.Context, key string) (*domain.RecommendationResult, error) {
	raw, err := c.client.Get(ctx, recommendationKeyPrefix+key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, err
	}
	var result domain.RecommendationResult
	if err := json.Unmarshal(raw, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *RedisRecommendationCache) Set(ctx context.Context, key string, result domain.RecommendationResult, ttl time.Duration) error {
	raw, err := json.Marshal(result)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, recommendationKeyPrefix+key, raw, ttl).Err()
}
