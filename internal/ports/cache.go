package ports

import (
	"context"
	"time"

	"github.com/viralforge/creator-match/internal/domain"
)

// RecommendationCache stores recent recommendation envelopes keyed by a
// campaign/brand request hash. Get returns (nil, nil) on miss.
type RecommendationCache interface {
	Get(ctx context.Context, key string) (*domain.RecommendationResult, error)
	Set(ctx context.Context, key string, result domain.RecommendationResult, ttl time.Duration) error
}
