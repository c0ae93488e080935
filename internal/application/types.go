package application

import (
	"context"
	"log/slog"
	"time"

	"github.com/viralforge/creator-match/internal/domain"
	"github.com/viralforge/creator-match/internal/ports"
)

type Config struct {
	ServiceName string

	// EmbedDelay is the fixed pause between consecutive provider calls
	// during maintenance sweeps.
	EmbedDelay           time.Duration
	MaintenanceBatchSize int

	DefaultSearchLimit int
	MaxResults         int

	RecommendationTTL time.Duration
	Weights           domain.ScoreWeights
}

type RecommendOptions struct {
	MaxResults  int
	SearchLimit int
	SkipCache   bool
}

type Service struct {
	cfg    Config
	logger *slog.Logger

	creators   ports.CreatorReader
	embeddings ports.EmbeddingWriter
	searcher   ports.CandidateSearcher
	embedder   ports.EmbeddingClient

	cache     ports.RecommendationCache
	analytics ports.AnalyticsPublisher

	nowFn   func() time.Time
	sleepFn func(ctx context.Context, d time.Duration)
}

type Dependencies struct {
	Config Config
	Logger *slog.Logger

	Creators   ports.CreatorReader
	Embeddings ports.EmbeddingWriter
	Searcher   ports.CandidateSearcher
	Embedder   ports.EmbeddingClient

	Cache     ports.RecommendationCache
	Analytics ports.AnalyticsPublisher
}

func NewService(deps Dependencies) *Service {
	cfg := deps.Config
	if cfg.EmbedDelay <= 0 {
		cfg.EmbedDelay = 500 * time.Millisecond
	}
	if cfg.MaintenanceBatchSize <= 0 {
		cfg.MaintenanceBatchSize = 200
	}
	if cfg.DefaultSearchLimit <= 0 {
		cfg.DefaultSearchLimit = 50
	}
	if cfg.MaxResults <= 0 {
		cfg.MaxResults = 10
	}
	if cfg.Weights == (domain.ScoreWeights{}) {
		cfg.Weights = domain.DefaultScoreWeights()
	}
	logger := deps.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{
		cfg:        cfg,
		logger:     logger,
		creators:   deps.Creators,
		embeddings: deps.Embeddings,
		searcher:   deps.Searcher,
		embedder:   deps.Embedder,
		cache:      deps.Cache,
		analytics:  deps.Analytics,
		nowFn:      func() time.Time { return time.Now().UTC() },
		sleepFn:    sleepContext,
	}
}

func sleepContext(ctx context.Context, d time.Duration) {
	if d <= 0 {
		return
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
	case <-timer.C:
	}
}
