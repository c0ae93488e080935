package bootstrap

import (
	"context"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	cacheadapter "github.com/viralforge/creator-match/internal/adapters/cache"
	eventadapter "github.com/viralforge/creator-match/internal/adapters/events"
	"github.com/viralforge/creator-match/internal/adapters/gemini"
	"github.com/viralforge/creator-match/internal/adapters/postgres"
	"github.com/viralforge/creator-match/internal/application"
	"github.com/viralforge/creator-match/internal/ports"
)

// Runtime wires the matching engine for the maintenance worker: vector
// schema bootstrap plus the periodic embedding backfill. The engine
// itself is consumed in-process by the campaign-management layer through
// Service.
type Runtime struct {
	cfg     Config
	logger  *slog.Logger
	service *application.Service
	closers []io.Closer

	cleanupFn func()
}

func NewRuntime(ctx context.Context, configPath string) (*Runtime, error) {
	cfg, err := LoadConfig(configPath)
	if err != nil {
		return nil, err
	}
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo})).With("service", cfg.ServiceID)
	slog.SetDefault(logger)

	db, err := postgres.Connect(ctx, cfg.DatabaseURL, cfg.MaxDBConns)
	if err != nil {
		return nil, err
	}
	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}

	schemaCfg := postgres.DefaultVectorSchemaConfig()
	schemaCfg.Dimensions = cfg.EmbeddingDimensions
	if err := postgres.EnsureVectorSchema(ctx, db, schemaCfg); err != nil {
		_ = sqlDB.Close()
		return nil, err
	}

	embedder, err := gemini.NewClient(ctx, gemini.ClientConfig{
		APIKey:            cfg.GeminiAPIKey,
		Model:             cfg.EmbeddingModel,
		Dimensions:        cfg.EmbeddingDimensions,
		RequestsPerMinute: cfg.EmbedRequestsPerMinute,
	})
	if err != nil {
		_ = sqlDB.Close()
		return nil, err
	}

	var closers []io.Closer

	var recCache ports.RecommendationCache
	if cfg.RedisURL != "" {
		redisClient, redisErr := cacheadapter.Connect(ctx, cfg.RedisURL)
		if redisErr != nil {
			_ = sqlDB.Close()
			return nil, redisErr
		}
		recCache = cacheadapter.NewRedisRecommendationCache(redisClient)
		closers = append(closers, redisClient)
	}

	publisher := ports.AnalyticsPublisher(eventadapter.NewLoggingPublisher(logger))
	if len(cfg.KafkaBrokers) > 0 {
		kafkaPublisher, pubErr := eventadapter.NewKafkaPublisher(cfg.KafkaBrokers, map[string]string{
			"matching.recommendation_generated": cfg.KafkaTopicRecommendation,
		})
		if pubErr != nil {
			logger.WarnContext(ctx, "kafka publisher disabled, using logging publisher", "error", pubErr)
		} else {
			publisher = kafkaPublisher
			closers = append(closers, kafkaPublisher)
		}
	}

	repo := postgres.NewCreatorRepository(db, cfg.EmbeddingDimensions)
	service := application.NewService(application.Dependencies{
		Config: application.Config{
			ServiceName:          cfg.ServiceID,
			EmbedDelay:           cfg.EmbedDelay,
			MaintenanceBatchSize: cfg.MaintenanceBatchSize,
			DefaultSearchLimit:   cfg.DefaultSearchLimit,
			MaxResults:           cfg.MaxResults,
			RecommendationTTL:    cfg.RecommendationTTL,
			Weights:              cfg.Weights,
		},
		Logger:     logger,
		Creators:   repo,
		Embeddings: repo,
		Searcher:   repo,
		Embedder:   embedder,
		Cache:      recCache,
		Analytics:  publisher,
	})

	return &Runtime{
		cfg:     cfg,
		logger:  logger,
		service: service,
		closers: closers,
		cleanupFn: func() {
			for _, closer := range closers {
				_ = closer.Close()
			}
			_ = sqlDB.Close()
		},
	}, nil
}

// Service exposes the wired matching engine for in-process callers.
func (r *Runtime) Service() *application.Service { return r.service }

// RunWorker runs the periodic embedding maintenance sweep until the
// process receives an interrupt.
func (r *Runtime) RunWorker(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()
	defer r.cleanupFn()

	r.logger.InfoContext(ctx, "embedding maintenance worker started",
		"interval", r.cfg.MaintenanceInterval.String(),
		"batch_size", r.cfg.MaintenanceBatchSize,
	)

	ticker := time.NewTicker(r.cfg.MaintenanceInterval)
	defer ticker.Stop()

	for {
		if _, err := r.service.MaintainEmbeddings(ctx); err != nil && ctx.Err() == nil {
			r.logger.ErrorContext(ctx, "embedding maintenance sweep failed", "error", err)
		}
		select {
		case <-ctx.Done():
			r.logger.InfoContext(context.Background(), "embedding maintenance worker stopping")
			return nil
		case <-ticker.C:
		}
	}
}
