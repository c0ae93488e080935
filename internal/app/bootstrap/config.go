package bootstrap

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/viralforge/creator-match/internal/domain"
	"gopkg.in/yaml.v3"
)

type Config struct {
	ServiceID string

	DatabaseURL  string
	RedisURL     string
	KafkaBrokers []string

	KafkaTopicRecommendation string

	GeminiAPIKey           string
	EmbeddingModel         string
	EmbeddingDimensions    int
	EmbedRequestsPerMinute int

	MaxDBConns int32

	EmbedDelay           time.Duration
	MaintenanceInterval  time.Duration
	MaintenanceBatchSize int

	DefaultSearchLimit int
	MaxResults         int
	RecommendationTTL  time.Duration

	Weights domain.ScoreWeights
}

type configFile struct {
	Service struct {
		ID string `yaml:"id"`
	} `yaml:"service"`
	Dependencies struct {
		PostgresURL              string   `yaml:"postgres_url"`
		RedisURL                 string   `yaml:"redis_url"`
		KafkaBrokers             []string `yaml:"kafka_brokers"`
		KafkaTopicRecommendation string   `yaml:"kafka_topic_recommendation"`
	} `yaml:"dependencies"`
	Embedding struct {
		Model             string `yaml:"model"`
		Dimensions        int    `yaml:"dimensions"`
		RequestsPerMinute int    `yaml:"requests_per_minute"`
		DelayMillis       int    `yaml:"delay_millis"`
	} `yaml:"embedding"`
	Matching struct {
		SearchLimit            int                 `yaml:"search_limit"`
		MaxResults             int                 `yaml:"max_results"`
		RecommendationTTLSecs  int                 `yaml:"recommendation_ttl_seconds"`
		MaintenanceIntervalSec int                 `yaml:"maintenance_interval_seconds"`
		MaintenanceBatchSize   int                 `yaml:"maintenance_batch_size"`
		Weights                domain.ScoreWeights `yaml:"weights"`
	} `yaml:"matching"`
}

func LoadConfig(path string) (Config, error) {
	cfg := Config{
		ServiceID:                "creator-match",
		EmbeddingModel:           "gemini-embedding-001",
		EmbeddingDimensions:      3072,
		EmbedRequestsPerMinute:   60,
		MaxDBConns:               20,
		EmbedDelay:               500 * time.Millisecond,
		MaintenanceInterval:      5 * time.Minute,
		MaintenanceBatchSize:     200,
		DefaultSearchLimit:       50,
		MaxResults:               10,
		RecommendationTTL:        time.Hour,
		KafkaTopicRecommendation: "matching.recommendation_generated",
		Weights:                  domain.DefaultScoreWeights(),
	}

	raw, err := os.ReadFile(path)
	if err == nil {
		var f configFile
		if unmarshalErr := yaml.Unmarshal(raw, &f); unmarshalErr != nil {
			return Config{}, fmt.Errorf("parse config file: %w", unmarshalErr)
		}
		if f.Service.ID != "" {
			cfg.ServiceID = f.Service.ID
		}
		if f.Dependencies.PostgresURL != "" {
			cfg.DatabaseURL = f.Dependencies.PostgresURL
		}
		if f.Dependencies.RedisURL != "" {
			cfg.RedisURL = f.Dependencies.RedisURL
		}
		if len(f.Dependencies.KafkaBrokers) > 0 {
			cfg.KafkaBrokers = f.Dependencies.KafkaBrokers
		}
		if f.Dependencies.KafkaTopicRecommendation != "" {
			cfg.KafkaTopicRecommendation = f.Dependencies.KafkaTopicRecommendation
		}
		if f.Embedding.Model != "" {
			cfg.EmbeddingModel = f.Embedding.Model
		}
		if f.Embedding.Dimensions > 0 {
			cfg.EmbeddingDimensions = f.Embedding.Dimensions
		}
		if f.Embedding.RequestsPerMinute > 0 {
			cfg.EmbedRequestsPerMinute = f.Embedding.RequestsPerMinute
		}
		if f.Embedding.DelayMillis > 0 {
			cfg.EmbedDelay = time.Duration(f.Embedding.DelayMillis) * time.Millisecond
		}
		if f.Matching.SearchLimit > 0 {
			cfg.DefaultSearchLimit = f.Matching.SearchLimit
		}
		if f.Matching.MaxResults > 0 {
			cfg.MaxResults = f.Matching.MaxResults
		}
		if f.Matching.RecommendationTTLSecs > 0 {
			cfg.RecommendationTTL = time.Duration(f.Matching.RecommendationTTLSecs) * time.Second
		}
		if f.Matching.MaintenanceIntervalSec > 0 {
			cfg.MaintenanceInterval = time.Duration(f.Matching.MaintenanceIntervalSec) * time.Second
		}
		if f.Matching.MaintenanceBatchSize > 0 {
			cfg.MaintenanceBatchSize = f.Matching.MaintenanceBatchSize
		}
		if f.Matching.Weights != (domain.ScoreWeights{}) {
			cfg.Weights = f.Matching.Weights
		}
	}

	applyEnvOverrides(&cfg)

	if cfg.DatabaseURL == "" {
		return Config{}, fmt.Errorf("database url is required (config dependencies.postgres_url or DATABASE_URL)")
	}
	return cfg, nil
}

func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("DATABASE_URL"); v != "" {
		cfg.DatabaseURL = v
	}
	if v := os.Getenv("REDIS_URL"); v != "" {
		cfg.RedisURL = v
	}
	if v := os.Getenv("KAFKA_BROKERS"); v != "" {
		cfg.KafkaBrokers = splitAndTrim(v)
	}
	if v := os.Getenv("GEMINI_API_KEY"); v != "" {
		cfg.GeminiAPIKey = v
	}
	if v := os.Getenv("EMBEDDING_MODEL"); v != "" {
		cfg.EmbeddingModel = v
	}
	if v := os.Getenv("EMBEDDING_DIMENSIONS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.EmbeddingDimensions = n
		}
	}
	if v := os.Getenv("MAX_DB_CONNS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.MaxDBConns = int32(n)
		}
	}
}

func splitAndTrim(v string) []string {
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
