package postgres

import (
	"context"
	"fmt"
	"strings"

	"github.com/viralforge/creator-match/internal/domain"
	"gorm.io/gorm"
)

// VectorSchemaConfig pins down the column and ANN index the matching
// engine depends on. pgvector's plain-vector HNSW tops out at 2000
// dimensions, so the index is built over a halfvec expression.
type VectorSchemaConfig struct {
	Table      string
	Column     string
	IndexName  string
	Dimensions int
}

func DefaultVectorSchemaConfig() VectorSchemaConfig {
	return VectorSchemaConfig{
		Table:      "creators",
		Column:     "embedding",
		IndexName:  "creators_embedding_hnsw_idx",
		Dimensions: 3072,
	}
}

// EnsureVectorSchema makes the embedding column and its HNSW index exist
// with the configured shape. Idempotent: once correct, repeated runs are
// no-ops. A misconfigured index (wrong method or operator class) is
// dropped and recreated. This is the only place allowed to mutate the
// index definition; failures wrap domain.ErrSchema and callers treat
// them as fatal.
func EnsureVectorSchema(ctx context.Context, db *gorm.DB, cfg VectorSchemaConfig) error {
	if cfg.Dimensions <= 0 {
		return fmt.Errorf("%w: dimensions must be positive", domain.ErrSchema)
	}

	if err := db.WithContext(ctx).Exec("CREATE EXTENSION IF NOT EXISTS vector").Error; err != nil {
		return fmt.Errorf("%w: create vector extension: %v", domain.ErrSchema, err)
	}

	addColumn := fmt.Sprintf(
		"ALTER TABLE %s ADD COLUMN IF NOT EXISTS %s vector(%d)",
		cfg.Table, cfg.Column, cfg.Dimensions,
	)
	if err := db.WithContext(ctx).Exec(addColumn).Error; err != nil {
		return fmt.Errorf("%w: ensure embedding column: %v", domain.ErrSchema, err)
	}

	var indexDef string
	err := db.WithContext(ctx).
		Raw("SELECT indexdef FROM pg_indexes WHERE schemaname = current_schema() AND tablename = ? AND indexname = ?",
			cfg.Table, cfg.IndexName).
		Scan(&indexDef).Error
	if err != nil {
		return fmt.Errorf("%w: inspect ann index: %v", domain.ErrSchema, err)
	}

	if indexDef != "" && !indexNeedsRebuild(indexDef) {
		return nil
	}
	if indexDef != "" {
		if err := db.WithContext(ctx).Exec(fmt.Sprintf("DROP INDEX %s", cfg.IndexName)).Error; err != nil {
			return fmt.Errorf("%w: drop misconfigured ann index: %v", domain.ErrSchema, err)
		}
	}

	createIndex := fmt.Sprintf(
		"CREATE INDEX %s ON %s USING hnsw ((%s::halfvec(%d)) halfvec_cosine_ops)",
		cfg.IndexName, cfg.Table, cfg.Column, cfg.Dimensions,
	)
	if err := db.WithContext(ctx).Exec(createIndex).Error; err != nil {
		return fmt.Errorf("%w: create ann index: %v", domain.ErrSchema, err)
	}
	return nil
}

// indexNeedsRebuild reports whether an existing index definition deviates
// from the required algorithm/operator-class pair.
func indexNeedsRebuild(indexDef string) bool {
	def := strings.ToLower(indexDef)
	return !strings.Contains(def, "using hnsw") || !strings.Contains(def, "halfvec_cosine_ops")
}
