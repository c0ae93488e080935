package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/pgvector/pgvector-go"
	"github.com/viralforge/creator-match/internal/domain"
	"github.com/viralforge/creator-match/internal/ports"
	"gorm.io/gorm"
)

type CreatorRepository struct {
	db         *gorm.DB
	dimensions int
}

func NewCreatorRepository(db *gorm.DB, dimensions int) *CreatorRepository {
	return &CreatorRepository{db: db, dimensions: dimensions}
}

func (r *CreatorRepository) GetProfile(ctx context.Context, creatorID uuid.UUID) (domain.CreatorProfile, error) {
	var rec creatorModel
	if err := r.db.WithContext(ctx).Where("creator_id = ?", creatorID).Take(&rec).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.CreatorProfile{}, domain.ErrNotFound
		}
		return domain.CreatorProfile{}, err
	}
	return toDomainCreator(rec)
}

func (r *CreatorRepository) ListMissingEmbeddings(ctx context.Context, limit int) ([]uuid.UUID, error) {
	q := r.db.WithContext(ctx).
		Model(&creatorModel{}).
		Where("embedding IS NULL").
		Order("created_at ASC, creator_id ASC")
	if limit > 0 {
		q = q.Limit(limit)
	}
	var ids []uuid.UUID
	if err := q.Pluck("creator_id", &ids).Error; err != nil {
		return nil, err
	}
	return ids, nil
}

func (r *CreatorRepository) SaveEmbedding(ctx context.Context, creatorID uuid.UUID, vector []float32) error {
	if len(vector) != r.dimensions {
		return fmt.Errorf("%w: expected %d dimensions, got %d", domain.ErrInvalidInput, r.dimensions, len(vector))
	}
	res := r.db.WithContext(ctx).
		Model(&creatorModel{}).
		Where("creator_id = ?", creatorID).
		Updates(map[string]any{
			"embedding":  pgvector.NewVector(vector),
			"updated_at": time.Now().UTC(),
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// SearchCandidates runs the filtered ANN query. The halfvec cast keeps
// the expression aligned with the index built in EnsureVectorSchema, so
// the planner can use it. Creator id is the secondary sort key to make
// equal-distance ordering reproducible.
func (r *CreatorRepository) SearchCandidates(ctx context.Context, queryVector []float32, filters domain.SearchFilters, limit int) ([]ports.CandidateRow, error) {
	if len(queryVector) != r.dimensions {
		return nil, fmt.Errorf("%w: expected %d dimensions, got %d", domain.ErrInvalidInput, r.dimensions, len(queryVector))
	}
	distanceExpr := fmt.Sprintf("(embedding::halfvec(%d) <=> ?::halfvec(%d))", r.dimensions, r.dimensions)

	q := r.db.WithContext(ctx).
		Model(&creatorModel{}).
		Select("creators.*, "+distanceExpr+" AS distance", pgvector.NewVector(queryVector)).
		Where("embedding IS NOT NULL")

	if filters.Platform != "" {
		q = q.Where("primary_platform = ?", filters.Platform)
	}
	if filters.Niche != "" {
		q = q.Where("niche = ?", filters.Niche)
	}
	if filters.Tier != "" {
		q = q.Where("tier = ?", filters.Tier)
	}
	if filters.MinFollowers > 0 {
		q = q.Where("followers >= ?", filters.MinFollowers)
	}
	if filters.MaxFollowers > 0 {
		q = q.Where("followers <= ?", filters.MaxFollowers)
	}
	if filters.MinEngagementRate > 0 {
		q = q.Where("engagement_rate >= ?", filters.MinEngagementRate)
	}
	if filters.MaxPrice > 0 {
		q = q.Where("sponsored_post_rate > 0 AND sponsored_post_rate <= ?", filters.MaxPrice)
	}
	if filters.PrimaryAgeGroup != "" {
		q = q.Where("? = ANY(audience_age_groups)", filters.PrimaryAgeGroup)
	}
	if filters.PrimaryGender != "" {
		q = q.Where("audience_top_gender = ?", filters.PrimaryGender)
	}

	var rows []searchRowModel
	if err := q.Order("distance ASC, creator_id ASC").Limit(limit).Find(&rows).Error; err != nil {
		return nil, err
	}

	out := make([]ports.CandidateRow, 0, len(rows))
	for _, row := range rows {
		profile, mapErr := toDomainCreator(row.creatorModel)
		if mapErr != nil {
			return nil, mapErr
		}
		out = append(out, ports.CandidateRow{
			Profile:  profile,
			Distance: row.Distance,
		})
	}
	return out, nil
}
