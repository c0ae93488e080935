package ports

import (
	"context"

	"github.com/google/uuid"
	"github.com/viralforge/creator-match/internal/domain"
)

// CreatorReader exposes the creator read model with joined aggregates.
type CreatorReader interface {
	GetProfile(ctx context.Context, creatorID uuid.UUID) (domain.CreatorProfile, error)
	ListMissingEmbeddings(ctx context.Context, limit int) ([]uuid.UUID, error)
}

// EmbeddingWriter persists the single embedding owned by a creator.
type EmbeddingWriter interface {
	SaveEmbedding(ctx context.Context, creatorID uuid.UUID, vector []float32) error
}

// CandidateRow is one ANN hit: the creator snapshot plus its cosine
// distance from the query vector.
type CandidateRow struct {
	Profile  domain.CreatorProfile
	Distance float64
}

// CandidateSearcher runs the filtered ANN query, ordered by ascending
// cosine distance with creator id as the deterministic tie-break.
type CandidateSearcher interface {
	SearchCandidates(ctx context.Context, queryVector []float32, filters domain.SearchFilters, limit int) ([]CandidateRow, error)
}
