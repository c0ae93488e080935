package application

import (
	"context"
	"fmt"

	"github.com/viralforge/creator-match/internal/domain"
)

// Search embeds the query text and runs the filtered ANN query. Provider
// failures propagate: a failed query has no sensible fallback result and
// synthesizing one would hide the outage.
func (s *Service) Search(ctx context.Context, query string, filters domain.SearchFilters, limit int) ([]domain.Candidate, error) {
	if limit <= 0 {
		limit = s.cfg.DefaultSearchLimit
	}
	vector, err := s.embedder.Embed(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("embed search query: %w", err)
	}
	rows, err := s.searcher.SearchCandidates(ctx, vector, filters, limit)
	if err != nil {
		return nil, fmt.Errorf("search candidates: %w", err)
	}
	candidates := make([]domain.Candidate, 0, len(rows))
	for _, row := range rows {
		candidates = append(candidates, domain.Candidate{
			Creator: row.Profile,
			// Cosine distance is 1 - similarity for normalized vectors,
			// so similarity lands in [-1,1].
			Similarity: 1 - row.Distance,
		})
	}
	return candidates, nil
}
