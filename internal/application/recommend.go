package application

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/viralforge/creator-match/internal/domain"
)

// budgetEnvelope is the tolerance above the campaign budget within which
// a priced creator is still considered affordable.
const budgetEnvelope = 1.2

const eventRecommendationGenerated = "matching.recommendation_generated"

// Recommend runs the full pipeline: filters, hybrid search, scoring,
// budget filtering and ranking. Cache and analytics collaborators are
// optional; a nil collaborator simply disables that behavior.
func (s *Service) Recommend(ctx context.Context, campaign domain.CampaignDescriptor, brand domain.BrandDescriptor, opts RecommendOptions) (domain.RecommendationResult, error) {
	if strings.TrimSpace(campaign.Name) == "" {
		return domain.RecommendationResult{}, fmt.Errorf("%w: campaign name is required", domain.ErrInvalidInput)
	}
	maxResults := opts.MaxResults
	if maxResults <= 0 {
		maxResults = s.cfg.MaxResults
	}
	searchLimit := opts.SearchLimit
	if searchLimit <= 0 {
		searchLimit = s.cfg.DefaultSearchLimit
	}

	cacheKey := requestHash(campaign, brand)
	if s.cache != nil && !opts.SkipCache {
		if cached, err := s.cache.Get(ctx, cacheKey); err == nil && cached != nil {
			result := *cached
			result.CacheHit = true
			result.Recommendations = trimCandidates(result.Recommendations, maxResults)
			return result, nil
		}
	}

	filters := BuildSearchFilters(campaign, brand)
	query := buildSearchQuery(campaign, brand)

	candidates, err := s.Search(ctx, query, filters, searchLimit)
	if err != nil {
		return domain.RecommendationResult{}, fmt.Errorf("recommendation search: %w", err)
	}

	for i := range candidates {
		candidates[i] = s.ScoreCandidate(candidates[i], campaign, brand)
	}

	ranked, budgetFiltered := rankCandidates(candidates, campaign.Budget, maxResults)

	result := domain.RecommendationResult{
		Recommendations: ranked,
		SearchQueryUsed: query,
		FiltersApplied:  filters,
		TotalFound:      len(candidates),
		BudgetFiltered:  budgetFiltered,
		ComputedAt:      s.nowFn(),
	}

	if s.cache != nil && s.cfg.RecommendationTTL > 0 {
		if err := s.cache.Set(ctx, cacheKey, result, s.cfg.RecommendationTTL); err != nil {
			s.logger.WarnContext(ctx, "cache recommendation result", "error", err)
		}
	}
	s.publishRecommendationGenerated(ctx, campaign, brand, result)
	return result, nil
}

// rankCandidates sorts descending by fit score with creator id as the
// deterministic tie-break, drops candidates whose known cost exceeds the
// budget envelope, and truncates. Unpriced candidates always pass the
// budget filter.
func rankCandidates(candidates []domain.Candidate, budget float64, maxResults int) ([]domain.Candidate, int) {
	kept := make([]domain.Candidate, 0, len(candidates))
	for _, c := range candidates {
		if budget > 0 && c.EstimatedCost != nil && *c.EstimatedCost > budget*budgetEnvelope {
			continue
		}
		kept = append(kept, c)
	}
	filtered := len(candidates) - len(kept)

	sort.SliceStable(kept, func(i, j int) bool {
		if kept[i].FitScore != kept[j].FitScore {
			return kept[i].FitScore > kept[j].FitScore
		}
		return kept[i].Creator.CreatorID.String() < kept[j].Creator.CreatorID.String()
	})
	return trimCandidates(kept, maxResults), filtered
}

func trimCandidates(in []domain.Candidate, limit int) []domain.Candidate {
	if limit <= 0 || len(in) <= limit {
		out := make([]domain.Candidate, len(in))
		copy(out, in)
		return out
	}
	out := make([]domain.Candidate, limit)
	copy(out, in[:limit])
	return out
}

// buildSearchQuery assembles the free-text query that gets embedded for
// the campaign. It mixes campaign intent with brand context so the ANN
// side of the hybrid search sees the same signals a human brief would.
func buildSearchQuery(campaign domain.CampaignDescriptor, brand domain.BrandDescriptor) string {
	parts := make([]string, 0, 8)
	appendPart := func(label, value string) {
		if value = strings.TrimSpace(value); value != "" {
			parts = append(parts, label+": "+value)
		}
	}
	appendPart("Campaign", campaign.Name)
	appendPart("Type", campaign.CampaignType)
	appendPart("Description", campaign.Description)
	appendPart("Objectives", strings.Join(campaign.Objectives, ", "))
	appendPart("Target interests", strings.Join(campaign.Audience.Interests, ", "))
	if campaign.Product != nil {
		appendPart("Product category", campaign.Product.Category)
		appendPart("Ideal creators", strings.Join(campaign.Product.IdealCreatorTypes, ", "))
	}
	appendPart("Brand", brand.Name)
	appendPart("Industry", brand.Industry)
	appendPart("Brand values", strings.Join(brand.Values, ", "))
	if brand.Overview != nil {
		appendPart("Creator keywords", strings.Join(brand.Overview.IdealCreatorKeywords, ", "))
	}
	return strings.Join(parts, " | ")
}

func (s *Service) publishRecommendationGenerated(ctx context.Context, campaign domain.CampaignDescriptor, brand domain.BrandDescriptor, result domain.RecommendationResult) {
	if s.analytics == nil {
		return
	}
	payload, err := json.Marshal(map[string]any{
		"campaign_name":   campaign.Name,
		"campaign_type":   campaign.CampaignType,
		"brand_name":      brand.Name,
		"total_found":     result.TotalFound,
		"budget_filtered": result.BudgetFiltered,
		"returned":        len(result.Recommendations),
		"computed_at":     result.ComputedAt,
	})
	if err != nil {
		return
	}
	if err := s.analytics.Publish(ctx, eventRecommendationGenerated, payload, campaign.Name); err != nil {
		s.logger.WarnContext(ctx, "publish recommendation analytics", "error", err)
	}
}

func requestHash(campaign domain.CampaignDescriptor, brand domain.BrandDescriptor) string {
	blob, err := json.Marshal(struct {
		Campaign domain.CampaignDescriptor `json:"campaign"`
		Brand    domain.BrandDescriptor    `json:"brand"`
	}{campaign, brand})
	if err != nil {
		return campaign.Name
	}
	sum := sha256.Sum256(blob)
	return hex.EncodeToString(sum[:])
}
