package application

import (
	"fmt"
	"strings"

	"github.com/viralforge/creator-match/internal/domain"
)

// neutralFactor is the contribution used when a sub-score has no evidence
// either way. Only budget fit and brand alignment use it: an unpriced
// creator or an unprofiled brand is insufficient evidence, not negative
// evidence. Every other sub-score contributes zero when data is missing.
const neutralFactor = 0.5

// campaignTypeMultipliers adjust the base sponsored-post rate into an
// estimated campaign cost.
var campaignTypeMultipliers = map[string]float64{
	domain.CampaignTypeBrandAmbassador: 2.5,
	domain.CampaignTypeProductReview:   0.8,
	domain.CampaignTypeEventCoverage:   1.2,
	domain.CampaignTypeCollaboration:   1.5,
}

// ScoreCandidate fills in the weighted fit score, breakdown, estimated
// cost and reasons on a raw search candidate. Pure: no I/O, no shared
// state, safe for concurrent callers.
func (s *Service) ScoreCandidate(candidate domain.Candidate, campaign domain.CampaignDescriptor, brand domain.BrandDescriptor) domain.Candidate {
	w := s.cfg.Weights
	creator := candidate.Creator

	breakdown := domain.ScoreBreakdown{
		Similarity:        normalizeSimilarity(candidate.Similarity) * w.Similarity,
		Engagement:        engagementFactor(creator.EngagementRate) * w.Engagement,
		Followers:         followersFactor(creator.Followers) * w.Followers,
		Satisfaction:      satisfactionFactor(creator.SatisfactionScore) * w.Satisfaction,
		Experience:        experienceFactor(creator.TotalCollaborations) * w.Experience,
		AudienceAlignment: audienceFactor(creator, campaign.Audience) * w.AudienceAlignment,
		ContentFit:        contentFitFactor(creator.ContentTypes, campaign.Requirements.ContentTypes) * w.ContentFit,
		ProductAffinity:   productAffinityFactor(creator, campaign.Product) * w.ProductAffinity,
		BrandAlignment:    brandAlignmentFactor(creator, brand) * w.BrandAlignment,
		LocationRelevance: locationFactor(creator, campaign.Audience.Locations) * w.LocationRelevance,
	}

	rate := creator.RateForPlatform(firstPlatform(campaign))
	breakdown.BudgetFit = budgetFitFactor(rate, campaign.Budget) * w.BudgetFit

	candidate.Breakdown = breakdown
	candidate.FitScore = breakdown.Total()
	candidate.EstimatedCost, candidate.EstimatedCostDisplay = estimateCost(rate, campaign.CampaignType)
	candidate.Reasons = s.recommendationReasons(candidate, creator)
	return candidate
}

// normalizeSimilarity maps raw cosine similarity from [-1,1] to [0,1].
func normalizeSimilarity(s float64) float64 {
	return domain.Clamp(0, (s+1)/2, 1)
}

func engagementFactor(rate float64) float64 {
	switch {
	case rate > 8:
		return 1.0
	case rate > 5:
		return 0.8
	case rate > 3:
		return 0.6
	case rate >= 1.5:
		return 0.4
	default:
		return 0
	}
}

func followersFactor(followers int64) float64 {
	switch {
	case followers > 1_000_000:
		return 1.0
	case followers > 500_000:
		return 0.9
	case followers > 100_000:
		return 0.8
	case followers > 50_000:
		return 0.7
	case followers > 10_000:
		return 0.6
	case followers >= 1_000:
		return 0.4
	default:
		return 0
	}
}

func satisfactionFactor(score float64) float64 {
	return domain.Clamp(0, score/5, 1)
}

func experienceFactor(collaborations int) float64 {
	switch {
	case collaborations > 50:
		return 1.0
	case collaborations > 20:
		return 0.8
	case collaborations > 10:
		return 0.6
	case collaborations > 5:
		return 0.4
	case collaborations > 0:
		return 0.2
	default:
		return 0
	}
}

// budgetFitFactor rewards creators whose rate sits in the 0.7-0.9 sweet
// spot of the campaign budget. It never returns zero for a priced
// creator, and returns the neutral factor when rate or budget is unknown.
func budgetFitFactor(rate, budget float64) float64 {
	if rate <= 0 || budget <= 0 {
		return neutralFactor
	}
	ratio := rate / budget
	switch {
	case ratio >= 0.7 && ratio <= 0.9:
		return 1.0
	case ratio >= 0.5 && ratio <= 1.1:
		return 0.8
	case ratio >= 0.3 && ratio <= 1.3:
		return 0.6
	case ratio <= 1.5:
		return 0.4
	default:
		return 0.2
	}
}

// audienceFactor averages the available overlap components: age-group
// overlap and interest overlap, each in [0,1]. A campaign that states
// neither contributes nothing.
func audienceFactor(creator domain.CreatorProfile, audience domain.TargetAudience) float64 {
	var sum float64
	var parts int
	if len(audience.AgeGroups) > 0 {
		sum += overlapRatio(audience.AgeGroups, creator.AudienceAgeGroups)
		parts++
	}
	if len(audience.Interests) > 0 {
		sum += overlapRatio(audience.Interests, creator.AudienceInterests)
		parts++
	}
	if parts == 0 {
		return 0
	}
	return sum / float64(parts)
}

// overlapRatio is |wanted ∩ have| / |wanted| with case-insensitive
// bidirectional substring matching.
func overlapRatio(wanted, have []string) float64 {
	if len(wanted) == 0 {
		return 0
	}
	matched := 0
	for _, w := range wanted {
		if matchesAny(w, have) {
			matched++
		}
	}
	return float64(matched) / float64(len(wanted))
}

func matchesAny(value string, candidates []string) bool {
	value = strings.ToLower(strings.TrimSpace(value))
	if value == "" {
		return false
	}
	for _, c := range candidates {
		c = strings.ToLower(strings.TrimSpace(c))
		if c == "" {
			continue
		}
		if strings.Contains(c, value) || strings.Contains(value, c) {
			return true
		}
	}
	return false
}

func contentFitFactor(creatorTypes, requiredTypes []string) float64 {
	return overlapRatio(requiredTypes, creatorTypes)
}

// productAffinityFactor matches the product's ideal creator types and
// category against the creator's niche, tier and content types.
func productAffinityFactor(creator domain.CreatorProfile, product *domain.ProductContext) float64 {
	if product == nil {
		return 0
	}
	creatorTraits := append([]string{creator.Niche, creator.Tier}, creator.ContentTypes...)
	var sum float64
	var parts int
	if len(product.IdealCreatorTypes) > 0 {
		sum += overlapRatio(product.IdealCreatorTypes, creatorTraits)
		parts++
	}
	if category := strings.TrimSpace(product.Category); category != "" {
		if nicheForText(category) == creator.Niche && creator.Niche != "" {
			sum += 1.0
		}
		parts++
	}
	if parts == 0 {
		return 0
	}
	return sum / float64(parts)
}

// brandAlignmentFactor is the fraction of the brand's ideal creator
// keywords that appear in the creator's niche, bio or audience interests.
// Neutral when the brand carries no AI-derived overview.
func brandAlignmentFactor(creator domain.CreatorProfile, brand domain.BrandDescriptor) float64 {
	if brand.Overview == nil || len(brand.Overview.IdealCreatorKeywords) == 0 {
		return neutralFactor
	}
	haystack := strings.ToLower(strings.Join(append([]string{creator.Niche, creator.Bio}, creator.AudienceInterests...), " "))
	matched := 0
	for _, keyword := range brand.Overview.IdealCreatorKeywords {
		keyword = strings.ToLower(strings.TrimSpace(keyword))
		if keyword != "" && strings.Contains(haystack, keyword) {
			matched++
		}
	}
	return float64(matched) / float64(len(brand.Overview.IdealCreatorKeywords))
}

func locationFactor(creator domain.CreatorProfile, locations []string) float64 {
	if len(locations) == 0 {
		return 0
	}
	if matchesAny(creator.Location, locations) {
		return 1.0
	}
	return 0
}

func estimateCost(rate float64, campaignType string) (*float64, string) {
	if rate <= 0 {
		return nil, domain.CostUnknownDisplay
	}
	multiplier := 1.0
	if m, ok := campaignTypeMultipliers[campaignType]; ok {
		multiplier = m
	}
	cost := rate * multiplier
	return &cost, fmt.Sprintf("%.2f", cost)
}

func firstPlatform(campaign domain.CampaignDescriptor) string {
	if len(campaign.Requirements.Platforms) > 0 {
		return strings.TrimSpace(campaign.Requirements.Platforms[0])
	}
	return ""
}

// reasonThreshold is the fraction of a sub-score's weight it must reach
// before it earns a human-readable reason.
const reasonThreshold = 0.7

func (s *Service) recommendationReasons(candidate domain.Candidate, creator domain.CreatorProfile) []string {
	w := s.cfg.Weights
	b := candidate.Breakdown

	reasons := make([]string, 0, 6)
	if exceeds(b.Similarity, w.Similarity) {
		reasons = append(reasons, "Profile closely matches the campaign brief")
	}
	if exceeds(b.Engagement, w.Engagement) {
		reasons = append(reasons, fmt.Sprintf("Strong engagement rate (%.1f%%)", creator.EngagementRate))
	}
	if exceeds(b.Followers, w.Followers) {
		reasons = append(reasons, "Large audience reach")
	}
	if exceeds(b.Satisfaction, w.Satisfaction) {
		reasons = append(reasons, "Highly rated by past brand partners")
	}
	if exceeds(b.Experience, w.Experience) {
		reasons = append(reasons, "Extensive collaboration experience")
	}
	if exceeds(b.BudgetFit, w.BudgetFit) && candidate.EstimatedCost != nil {
		reasons = append(reasons, "Rate fits comfortably within the campaign budget")
	}
	if exceeds(b.AudienceAlignment, w.AudienceAlignment) {
		reasons = append(reasons, "Audience demographics align with the campaign target")
	}
	if exceeds(b.ContentFit, w.ContentFit) {
		reasons = append(reasons, "Produces the content formats this campaign requires")
	}
	if exceeds(b.ProductAffinity, w.ProductAffinity) {
		reasons = append(reasons, "Natural fit for the product category")
	}
	if creator.Verified() {
		reasons = append(reasons, "Verified creator account")
	}
	if creator.SatisfactionScore > 4.5 {
		reasons = append(reasons, "Exceptional partner satisfaction record")
	}
	if len(reasons) == 0 {
		reasons = append(reasons, "Potential match based on overall profile")
	}
	return reasons
}

func exceeds(contribution, weight float64) bool {
	return weight > 0 && contribution >= weight*reasonThreshold
}
