package application

import (
	"strings"

	"github.com/viralforge/creator-match/internal/domain"
)

// Budget tier thresholds for follower bounds.
const (
	microBudgetCeiling = 500
	midBudgetCeiling   = 2000

	microMaxFollowers = 50_000
	midMaxFollowers   = 500_000
	largeMinFollowers = 100_000
)

// Engagement floor applied to every search; event coverage needs creators
// who can move an audience in real time, so its floor is higher.
const (
	baseEngagementFloor  = 2.0
	eventEngagementFloor = 3.0
)

// nicheKeyword maps a keyword found in brand or product context to a
// creator niche. Order matters: the first match wins.
type nicheKeyword struct {
	keyword string
	niche   string
}

var nicheKeywords = []nicheKeyword{
	{"tech", domain.NicheTechGaming},
	{"beauty", domain.NicheBeautyFashion},
	{"cosmetic", domain.NicheBeautyFashion},
	{"fitness", domain.NicheFitnessHealth},
	{"health", domain.NicheFitnessHealth},
	{"food", domain.NicheFoodCooking},
	{"beverage", domain.NicheFoodCooking},
	{"travel", domain.NicheLifestyleTravel},
	{"lifestyle", domain.NicheLifestyleTravel},
}

// BuildSearchFilters derives relational predicates from a campaign and
// brand. The mapping is deterministic: same descriptors, same filters.
func BuildSearchFilters(campaign domain.CampaignDescriptor, brand domain.BrandDescriptor) domain.SearchFilters {
	filters := domain.SearchFilters{
		MinEngagementRate: baseEngagementFloor,
	}
	if campaign.CampaignType == domain.CampaignTypeEventCoverage {
		filters.MinEngagementRate = eventEngagementFloor
	}

	if len(campaign.Requirements.Platforms) > 0 {
		filters.Platform = strings.TrimSpace(campaign.Requirements.Platforms[0])
	}

	switch {
	case campaign.Budget <= 0:
		// No budget supplied: no follower bounds.
	case campaign.Budget < microBudgetCeiling:
		filters.Tier = domain.TierMicro
		filters.MaxFollowers = microMaxFollowers
	case campaign.Budget < midBudgetCeiling:
		filters.MaxFollowers = midMaxFollowers
	default:
		filters.MinFollowers = largeMinFollowers
	}

	// Dominant audience values only: the first age group and the stated
	// gender act as primary filters, not an OR-set.
	if len(campaign.Audience.AgeGroups) > 0 {
		filters.PrimaryAgeGroup = strings.TrimSpace(campaign.Audience.AgeGroups[0])
	}
	if gender := strings.TrimSpace(campaign.Audience.Gender); gender != "" {
		filters.PrimaryGender = strings.ToLower(gender)
	}

	filters.Niche = inferNiche(campaign, brand)
	return filters
}

// inferNiche scans product category first, then the AI-derived brand
// overview; product context wins because it is closer to the campaign.
func inferNiche(campaign domain.CampaignDescriptor, brand domain.BrandDescriptor) string {
	if campaign.Product != nil {
		if niche := nicheForText(campaign.Product.Category); niche != "" {
			return niche
		}
	}
	if brand.Overview != nil {
		texts := append([]string{brand.Overview.Summary}, brand.Overview.IdealCreatorKeywords...)
		if niche := nicheForText(strings.Join(texts, " ")); niche != "" {
			return niche
		}
	}
	return ""
}

func nicheForText(text string) string {
	text = strings.ToLower(strings.TrimSpace(text))
	if text == "" {
		return ""
	}
	for _, entry := range nicheKeywords {
		if strings.Contains(text, entry.keyword) {
			return entry.niche
		}
	}
	return ""
}
