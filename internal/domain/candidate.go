package domain

import "time"

// CostUnknownDisplay is shown when a creator has no published rate. Such
// candidates are never excluded by the budget envelope.
const CostUnknownDisplay = "Contact for pricing"

// SearchFilters are relational predicates applied alongside the ANN
// query. Zero values mean "not applied"; absent filters are omitted, not
// defaulted.
type SearchFilters struct {
	Platform          string  `json:"platform,omitempty"`
	Niche             string  `json:"niche,omitempty"`
	Tier              string  `json:"tier,omitempty"`
	MinFollowers      int64   `json:"min_followers,omitempty"`
	MaxFollowers      int64   `json:"max_followers,omitempty"`
	MinEngagementRate float64 `json:"min_engagement_rate,omitempty"`
	MaxPrice          float64 `json:"max_price,omitempty"`
	PrimaryAgeGroup   string  `json:"primary_age_group,omitempty"`
	PrimaryGender     string  `json:"primary_gender,omitempty"`
}

// ScoreBreakdown holds the weighted contribution of every sub-score. Each
// value is already scaled by its weight; the sum, clamped to [0,1], is the
// campaign fit score.
type ScoreBreakdown struct {
	Similarity        float64 `json:"similarity"`
	Engagement        float64 `json:"engagement"`
	Followers         float64 `json:"followers"`
	Satisfaction      float64 `json:"satisfaction"`
	Experience        float64 `json:"experience"`
	BudgetFit         float64 `json:"budget_fit"`
	AudienceAlignment float64 `json:"audience_alignment"`
	ContentFit        float64 `json:"content_fit"`
	ProductAffinity   float64 `json:"product_affinity"`
	BrandAlignment    float64 `json:"brand_alignment"`
	LocationRelevance float64 `json:"location_relevance"`
}

func (b ScoreBreakdown) Total() float64 {
	return Clamp(0, b.Similarity+b.Engagement+b.Followers+b.Satisfaction+
		b.Experience+b.BudgetFit+b.AudienceAlignment+b.ContentFit+
		b.ProductAffinity+b.BrandAlignment+b.LocationRelevance, 1)
}

// ScoreWeights is the campaign-fit weight table on a [0,1] scale. It is
// explicit configuration rather than constants baked into the scorer.
type ScoreWeights struct {
	Similarity        float64 `yaml:"similarity"`
	Engagement        float64 `yaml:"engagement"`
	Followers         float64 `yaml:"followers"`
	Satisfaction      float64 `yaml:"satisfaction"`
	Experience        float64 `yaml:"experience"`
	BudgetFit         float64 `yaml:"budget_fit"`
	AudienceAlignment float64 `yaml:"audience_alignment"`
	ContentFit        float64 `yaml:"content_fit"`
	ProductAffinity   float64 `yaml:"product_affinity"`
	BrandAlignment    float64 `yaml:"brand_alignment"`
	LocationRelevance float64 `yaml:"location_relevance"`
}

// DefaultScoreWeights sums to 1.0 so the composite score needs no
// rescaling before clamping.
func DefaultScoreWeights() ScoreWeights {
	return ScoreWeights{
		Similarity:        0.25,
		Engagement:        0.15,
		Followers:         0.10,
		Satisfaction:      0.05,
		Experience:        0.05,
		BudgetFit:         0.10,
		AudienceAlignment: 0.10,
		ContentFit:        0.10,
		ProductAffinity:   0.04,
		BrandAlignment:    0.03,
		LocationRelevance: 0.03,
	}
}

// Candidate is the ephemeral per-search record: a creator snapshot with
// raw similarity, enriched by the scorer, consumed by the ranker. Never
// persisted.
type Candidate struct {
	Creator    CreatorProfile `json:"creator"`
	Similarity float64        `json:"similarity"`

	FitScore  float64        `json:"campaign_fit_score"`
	Breakdown ScoreBreakdown `json:"score_breakdown"`

	// EstimatedCost is nil when the creator has no published rate;
	// EstimatedCostDisplay then carries CostUnknownDisplay.
	EstimatedCost        *float64 `json:"estimated_cost,omitempty"`
	EstimatedCostDisplay string   `json:"estimated_cost_display"`

	Reasons []string `json:"recommendation_reasons,omitempty"`
}

// RecommendationResult is the envelope returned by a recommendation pass.
type RecommendationResult struct {
	Recommendations []Candidate   `json:"recommendations"`
	SearchQueryUsed string        `json:"search_query_used"`
	FiltersApplied  SearchFilters `json:"filters_applied"`
	TotalFound      int           `json:"total_found"`
	BudgetFiltered  int           `json:"budget_filtered"`
	ComputedAt      time.Time     `json:"computed_at"`
	CacheHit        bool          `json:"cache_hit"`
}

// MaintenanceReport summarizes one embedding backfill sweep. Failed items
// are counted separately from skips: a skip is an empty serialized
// profile, a failure is a provider or storage error.
type MaintenanceReport struct {
	Attempted int `json:"attempted"`
	Succeeded int `json:"succeeded"`
	Skipped   int `json:"skipped"`
	Failed    int `json:"failed"`
}

func Clamp(min, v, max float64) float64 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
