package domain

const (
	CampaignTypeSponsoredPost   = "sponsored_post"
	CampaignTypeBrandAmbassador = "brand_ambassador"
	CampaignTypeProductReview   = "product_review"
	CampaignTypeEventCoverage   = "event_coverage"
	CampaignTypeCollaboration   = "collaboration"
)

// TargetAudience describes who a campaign wants to reach.
type TargetAudience struct {
	AgeGroups []string `json:"age_groups,omitempty"`
	Interests []string `json:"interests,omitempty"`
	Gender    string   `json:"gender,omitempty"`
	Locations []string `json:"locations,omitempty"`
}

// CampaignRequirements lists the deliverables a campaign expects.
type CampaignRequirements struct {
	Platforms    []string `json:"platforms,omitempty"`
	ContentTypes []string `json:"content_types,omitempty"`
}

// ProductContext carries optional product detail attached to a campaign.
type ProductContext struct {
	Category          string   `json:"category,omitempty"`
	IdealCreatorTypes []string `json:"ideal_creator_types,omitempty"`
	TargetAudience    string   `json:"target_audience,omitempty"`
}

// CampaignDescriptor is supplied by the campaign-management layer and is
// immutable for the duration of a scoring pass.
type CampaignDescriptor struct {
	Name         string               `json:"name"`
	CampaignType string               `json:"campaign_type,omitempty"`
	Description  string               `json:"description,omitempty"`
	Objectives   []string             `json:"objectives,omitempty"`
	Budget       float64              `json:"budget,omitempty"`
	Currency     string               `json:"currency,omitempty"`
	Audience     TargetAudience       `json:"target_audience,omitempty"`
	Requirements CampaignRequirements `json:"requirements,omitempty"`
	Product      *ProductContext      `json:"product,omitempty"`
}

// BrandOverview is AI-derived brand context produced upstream.
type BrandOverview struct {
	Summary              string   `json:"summary,omitempty"`
	IdealCreatorKeywords []string `json:"ideal_creator_keywords,omitempty"`
}

// BrandDescriptor is supplied by the campaign-management layer.
type BrandDescriptor struct {
	Name     string         `json:"name"`
	Industry string         `json:"industry,omitempty"`
	Values   []string       `json:"values,omitempty"`
	Overview *BrandOverview `json:"overview,omitempty"`
}
