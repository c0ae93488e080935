package domain

import (
	"time"

	"github.com/google/uuid"
)

const (
	TierMicro = "micro"
	TierMid   = "mid"
	TierMacro = "macro"
	TierMega  = "mega"
)

const (
	NicheTechGaming      = "tech_gaming"
	NicheBeautyFashion   = "beauty_fashion"
	NicheFitnessHealth   = "fitness_health"
	NicheFoodCooking     = "food_cooking"
	NicheLifestyleTravel = "lifestyle_travel"
)

const VerificationVerified = "verified"

// PlatformPricing is a creator's rate card for one platform, in the
// creator's listing currency.
type PlatformPricing struct {
	SponsoredPost float64 `json:"sponsored_post,omitempty"`
	Story         float64 `json:"story,omitempty"`
	Video         float64 `json:"video,omitempty"`
}

// CreatorProfile is the read model consumed by the matching engine. It is
// the creator row plus joined aggregates (audience interests, past brand
// names) and is never written back except for the embedding column.
type CreatorProfile struct {
	CreatorID       uuid.UUID
	DisplayName     string
	Bio             string
	Niche           string
	Tier            string
	PrimaryPlatform string
	Platforms       []string
	ContentTypes    []string
	Languages       []string
	Location        string

	VerificationStatus string

	Followers      int64
	EngagementRate float64
	AvgViews       int64

	// SponsoredPostRate mirrors Pricing[PrimaryPlatform].SponsoredPost,
	// denormalized so relational filters can compare against a plain
	// numeric column. Zero means the creator has not published a rate.
	SponsoredPostRate float64
	Pricing           map[string]PlatformPricing

	AudienceInterests []string
	AudienceAgeGroups []string
	AudienceTopGender string
	PastBrands        []string

	SatisfactionScore   float64
	TotalCollaborations int

	// MemberSince and LastActiveAt come from upstream ingest as raw
	// strings in assorted formats; the serializer normalizes them.
	MemberSince  string
	LastActiveAt string

	CreatedAt time.Time
	UpdatedAt time.Time
}

func (p CreatorProfile) Verified() bool {
	return p.VerificationStatus == VerificationVerified
}

// RateForPlatform returns the sponsored-post rate for a platform, falling
// back to the denormalized primary-platform rate. Zero means unknown.
func (p CreatorProfile) RateForPlatform(platform string) float64 {
	if platform != "" {
		if pricing, ok := p.Pricing[platform]; ok && pricing.SponsoredPost > 0 {
			return pricing.SponsoredPost
		}
	}
	if pricing, ok := p.Pricing[p.PrimaryPlatform]; ok && pricing.SponsoredPost > 0 {
		return pricing.SponsoredPost
	}
	return p.SponsoredPostRate
}
