package postgres

import (
	"encoding/json"
	"fmt"

	"github.com/viralforge/creator-match/internal/domain"
)

func toDomainCreator(rec creatorModel) (domain.CreatorProfile, error) {
	profile := domain.CreatorProfile{
		CreatorID:           rec.CreatorID,
		DisplayName:         rec.DisplayName,
		Bio:                 rec.Bio,
		Niche:               rec.Niche,
		Tier:                rec.Tier,
		PrimaryPlatform:     rec.PrimaryPlatform,
		Platforms:           rec.Platforms,
		ContentTypes:        rec.ContentTypes,
		Languages:           rec.Languages,
		Location:            rec.Location,
		VerificationStatus:  rec.VerificationStatus,
		Followers:           rec.Followers,
		EngagementRate:      rec.EngagementRate,
		AvgViews:            rec.AvgViews,
		SponsoredPostRate:   rec.SponsoredPostRate,
		AudienceInterests:   rec.AudienceInterests,
		AudienceAgeGroups:   rec.AudienceAgeGroups,
		AudienceTopGender:   rec.AudienceTopGender,
		PastBrands:          rec.PastBrands,
		SatisfactionScore:   rec.SatisfactionScore,
		TotalCollaborations: rec.TotalCollaborations,
		MemberSince:         rec.MemberSince,
		LastActiveAt:        rec.LastActiveAt,
		CreatedAt:           rec.CreatedAt,
		UpdatedAt:           rec.UpdatedAt,
	}
	if len(rec.Pricing) > 0 {
		var pricing map[string]domain.PlatformPricing
		if err := json.Unmarshal(rec.Pricing, &pricing); err != nil {
			return domain.CreatorProfile{}, fmt.Errorf("%w: decode pricing for creator %s: %v", domain.ErrData, rec.CreatorID, err)
		}
		profile.Pricing = pricing
	}
	return profile, nil
}
