package application

import (
	"math"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/viralforge/creator-match/internal/domain"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestNormalizeSimilarityEndpoints(t *testing.T) {
	t.Parallel()
	if got := normalizeSimilarity(-1); !almostEqual(got, 0) {
		t.Fatalf("normalizeSimilarity(-1) = %v, want 0", got)
	}
	if got := normalizeSimilarity(0); !almostEqual(got, 0.5) {
		t.Fatalf("normalizeSimilarity(0) = %v, want 0.5", got)
	}
	if got := normalizeSimilarity(1); !almostEqual(got, 1) {
		t.Fatalf("normalizeSimilarity(1) = %v, want 1", got)
	}
}

func TestEngagementFactorBoundaries(t *testing.T) {
	t.Parallel()
	// The upper threshold is exclusive: exactly 8.0 lands in the >5 tier.
	if got := engagementFactor(8.0); !almostEqual(got, 0.8) {
		t.Fatalf("engagementFactor(8.0) = %v, want 0.8", got)
	}
	if got := engagementFactor(8.01); !almostEqual(got, 1.0) {
		t.Fatalf("engagementFactor(8.01) = %v, want 1.0", got)
	}
	if got := engagementFactor(1.5); !almostEqual(got, 0.4) {
		t.Fatalf("engagementFactor(1.5) = %v, want 0.4", got)
	}
	if got := engagementFactor(1.4); !almostEqual(got, 0) {
		t.Fatalf("engagementFactor(1.4) = %v, want 0", got)
	}
}

func TestFollowersFactorTiers(t *testing.T) {
	t.Parallel()
	cases := []struct {
		followers int64
		want      float64
	}{
		{2_000_000, 1.0},
		{600_000, 0.9},
		{150_000, 0.8},
		{60_000, 0.7},
		{20_000, 0.6},
		{1_000, 0.4},
		{500, 0},
	}
	for _, tc := range cases {
		if got := followersFactor(tc.followers); !almostEqual(got, tc.want) {
			t.Fatalf("followersFactor(%d) = %v, want %v", tc.followers, got, tc.want)
		}
	}
}

func TestExperienceFactorTiers(t *testing.T) {
	t.Parallel()
	cases := []struct {
		collaborations int
		want           float64
	}{
		{60, 1.0},
		{25, 0.8},
		{11, 0.6},
		{6, 0.4},
		{1, 0.2},
		{0, 0},
	}
	for _, tc := range cases {
		if got := experienceFactor(tc.collaborations); !almostEqual(got, tc.want) {
			t.Fatalf("experienceFactor(%d) = %v, want %v", tc.collaborations, got, tc.want)
		}
	}
}

func TestBudgetFitSweetSpot(t *testing.T) {
	t.Parallel()
	// 2500 / 3000 ≈ 0.83, inside the 0.7-0.9 sweet spot.
	if got := budgetFitFactor(2500, 3000); !almostEqual(got, 1.0) {
		t.Fatalf("budgetFitFactor(2500, 3000) = %v, want full weight", got)
	}
	if got := budgetFitFactor(3000, 3000); !almostEqual(got, 0.8) {
		t.Fatalf("ratio 1.0 should land in the 0.5-1.1 band, got %v", got)
	}
	if got := budgetFitFactor(3900, 3000); !almostEqual(got, 0.6) {
		t.Fatalf("ratio 1.3 should land in the 0.3-1.3 band, got %v", got)
	}
	if got := budgetFitFactor(4500, 3000); !almostEqual(got, 0.4) {
		t.Fatalf("ratio 1.5 should land in the <=1.5 band, got %v", got)
	}
	// Way over budget still scores, never zero.
	if got := budgetFitFactor(30000, 3000); !almostEqual(got, 0.2) {
		t.Fatalf("extreme ratio should score 0.2, got %v", got)
	}
	// Unknown rate or budget is neutral evidence.
	if got := budgetFitFactor(0, 3000); !almostEqual(got, neutralFactor) {
		t.Fatalf("unpriced creator should be neutral, got %v", got)
	}
	if got := budgetFitFactor(2500, 0); !almostEqual(got, neutralFactor) {
		t.Fatalf("missing budget should be neutral, got %v", got)
	}
}

func TestScoreCandidateBreakdownAndBounds(t *testing.T) {
	t.Parallel()
	svc := newTestService(Dependencies{})
	creator := domain.CreatorProfile{
		CreatorID:           mustUUID(t, "3f1a0a50-9d5b-4ad5-91f9-1d4f0aa00001"),
		DisplayName:         "Maya",
		Niche:               domain.NicheTechGaming,
		Tier:                domain.TierMid,
		PrimaryPlatform:     "youtube",
		ContentTypes:        []string{"video review", "shorts"},
		Followers:           600_000,
		EngagementRate:      6.2,
		SatisfactionScore:   4.8,
		TotalCollaborations: 30,
		VerificationStatus:  domain.VerificationVerified,
		Pricing:             map[string]domain.PlatformPricing{"youtube": {SponsoredPost: 2500}},
		AudienceAgeGroups:   []string{"18-24", "25-34"},
		AudienceInterests:   []string{"gaming", "hardware"},
	}
	campaign := domain.CampaignDescriptor{
		Name:   "Launch",
		Budget: 3000,
		Requirements: domain.CampaignRequirements{
			Platforms:    []string{"youtube"},
			ContentTypes: []string{"review"},
		},
		Audience: domain.TargetAudience{
			AgeGroups: []string{"18-24"},
			Interests: []string{"gaming"},
		},
	}

	scored := svc.ScoreCandidate(domain.Candidate{Creator: creator, Similarity: 0.6}, campaign, domain.BrandDescriptor{})

	if scored.FitScore <= 0 || scored.FitScore > 1 {
		t.Fatalf("fit score out of bounds: %v", scored.FitScore)
	}
	w := domain.DefaultScoreWeights()
	if !almostEqual(scored.Breakdown.Similarity, 0.8*w.Similarity) {
		t.Fatalf("similarity contribution = %v, want %v", scored.Breakdown.Similarity, 0.8*w.Similarity)
	}
	if !almostEqual(scored.Breakdown.BudgetFit, w.BudgetFit) {
		t.Fatalf("budget fit should be full weight in the sweet spot, got %v", scored.Breakdown.BudgetFit)
	}
	if !almostEqual(scored.Breakdown.ContentFit, w.ContentFit) {
		t.Fatalf("content fit should be full weight for a matched type, got %v", scored.Breakdown.ContentFit)
	}
	if !almostEqual(scored.Breakdown.AudienceAlignment, w.AudienceAlignment) {
		t.Fatalf("audience alignment should be full weight, got %v", scored.Breakdown.AudienceAlignment)
	}
	// No brand overview supplied: brand alignment stays neutral.
	if !almostEqual(scored.Breakdown.BrandAlignment, neutralFactor*w.BrandAlignment) {
		t.Fatalf("brand alignment should be neutral without an overview, got %v", scored.Breakdown.BrandAlignment)
	}
	if scored.EstimatedCost == nil || !almostEqual(*scored.EstimatedCost, 2500) {
		t.Fatalf("estimated cost = %v, want 2500 for default campaign type", scored.EstimatedCost)
	}
}

func TestScoreCandidateMissingDataContributesZero(t *testing.T) {
	t.Parallel()
	svc := newTestService(Dependencies{})
	bare := domain.Candidate{Creator: domain.CreatorProfile{DisplayName: "Bare"}, Similarity: 0}
	scored := svc.ScoreCandidate(bare, domain.CampaignDescriptor{Name: "c"}, domain.BrandDescriptor{})

	w := domain.DefaultScoreWeights()
	if !almostEqual(scored.Breakdown.Engagement, 0) ||
		!almostEqual(scored.Breakdown.Followers, 0) ||
		!almostEqual(scored.Breakdown.AudienceAlignment, 0) ||
		!almostEqual(scored.Breakdown.ContentFit, 0) ||
		!almostEqual(scored.Breakdown.ProductAffinity, 0) {
		t.Fatalf("missing data should contribute zero, got %+v", scored.Breakdown)
	}
	if !almostEqual(scored.Breakdown.BudgetFit, neutralFactor*w.BudgetFit) {
		t.Fatalf("budget fit should default to neutral, got %v", scored.Breakdown.BudgetFit)
	}
	if !almostEqual(scored.Breakdown.BrandAlignment, neutralFactor*w.BrandAlignment) {
		t.Fatalf("brand alignment should default to neutral, got %v", scored.Breakdown.BrandAlignment)
	}
}

func TestEstimateCostMultipliers(t *testing.T) {
	t.Parallel()
	cases := []struct {
		campaignType string
		want         float64
	}{
		{domain.CampaignTypeBrandAmbassador, 2500},
		{domain.CampaignTypeProductReview, 800},
		{domain.CampaignTypeEventCoverage, 1200},
		{domain.CampaignTypeCollaboration, 1500},
		{domain.CampaignTypeSponsoredPost, 1000},
		{"", 1000},
	}
	for _, tc := range cases {
		cost, display := estimateCost(1000, tc.campaignType)
		if cost == nil || !almostEqual(*cost, tc.want) {
			t.Fatalf("estimateCost(1000, %q) = %v, want %v", tc.campaignType, cost, tc.want)
		}
		if display == domain.CostUnknownDisplay {
			t.Fatalf("priced creator should not display %q", domain.CostUnknownDisplay)
		}
	}
	cost, display := estimateCost(0, domain.CampaignTypeCollaboration)
	if cost != nil || display != domain.CostUnknownDisplay {
		t.Fatalf("unknown rate should yield nil cost and %q, got %v %q", domain.CostUnknownDisplay, cost, display)
	}
}

func TestVerifiedReasonBonus(t *testing.T) {
	t.Parallel()
	svc := newTestService(Dependencies{})
	campaign := domain.CampaignDescriptor{Name: "c", Budget: 3000}

	base := testCreator("Plain")
	verified := base
	verified.VerificationStatus = domain.VerificationVerified

	plainScored := svc.ScoreCandidate(domain.Candidate{Creator: base, Similarity: 0.2}, campaign, domain.BrandDescriptor{})
	verifiedScored := svc.ScoreCandidate(domain.Candidate{Creator: verified, Similarity: 0.2}, campaign, domain.BrandDescriptor{})

	if containsReason(plainScored.Reasons, "Verified creator account") {
		t.Fatalf("unverified creator should not get the verification reason: %v", plainScored.Reasons)
	}
	if !containsReason(verifiedScored.Reasons, "Verified creator account") {
		t.Fatalf("verified creator should get the verification reason: %v", verifiedScored.Reasons)
	}
}

func TestReasonsFallback(t *testing.T) {
	t.Parallel()
	svc := newTestService(Dependencies{})
	scored := svc.ScoreCandidate(
		domain.Candidate{Creator: domain.CreatorProfile{DisplayName: "Quiet"}, Similarity: -0.8},
		domain.CampaignDescriptor{Name: "c", Budget: 100},
		domain.BrandDescriptor{},
	)
	if len(scored.Reasons) != 1 || !strings.Contains(scored.Reasons[0], "overall profile") {
		t.Fatalf("expected single generic fallback reason, got %v", scored.Reasons)
	}
}

func containsReason(reasons []string, want string) bool {
	for _, reason := range reasons {
		if reason == want {
			return true
		}
	}
	return false
}

func mustUUID(t *testing.T, s string) uuid.UUID {
	t.Helper()
	id, err := uuid.Parse(s)
	if err != nil {
		t.Fatalf("parse uuid: %v", err)
	}
	return id
}
