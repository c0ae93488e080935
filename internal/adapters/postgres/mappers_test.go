package postgres

import (
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/viralforge/creator-match/internal/domain"
	"gorm.io/datatypes"
)

func TestToDomainCreatorMapsPricing(t *testing.T) {
	t.Parallel()
	rec := creatorModel{
		CreatorID:       uuid.New(),
		DisplayName:     "Kai",
		PrimaryPlatform: "tiktok",
		Pricing:         datatypes.JSON(`{"tiktok":{"sponsored_post":650,"video":900}}`),
	}
	profile, err := toDomainCreator(rec)
	if err != nil {
		t.Fatalf("toDomainCreator: %v", err)
	}
	pricing, ok := profile.Pricing["tiktok"]
	if !ok {
		t.Fatalf("expected tiktok pricing, got %+v", profile.Pricing)
	}
	if pricing.SponsoredPost != 650 || pricing.Video != 900 {
		t.Fatalf("pricing mapped incorrectly: %+v", pricing)
	}
	if got := profile.RateForPlatform("tiktok"); got != 650 {
		t.Fatalf("RateForPlatform = %v, want 650", got)
	}
}

func TestToDomainCreatorRejectsMalformedPricing(t *testing.T) {
	t.Parallel()
	rec := creatorModel{
		CreatorID:   uuid.New(),
		DisplayName: "Kai",
		Pricing:     datatypes.JSON(`not-json`),
	}
	if _, err := toDomainCreator(rec); !errors.Is(err, domain.ErrData) {
		t.Fatalf("expected ErrData for malformed pricing, got %v", err)
	}
}

func TestToDomainCreatorAllowsAbsentPricing(t *testing.T) {
	t.Parallel()
	profile, err := toDomainCreator(creatorModel{CreatorID: uuid.New(), DisplayName: "Kai"})
	if err != nil {
		t.Fatalf("toDomainCreator: %v", err)
	}
	if profile.Pricing != nil {
		t.Fatalf("absent pricing should map to nil, got %+v", profile.Pricing)
	}
	if got := profile.RateForPlatform("tiktok"); got != 0 {
		t.Fatalf("rate should be unknown, got %v", got)
	}
}
