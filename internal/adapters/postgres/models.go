package postgres

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/pgvector/pgvector-go"
	"gorm.io/datatypes"
)

type creatorModel struct {
	CreatorID       uuid.UUID      `gorm:"column:creator_id;type:uuid;default:gen_random_uuid();primaryKey"`
	DisplayName     string         `gorm:"column:display_name"`
	Bio             string         `gorm:"column:bio"`
	Niche           string         `gorm:"column:niche"`
	Tier            string         `gorm:"column:tier"`
	PrimaryPlatform string         `gorm:"column:primary_platform"`
	Platforms       pq.StringArray `gorm:"column:platforms;type:text[]"`
	ContentTypes    pq.StringArray `gorm:"column:content_types;type:text[]"`
	Languages       pq.StringArray `gorm:"column:languages;type:text[]"`
	Location        string         `gorm:"column:location"`

	VerificationStatus string `gorm:"column:verification_status"`

	Followers      int64   `gorm:"column:followers"`
	EngagementRate float64 `gorm:"column:engagement_rate"`
	AvgViews       int64   `gorm:"column:avg_views"`

	SponsoredPostRate float64        `gorm:"column:sponsored_post_rate"`
	Pricing           datatypes.JSON `gorm:"column:pricing;type:jsonb"`

	// Aggregates maintained by upstream ingest from the audience and
	// collaboration relations.
	AudienceInterests pq.StringArray `gorm:"column:audience_interests;type:text[]"`
	AudienceAgeGroups pq.StringArray `gorm:"column:audience_age_groups;type:text[]"`
	AudienceTopGender string         `gorm:"column:audience_top_gender"`
	PastBrands        pq.StringArray `gorm:"column:past_brands;type:text[]"`

	SatisfactionScore   float64 `gorm:"column:satisfaction_score"`
	TotalCollaborations int     `gorm:"column:total_collaborations"`

	MemberSince  string `gorm:"column:member_since"`
	LastActiveAt string `gorm:"column:last_active_at"`

	Embedding *pgvector.Vector `gorm:"column:embedding;type:vector(3072)"`

	CreatedAt time.Time `gorm:"column:created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at"`
}

func (creatorModel) TableName() string { return "creators" }

// searchRowModel carries the creator columns plus the computed cosine
// distance from the ANN query.
type searchRowModel struct {
	creatorModel `gorm:"embedded"`
	Distance     float64 `gorm:"column:distance"`
}
