package application

import (
	"encoding/json"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/viralforge/creator-match/internal/domain"
)

// maxJSONFieldLen caps serialized nested objects so one oversized rate
// card cannot dominate the embedding text.
const maxJSONFieldLen = 250

const jsonTruncatedSuffix = "... (truncated)"

// profileField is one entry of the serialization schema: a snake_case
// source name, an optional label override, and a renderer. The renderer
// returns ok=false when the field should be skipped entirely.
type profileField struct {
	name   string
	label  string
	render func(p domain.CreatorProfile) (string, bool)
}

// profileSchema is the versioned, ordered field list behind
// SerializeProfile. Internal identifiers, storage timestamps and the raw
// embedding are deliberately absent. Order changes invalidate stored
// embeddings, so append rather than reorder.
var profileSchema = []profileField{
	{name: "name", render: func(p domain.CreatorProfile) (string, bool) { return stringField(p.DisplayName) }},
	{name: "bio", render: func(p domain.CreatorProfile) (string, bool) { return stringField(p.Bio) }},
	{name: "niche", render: func(p domain.CreatorProfile) (string, bool) { return stringField(p.Niche) }},
	{name: "tier", render: func(p domain.CreatorProfile) (string, bool) { return stringField(p.Tier) }},
	{name: "primary_platform", render: func(p domain.CreatorProfile) (string, bool) { return stringField(p.PrimaryPlatform) }},
	{name: "platforms", render: func(p domain.CreatorProfile) (string, bool) { return listField(p.Platforms) }},
	{name: "content_types", render: func(p domain.CreatorProfile) (string, bool) { return listField(p.ContentTypes) }},
	{name: "languages", render: func(p domain.CreatorProfile) (string, bool) { return listField(p.Languages) }},
	{name: "location", render: func(p domain.CreatorProfile) (string, bool) { return stringField(p.Location) }},
	{name: "verified", render: func(p domain.CreatorProfile) (string, bool) {
		if p.VerificationStatus == "" {
			return "", false
		}
		return boolField(p.Verified()), true
	}},
	{name: "followers", render: func(p domain.CreatorProfile) (string, bool) { return intField(p.Followers) }},
	{name: "engagement_rate", render: func(p domain.CreatorProfile) (string, bool) { return floatField(p.EngagementRate) }},
	{name: "avg_views", label: "Average Views", render: func(p domain.CreatorProfile) (string, bool) { return intField(p.AvgViews) }},
	{name: "pricing", render: func(p domain.CreatorProfile) (string, bool) { return jsonField(p.Pricing) }},
	{name: "audience_interests", render: func(p domain.CreatorProfile) (string, bool) { return listField(p.AudienceInterests) }},
	{name: "audience_age_groups", render: func(p domain.CreatorProfile) (string, bool) { return listField(p.AudienceAgeGroups) }},
	{name: "audience_top_gender", render: func(p domain.CreatorProfile) (string, bool) { return stringField(p.AudienceTopGender) }},
	{name: "past_brands", label: "Past Brand Collaborations", render: func(p domain.CreatorProfile) (string, bool) { return listField(p.PastBrands) }},
	{name: "satisfaction_score", render: func(p domain.CreatorProfile) (string, bool) { return floatField(p.SatisfactionScore) }},
	{name: "total_collaborations", render: func(p domain.CreatorProfile) (string, bool) { return intField(int64(p.TotalCollaborations)) }},
	{name: "member_since", render: func(p domain.CreatorProfile) (string, bool) { return dateField(p.MemberSince) }},
	{name: "last_active_at", label: "Last Active", render: func(p domain.CreatorProfile) (string, bool) { return dateField(p.LastActiveAt) }},
}

// SerializeProfile renders a creator into the canonical text that gets
// embedded. Pure and deterministic: identical profiles yield
// byte-identical output regardless of call order.
func SerializeProfile(p domain.CreatorProfile) string {
	parts := make([]string, 0, len(profileSchema))
	for _, field := range profileSchema {
		value, ok := field.render(p)
		if !ok {
			continue
		}
		label := field.label
		if label == "" {
			label = humanLabel(field.name)
		}
		parts = append(parts, label+": "+value)
	}
	return strings.Join(parts, " | ")
}

func stringField(v string) (string, bool) {
	v = strings.TrimSpace(v)
	return v, v != ""
}

// listField flattens one level, drops empty elements and joins the rest.
func listField(groups ...[]string) (string, bool) {
	var out []string
	for _, group := range groups {
		for _, item := range group {
			item = strings.TrimSpace(item)
			if item != "" {
				out = append(out, item)
			}
		}
	}
	if len(out) == 0 {
		return "", false
	}
	return strings.Join(out, ", "), true
}

func intField(v int64) (string, bool) {
	if v == 0 {
		return "", false
	}
	return strconv.FormatInt(v, 10), true
}

func floatField(v float64) (string, bool) {
	if v == 0 {
		return "", false
	}
	return strconv.FormatFloat(v, 'f', -1, 64), true
}

func boolField(v bool) string {
	if v {
		return "Yes"
	}
	return "No"
}

func jsonField(v any) (string, bool) {
	if v == nil {
		return "", false
	}
	blob, err := json.Marshal(v)
	if err != nil {
		return "", false
	}
	encoded := string(blob)
	if encoded == "{}" || encoded == "[]" || encoded == "null" {
		return "", false
	}
	if len(encoded) > maxJSONFieldLen {
		cut := maxJSONFieldLen
		for cut > 0 && !utf8.RuneStart(encoded[cut]) {
			cut--
		}
		encoded = encoded[:cut] + jsonTruncatedSuffix
	}
	return encoded, true
}

var dateFieldLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02",
	"01/02/2006",
}

// dateField normalizes assorted upstream date strings to YYYY-MM-DD,
// falling back to the raw value when nothing parses.
func dateField(raw string) (string, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", false
	}
	for _, layout := range dateFieldLayouts {
		if parsed, err := time.Parse(layout, raw); err == nil {
			return parsed.Format("2006-01-02"), true
		}
	}
	return raw, true
}

// humanLabel turns a snake_case field name into a Title Case label.
func humanLabel(name string) string {
	words := strings.Split(name, "_")
	for i, word := range words {
		if word == "" {
			continue
		}
		words[i] = strings.ToUpper(word[:1]) + word[1:]
	}
	return strings.Join(words, " ")
}
