package application

import (
	"context"
	"fmt"

	"github.com/viralforge/creator-match/internal/domain"
)

// MaintainEmbeddings backfills embeddings for every creator that lacks
// one. Creators are processed strictly sequentially with a fixed delay
// between provider calls to respect third-party rate limits; this loop is
// deliberately not parallelized. One creator failing is logged and
// counted, never aborts the sweep, and is not retried here.
func (s *Service) MaintainEmbeddings(ctx context.Context) (domain.MaintenanceReport, error) {
	report := domain.MaintenanceReport{}

	ids, err := s.creators.ListMissingEmbeddings(ctx, s.cfg.MaintenanceBatchSize)
	if err != nil {
		return report, fmt.Errorf("list creators missing embeddings: %w", err)
	}

	calledProvider := false
	for _, id := range ids {
		if ctx.Err() != nil {
			return report, ctx.Err()
		}
		report.Attempted++

		profile, err := s.creators.GetProfile(ctx, id)
		if err != nil {
			report.Failed++
			s.logger.WarnContext(ctx, "load creator for embedding", "creator_id", id, "error", err)
			continue
		}

		text := SerializeProfile(profile)
		if text == "" {
			report.Skipped++
			continue
		}

		if calledProvider {
			s.sleepFn(ctx, s.cfg.EmbedDelay)
		}
		calledProvider = true
		vector, err := s.embedder.Embed(ctx, text)
		if err != nil {
			report.Failed++
			s.logger.WarnContext(ctx, "embed creator profile", "creator_id", id, "error", err)
			continue
		}
		if err := s.embeddings.SaveEmbedding(ctx, id, vector); err != nil {
			report.Failed++
			s.logger.WarnContext(ctx, "save creator embedding", "creator_id", id, "error", err)
			continue
		}
		report.Succeeded++
	}

	s.logger.InfoContext(ctx, "embedding maintenance sweep complete",
		"service", s.cfg.ServiceName,
		"attempted", report.Attempted,
		"succeeded", report.Succeeded,
		"skipped", report.Skipped,
		"failed", report.Failed,
	)
	return report, nil
}
