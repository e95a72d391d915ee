package service

import (
	"context"
	"strings"

	hclog "github.com/hashicorp/go-hclog"

	"questlog/internal/modules/coach/domain"
	coachout "questlog/internal/modules/coach/port/out"
	"questlog/internal/platform/logging"
)

const (
	SourcePlugin  = "plugin"
	SourceSummary = "summary"
)

type CoachService struct {
	narrator coachout.Narrator
	logger   hclog.Logger
}

// NewCoachService accepts a nil narrator; every narration then degrades to
// the summary.
func NewCoachService(narrator coachout.Narrator, logger hclog.Logger) *CoachService {
	return &CoachService{narrator: narrator, logger: logging.OrNull(logger).Named("coach")}
}

// Narrate never fails. Narrator errors are logged and replaced by the
// request summary.
func (s *CoachService) Narrate(ctx context.Context, req domain.Request) domain.Narration {
	if s.narrator == nil {
		return domain.Narration{Text: req.Summary, Degraded: true, Source: SourceSummary}
	}
	text, err := s.narrator.Narrate(ctx, req)
	if err != nil {
		s.logger.Warn("narrator failed, using summary", "error", err)
		return domain.Narration{Text: req.Summary, Degraded: true, Source: SourceSummary}
	}
	if strings.TrimSpace(text) == "" {
		s.logger.Warn("narrator returned empty text, using summary")
		return domain.Narration{Text: req.Summary, Degraded: true, Source: SourceSummary}
	}
	return domain.Narration{Text: strings.TrimSpace(text), Source: SourcePlugin}
}
