package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/chirpnet/social-api/internal/api/metrics"
	"github.com/chirpnet/social-api/internal/core/domain"
	"github.com/chirpnet/social-api/internal/core/ports"
)

type activityService struct {
	repo ports.ActivityRepository
	log  zerolog.Logger
}

// NewActivityService returns the ActivityService backing the dispatcher
// workers.
func NewActivityService(repo ports.ActivityRepository, log zerolog.Logger) ports.ActivityService {
	return &activityService{repo: repo, log: log}
}

// Process persists a single dequeued activity record.
func (s *activityService) Process(ctx context.Context, activity domain.Activity) error {
	start := time.Now()

	if err := s.repo.Record(ctx, &activity); err != nil {
		metrics.ActivityErrorsTotal.Inc()
		return fmt.Errorf("record activity: %w", err)
	}

	metrics.ActivityProcessingDuration.WithLabelValues(activity.Verb).Observe(time.Since(start).Seconds())
	s.log.Debug().Str("actor", activity.ActorUID).Str("verb", activity.Verb).Msg("activity recorded")

	return nil
}
