package worker

import (
	"context"
	"time"

	"go.uber.org/zap"

	"gitstats/internal/database"
	"gitstats/internal/queue"
)

// Scheduler periodically queues update jobs so stored commit histories
// track their upstream repositories without manual sync calls.
type Scheduler struct {
	db        *database.DB
	publisher queue.IPublisher
	interval  time.Duration
	logger    *zap.Logger
}

// NewScheduler creates a scheduler that re-indexes every interval.
func NewScheduler(db *database.DB, publisher queue.IPublisher, interval time.Duration, logger *zap.Logger) *Scheduler {
	return &Scheduler{
		db:        db,
		publisher: publisher,
		interval:  interval,
		logger:    logger,
	}
}

// Run blocks until the context is cancelled, publishing one round of
// update jobs per tick. Repositories that never finished indexing are
// skipped; their original index job is still pending or has failed for a
// reason a retry will not fix.
func (s *Scheduler) Run(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.logger.Info("scheduler started", zap.Duration("interval", s.interval))

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("scheduler stopped")
			return
		case <-ticker.C:
			s.publishRound(ctx)
		}
	}
}

func (s *Scheduler) publishRound(ctx context.Context) {
	repos, err := s.db.ListRepositories(ctx)
	if err != nil {
		s.logger.Error("failed to list repositories", zap.Error(err))
		return
	}

	queued := 0
	for _, repo := range repos {
		if repo.Status != database.StatusCompleted {
			continue
		}
		if err := s.publisher.PublishUpdateJob(ctx, repo.ID); err != nil {
			s.logger.Error("failed to queue update job",
				zap.Int64("repository_id", repo.ID), zap.Error(err))
			continue
		}
		queued++
	}

	s.logger.Info("scheduled repository updates", zap.Int("queued", queued))
}
