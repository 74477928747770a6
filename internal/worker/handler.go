package worker

import (
	"context"
	"fmt"
	"path/filepath"
	"strconv"
	"time"

	"go.uber.org/zap"

	"gitstats/internal/database"
	"gitstats/internal/gitlog"
	"gitstats/internal/queue"
)

// JobHandler implements the queue.JobHandler interface. It clones (or
// reopens) the repository on local disk, extracts its commit records and
// replaces the stored history.
type JobHandler struct {
	db          *database.DB
	storagePath string
	logger      *zap.Logger
}

// NewJobHandler creates a new job handler
func NewJobHandler(db *database.DB, storagePath string, logger *zap.Logger) *JobHandler {
	return &JobHandler{
		db:          db,
		storagePath: storagePath,
		logger:      logger,
	}
}

// HandleJob processes a job from the queue
func (h *JobHandler) HandleJob(ctx context.Context, job *queue.Job) error {
	switch job.Type {
	case queue.JobTypeIndex, queue.JobTypeUpdate:
		// Index and update are the same operation: CloneOrOpen reuses an
		// existing clone, and the stored commits are replaced wholesale.
		return h.indexRepository(ctx, job.RepositoryID)
	default:
		return fmt.Errorf("unknown job type: %s", job.Type)
	}
}

func (h *JobHandler) indexRepository(ctx context.Context, repoID int64) error {
	if err := h.db.UpdateRepositoryStatus(ctx, repoID, database.StatusIndexing); err != nil {
		return fmt.Errorf("failed to update repository status: %w", err)
	}

	repo, err := h.db.GetRepository(ctx, repoID)
	if err != nil {
		h.markFailed(ctx, repoID)
		return fmt.Errorf("failed to get repository: %w", err)
	}

	h.logger.Info("indexing repository",
		zap.Int64("repository_id", repoID),
		zap.String("url", repo.URL))

	localPath := filepath.Join(h.storagePath, strconv.FormatInt(repoID, 10))

	gitRepo, err := gitlog.CloneOrOpen(ctx, repo.URL, localPath)
	if err != nil {
		h.markFailed(ctx, repoID)
		return fmt.Errorf("failed to clone repository: %w", err)
	}

	commits, err := gitlog.Extract(ctx, gitRepo)
	if err != nil {
		h.markFailed(ctx, repoID)
		return fmt.Errorf("failed to extract commits: %w", err)
	}

	if err := h.db.ReplaceCommits(ctx, repoID, commits); err != nil {
		h.markFailed(ctx, repoID)
		return fmt.Errorf("failed to store commits: %w", err)
	}

	if err := h.db.MarkRepositoryIndexed(ctx, repoID, localPath, time.Now()); err != nil {
		return fmt.Errorf("failed to mark repository indexed: %w", err)
	}

	h.logger.Info("indexed repository",
		zap.Int64("repository_id", repoID),
		zap.Int("commits", len(commits)))
	return nil
}

func (h *JobHandler) markFailed(ctx context.Context, repoID int64) {
	if err := h.db.UpdateRepositoryStatus(ctx, repoID, database.StatusFailed); err != nil {
		h.logger.Error("failed to mark repository failed",
			zap.Int64("repository_id", repoID), zap.Error(err))
	}
}
