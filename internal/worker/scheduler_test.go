package worker

import (
	"context"
	"testing"
	"time"

	"github.com/pashagolub/pgxmock/v3"
	"go.uber.org/zap"

	"gitstats/internal/database"
)

type recordingPublisher struct {
	updateJobs []int64
}

func (r *recordingPublisher) PublishIndexJob(ctx context.Context, repoID int64) error {
	return nil
}

func (r *recordingPublisher) PublishUpdateJob(ctx context.Context, repoID int64) error {
	r.updateJobs = append(r.updateJobs, repoID)
	return nil
}

func (r *recordingPublisher) GetQueueLength(ctx context.Context) (int64, error) {
	return 0, nil
}

func TestSchedulerSkipsUnindexedRepositories(t *testing.T) {
	mockPool, err := pgxmock.NewPool()
	if err != nil {
		t.Fatalf("failed to create mock pool: %v", err)
	}
	defer mockPool.Close()

	now := time.Now()
	mockPool.ExpectQuery("SELECT id, url, local_path, default_branch, status, last_indexed_at, created_at, updated_at").
		WillReturnRows(pgxmock.NewRows([]string{"id", "url", "local_path", "default_branch", "status", "last_indexed_at", "created_at", "updated_at"}).
			AddRow(int64(1), "https://github.com/test/a", nil, "main", database.StatusCompleted, &now, now, now).
			AddRow(int64(2), "https://github.com/test/b", nil, "main", database.StatusPending, nil, now, now).
			AddRow(int64(3), "https://github.com/test/c", nil, "main", database.StatusCompleted, &now, now, now))

	publisher := &recordingPublisher{}
	scheduler := NewScheduler(database.NewTestDB(mockPool), publisher, time.Hour, zap.NewNop())

	scheduler.publishRound(context.Background())

	if len(publisher.updateJobs) != 2 {
		t.Fatalf("expected 2 update jobs, got %v", publisher.updateJobs)
	}
	if publisher.updateJobs[0] != 1 || publisher.updateJobs[1] != 3 {
		t.Errorf("unexpected repository IDs: %v", publisher.updateJobs)
	}
}
