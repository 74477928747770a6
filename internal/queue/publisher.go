package queue

import (
	"context"
	"fmt"
	"time"

	"gitstats/internal/redis"

	"github.com/google/uuid"
)

// IPublisher defines the interface for publishing jobs to the queue
type IPublisher interface {
	PublishIndexJob(ctx context.Context, repoID int64) error
	PublishUpdateJob(ctx context.Context, repoID int64) error
	GetQueueLength(ctx context.Context) (int64, error)
}

type publisherImpl struct {
	queue *Queue
}

// NewPublisher creates a publisher
func NewPublisher(redisClient *redis.Client, queueName string) IPublisher {
	return &publisherImpl{
		queue: NewQueue(redisClient, queueName),
	}
}

// PublishIndexJob creates a job to index a repository for the first time
func (p *publisherImpl) PublishIndexJob(ctx context.Context, repoID int64) error {
	job := &Job{
		ID:           uuid.New().String(),
		RepositoryID: repoID,
		Type:         JobTypeIndex,
		CreatedAt:    time.Now(),
		Retries:      0,
		MaxRetries:   3,
	}

	if err := p.queue.Push(ctx, job); err != nil {
		return fmt.Errorf("failed to publish index job: %w", err)
	}

	return nil
}

// PublishUpdateJob creates a job to re-index an already cloned repository
func (p *publisherImpl) PublishUpdateJob(ctx context.Context, repoID int64) error {
	job := &Job{
		ID:           uuid.New().String(),
		RepositoryID: repoID,
		Type:         JobTypeUpdate,
		CreatedAt:    time.Now(),
		Retries:      0,
		MaxRetries:   3,
	}

	if err := p.queue.Push(ctx, job); err != nil {
		return fmt.Errorf("failed to publish update job: %w", err)
	}

	return nil
}

// GetQueueLength returns current queue size
func (p *publisherImpl) GetQueueLength(ctx context.Context) (int64, error) {
	length, err := p.queue.Length(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to get queue length: %w", err)
	}
	return length, nil
}
