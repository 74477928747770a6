package queue

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"gitstats/internal/redis"

	goredis "github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// Consumer handles consuming jobs from Redis
type Consumer struct {
	queue       *Queue
	handler     JobHandler
	concurrency int // Number of goroutines
	logger      *zap.Logger
	stopChan    chan struct{}
	wg          sync.WaitGroup
}

// JobHandler processes a single job pulled off the queue
type JobHandler interface {
	HandleJob(ctx context.Context, job *Job) error
}

// NewConsumer creates a consumer
func NewConsumer(
	redisClient *redis.Client,
	queueName string,
	handler JobHandler,
	concurrency int,
	logger *zap.Logger,
) *Consumer {
	return &Consumer{
		queue:       NewQueue(redisClient, queueName),
		handler:     handler,
		concurrency: concurrency,
		logger:      logger,
		stopChan:    make(chan struct{}),
	}
}

// Start begins consuming jobs (runs goroutines)
func (c *Consumer) Start(ctx context.Context) error {
	if c.concurrency < 1 {
		return fmt.Errorf("concurrency must be at least 1")
	}

	c.logger.Info("starting consumer", zap.Int("workers", c.concurrency))

	for i := 0; i < c.concurrency; i++ {
		c.wg.Add(1)
		go c.worker(ctx, i)
	}

	return nil
}

// worker is a goroutine that processes jobs from the queue
func (c *Consumer) worker(ctx context.Context, id int) {
	defer c.wg.Done()

	logger := c.logger.With(zap.Int("worker", id))
	logger.Info("worker started")

	for {
		select {
		case <-c.stopChan:
			logger.Info("worker stopping")
			return
		case <-ctx.Done():
			logger.Info("worker context cancelled")
			return
		default:
			// Pop job with 5 second timeout
			job, err := c.queue.Pop(ctx, 5*time.Second)
			if err != nil {
				// Timeout or empty queue, keep polling
				if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, goredis.Nil) {
					continue
				}
				logger.Error("error popping job", zap.Error(err))
				continue
			}

			if job == nil {
				continue
			}

			logger.Info("processing job",
				zap.String("job_id", job.ID),
				zap.String("type", string(job.Type)),
				zap.Int64("repository_id", job.RepositoryID))

			if err := c.handler.HandleJob(ctx, job); err != nil {
				logger.Error("failed to handle job", zap.String("job_id", job.ID), zap.Error(err))
			} else {
				logger.Info("completed job", zap.String("job_id", job.ID))
			}
		}
	}
}

// Stop gracefully stops the consumer
func (c *Consumer) Stop() {
	c.logger.Info("stopping consumer")
	close(c.stopChan)
	c.wg.Wait()
	c.logger.Info("consumer stopped")
}
