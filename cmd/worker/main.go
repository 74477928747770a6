package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"gitstats/internal/config"
	"gitstats/internal/database"
	"gitstats/internal/logger"
	"gitstats/internal/queue"
	"gitstats/internal/redis"
	"gitstats/internal/worker"
)

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	cfg := config.Load()

	log, err := logger.New(cfg.LogLevel)
	if err != nil {
		os.Stderr.WriteString("failed to initialize logger: " + err.Error() + "\n")
		os.Exit(1)
	}
	defer log.Sync()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	db, err := database.Connect(ctx, cfg.Database)
	if err != nil {
		log.Fatal("failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	redisClient, err := redis.NewClient(cfg.Redis)
	if err != nil {
		log.Fatal("failed to connect to Redis", zap.Error(err))
	}
	defer redisClient.Close()

	handler := worker.NewJobHandler(db, cfg.Worker.StoragePath, log)

	publisher := queue.NewPublisher(redisClient, cfg.Redis.QueueName)
	scheduler := worker.NewScheduler(db, publisher, cfg.Worker.PollInterval, log)
	go scheduler.Run(ctx)

	consumer := queue.NewConsumer(
		redisClient,
		cfg.Redis.QueueName,
		handler,
		cfg.Worker.Concurrency,
		log,
	)

	log.Info("starting worker", zap.Int("concurrency", cfg.Worker.Concurrency))
	if err := consumer.Start(ctx); err != nil {
		log.Fatal("failed to start consumer", zap.Error(err))
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down worker")
	cancel()
	consumer.Stop()

	log.Info("worker exited")
}
