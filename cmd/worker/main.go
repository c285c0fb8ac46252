package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"outreach-server/internal/ai"
	"outreach-server/internal/clients/redis"
	"outreach-server/internal/config"
	"outreach-server/internal/jobs"
	"outreach-server/internal/jobs/workers"
	"outreach-server/internal/metrics"
	"outreach-server/internal/observability"
	"outreach-server/internal/reputation"
	"outreach-server/internal/store"
	"outreach-server/internal/workers/responses"

	"github.com/hibiken/asynq"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %s", err)
	}

	logger, err := observability.NewLoggerWithLevel(cfg.LogLevel)
	if err != nil {
		log.Fatalf("failed to create logger: %s", err)
	}
	defer logger.Sync()
	ctx := context.Background()

	logger.Info(ctx, "Starting background worker server...")

	if !cfg.Redis.Enabled {
		log.Fatal("the background worker requires REDIS_ENABLED")
	}
	metrics.SetGlobal(metrics.New())

	dataStore, err := store.New(cfg.Database.ConnectionString(), logger)
	if err != nil {
		log.Fatalf("Failed to initialize store: %v", err)
	}
	defer dataStore.Close()

	redisClient, err := redis.NewClient(cfg.Redis, logger)
	if err != nil {
		log.Fatalf("Failed to connect to redis: %v", err)
	}
	defer redisClient.Close()

	blocklist := reputation.New(&dataStore, redisClient, cfg.Dispatch.BlocklistCacheTTL, logger)
	classification := responses.NewClassificationService(&dataStore, ai.NewClassifier(logger, cfg.AI), blocklist, logger)
	classifyWorker := workers.NewClassifyWorker(classification, logger)

	redisOpt := jobs.RedisOpt(cfg.Redis)
	srv := asynq.NewServer(
		redisOpt,
		asynq.Config{
			Concurrency: cfg.ResponseSync.ClassifierConcurrency,
			Queues: map[string]int{
				jobs.QueueDefault: 3,
				jobs.QueueLow:     1,
			},
			ErrorHandler: asynq.ErrorHandlerFunc(func(ctx context.Context, task *asynq.Task, err error) {
				logger.Error(ctx, fmt.Sprintf("task %s failed", task.Type()), err)
			}),
			RetryDelayFunc: asynq.DefaultRetryDelayFunc,
			Logger:         &asynqLogger{logger: logger},
		},
	)

	mux := asynq.NewServeMux()
	classifyWorker.Register(mux)

	if err := srv.Start(mux); err != nil {
		log.Fatalf("Failed to start worker server: %v", err)
	}
	logger.Info(ctx, fmt.Sprintf("Worker server started on Redis: %s", cfg.Redis.Addr()))

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	<-sigChan
	logger.Info(ctx, "Shutting down worker server...")

	srv.Shutdown()
	logger.Info(ctx, "Worker server stopped")
}

// asynqLogger adapts observability.Logger to asynq.Logger interface
type asynqLogger struct {
	logger *observability.Logger
}

func (l *asynqLogger) Debug(args ...interface{}) {
	l.logger.Debug(context.Background(), fmt.Sprint(args...))
}

func (l *asynqLogger) Info(args ...interface{}) {
	l.logger.Info(context.Background(), fmt.Sprint(args...))
}

func (l *asynqLogger) Warn(args ...interface{}) {
	l.logger.Warn(context.Background(), fmt.Sprint(args...))
}

func (l *asynqLogger) Error(args ...interface{}) {
	l.logger.Error(context.Background(), fmt.Sprint(args...), nil)
}

func (l *asynqLogger) Fatal(args ...interface{}) {
	l.logger.Error(context.Background(), fmt.Sprint(args...), nil)
	os.Exit(1)
}
