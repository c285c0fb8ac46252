package main

import (
	"context"
	"log"

	"outreach-server/internal/bootstrap"
	"outreach-server/internal/config"
	"outreach-server/internal/observability"
	"outreach-server/internal/server"
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

	deps, err := bootstrap.Initialize(ctx, cfg, logger)
	if err != nil {
		logger.Fatal(ctx, "failed to initialize dependencies", err)
	}

	srv := server.New(cfg, deps, logger)
	srv.Setup()
	if err := srv.Start(ctx); err != nil {
		logger.Fatal(ctx, "failed to start server", err)
	}

	if err := srv.WaitForShutdown(ctx); err != nil {
		logger.Fatal(ctx, "shutdown failed", err)
	}
}
