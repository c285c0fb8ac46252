package bootstrap

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"outreach-server/internal/ai"
	"outreach-server/internal/attachments"
	"outreach-server/internal/attachments/cache"
	"outreach-server/internal/clients/drive"
	"outreach-server/internal/clients/gmail"
	"outreach-server/internal/clients/mail"
	"outreach-server/internal/clients/redis"
	"outreach-server/internal/clock"
	"outreach-server/internal/config"
	"outreach-server/internal/email"
	"outreach-server/internal/jobs"
	"outreach-server/internal/jobs/scheduler"
	scheduledJobs "outreach-server/internal/jobs/scheduler/jobs"
	"outreach-server/internal/matching"
	"outreach-server/internal/metrics"
	"outreach-server/internal/observability"
	"outreach-server/internal/reputation"
	"outreach-server/internal/store"
	"outreach-server/internal/workers"
	"outreach-server/internal/workers/dispatch"
	"outreach-server/internal/workers/responses"
	"outreach-server/internal/workers/warmup"
)

const boltIndexFile = ".index.db"

// Dependencies holds all initialized application dependencies
type Dependencies struct {
	// Core
	Store   store.Store
	Logger  *observability.Logger
	Metrics *metrics.Metrics
	Redis   *redis.Client

	// Outreach pipeline
	Cache          *cache.Cache
	Classification *responses.ClassificationService
	Scheduler      *scheduler.Scheduler

	// Background classification: exactly one of these is set
	ClassifyPool workers.WorkerPool
	JobClient    *jobs.Client
}

// Initialize sets up all application dependencies
func Initialize(ctx context.Context, cfg *config.Config, logger *observability.Logger) (*Dependencies, error) {
	deps := &Dependencies{
		Logger:  logger,
		Metrics: metrics.New(),
	}
	metrics.SetGlobal(deps.Metrics)

	var err error
	deps.Store, err = store.New(cfg.Database.ConnectionString(), logger)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	deps.Redis, err = redis.NewClient(cfg.Redis, logger)
	if err != nil {
		return nil, err
	}

	clk := clock.New()
	location := cfg.Scheduling.TimeZone

	// Clients
	gmailClient := gmail.NewClient(cfg.Google.ClientID, cfg.Google.ClientSecret, logger)
	driveClient := drive.NewClient(cfg.Google.ClientID, cfg.Google.ClientSecret, logger)
	var resendTransport email.ResendTransport
	if cfg.Mail.ResendAPIKey != "" {
		resendClient, err := mail.NewResendClient(cfg.Mail.ResendAPIKey, logger)
		if err != nil {
			return nil, fmt.Errorf("failed to create resend client: %w", err)
		}
		resendTransport = resendClient
	}
	emailService := email.New(gmailClient, resendTransport, logger)

	// Attachment cache
	index, err := newCacheIndex(cfg.AttachmentCache, logger)
	if err != nil {
		return nil, err
	}
	deps.Cache, err = cache.New(cfg.AttachmentCache.Dir, cfg.AttachmentCache.TTL, index, clk, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to open attachment cache: %w", err)
	}
	if n, err := deps.Cache.Rebuild(); err != nil {
		logger.WarnWithError(ctx, "attachment cache starts empty", err)
	} else {
		logger.Info(ctx, fmt.Sprintf("attachment cache restored %d entries", n))
	}
	attachmentService := attachments.New(driveClient, deps.Cache, logger)

	// Matching
	blocklist := reputation.New(&deps.Store, deps.Redis, cfg.Dispatch.BlocklistCacheTTL, logger)
	matcher := matching.New(&deps.Store, blocklist, cfg.Dispatch.MatcherPageSize, logger)

	// Classification
	classifier := ai.NewClassifier(logger, cfg.AI)
	deps.Classification = responses.NewClassificationService(&deps.Store, classifier, blocklist, logger)

	var dispatcher responses.Dispatcher
	if cfg.ResponseSync.ClassifyViaQueue {
		deps.JobClient = jobs.NewClient(jobs.RedisOpt(cfg.Redis), logger)
		dispatcher = responses.NewQueueDispatcher(deps.JobClient, logger)
	} else {
		poolCfg := workers.DefaultWorkerPoolConfig()
		poolCfg.NumWorkers = cfg.ResponseSync.ClassifierConcurrency
		deps.ClassifyPool = workers.NewWorkerPool(poolCfg, deps.Classification, logger)
		dispatcher = responses.NewPoolDispatcher(deps.ClassifyPool, logger)
	}

	// Workers
	warmupScheduler := warmup.New(&deps.Store, clk, location, logger)
	dispatchWorker := dispatch.New(dispatch.Config{
		Store:       &deps.Store,
		Candidates:  matcher,
		Content:     ai.NewContentGenerator(logger, cfg.AI),
		Attachments: attachmentService,
		Sender:      emailService,
		Clock:       clk,
		Location:    location,
		BatchCap:    cfg.Dispatch.BatchCap,
		Logger:      logger,
	})
	poller := responses.NewPoller(&deps.Store, emailService, dispatcher, cfg.ResponseSync.ThreadsPerAccount, logger)

	deps.Scheduler = scheduler.New(clk, logger)
	deps.Scheduler.Register(scheduledJobs.NewWarmupJob(warmupScheduler, cfg.Scheduling.WarmupInterval))
	deps.Scheduler.Register(scheduledJobs.NewDispatchJob(dispatchWorker, cfg.Scheduling.DispatchInterval))
	deps.Scheduler.Register(scheduledJobs.NewResponseSyncJob(poller, cfg.Scheduling.ResponseSyncInterval))
	deps.Scheduler.Register(scheduledJobs.NewCacheCleanupJob(deps.Cache, logger, cfg.Scheduling.CacheCleanupInterval))

	return deps, nil
}

func newCacheIndex(cfg config.AttachmentCacheConfig, logger *observability.Logger) (cache.Index, error) {
	if cfg.Index == "bolt" {
		if err := os.MkdirAll(cfg.Dir, 0o755); err != nil {
			return nil, fmt.Errorf("failed to create attachment cache dir: %w", err)
		}
		index, err := cache.NewBoltIndex(filepath.Join(cfg.Dir, boltIndexFile))
		if err != nil {
			return nil, fmt.Errorf("failed to open attachment cache index: %w", err)
		}
		return index, nil
	}
	return cache.NewScanIndex(logger), nil
}

// Cleanup closes all resources that need cleanup
func (d *Dependencies) Cleanup() {
	ctx := context.Background()
	if d.JobClient != nil {
		if err := d.JobClient.Close(); err != nil {
			d.Logger.Error(ctx, "failed to close job client", err)
		}
	}
	if d.Cache != nil {
		if err := d.Cache.Close(); err != nil {
			d.Logger.Error(ctx, "failed to close attachment cache", err)
		}
	}
	if err := d.Redis.Close(); err != nil {
		d.Logger.Error(ctx, "failed to close redis", err)
	}
	if err := d.Store.Close(); err != nil {
		d.Logger.Error(ctx, "failed to close database", err)
	}
}
