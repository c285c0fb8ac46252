package jobs

import (
	"context"
	"fmt"
	"time"

	"outreach-server/internal/observability"
)

// ExpiringCache drops entries older than its TTL
type ExpiringCache interface {
	CleanupExpired() int
}

// CacheCleanupJob sweeps expired attachments on a schedule
type CacheCleanupJob struct {
	cache    ExpiringCache
	logger   *observability.Logger
	interval time.Duration
}

// NewCacheCleanupJob creates a new cache cleanup job
func NewCacheCleanupJob(cache ExpiringCache, logger *observability.Logger, interval time.Duration) *CacheCleanupJob {
	if interval == 0 {
		interval = time.Hour
	}
	return &CacheCleanupJob{cache: cache, logger: logger, interval: interval}
}

// Name returns the job name
func (j *CacheCleanupJob) Name() string {
	return "attachment_cache_cleanup"
}

// Schedule returns how often the job should run
func (j *CacheCleanupJob) Schedule() time.Duration {
	return j.interval
}

// Run removes expired entries
func (j *CacheCleanupJob) Run(ctx context.Context) error {
	if removed := j.cache.CleanupExpired(); removed > 0 {
		j.logger.Info(ctx, fmt.Sprintf("Removed %d expired attachments", removed))
	}
	return nil
}
