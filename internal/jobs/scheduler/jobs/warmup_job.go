package jobs

import (
	"context"
	"time"
)

// WarmupRunner creates the send jobs of the current day
type WarmupRunner interface {
	Run(ctx context.Context) error
}

// WarmupJob creates the daily send jobs on a schedule
type WarmupJob struct {
	runner   WarmupRunner
	interval time.Duration
}

// NewWarmupJob creates a new warmup job
func NewWarmupJob(runner WarmupRunner, interval time.Duration) *WarmupJob {
	if interval == 0 {
		interval = 24 * time.Hour
	}
	return &WarmupJob{runner: runner, interval: interval}
}

// Name returns the job name
func (j *WarmupJob) Name() string {
	return "warmup"
}

// Schedule returns how often the job should run
func (j *WarmupJob) Schedule() time.Duration {
	return j.interval
}

// Run executes the warmup
func (j *WarmupJob) Run(ctx context.Context) error {
	return j.runner.Run(ctx)
}
