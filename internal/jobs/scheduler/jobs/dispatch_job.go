package jobs

import (
	"context"
	"time"
)

// Ticker is a worker that does one unit of periodic work per call
type Ticker interface {
	Tick(ctx context.Context)
}

// DispatchJob runs the dispatch worker on a schedule
type DispatchJob struct {
	worker   Ticker
	interval time.Duration
}

// NewDispatchJob creates a new dispatch job
func NewDispatchJob(worker Ticker, interval time.Duration) *DispatchJob {
	if interval == 0 {
		interval = time.Minute
	}
	return &DispatchJob{worker: worker, interval: interval}
}

func (j *DispatchJob) Name() string            { return "dispatch" }
func (j *DispatchJob) Schedule() time.Duration { return j.interval }

// Run executes one dispatch tick. Failures are handled and logged by the worker.
func (j *DispatchJob) Run(ctx context.Context) error {
	j.worker.Tick(ctx)
	return nil
}

// ResponseSyncJob runs the response poller on a schedule
type ResponseSyncJob struct {
	poller   Ticker
	interval time.Duration
}

// NewResponseSyncJob creates a new response sync job
func NewResponseSyncJob(poller Ticker, interval time.Duration) *ResponseSyncJob {
	if interval == 0 {
		interval = 20 * time.Minute
	}
	return &ResponseSyncJob{poller: poller, interval: interval}
}

func (j *ResponseSyncJob) Name() string            { return "response_sync" }
func (j *ResponseSyncJob) Schedule() time.Duration { return j.interval }

func (j *ResponseSyncJob) Run(ctx context.Context) error {
	j.poller.Tick(ctx)
	return nil
}
