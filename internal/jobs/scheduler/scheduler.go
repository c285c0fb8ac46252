package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"outreach-server/internal/clock"
	"outreach-server/internal/observability"
)

// Job represents a scheduled job
type Job interface {
	// Name returns the job name for logging
	Name() string
	// Run executes the job
	Run(ctx context.Context) error
	// Schedule returns the interval between runs
	Schedule() time.Duration
}

// Scheduler runs every registered job on its own ticker
type Scheduler struct {
	jobs   []Job
	clock  clock.Clock
	logger *observability.Logger
}

// New creates a new scheduler
func New(clk clock.Clock, logger *observability.Logger) *Scheduler {
	return &Scheduler{
		jobs:   make([]Job, 0),
		clock:  clk,
		logger: logger,
	}
}

// Register adds a job to the scheduler
func (s *Scheduler) Register(job Job) {
	s.jobs = append(s.jobs, job)
	s.logger.Info(context.Background(), fmt.Sprintf("Registered scheduled job: %s (interval: %s)",
		job.Name(), job.Schedule()))
}

// Start runs all jobs until ctx is cancelled and waits for in-flight runs to return
func (s *Scheduler) Start(ctx context.Context) error {
	s.logger.Info(ctx, fmt.Sprintf("Starting scheduler with %d jobs", len(s.jobs)))

	var wg sync.WaitGroup
	for _, job := range s.jobs {
		wg.Add(1)
		go func(job Job) {
			defer wg.Done()
			s.runJob(ctx, job)
		}(job)
	}

	<-ctx.Done()
	wg.Wait()
	s.logger.Info(ctx, "Scheduler stopped")
	return ctx.Err()
}

// runJob runs a single job immediately and then on every tick
func (s *Scheduler) runJob(ctx context.Context, job Job) {
	jobCtx := observability.WithFields(ctx, observability.Field{Key: "scheduled_job", Value: job.Name()})

	ticker := s.clock.NewTicker(job.Schedule())
	defer ticker.Stop()

	s.executeJob(jobCtx, job)

	for {
		select {
		case <-ctx.Done():
			s.logger.Info(jobCtx, fmt.Sprintf("Stopping scheduled job: %s", job.Name()))
			return
		case <-ticker.C():
			s.executeJob(jobCtx, job)
		}
	}
}

// executeJob executes a job and logs timing. A panicking job is logged and
// scheduled again on the next tick.
func (s *Scheduler) executeJob(ctx context.Context, job Job) {
	start := s.clock.Now()
	defer func() {
		if r := recover(); r != nil {
			s.logger.Error(ctx, fmt.Sprintf("Job %s panicked", job.Name()), fmt.Errorf("reason: %+v", r))
		}
	}()

	err := job.Run(ctx)
	duration := s.clock.Now().Sub(start)

	if err != nil {
		s.logger.Error(ctx, fmt.Sprintf("Job %s failed after %v", job.Name(), duration), err)
		return
	}
	s.logger.Debug(ctx, fmt.Sprintf("Job %s completed in %v", job.Name(), duration))
}
