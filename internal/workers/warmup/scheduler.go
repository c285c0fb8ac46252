// Package warmup creates the daily send job of every active account and ramps
// daily limits towards their target.
package warmup

import (
	"context"
	"errors"
	"fmt"
	"time"

	"outreach-server/internal/clock"
	"outreach-server/internal/metrics"
	"outreach-server/internal/observability"
	"outreach-server/internal/store"
)

type Scheduler struct {
	store    Store
	clock    clock.Clock
	location *time.Location
	logger   *observability.Logger
}

func New(s Store, clk clock.Clock, location *time.Location, logger *observability.Logger) *Scheduler {
	if location == nil {
		location = time.UTC
	}
	return &Scheduler{
		store:    s,
		clock:    clk,
		location: location,
		logger:   logger,
	}
}

// Plan is the outcome of the warmup rule for one profile
type Plan struct {
	Quota int
	// NewLimit is set when the current daily limit ramps up
	NewLimit *int
}

// PlanFor applies the warmup rule: while warmup is active and the current limit is
// below target, the limit grows by the daily increment without passing the target.
// The quota never exceeds maxDaily when maxDaily is set.
func PlanFor(p store.AccountSendProfile) Plan {
	quota := p.CurrentDailyLimit
	var newLimit *int
	if p.WarmupActive && p.CurrentDailyLimit < p.TargetDailyLimit {
		next := min(p.CurrentDailyLimit+max(p.DailyIncrement, 0), p.TargetDailyLimit)
		if next != p.CurrentDailyLimit {
			newLimit = &next
		}
		quota = next
	}
	if p.MaxDaily > 0 && quota > p.MaxDaily {
		quota = p.MaxDaily
	}
	if quota < 0 {
		quota = 0
	}
	return Plan{Quota: quota, NewLimit: newLimit}
}

// Run creates today's send job for every active profile that has none.
// Safe to call any number of times per day.
func (s *Scheduler) Run(ctx context.Context) error {
	profiles, err := s.store.ListActiveSendProfiles(ctx)
	if err != nil {
		return fmt.Errorf("failed to list active send profiles: %w", err)
	}

	day := clock.Day(s.clock.Now(), s.location)
	ctx = observability.WithFields(ctx, observability.Field{Key: "send_date", Value: day.Format(time.DateOnly)})

	created, existing, failed := 0, 0, 0
	for _, profile := range profiles {
		profileCtx := observability.WithFields(ctx, observability.Field{Key: "account_id", Value: profile.AccountID})

		ok, err := s.scheduleProfile(profileCtx, profile, day)
		switch {
		case err != nil:
			s.logger.Error(profileCtx, "failed to create send job", err)
			failed++
		case ok:
			created++
		default:
			existing++
		}
	}

	s.logger.Info(ctx, fmt.Sprintf("Warmup completed: %d jobs created, %d already present, %d failed",
		created, existing, failed))
	return nil
}

func (s *Scheduler) scheduleProfile(ctx context.Context, profile store.AccountSendProfile, day time.Time) (bool, error) {
	_, err := s.store.GetSendJobForDay(ctx, profile.AccountID, day)
	if err == nil {
		return false, nil
	}
	if !errors.Is(err, store.ErrNotFound) {
		return false, err
	}

	plan := PlanFor(profile)
	job, err := s.store.CreateDailySendJob(ctx, store.CreateDailySendJobParams{
		AccountID:     profile.AccountID,
		SendDate:      day,
		EmailsToSend:  plan.Quota,
		NewDailyLimit: plan.NewLimit,
	})
	if errors.Is(err, store.ErrAlreadyExists) {
		return false, nil
	}
	if err != nil {
		return false, err
	}

	metrics.IncSendJobsCreated()
	s.logger.Info(observability.WithFields(ctx,
		observability.Field{Key: "send_job_id", Value: job.ID},
		observability.Field{Key: "emails_to_send", Value: job.EmailsToSend},
	), "created send job")
	return true, nil
}
