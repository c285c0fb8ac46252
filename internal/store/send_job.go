package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// CreateDailySendJobParams represents parameters for creating the send job of a day
type CreateDailySendJobParams struct {
	AccountID    uuid.UUID
	SendDate     time.Time
	EmailsToSend int
	// NewDailyLimit, when set, is persisted as the profile's current_daily_limit
	// in the same transaction, and only if the job was actually created.
	NewDailyLimit *int
}

const sendJobColumns = `
id, account_id, send_date, status, emails_to_send, emails_sent_count,
started_at, finished_at, error_message, created_at, updated_at`

const sqlInsertSendJobIfAbsent = `
INSERT INTO send_jobs (account_id, send_date, status, emails_to_send, emails_sent_count)
VALUES ($1, $2, 'QUEUED', $3, 0)
ON CONFLICT (account_id, send_date) DO NOTHING
RETURNING` + sendJobColumns

const sqlUpdateCurrentDailyLimit = `
UPDATE account_send_profiles
SET current_daily_limit = $2, updated_at = CURRENT_TIMESTAMP
WHERE account_id = $1
`

// CreateDailySendJob creates the QUEUED job of an (account, day) pair.
// Returns ErrAlreadyExists when a job for that pair exists, in which case nothing is written.
func (s *Store) CreateDailySendJob(ctx context.Context, params CreateDailySendJobParams) (SendJob, error) {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return SendJob{}, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		if err := tx.Rollback(); err != nil && !errors.Is(err, sql.ErrTxDone) {
			s.logger.Error(ctx, "failed to rollback transaction", err)
		}
	}()

	var job SendJob
	err = tx.GetContext(ctx, &job, sqlInsertSendJobIfAbsent, params.AccountID, dateOnly(params.SendDate), params.EmailsToSend)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return SendJob{}, ErrAlreadyExists
		}
		return SendJob{}, fmt.Errorf("failed to create send job: %w", err)
	}

	if params.NewDailyLimit != nil {
		if _, err := tx.ExecContext(ctx, sqlUpdateCurrentDailyLimit, params.AccountID, *params.NewDailyLimit); err != nil {
			return SendJob{}, fmt.Errorf("failed to update daily limit: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return SendJob{}, fmt.Errorf("failed to commit send job: %w", err)
	}
	return job, nil
}

const sqlGetSendJobForDay = `SELECT` + sendJobColumns + `
FROM send_jobs
WHERE account_id = $1 AND send_date = $2
`

// GetSendJobForDay retrieves the job of an (account, day) pair
func (s *Store) GetSendJobForDay(ctx context.Context, accountID uuid.UUID, day time.Time) (SendJob, error) {
	var job SendJob
	err := s.db.GetContext(ctx, &job, sqlGetSendJobForDay, accountID, dateOnly(day))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return SendJob{}, ErrNotFound
		}
		return SendJob{}, fmt.Errorf("failed to get send job: %w", err)
	}
	return job, nil
}

const sqlGetSendJobByID = `SELECT` + sendJobColumns + `
FROM send_jobs
WHERE id = $1
`

// GetSendJobByID retrieves a send job by ID
func (s *Store) GetSendJobByID(ctx context.Context, jobID uuid.UUID) (SendJob, error) {
	var job SendJob
	err := s.db.GetContext(ctx, &job, sqlGetSendJobByID, jobID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return SendJob{}, ErrNotFound
		}
		return SendJob{}, fmt.Errorf("failed to get send job: %w", err)
	}
	return job, nil
}

const sqlListActiveSendJobs = `SELECT` + sendJobColumns + `
FROM send_jobs
WHERE status IN ('QUEUED', 'RUNNING')
ORDER BY send_date ASC, created_at ASC
`

// ListActiveSendJobs returns jobs that still have work to do
func (s *Store) ListActiveSendJobs(ctx context.Context) ([]SendJob, error) {
	var jobs []SendJob
	err := s.db.SelectContext(ctx, &jobs, sqlListActiveSendJobs)
	if err != nil {
		return nil, fmt.Errorf("failed to list active send jobs: %w", err)
	}
	return jobs, nil
}

const sqlMarkSendJobRunning = `
UPDATE send_jobs
SET status = 'RUNNING', started_at = COALESCE(started_at, CURRENT_TIMESTAMP), updated_at = CURRENT_TIMESTAMP
WHERE id = $1 AND status = 'QUEUED'
RETURNING` + sendJobColumns

// MarkSendJobRunning moves a QUEUED job to RUNNING
func (s *Store) MarkSendJobRunning(ctx context.Context, jobID uuid.UUID) (SendJob, error) {
	var job SendJob
	err := s.db.GetContext(ctx, &job, sqlMarkSendJobRunning, jobID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return SendJob{}, ErrNotFound
		}
		return SendJob{}, fmt.Errorf("failed to mark send job running: %w", err)
	}
	return job, nil
}

const sqlFinishSendJob = `
UPDATE send_jobs
SET status = $2, error_message = $3, finished_at = CURRENT_TIMESTAMP, updated_at = CURRENT_TIMESTAMP
WHERE id = $1
`

// MarkSendJobDone closes a job
func (s *Store) MarkSendJobDone(ctx context.Context, jobID uuid.UUID) error {
	return s.finishSendJob(ctx, jobID, SendJobStatusDone, nil)
}

// MarkSendJobFailed closes a job with an error message
func (s *Store) MarkSendJobFailed(ctx context.Context, jobID uuid.UUID, reason string) error {
	return s.finishSendJob(ctx, jobID, SendJobStatusFailed, &reason)
}

func (s *Store) finishSendJob(ctx context.Context, jobID uuid.UUID, status SendJobStatus, reason *string) error {
	res, err := s.db.ExecContext(ctx, sqlFinishSendJob, jobID, status, reason)
	if err != nil {
		return fmt.Errorf("failed to mark send job %s: %w", status, err)
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return ErrNotFound
	}
	return nil
}

const sqlIncrementSendJobSentCount = `
UPDATE send_jobs
SET emails_sent_count = emails_sent_count + 1, updated_at = CURRENT_TIMESTAMP
WHERE id = $1
RETURNING` + sendJobColumns

// IncrementSendJobSentCount counts one more quota slot as used and returns the updated job
func (s *Store) IncrementSendJobSentCount(ctx context.Context, jobID uuid.UUID) (SendJob, error) {
	var job SendJob
	err := s.db.GetContext(ctx, &job, sqlIncrementSendJobSentCount, jobID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return SendJob{}, ErrNotFound
		}
		return SendJob{}, fmt.Errorf("failed to increment sent count: %w", err)
	}
	return job, nil
}

// dateOnly strips the clock part of t, keeping its calendar day in t's location
func dateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
