package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// ReserveEmailSendParams represents parameters for reserving an (account, offer) pair
type ReserveEmailSendParams struct {
	AccountID      uuid.UUID
	OfferID        uuid.UUID
	SendJobID      uuid.UUID
	RecipientEmail string
}

// ContentSnapshot is the application content as it was sent or queued for review
type ContentSnapshot struct {
	Subject         string
	Body            string
	AIGenerated     bool
	AttachmentNames []string
}

const emailSendColumns = `
id, account_id, offer_id, send_job_id, recipient_email, status, subject, body, ai_generated,
attachment_names, provider_message_id, thread_id, error_message, response_count, last_response_at,
sent_at, created_at, updated_at`

const sqlReserveEmailSend = `
INSERT INTO email_sends (account_id, offer_id, send_job_id, recipient_email, status)
VALUES ($1, $2, $3, $4, 'RESERVED')
RETURNING` + emailSendColumns

// ReserveEmailSend inserts a RESERVED record. The unique constraints on (account, offer) and
// (account, recipient) make this the single point where concurrent dispatchers are arbitrated;
// the loser gets ErrAlreadyExists.
func (s *Store) ReserveEmailSend(ctx context.Context, params ReserveEmailSendParams) (EmailSend, error) {
	var send EmailSend
	err := s.db.GetContext(ctx, &send, sqlReserveEmailSend,
		params.AccountID,
		params.OfferID,
		params.SendJobID,
		params.RecipientEmail)
	if err != nil {
		if isUniqueViolation(err, "") {
			return EmailSend{}, ErrAlreadyExists
		}
		return EmailSend{}, fmt.Errorf("failed to reserve email send: %w", err)
	}
	return send, nil
}

const sqlGetEmailSendByID = `SELECT` + emailSendColumns + `
FROM email_sends
WHERE id = $1
`

// GetEmailSendByID retrieves an email send by ID
func (s *Store) GetEmailSendByID(ctx context.Context, sendID uuid.UUID) (EmailSend, error) {
	var send EmailSend
	err := s.db.GetContext(ctx, &send, sqlGetEmailSendByID, sendID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return EmailSend{}, ErrNotFound
		}
		return EmailSend{}, fmt.Errorf("failed to get email send: %w", err)
	}
	return send, nil
}

const sqlMarkEmailSendPendingReview = `
UPDATE email_sends
SET status = 'PENDING_REVIEW', subject = $2, body = $3, ai_generated = $4, attachment_names = $5,
    updated_at = CURRENT_TIMESTAMP
WHERE id = $1
`

// MarkEmailSendPendingReview stores the content snapshot and parks the record for manual approval
func (s *Store) MarkEmailSendPendingReview(ctx context.Context, sendID uuid.UUID, content ContentSnapshot) error {
	return s.execOne(ctx, "mark email send pending review", sqlMarkEmailSendPendingReview,
		sendID, content.Subject, content.Body, content.AIGenerated, StringArray(content.AttachmentNames))
}

const sqlMarkEmailSendSent = `
UPDATE email_sends
SET status = 'SENT', subject = $2, body = $3, ai_generated = $4, attachment_names = $5,
    provider_message_id = $6, thread_id = $7, sent_at = $8, updated_at = CURRENT_TIMESTAMP
WHERE id = $1
`

// MarkEmailSendSent records a successful transport handoff
func (s *Store) MarkEmailSendSent(ctx context.Context, sendID uuid.UUID, content ContentSnapshot, providerMessageID, threadID string, sentAt time.Time) error {
	return s.execOne(ctx, "mark email send sent", sqlMarkEmailSendSent,
		sendID, content.Subject, content.Body, content.AIGenerated, StringArray(content.AttachmentNames),
		nullableString(providerMessageID), nullableString(threadID), sentAt)
}

const sqlMarkEmailSendFailed = `
UPDATE email_sends
SET status = 'FAILED', error_message = $2, updated_at = CURRENT_TIMESTAMP
WHERE id = $1
`

// MarkEmailSendFailed records a terminal failure for the record
func (s *Store) MarkEmailSendFailed(ctx context.Context, sendID uuid.UUID, reason string) error {
	return s.execOne(ctx, "mark email send failed", sqlMarkEmailSendFailed, sendID, reason)
}

const sqlMarkEmailSendBounced = `
UPDATE email_sends
SET status = 'BOUNCED', updated_at = CURRENT_TIMESTAMP
WHERE id = $1
`

// MarkEmailSendBounced flags the record after a bounce reply was classified
func (s *Store) MarkEmailSendBounced(ctx context.Context, sendID uuid.UUID) error {
	return s.execOne(ctx, "mark email send bounced", sqlMarkEmailSendBounced, sendID)
}

const sqlListSentWithThread = `SELECT` + emailSendColumns + `
FROM email_sends
WHERE account_id = $1 AND status = 'SENT' AND thread_id IS NOT NULL AND thread_id <> ''
ORDER BY sent_at DESC NULLS LAST
LIMIT $2
`

// ListSentWithThread returns the most recent sent records of an account that can be polled for replies
func (s *Store) ListSentWithThread(ctx context.Context, accountID uuid.UUID, limit int) ([]EmailSend, error) {
	var sends []EmailSend
	err := s.db.SelectContext(ctx, &sends, sqlListSentWithThread, accountID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list sent email sends: %w", err)
	}
	return sends, nil
}

const sqlRecordEmailSendResponses = `
UPDATE email_sends
SET response_count = response_count + $2,
    last_response_at = GREATEST(COALESCE(last_response_at, $3), $3),
    updated_at = CURRENT_TIMESTAMP
WHERE id = $1
`

// RecordEmailSendResponses adds newly found replies to the record's response counters
func (s *Store) RecordEmailSendResponses(ctx context.Context, sendID uuid.UUID, newReplies int, lastResponseAt time.Time) error {
	return s.execOne(ctx, "record email send responses", sqlRecordEmailSendResponses, sendID, newReplies, lastResponseAt)
}

func (s *Store) execOne(ctx context.Context, op, query string, args ...interface{}) error {
	res, err := s.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to %s: %w", op, err)
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

func nullableString(v string) *string {
	if v == "" {
		return nil
	}
	return &v
}
