package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// CreateEmailResponseParams represents parameters for recording a reply
type CreateEmailResponseParams struct {
	EmailSendID       uuid.UUID
	AccountID         uuid.UUID
	ProviderMessageID string
	ThreadID          string
	FromEmail         string
	Subject           string
	Snippet           string
	Body              string
	ReceivedAt        time.Time
	InReplyTo         string
	References        string
}

const emailResponseColumns = `
id, email_send_id, account_id, provider_message_id, thread_id, from_email, subject, snippet, body,
received_at, classification, confidence, reasoning, is_read, in_reply_to, "references",
classified_at, created_at`

const sqlEmailResponseExists = `
SELECT EXISTS (SELECT 1 FROM email_responses WHERE provider_message_id = $1)
`

// EmailResponseExists reports whether a reply with this provider message id was already recorded
func (s *Store) EmailResponseExists(ctx context.Context, providerMessageID string) (bool, error) {
	var exists bool
	if err := s.db.GetContext(ctx, &exists, sqlEmailResponseExists, providerMessageID); err != nil {
		return false, fmt.Errorf("failed to check email response: %w", err)
	}
	return exists, nil
}

const sqlCreateEmailResponse = `
INSERT INTO email_responses (email_send_id, account_id, provider_message_id, thread_id, from_email,
    subject, snippet, body, received_at, in_reply_to, "references", classification)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, 'UNCLASSIFIED')
ON CONFLICT (provider_message_id) DO NOTHING
RETURNING` + emailResponseColumns

// CreateEmailResponse records an UNCLASSIFIED reply.
// Returns ErrAlreadyExists when the provider message id is already known.
func (s *Store) CreateEmailResponse(ctx context.Context, params CreateEmailResponseParams) (EmailResponse, error) {
	var response EmailResponse
	err := s.db.GetContext(ctx, &response, sqlCreateEmailResponse,
		params.EmailSendID,
		params.AccountID,
		params.ProviderMessageID,
		params.ThreadID,
		params.FromEmail,
		params.Subject,
		params.Snippet,
		params.Body,
		params.ReceivedAt,
		params.InReplyTo,
		params.References)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return EmailResponse{}, ErrAlreadyExists
		}
		return EmailResponse{}, fmt.Errorf("failed to create email response: %w", err)
	}
	return response, nil
}

const sqlGetEmailResponseByID = `SELECT` + emailResponseColumns + `
FROM email_responses
WHERE id = $1
`

// GetEmailResponseByID retrieves a reply by ID
func (s *Store) GetEmailResponseByID(ctx context.Context, responseID uuid.UUID) (EmailResponse, error) {
	var response EmailResponse
	err := s.db.GetContext(ctx, &response, sqlGetEmailResponseByID, responseID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return EmailResponse{}, ErrNotFound
		}
		return EmailResponse{}, fmt.Errorf("failed to get email response: %w", err)
	}
	return response, nil
}

const sqlUpdateEmailResponseClassification = `
UPDATE email_responses
SET classification = $2, confidence = $3, reasoning = $4, classified_at = CURRENT_TIMESTAMP
WHERE id = $1
`

// UpdateEmailResponseClassification stores the label produced by a classifier
func (s *Store) UpdateEmailResponseClassification(ctx context.Context, responseID uuid.UUID, classification ResponseClassification, confidence float64, reasoning string) error {
	return s.execOne(ctx, "update email response classification", sqlUpdateEmailResponseClassification,
		responseID, classification, confidence, reasoning)
}
