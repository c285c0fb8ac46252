package dispatch

import (
	"context"
	"time"

	"outreach-server/internal/email"
	"outreach-server/internal/store"

	"github.com/google/uuid"
)

// Store is the persistence used by the dispatch worker
type Store interface {
	ListActiveSendJobs(ctx context.Context) ([]store.SendJob, error)
	GetGlobalSendConfig(ctx context.Context) (store.GlobalSendConfig, error)
	MarkSendJobRunning(ctx context.Context, jobID uuid.UUID) (store.SendJob, error)
	MarkSendJobDone(ctx context.Context, jobID uuid.UUID) error
	MarkSendJobFailed(ctx context.Context, jobID uuid.UUID, reason string) error
	IncrementSendJobSentCount(ctx context.Context, jobID uuid.UUID) (store.SendJob, error)
	GetSendProfileByAccountID(ctx context.Context, accountID uuid.UUID) (store.AccountSendProfile, error)
	GetAccountByID(ctx context.Context, accountID uuid.UUID) (store.Account, error)
	ReserveEmailSend(ctx context.Context, params store.ReserveEmailSendParams) (store.EmailSend, error)
	MarkEmailSendPendingReview(ctx context.Context, sendID uuid.UUID, content store.ContentSnapshot) error
	MarkEmailSendSent(ctx context.Context, sendID uuid.UUID, content store.ContentSnapshot, providerMessageID, threadID string, sentAt time.Time) error
	MarkEmailSendFailed(ctx context.Context, sendID uuid.UUID, reason string) error
}

// CandidateFinder picks the offers an account applies to next
type CandidateFinder interface {
	FindCandidates(ctx context.Context, account store.Account, limit int) ([]store.JobOffer, error)
}

// AttachmentSource resolves the files sent with every application of an account
type AttachmentSource interface {
	ForAccount(ctx context.Context, account store.Account) ([]email.Attachment, error)
}

// MailSender delivers an application from the account's mailbox
type MailSender interface {
	Send(ctx context.Context, account store.Account, msg email.Message) (email.SendResult, error)
}
