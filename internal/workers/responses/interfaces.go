package responses

//go:generate go run go.uber.org/mock/mockgen@latest -source=interfaces.go -destination=mocks_test.go -package=responses

import (
	"context"
	"time"

	"outreach-server/internal/email"
	"outreach-server/internal/store"

	"github.com/google/uuid"
)

// Store is the persistence the poller needs
type Store interface {
	ListActiveSendProfiles(ctx context.Context) ([]store.AccountSendProfile, error)
	GetAccountByID(ctx context.Context, accountID uuid.UUID) (store.Account, error)
	ListSentWithThread(ctx context.Context, accountID uuid.UUID, limit int) ([]store.EmailSend, error)
	EmailResponseExists(ctx context.Context, providerMessageID string) (bool, error)
	CreateEmailResponse(ctx context.Context, params store.CreateEmailResponseParams) (store.EmailResponse, error)
	RecordEmailSendResponses(ctx context.Context, sendID uuid.UUID, newReplies int, lastResponseAt time.Time) error
}

// Mailbox reads provider threads
type Mailbox interface {
	GetThread(ctx context.Context, account store.Account, threadID string) ([]email.ThreadMessage, error)
}

// Dispatcher hands a stored reply over for classification without waiting for it
type Dispatcher interface {
	Dispatch(ctx context.Context, responseID uuid.UUID)
}

// ClassificationStore is the persistence the classification service needs
type ClassificationStore interface {
	GetEmailResponseByID(ctx context.Context, responseID uuid.UUID) (store.EmailResponse, error)
	GetEmailSendByID(ctx context.Context, sendID uuid.UUID) (store.EmailSend, error)
	UpdateEmailResponseClassification(ctx context.Context, responseID uuid.UUID, classification store.ResponseClassification, confidence float64, reasoning string) error
	MarkEmailSendBounced(ctx context.Context, sendID uuid.UUID) error
}

// RecipientBlocker stops future sends to an address
type RecipientBlocker interface {
	Block(ctx context.Context, email, reason string) error
}

// Enqueuer puts a classification task on the background queue
type Enqueuer interface {
	EnqueueClassifyResponse(ctx context.Context, responseID uuid.UUID) error
}
