package warmup

//go:generate go run go.uber.org/mock/mockgen@latest -source=interfaces.go -destination=mocks_test.go -package=warmup

import (
	"context"
	"time"

	"outreach-server/internal/store"

	"github.com/google/uuid"
)

// Store is the persistence used by the warmup scheduler
type Store interface {
	ListActiveSendProfiles(ctx context.Context) ([]store.AccountSendProfile, error)
	GetSendJobForDay(ctx context.Context, accountID uuid.UUID, day time.Time) (store.SendJob, error)
	CreateDailySendJob(ctx context.Context, params store.CreateDailySendJobParams) (store.SendJob, error)
}
