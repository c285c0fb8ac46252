package responses

import (
	"context"

	"outreach-server/internal/observability"
	"outreach-server/internal/workers"

	"github.com/google/uuid"
)

// PoolDispatcher classifies replies in-process on a bounded worker pool
type PoolDispatcher struct {
	pool   workers.WorkerPool
	logger *observability.Logger
}

func NewPoolDispatcher(pool workers.WorkerPool, logger *observability.Logger) *PoolDispatcher {
	return &PoolDispatcher{pool: pool, logger: logger}
}

// Dispatch never waits for the classifiers. When the queue is full the reply is
// dropped and stays UNCLASSIFIED.
func (d *PoolDispatcher) Dispatch(ctx context.Context, responseID uuid.UUID) {
	if err := d.pool.TrySubmit(responseID); err != nil {
		ctx = observability.WithFields(ctx, observability.Field{Key: "email_response_id", Value: responseID})
		d.logger.WarnWithError(ctx, "reply not submitted for classification", err)
	}
}

// QueueDispatcher classifies replies through the background task queue
type QueueDispatcher struct {
	queue  Enqueuer
	logger *observability.Logger
}

func NewQueueDispatcher(queue Enqueuer, logger *observability.Logger) *QueueDispatcher {
	return &QueueDispatcher{queue: queue, logger: logger}
}

func (d *QueueDispatcher) Dispatch(ctx context.Context, responseID uuid.UUID) {
	if err := d.queue.EnqueueClassifyResponse(ctx, responseID); err != nil {
		d.logger.WarnWithError(ctx, "reply not queued for classification", err)
	}
}
