package workers

import (
	"context"

	"github.com/google/uuid"
)

// Processor handles one submitted item.
// Implementations should be idempotent as an item may be submitted more than once.
type Processor interface {
	// Process handles a single item identified by id.
	Process(ctx context.Context, id uuid.UUID) error

	// Name returns the processor name for logging.
	Name() string
}

// WorkerPool runs a Processor on a bounded number of goroutines.
type WorkerPool interface {
	// Start launches the workers.
	Start(ctx context.Context) error

	// Submit queues an item for processing.
	// Blocks while the queue is full unless ctx is done.
	Submit(ctx context.Context, id uuid.UUID) error

	// TrySubmit queues an item without waiting, returning ErrPoolFull when the queue is full.
	TrySubmit(id uuid.UUID) error

	// Drain stops accepting new items and waits for queued ones to complete.
	Drain(ctx context.Context) error

	// Stop immediately stops all workers.
	Stop()
}
