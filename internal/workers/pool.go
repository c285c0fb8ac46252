package workers

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"outreach-server/internal/observability"

	"github.com/google/uuid"
)

var (
	ErrPoolNotStarted   = errors.New("worker pool not started")
	ErrPoolShuttingDown = errors.New("worker pool is shutting down")
	ErrPoolFull         = errors.New("worker pool queue is full")
)

// ProcessingResult represents the outcome of one processed item.
type ProcessingResult struct {
	ID    uuid.UUID
	Error error
}

// ResultCallback is called after each item is processed.
type ResultCallback func(result ProcessingResult)

// WorkerPoolConfig holds configuration for the worker pool.
type WorkerPoolConfig struct {
	// NumWorkers bounds how many items are processed at once.
	NumWorkers int

	// QueueSize is the size of the submission buffer.
	// If the queue is full, Submit() will block.
	QueueSize int

	// DrainTimeout is the maximum time to wait for queued items
	// during graceful shutdown.
	DrainTimeout time.Duration

	// OnResult is called after each item is processed (optional).
	OnResult ResultCallback
}

// DefaultWorkerPoolConfig returns sensible defaults for a worker pool.
func DefaultWorkerPoolConfig() WorkerPoolConfig {
	return WorkerPoolConfig{
		NumWorkers:   4,
		QueueSize:    100,
		DrainTimeout: 30 * time.Second,
	}
}

type pool struct {
	config    WorkerPoolConfig
	processor Processor
	logger    *observability.Logger

	items chan uuid.UUID
	wg    sync.WaitGroup

	mu       sync.Mutex
	started  bool
	draining bool
	stopped  bool
	cancelFn context.CancelFunc
}

// NewWorkerPool creates a new worker pool around processor.
func NewWorkerPool(config WorkerPoolConfig, processor Processor, logger *observability.Logger) WorkerPool {
	defaults := DefaultWorkerPoolConfig()
	if config.NumWorkers <= 0 {
		config.NumWorkers = defaults.NumWorkers
	}
	if config.QueueSize <= 0 {
		config.QueueSize = defaults.QueueSize
	}
	if config.DrainTimeout <= 0 {
		config.DrainTimeout = defaults.DrainTimeout
	}

	return &pool{
		config:    config,
		processor: processor,
		logger:    logger,
		items:     make(chan uuid.UUID, config.QueueSize),
	}
}

func (p *pool) Start(ctx context.Context) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.started {
		return fmt.Errorf("worker pool already started")
	}
	if p.stopped {
		return fmt.Errorf("worker pool already stopped")
	}

	workerCtx, cancel := context.WithCancel(ctx)
	p.cancelFn = cancel
	p.started = true

	for i := 0; i < p.config.NumWorkers; i++ {
		p.wg.Add(1)
		go p.worker(workerCtx, i)
	}

	p.logger.Info(ctx, fmt.Sprintf("Started %d workers for %s processor",
		p.config.NumWorkers, p.processor.Name()))
	return nil
}

func (p *pool) Submit(ctx context.Context, id uuid.UUID) error {
	// The lock is held while sending so Drain cannot close the channel underneath us.
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.started {
		return ErrPoolNotStarted
	}
	if p.draining || p.stopped {
		return ErrPoolShuttingDown
	}

	select {
	case p.items <- id:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (p *pool) TrySubmit(id uuid.UUID) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.started {
		return ErrPoolNotStarted
	}
	if p.draining || p.stopped {
		return ErrPoolShuttingDown
	}

	select {
	case p.items <- id:
		return nil
	default:
		return ErrPoolFull
	}
}

func (p *pool) Drain(ctx context.Context) error {
	p.mu.Lock()
	if !p.started {
		p.mu.Unlock()
		return ErrPoolNotStarted
	}
	if p.draining || p.stopped {
		p.mu.Unlock()
		return fmt.Errorf("worker pool already draining")
	}
	p.draining = true
	close(p.items)
	p.mu.Unlock()

	p.logger.Info(ctx, fmt.Sprintf("Draining worker pool for %s processor, %d items queued",
		p.processor.Name(), len(p.items)))

	done := make(chan struct{})
	go func() {
		p.wg.Wait()
		close(done)
	}()

	drainCtx, cancel := context.WithTimeout(ctx, p.config.DrainTimeout)
	defer cancel()

	select {
	case <-done:
		p.logger.Info(ctx, fmt.Sprintf("Drained worker pool for %s processor", p.processor.Name()))
		return nil
	case <-drainCtx.Done():
		p.logger.Warn(ctx, fmt.Sprintf("Drain timeout exceeded for %s processor, forcing shutdown",
			p.processor.Name()))
		p.Stop()
		return fmt.Errorf("drain timeout exceeded")
	}
}

func (p *pool) Stop() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.stopped {
		return
	}
	p.stopped = true

	if p.cancelFn != nil {
		p.cancelFn()
	}
	if !p.draining {
		close(p.items)
	}
}

func (p *pool) worker(ctx context.Context, workerID int) {
	defer p.wg.Done()

	workerCtx := observability.WithFields(ctx,
		observability.Field{Key: "worker_id", Value: workerID},
		observability.Field{Key: "processor", Value: p.processor.Name()},
	)

	for {
		select {
		case <-ctx.Done():
			return
		case id, ok := <-p.items:
			if !ok {
				return
			}
			p.process(workerCtx, id)
		}
	}
}

func (p *pool) process(ctx context.Context, id uuid.UUID) {
	ctx = observability.WithFields(ctx, observability.Field{Key: "item_id", Value: id})

	var err error
	func() {
		defer func() {
			if r := recover(); r != nil {
				err = fmt.Errorf("panic: %+v", r)
			}
		}()
		err = p.processor.Process(ctx, id)
	}()

	if err != nil {
		p.logger.Error(ctx, fmt.Sprintf("%s processor failed", p.processor.Name()), err)
	} else {
		p.logger.Debug(ctx, fmt.Sprintf("%s processor succeeded", p.processor.Name()))
	}

	if p.config.OnResult != nil {
		p.config.OnResult(ProcessingResult{ID: id, Error: err})
	}
}
