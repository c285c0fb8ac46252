package jobs

import (
	"context"
	"errors"
	"fmt"

	"outreach-server/internal/config"
	"outreach-server/internal/observability"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"
)

// Client handles enqueueing background jobs
type Client struct {
	client *asynq.Client
	logger *observability.Logger
}

// RedisOpt builds the asynq connection options from the Redis config
func RedisOpt(cfg config.RedisConfig) asynq.RedisClientOpt {
	return asynq.RedisClientOpt{
		Addr:     cfg.Addr(),
		Password: cfg.Password,
		DB:       cfg.DB,
	}
}

// NewClient creates a new job client
func NewClient(opt asynq.RedisConnOpt, logger *observability.Logger) *Client {
	return &Client{
		client: asynq.NewClient(opt),
		logger: logger,
	}
}

// Close closes the client connection
func (c *Client) Close() error {
	return c.client.Close()
}

// EnqueueClassifyResponse queues a stored reply for classification
func (c *Client) EnqueueClassifyResponse(ctx context.Context, responseID uuid.UUID) error {
	ctx = observability.WithFields(ctx, observability.Field{Key: "response_id", Value: responseID})

	task, err := NewClassifyResponseTask(ClassifyResponsePayload{ResponseID: responseID})
	if err != nil {
		c.logger.Error(ctx, "failed to create classify task", err)
		return fmt.Errorf("failed to create classify task: %w", err)
	}

	info, err := c.client.EnqueueContext(ctx, task)
	if errors.Is(err, asynq.ErrTaskIDConflict) {
		c.logger.Debug(ctx, "classify task already queued")
		return nil
	}
	if err != nil {
		c.logger.Error(ctx, "failed to enqueue classify task", err)
		return fmt.Errorf("failed to enqueue classify task: %w", err)
	}

	c.logger.Info(ctx, fmt.Sprintf("enqueued classify task: %s (queue: %s)", info.ID, info.Queue))
	return nil
}
