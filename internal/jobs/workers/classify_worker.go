package workers

import (
	"context"
	"fmt"

	"outreach-server/internal/jobs"
	"outreach-server/internal/observability"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"
)

// ResponseClassifier classifies one stored reply
type ResponseClassifier interface {
	Classify(ctx context.Context, responseID uuid.UUID) error
}

// ClassifyWorker handles response classification tasks
type ClassifyWorker struct {
	classifier ResponseClassifier
	logger     *observability.Logger
}

// NewClassifyWorker creates a new classify worker
func NewClassifyWorker(classifier ResponseClassifier, logger *observability.Logger) *ClassifyWorker {
	return &ClassifyWorker{
		classifier: classifier,
		logger:     logger,
	}
}

// Register routes classification tasks of mux to the worker
func (w *ClassifyWorker) Register(mux *asynq.ServeMux) {
	mux.HandleFunc(jobs.TypeResponseClassify, w.ProcessClassifyTask)
}

// ProcessClassifyTask processes a classification task (for Asynq)
func (w *ClassifyWorker) ProcessClassifyTask(ctx context.Context, task *asynq.Task) error {
	payload, err := jobs.ParseClassifyResponsePayload(task)
	if err != nil {
		w.logger.Error(ctx, "invalid classify task payload", err)
		return fmt.Errorf("%v: %w", err, asynq.SkipRetry)
	}

	ctx = observability.WithFields(ctx, observability.Field{Key: "response_id", Value: payload.ResponseID})
	if err := w.classifier.Classify(ctx, payload.ResponseID); err != nil {
		w.logger.Error(ctx, "failed to classify response", err)
		return fmt.Errorf("failed to classify response: %w", err)
	}
	return nil
}
