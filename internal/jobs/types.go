package jobs

import (
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"
)

// Job type constants
const (
	TypeResponseClassify = "response:classify"
)

// Queue names
const (
	QueueDefault = "default"
	QueueLow     = "low"
)

// ClassifyResponsePayload identifies the stored reply to classify
type ClassifyResponsePayload struct {
	ResponseID uuid.UUID `json:"response_id"`
}

// NewClassifyResponseTask creates a new classification task. The task id is the
// response id so a reply is only queued once.
func NewClassifyResponseTask(payload ClassifyResponsePayload) (*asynq.Task, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TypeResponseClassify, data,
		asynq.Queue(QueueDefault),
		asynq.MaxRetry(3),
		asynq.TaskID(fmt.Sprintf("classify:%s", payload.ResponseID)),
	), nil
}

// ParseClassifyResponsePayload decodes the payload of a classification task
func ParseClassifyResponsePayload(task *asynq.Task) (ClassifyResponsePayload, error) {
	var payload ClassifyResponsePayload
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		return payload, fmt.Errorf("failed to unmarshal classify payload: %w", err)
	}
	if payload.ResponseID == uuid.Nil {
		return payload, fmt.Errorf("classify payload has no response id")
	}
	return payload, nil
}
