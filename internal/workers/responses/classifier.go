package responses

import (
	"context"
	"errors"
	"fmt"

	"outreach-server/internal/ai"
	"outreach-server/internal/metrics"
	"outreach-server/internal/observability"
	"outreach-server/internal/store"

	"github.com/google/uuid"
)

const bounceReason = "bounced"

// ClassificationService labels stored replies. It serves as both the in-process
// pool processor and the queue worker handler.
type ClassificationService struct {
	store      ClassificationStore
	classifier ai.Classifier
	blocker    RecipientBlocker
	logger     *observability.Logger
}

func NewClassificationService(st ClassificationStore, classifier ai.Classifier, blocker RecipientBlocker, logger *observability.Logger) *ClassificationService {
	return &ClassificationService{
		store:      st,
		classifier: classifier,
		blocker:    blocker,
		logger:     logger,
	}
}

func (s *ClassificationService) Name() string { return "response-classifier" }

func (s *ClassificationService) Process(ctx context.Context, responseID uuid.UUID) error {
	return s.Classify(ctx, responseID)
}

// Classify labels one reply. A reply no classifier can decide on stays UNCLASSIFIED
// and is not an error. Already classified replies are left untouched.
func (s *ClassificationService) Classify(ctx context.Context, responseID uuid.UUID) error {
	ctx = observability.WithFields(ctx, observability.Field{Key: "response_id", Value: responseID})

	response, err := s.store.GetEmailResponseByID(ctx, responseID)
	if err != nil {
		return fmt.Errorf("failed to load reply: %w", err)
	}
	if response.Classification != store.ClassificationUnclassified && response.Classification != "" {
		s.logger.Debug(ctx, "reply already classified")
		return nil
	}

	send, err := s.store.GetEmailSendByID(ctx, response.EmailSendID)
	hasSend := err == nil
	if err != nil {
		s.logger.WarnWithError(ctx, "classifying without the original application", err)
	}

	result, err := s.classifier.Classify(ctx, ai.ClassificationRequest{
		FromEmail:       response.FromEmail,
		Subject:         response.Subject,
		Body:            firstNonEmpty(response.Body, response.Snippet),
		OriginalSubject: send.Subject,
	})
	if err != nil {
		if errors.Is(err, ai.ErrNoSignal) {
			s.logger.Debug(ctx, "no classifier could label the reply")
		} else {
			s.logger.WarnWithError(ctx, "classification failed, reply stays unclassified", err)
		}
		return nil
	}
	if !result.Label.Valid() || result.Label == store.ClassificationUnclassified {
		s.logger.Warn(ctx, fmt.Sprintf("classifier returned unusable label %q", result.Label))
		return nil
	}

	if err := s.store.UpdateEmailResponseClassification(ctx, responseID, result.Label, result.Confidence, result.Reasoning); err != nil {
		return fmt.Errorf("failed to store classification: %w", err)
	}
	metrics.IncResponsesClassified(string(result.Label))
	s.logger.Info(ctx, fmt.Sprintf("reply classified as %s", result.Label))

	if result.Label == store.ClassificationBounce && hasSend {
		s.handleBounce(ctx, send)
	}
	return nil
}

func (s *ClassificationService) handleBounce(ctx context.Context, send store.EmailSend) {
	if err := s.store.MarkEmailSendBounced(ctx, send.ID); err != nil && !errors.Is(err, store.ErrNotFound) {
		s.logger.Error(ctx, "failed to mark application bounced", err)
	}
	if s.blocker == nil {
		return
	}
	if err := s.blocker.Block(ctx, send.RecipientEmail, bounceReason); err != nil {
		s.logger.Error(ctx, "failed to block bounced recipient", err)
	}
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
