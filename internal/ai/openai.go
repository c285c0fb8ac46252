package ai

import (
	"context"
	"errors"
	"fmt"

	"outreach-server/internal/observability"

	"github.com/openai/openai-go"
	openaiOption "github.com/openai/openai-go/option"
)

// OpenAI generates and classifies with OpenAI chat models
type OpenAI struct {
	logger *observability.Logger
	apiKey string
	model  string
}

func NewOpenAI(logger *observability.Logger, apiKey, model string) *OpenAI {
	return &OpenAI{
		logger: logger,
		apiKey: apiKey,
		model:  model,
	}
}

func (o *OpenAI) GenerateApplication(ctx context.Context, req ApplicationRequest) (Content, error) {
	raw, err := o.complete(ctx, applicationPrompt(req))
	if err != nil {
		return Content{}, err
	}
	return parseContent(raw)
}

func (o *OpenAI) Classify(ctx context.Context, req ClassificationRequest) (Classification, error) {
	raw, err := o.complete(ctx, classificationPrompt(req))
	if err != nil {
		return Classification{}, err
	}
	return parseClassification(raw)
}

func (o *OpenAI) complete(ctx context.Context, prompt string) (string, error) {
	if o.apiKey == "" {
		return "", errors.New("OpenAI API key not set")
	}
	client := openai.NewClient(
		openaiOption.WithAPIKey(o.apiKey),
	)

	ctx, cancel := withRequestTimeout(ctx)
	defer cancel()

	resp, err := client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage("You answer with a single JSON object."),
			openai.UserMessage(prompt),
		},
		Model: openai.ChatModel(o.model),
	})
	if err != nil {
		return "", fmt.Errorf("failed to create chat completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("no choices returned from OpenAI")
	}
	return resp.Choices[0].Message.Content, nil
}
