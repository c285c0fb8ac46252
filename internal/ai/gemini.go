package ai

import (
	"context"
	"fmt"
	"strings"

	"outreach-server/internal/observability"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// Gemini generates and classifies with Google's Gemini models
type Gemini struct {
	logger *observability.Logger
	apiKey string
	model  string
}

func NewGemini(logger *observability.Logger, apiKey, model string) *Gemini {
	return &Gemini{
		logger: logger,
		apiKey: apiKey,
		model:  model,
	}
}

func (g *Gemini) GenerateApplication(ctx context.Context, req ApplicationRequest) (Content, error) {
	raw, err := g.generate(ctx, applicationPrompt(req), 0.7)
	if err != nil {
		return Content{}, err
	}
	return parseContent(raw)
}

func (g *Gemini) Classify(ctx context.Context, req ClassificationRequest) (Classification, error) {
	raw, err := g.generate(ctx, classificationPrompt(req), 0)
	if err != nil {
		return Classification{}, err
	}
	return parseClassification(raw)
}

func (g *Gemini) generate(ctx context.Context, prompt string, temperature float32) (string, error) {
	ctx, cancel := withRequestTimeout(ctx)
	defer cancel()

	c, err := genai.NewClient(ctx, option.WithAPIKey(g.apiKey))
	if err != nil {
		return "", fmt.Errorf("failed to create Gemini client: %w", err)
	}
	defer c.Close()

	model := c.GenerativeModel(g.model)
	model.SetTemperature(temperature)
	model.ResponseMIMEType = "application/json"

	resp, err := model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("failed to generate content: %w", err)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("no content returned from Gemini")
	}

	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok {
			sb.WriteString(string(text))
		}
	}
	if sb.Len() == 0 {
		return "", fmt.Errorf("unexpected response format")
	}
	return sb.String(), nil
}
