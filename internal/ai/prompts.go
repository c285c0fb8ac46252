package ai

import (
	"encoding/json"
	"fmt"
	"strings"

	"outreach-server/internal/store"
)

const maxPromptBody = 4000

func applicationPrompt(req ApplicationRequest) string {
	return fmt.Sprintf(`Write a short, professional job application email.
Respond with a JSON object {"subject": "...", "body": "..."} and nothing else. The body is plain text.

Candidate: %s
Position: %s
Company: %s
Location: %s
Offer description:
%s`,
		req.CandidateName,
		req.JobTitle,
		req.Company,
		location(req.City, req.Country),
		truncate(req.Description, maxPromptBody))
}

func classificationPrompt(req ClassificationRequest) string {
	return fmt.Sprintf(`Classify the reply to a job application into exactly one label:
INTERESTED, NOT_INTERESTED, NEEDS_INFO, AUTO_REPLY, BOUNCE.
Respond with a JSON object {"label": "...", "confidence": 0.0-1.0, "reasoning": "..."} and nothing else.

Original subject: %s
From: %s
Subject: %s
Body:
%s`,
		req.OriginalSubject,
		req.FromEmail,
		req.Subject,
		truncate(req.Body, maxPromptBody))
}

type contentJSON struct {
	Subject string `json:"subject"`
	Body    string `json:"body"`
}

type classificationJSON struct {
	Label      string  `json:"label"`
	Confidence float64 `json:"confidence"`
	Reasoning  string  `json:"reasoning"`
}

// parseContent extracts the JSON object from a model answer
func parseContent(raw string) (Content, error) {
	var c contentJSON
	if err := json.Unmarshal([]byte(extractJSON(raw)), &c); err != nil {
		return Content{}, fmt.Errorf("failed to parse generated content: %w", err)
	}
	c.Subject = strings.TrimSpace(c.Subject)
	c.Body = strings.TrimSpace(c.Body)
	if c.Subject == "" || c.Body == "" {
		return Content{}, fmt.Errorf("generated content is incomplete")
	}
	return Content{Subject: c.Subject, Body: c.Body}, nil
}

func parseClassification(raw string) (Classification, error) {
	var c classificationJSON
	if err := json.Unmarshal([]byte(extractJSON(raw)), &c); err != nil {
		return Classification{}, fmt.Errorf("failed to parse classification: %w", err)
	}
	label := store.ResponseClassification(strings.ToUpper(strings.TrimSpace(c.Label)))
	if !label.Valid() || label == store.ClassificationUnclassified {
		return Classification{}, fmt.Errorf("unknown classification label %q", c.Label)
	}
	confidence := c.Confidence
	if confidence < 0 {
		confidence = 0
	}
	if confidence > 1 {
		confidence = 1
	}
	return Classification{Label: label, Confidence: confidence, Reasoning: strings.TrimSpace(c.Reasoning)}, nil
}

// extractJSON trims markdown fences and any text around the outermost object
func extractJSON(raw string) string {
	start := strings.Index(raw, "{")
	end := strings.LastIndex(raw, "}")
	if start < 0 || end < start {
		return raw
	}
	return raw[start : end+1]
}

func location(city, country string) string {
	switch {
	case city != "" && country != "":
		return city + ", " + country
	case city != "":
		return city
	default:
		return country
	}
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
