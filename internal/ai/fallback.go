package ai

import (
	"context"
	"fmt"
	"strings"
)

// FallbackTemplate renders a fixed application email from the offer fields.
// It is deterministic and never fails, so it backs every generator chain.
type FallbackTemplate struct{}

func (FallbackTemplate) GenerateApplication(_ context.Context, req ApplicationRequest) (Content, error) {
	title := strings.TrimSpace(req.JobTitle)
	if title == "" {
		title = "the open position"
	}
	company := strings.TrimSpace(req.Company)

	subject := "Application for " + title
	if company != "" {
		subject += " at " + company
	}

	greeting := "Dear Hiring Team,"
	if company != "" {
		greeting = fmt.Sprintf("Dear %s Hiring Team,", company)
	}

	var body strings.Builder
	body.WriteString(greeting)
	body.WriteString("\n\n")
	fmt.Fprintf(&body, "I am writing to apply for %s", title)
	if loc := location(req.City, req.Country); loc != "" {
		fmt.Fprintf(&body, " in %s", loc)
	}
	body.WriteString(". My CV is attached for your consideration.\n\n")
	body.WriteString("I would welcome the opportunity to discuss how my experience fits your needs.\n\n")
	body.WriteString("Kind regards,\n")
	if name := strings.TrimSpace(req.CandidateName); name != "" {
		body.WriteString(name)
		body.WriteString("\n")
	}
	if email := strings.TrimSpace(req.CandidateEmail); email != "" {
		body.WriteString(email)
		body.WriteString("\n")
	}

	return Content{Subject: subject, Body: body.String()}, nil
}
