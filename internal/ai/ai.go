// Package ai holds the content generation and reply classification capabilities
// together with their deterministic fallbacks.
package ai

import (
	"context"
	"errors"
	"time"

	"outreach-server/internal/store"
)

// requestTimeout bounds a single provider call
const requestTimeout = 60 * time.Second

func withRequestTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, requestTimeout)
}

var (
	// ErrNoProvider is returned by a chain that has nothing to try
	ErrNoProvider = errors.New("no provider configured")
	// ErrNoSignal is returned by a classifier that cannot decide on a label
	ErrNoSignal = errors.New("no classification signal")
)

// ApplicationRequest describes the offer an application is written for
type ApplicationRequest struct {
	CandidateName  string
	CandidateEmail string
	JobTitle       string
	Company        string
	Country        string
	City           string
	Description    string
	OfferURL       string
}

// Content is a generated application email
type Content struct {
	Subject string
	Body    string
}

// ClassificationRequest is an inbound reply to classify
type ClassificationRequest struct {
	FromEmail       string
	Subject         string
	Body            string
	OriginalSubject string
}

// Classification is the label assigned to a reply
type Classification struct {
	Label      store.ResponseClassification
	Confidence float64
	Reasoning  string
}

// ContentGenerator writes application emails
type ContentGenerator interface {
	GenerateApplication(ctx context.Context, req ApplicationRequest) (Content, error)
}

// Classifier labels inbound replies
type Classifier interface {
	Classify(ctx context.Context, req ClassificationRequest) (Classification, error)
}
