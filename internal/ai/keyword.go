package ai

import (
	"context"
	"strings"

	"outreach-server/internal/store"
)

type keywordRule struct {
	label    store.ResponseClassification
	keywords []string
}

// Rules are checked in order; the first rule with a hit wins.
var keywordRules = []keywordRule{
	{store.ClassificationBounce, []string{
		"delivery status notification", "undeliverable", "mail delivery failed", "delivery has failed",
		"address not found", "user unknown", "mailbox unavailable", "recipient address rejected",
	}},
	{store.ClassificationAutoReply, []string{
		"out of office", "automatic reply", "auto-reply", "autoreply", "on vacation",
		"away from the office", "currently out", "i am away", "limited access to email",
	}},
	{store.ClassificationNotInterested, []string{
		"not interested", "position has been filled", "no longer available", "unfortunately",
		"not moving forward", "other candidates", "not a fit", "regret to inform",
	}},
	{store.ClassificationInterested, []string{
		"interview", "schedule a call", "would like to meet", "interested in your profile",
		"let's talk", "next steps", "available for a call", "invite you",
	}},
	{store.ClassificationNeedsInfo, []string{
		"could you send", "please send", "can you provide", "more information", "salary expectations",
		"your availability", "portfolio", "references",
	}},
}

// KeywordClassifier assigns a label from keyword hits in the subject and body.
// It is deterministic and returns ErrNoSignal when nothing matches.
type KeywordClassifier struct{}

func (KeywordClassifier) Classify(_ context.Context, req ClassificationRequest) (Classification, error) {
	from := strings.ToLower(req.FromEmail)
	if strings.HasPrefix(from, "mailer-daemon@") || strings.HasPrefix(from, "postmaster@") {
		return Classification{
			Label:      store.ClassificationBounce,
			Confidence: 0.9,
			Reasoning:  "sent by a delivery system address",
		}, nil
	}

	text := strings.ToLower(req.Subject + "\n" + req.Body)
	for _, rule := range keywordRules {
		for _, kw := range rule.keywords {
			if strings.Contains(text, kw) {
				return Classification{
					Label:      rule.label,
					Confidence: 0.5,
					Reasoning:  "matched keyword " + strings.TrimSpace(kw),
				}, nil
			}
		}
	}
	return Classification{}, ErrNoSignal
}
