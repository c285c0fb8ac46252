package mail

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"outreach-server/internal/observability"

	"github.com/resendlabs/resend-go"
)

var ErrMissingRecipient = errors.New("recipient address is required")

// sendFunc delivers one request and returns the Resend message id
type sendFunc func(params *resend.SendEmailRequest) (string, error)

// ResendClient sends applications through the Resend API for accounts without a Gmail mailbox
type ResendClient struct {
	send   sendFunc
	logger *observability.Logger
}

func NewResendClient(apiKey string, logger *observability.Logger) (*ResendClient, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("Resend API key is required")
	}
	client := resend.NewClient(apiKey)
	if client == nil {
		return nil, fmt.Errorf("failed to create Resend client")
	}
	send := func(params *resend.SendEmailRequest) (string, error) {
		res, err := client.Emails.Send(params)
		if err != nil {
			return "", err
		}
		return res.Id, nil
	}
	return &ResendClient{send: send, logger: logger}, nil
}

// SendEmail sends a message with both text and HTML bodies and returns the Resend message id.
// Resend is called synchronously; ctx only carries log fields.
func (c *ResendClient) SendEmail(ctx context.Context, from, to, subject, textContent, htmlContent string) (string, error) {
	to = strings.TrimSpace(to)
	if to == "" {
		return "", ErrMissingRecipient
	}
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "email_to", Value: to},
		observability.Field{Key: "email_subject", Value: subject},
	)

	id, err := c.send(&resend.SendEmailRequest{
		From:    from,
		To:      []string{to},
		Subject: subject,
		Text:    textContent,
		Html:    htmlContent,
	})
	if err != nil {
		c.logger.Error(ctx, "failed to send email", err)
		return "", fmt.Errorf("resend: %w", err)
	}

	c.logger.Info(ctx, "email sent via Resend")
	return id, nil
}
