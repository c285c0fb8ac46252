package email

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"outreach-server/internal/observability"
	"outreach-server/internal/store"

	"github.com/emersion/go-message/mail"
)

var (
	ErrInvalidEmailAddress = errors.New("invalid email address")
	ErrSendingEmail        = errors.New("error sending email")
	ErrNoTransport         = errors.New("no mail transport configured for account")
	ErrThreadsUnsupported  = errors.New("mail provider does not support threads")
)

// Service routes outbound mail and thread reads to the transport of each account
type Service struct {
	gmail  GmailTransport
	resend ResendTransport
	logger *observability.Logger
	now    func() time.Time
}

// New creates a new Service. Either transport may be nil when it is not configured.
func New(gmail GmailTransport, resend ResendTransport, logger *observability.Logger) *Service {
	return &Service{
		gmail:  gmail,
		resend: resend,
		logger: logger,
		now:    time.Now,
	}
}

// Send delivers msg from the account's mailbox
func (s *Service) Send(ctx context.Context, account store.Account, msg Message) (SendResult, error) {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "mail_provider", Value: string(account.MailProvider)},
		observability.Field{Key: "email_to", Value: msg.To},
	)

	switch account.MailProvider {
	case store.MailProviderResend:
		return s.sendResend(ctx, msg)
	default:
		return s.sendGmail(ctx, account, msg)
	}
}

func (s *Service) sendGmail(ctx context.Context, account store.Account, msg Message) (SendResult, error) {
	if s.gmail == nil {
		return SendResult{}, ErrNoTransport
	}
	raw, err := Compose(msg, s.now())
	if err != nil {
		return SendResult{}, err
	}
	messageID, threadID, err := s.gmail.Send(ctx, account.GoogleRefreshToken, raw)
	if err != nil {
		return SendResult{}, fmt.Errorf("%w: %w", ErrSendingEmail, err)
	}
	s.logger.Info(ctx, "application sent via Gmail")
	return SendResult{ProviderMessageID: messageID, ThreadID: threadID}, nil
}

func (s *Service) sendResend(ctx context.Context, msg Message) (SendResult, error) {
	if s.resend == nil {
		return SendResult{}, ErrNoTransport
	}
	if len(msg.Attachments) > 0 {
		s.logger.Warn(ctx, fmt.Sprintf("Resend transport drops %d attachments", len(msg.Attachments)))
	}
	html, err := renderHTML(msg.TextBody)
	if err != nil {
		return SendResult{}, err
	}
	from := (&mail.Address{Name: msg.FromName, Address: msg.FromAddress}).String()
	id, err := s.resend.SendEmail(ctx, from, msg.To, msg.Subject, msg.TextBody, html)
	if err != nil {
		return SendResult{}, fmt.Errorf("%w: %w", ErrSendingEmail, err)
	}
	return SendResult{ProviderMessageID: id}, nil
}

// GetThread returns the messages of a thread in the account's mailbox
func (s *Service) GetThread(ctx context.Context, account store.Account, threadID string) ([]ThreadMessage, error) {
	if account.MailProvider == store.MailProviderResend {
		return nil, ErrThreadsUnsupported
	}
	if s.gmail == nil {
		return nil, ErrNoTransport
	}

	messages, err := s.gmail.GetThread(ctx, account.GoogleRefreshToken, threadID)
	if err != nil {
		return nil, err
	}

	out := make([]ThreadMessage, 0, len(messages))
	for _, m := range messages {
		out = append(out, ThreadMessage{
			ProviderMessageID: m.ID,
			ThreadID:          m.ThreadID,
			FromAddress:       addressOf(m.From),
			Subject:           m.Subject,
			Snippet:           m.Snippet,
			Body:              m.Body,
			InReplyTo:         m.InReplyTo,
			References:        m.References,
			ReceivedAt:        m.Date,
		})
	}
	return out, nil
}

// addressOf extracts the bare lowercased address from a From header
func addressOf(from string) string {
	if addr, err := mail.ParseAddress(from); err == nil {
		return strings.ToLower(addr.Address)
	}
	return strings.ToLower(strings.Trim(strings.TrimSpace(from), "<>"))
}
