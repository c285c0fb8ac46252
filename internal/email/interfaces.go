package email

//go:generate go run go.uber.org/mock/mockgen@latest -source=interfaces.go -destination=mocks_test.go -package=email

import (
	"context"

	"outreach-server/internal/clients/gmail"
)

// GmailTransport is the Gmail API surface used for sending and thread reads
type GmailTransport interface {
	Send(ctx context.Context, refreshToken string, raw []byte) (string, string, error)
	GetThread(ctx context.Context, refreshToken, threadID string) ([]gmail.Message, error)
}

// ResendTransport is the Resend API surface used for sending
type ResendTransport interface {
	SendEmail(ctx context.Context, from, to, subject, textContent, htmlContent string) (string, error)
}
