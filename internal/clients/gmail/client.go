package gmail

import (
	"context"
	"encoding/base64"
	"fmt"
	"strings"
	"time"

	"outreach-server/internal/observability"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/gmail/v1"
	"google.golang.org/api/option"
)

const (
	user = "me"

	// requestTimeout bounds each Gmail API round trip
	requestTimeout = 30 * time.Second
)

// Message is a thread message reduced to the fields reply tracking needs
type Message struct {
	ID         string
	ThreadID   string
	From       string
	Subject    string
	Snippet    string
	Body       string
	MessageID  string
	InReplyTo  string
	References string
	Date       time.Time
}

// Client sends and reads mail on behalf of accounts through the Gmail API
type Client struct {
	oauthConfig *oauth2.Config
	logger      *observability.Logger
}

func NewClient(clientID, clientSecret string, logger *observability.Logger) *Client {
	return &Client{
		oauthConfig: &oauth2.Config{
			ClientID:     clientID,
			ClientSecret: clientSecret,
			Endpoint:     google.Endpoint,
			Scopes:       []string{gmail.GmailSendScope, gmail.GmailReadonlyScope},
		},
		logger: logger,
	}
}

func withRequestTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, requestTimeout)
}

func (c *Client) service(ctx context.Context, refreshToken string) (*gmail.Service, error) {
	if refreshToken == "" {
		return nil, fmt.Errorf("account has no Google refresh token")
	}
	tokenSource := c.oauthConfig.TokenSource(ctx, &oauth2.Token{RefreshToken: refreshToken})
	srv, err := gmail.NewService(ctx, option.WithHTTPClient(oauth2.NewClient(ctx, tokenSource)))
	if err != nil {
		return nil, fmt.Errorf("unable to create Gmail service: %w", err)
	}
	return srv, nil
}

// Send delivers a raw RFC 5322 message and returns the Gmail message and thread ids
func (c *Client) Send(ctx context.Context, refreshToken string, raw []byte) (string, string, error) {
	ctx, cancel := withRequestTimeout(ctx)
	defer cancel()

	srv, err := c.service(ctx, refreshToken)
	if err != nil {
		return "", "", err
	}

	msg := &gmail.Message{
		Raw: base64.URLEncoding.EncodeToString(raw),
	}
	sent, err := srv.Users.Messages.Send(user, msg).Context(ctx).Do()
	if err != nil {
		return "", "", fmt.Errorf("failed to send message: %w", err)
	}
	return sent.Id, sent.ThreadId, nil
}

// GetThread returns every message of a thread, oldest first
func (c *Client) GetThread(ctx context.Context, refreshToken, threadID string) ([]Message, error) {
	ctx, cancel := withRequestTimeout(ctx)
	defer cancel()

	srv, err := c.service(ctx, refreshToken)
	if err != nil {
		return nil, err
	}

	thread, err := srv.Users.Threads.Get(user, threadID).Format("full").Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("failed to get thread %s: %w", threadID, err)
	}

	messages := make([]Message, 0, len(thread.Messages))
	for _, m := range thread.Messages {
		messages = append(messages, convertMessage(m))
	}
	return messages, nil
}

func convertMessage(m *gmail.Message) Message {
	msg := Message{
		ID:       m.Id,
		ThreadID: m.ThreadId,
		Snippet:  m.Snippet,
		Date:     time.UnixMilli(m.InternalDate),
	}
	if m.Payload == nil {
		return msg
	}
	headers := m.Payload.Headers
	msg.From = getHeader(headers, "From")
	msg.Subject = getHeader(headers, "Subject")
	msg.MessageID = getHeader(headers, "Message-Id")
	msg.InReplyTo = getHeader(headers, "In-Reply-To")
	msg.References = getHeader(headers, "References")
	msg.Body = getPlainBody(m.Payload)
	return msg
}

func getHeader(headers []*gmail.MessagePartHeader, name string) string {
	for _, header := range headers {
		if strings.EqualFold(header.Name, name) {
			return header.Value
		}
	}
	return ""
}

// getPlainBody prefers text/plain and falls back to text/html
func getPlainBody(payload *gmail.MessagePart) string {
	var plainBody, htmlBody string

	var walk func(part *gmail.MessagePart)
	walk = func(part *gmail.MessagePart) {
		if part.Body != nil && part.Body.Data != "" && part.Filename == "" {
			data, err := base64.URLEncoding.DecodeString(part.Body.Data)
			if err == nil {
				switch {
				case part.MimeType == "text/plain" && plainBody == "":
					plainBody = string(data)
				case part.MimeType == "text/html" && htmlBody == "":
					htmlBody = string(data)
				}
			}
		}
		for _, child := range part.Parts {
			walk(child)
		}
	}
	walk(payload)

	if plainBody != "" {
		return plainBody
	}
	return htmlBody
}
