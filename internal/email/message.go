package email

import (
	"bytes"
	"fmt"
	"html/template"
	"io"
	"strings"
	"time"

	"github.com/emersion/go-message/mail"
)

// Attachment is a file sent along with an application
type Attachment struct {
	Filename    string
	ContentType string
	Data        []byte
}

// Message is an outbound application email
type Message struct {
	FromName    string
	FromAddress string
	To          string
	Subject     string
	TextBody    string
	Attachments []Attachment
}

// SendResult carries the provider identifiers of a delivered message.
// ThreadID is empty for transports without thread support.
type SendResult struct {
	ProviderMessageID string
	ThreadID          string
}

// ThreadMessage is one message of a mailbox thread
type ThreadMessage struct {
	ProviderMessageID string
	ThreadID          string
	FromAddress       string
	Subject           string
	Snippet           string
	Body              string
	InReplyTo         string
	References        string
	ReceivedAt        time.Time
}

var htmlTemplate = template.Must(template.New("application").Parse(
	`<html><body>{{range .}}<p>{{range $i, $line := .}}{{if $i}}<br>{{end}}{{$line}}{{end}}</p>{{end}}</body></html>`))

// renderHTML turns a plain text body into escaped HTML paragraphs
func renderHTML(text string) (string, error) {
	var paragraphs [][]string
	for _, p := range strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n\n") {
		if strings.TrimSpace(p) == "" {
			continue
		}
		paragraphs = append(paragraphs, strings.Split(p, "\n"))
	}
	var buf bytes.Buffer
	if err := htmlTemplate.Execute(&buf, paragraphs); err != nil {
		return "", fmt.Errorf("failed to render html body: %w", err)
	}
	return buf.String(), nil
}

// Compose builds the RFC 5322 representation of msg: a multipart/alternative text and
// HTML body followed by the attachments.
func Compose(msg Message, now time.Time) ([]byte, error) {
	if _, err := mail.ParseAddress(msg.To); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidEmailAddress, msg.To)
	}
	if _, err := mail.ParseAddress(msg.FromAddress); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidEmailAddress, msg.FromAddress)
	}

	html, err := renderHTML(msg.TextBody)
	if err != nil {
		return nil, err
	}

	var h mail.Header
	h.SetDate(now)
	h.SetAddressList("From", []*mail.Address{{Name: msg.FromName, Address: msg.FromAddress}})
	h.SetAddressList("To", []*mail.Address{{Address: msg.To}})
	h.SetSubject(msg.Subject)
	if err := h.GenerateMessageID(); err != nil {
		return nil, fmt.Errorf("failed to generate message id: %w", err)
	}

	var buf bytes.Buffer
	mw, err := mail.CreateWriter(&buf, h)
	if err != nil {
		return nil, fmt.Errorf("failed to create message writer: %w", err)
	}

	tw, err := mw.CreateInline()
	if err != nil {
		return nil, fmt.Errorf("failed to create body writer: %w", err)
	}
	if err := writeInline(tw, "text/plain", msg.TextBody); err != nil {
		return nil, err
	}
	if err := writeInline(tw, "text/html", html); err != nil {
		return nil, err
	}
	if err := tw.Close(); err != nil {
		return nil, fmt.Errorf("failed to close body writer: %w", err)
	}

	for _, a := range msg.Attachments {
		var ah mail.AttachmentHeader
		contentType := a.ContentType
		if contentType == "" {
			contentType = "application/octet-stream"
		}
		ah.Set("Content-Type", contentType)
		ah.SetFilename(a.Filename)
		w, err := mw.CreateAttachment(ah)
		if err != nil {
			return nil, fmt.Errorf("failed to create attachment %s: %w", a.Filename, err)
		}
		if _, err := w.Write(a.Data); err != nil {
			return nil, fmt.Errorf("failed to write attachment %s: %w", a.Filename, err)
		}
		if err := w.Close(); err != nil {
			return nil, fmt.Errorf("failed to close attachment %s: %w", a.Filename, err)
		}
	}

	if err := mw.Close(); err != nil {
		return nil, fmt.Errorf("failed to close message writer: %w", err)
	}
	return buf.Bytes(), nil
}

func writeInline(tw *mail.InlineWriter, contentType, body string) error {
	var h mail.InlineHeader
	h.SetContentType(contentType, map[string]string{"charset": "utf-8"})
	w, err := tw.CreatePart(h)
	if err != nil {
		return fmt.Errorf("failed to create %s part: %w", contentType, err)
	}
	if _, err := io.WriteString(w, body); err != nil {
		return fmt.Errorf("failed to write %s part: %w", contentType, err)
	}
	return w.Close()
}
