// Package responses polls mailbox threads of sent applications for replies and
// classifies the replies it finds.
package responses

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync/atomic"
	"time"

	"outreach-server/internal/email"
	"outreach-server/internal/metrics"
	"outreach-server/internal/observability"
	"outreach-server/internal/store"
)

const DefaultThreadsPerAccount = 50

// Poller records new replies found in the threads of sent applications
type Poller struct {
	store             Store
	mailbox           Mailbox
	dispatcher        Dispatcher
	threadsPerAccount int
	logger            *observability.Logger

	running atomic.Bool
}

func NewPoller(st Store, mailbox Mailbox, dispatcher Dispatcher, threadsPerAccount int, logger *observability.Logger) *Poller {
	if threadsPerAccount <= 0 {
		threadsPerAccount = DefaultThreadsPerAccount
	}
	return &Poller{
		store:             st,
		mailbox:           mailbox,
		dispatcher:        dispatcher,
		threadsPerAccount: threadsPerAccount,
		logger:            logger,
	}
}

// Tick polls every active account once. Overlapping calls return immediately.
func (p *Poller) Tick(ctx context.Context) {
	if !p.running.CompareAndSwap(false, true) {
		p.logger.Debug(ctx, "response sync already running, skipping")
		return
	}
	defer p.running.Store(false)
	defer func() {
		if r := recover(); r != nil {
			p.logger.Error(ctx, "recovered from panic in response sync", fmt.Errorf("reason: %+v", r))
		}
	}()

	profiles, err := p.store.ListActiveSendProfiles(ctx)
	if err != nil {
		p.logger.Error(ctx, "failed to list active send profiles", err)
		return
	}

	total := 0
	for _, profile := range profiles {
		if ctx.Err() != nil {
			return
		}
		accountCtx := observability.WithFields(ctx, observability.Field{Key: "account_id", Value: profile.AccountID})
		n, err := p.syncAccount(accountCtx, profile)
		if err != nil {
			p.logger.Error(accountCtx, "failed to sync responses for account", err)
			continue
		}
		total += n
	}
	if total > 0 {
		p.logger.Info(ctx, fmt.Sprintf("response sync recorded %d new replies", total))
	}
}

func (p *Poller) syncAccount(ctx context.Context, profile store.AccountSendProfile) (int, error) {
	account, err := p.store.GetAccountByID(ctx, profile.AccountID)
	if err != nil {
		return 0, fmt.Errorf("failed to load account: %w", err)
	}
	if strings.TrimSpace(account.Email) == "" {
		p.logger.Warn(ctx, "account has no email address, skipping response sync")
		return 0, nil
	}

	sends, err := p.store.ListSentWithThread(ctx, account.ID, p.threadsPerAccount)
	if err != nil {
		return 0, fmt.Errorf("failed to list sent applications: %w", err)
	}

	total := 0
	for _, send := range sends {
		if ctx.Err() != nil {
			break
		}
		sendCtx := observability.WithFields(ctx, observability.Field{Key: "email_send_id", Value: send.ID})
		total += p.syncThread(sendCtx, account, send)
	}
	return total, nil
}

// syncThread records the unknown replies of one thread and returns how many it stored
func (p *Poller) syncThread(ctx context.Context, account store.Account, send store.EmailSend) int {
	if send.ThreadID == nil || *send.ThreadID == "" {
		return 0
	}

	messages, err := p.mailbox.GetThread(ctx, account, *send.ThreadID)
	if err != nil {
		metrics.IncThreadFetchErrors()
		if errors.Is(err, email.ErrThreadsUnsupported) {
			p.logger.Debug(ctx, "mail provider has no threads")
		} else {
			p.logger.WarnWithError(ctx, "failed to fetch thread", err)
		}
		return 0
	}

	var (
		newReplies int
		lastAt     time.Time
	)
	for _, msg := range messages {
		if !isReply(account, msg) {
			continue
		}
		if !p.record(ctx, account, send, msg) {
			continue
		}
		newReplies++
		if msg.ReceivedAt.After(lastAt) {
			lastAt = msg.ReceivedAt
		}
	}

	if newReplies > 0 {
		if err := p.store.RecordEmailSendResponses(ctx, send.ID, newReplies, lastAt); err != nil {
			p.logger.Error(ctx, "failed to update response counters", err)
		}
	}
	return newReplies
}

// record stores msg when its provider message id is unknown and hands it to classification
func (p *Poller) record(ctx context.Context, account store.Account, send store.EmailSend, msg email.ThreadMessage) bool {
	ctx = observability.WithFields(ctx, observability.Field{Key: "provider_message_id", Value: msg.ProviderMessageID})

	exists, err := p.store.EmailResponseExists(ctx, msg.ProviderMessageID)
	if err != nil {
		p.logger.Error(ctx, "failed to check reply", err)
		return false
	}
	if exists {
		return false
	}

	threadID := msg.ThreadID
	if threadID == "" {
		threadID = *send.ThreadID
	}
	response, err := p.store.CreateEmailResponse(ctx, store.CreateEmailResponseParams{
		EmailSendID:       send.ID,
		AccountID:         account.ID,
		ProviderMessageID: msg.ProviderMessageID,
		ThreadID:          threadID,
		FromEmail:         msg.FromAddress,
		Subject:           msg.Subject,
		Snippet:           msg.Snippet,
		Body:              msg.Body,
		ReceivedAt:        msg.ReceivedAt,
		InReplyTo:         msg.InReplyTo,
		References:        msg.References,
	})
	if errors.Is(err, store.ErrAlreadyExists) {
		// Stored by a concurrent poller in between
		return false
	}
	if err != nil {
		p.logger.Error(ctx, "failed to store reply", err)
		return false
	}

	metrics.IncResponsesRecorded()
	p.dispatcher.Dispatch(ctx, response.ID)
	return true
}

// isReply reports whether msg was written by someone other than the account
func isReply(account store.Account, msg email.ThreadMessage) bool {
	if msg.ProviderMessageID == "" {
		return false
	}
	return !strings.EqualFold(strings.TrimSpace(msg.FromAddress), strings.TrimSpace(account.Email))
}
