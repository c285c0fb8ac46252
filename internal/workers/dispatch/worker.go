// Package dispatch sends the applications owed by the daily send jobs, inside the
// allowed hours and with randomized pauses between sends.
package dispatch

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"outreach-server/internal/ai"
	"outreach-server/internal/clock"
	"outreach-server/internal/email"
	"outreach-server/internal/metrics"
	"outreach-server/internal/observability"
	"outreach-server/internal/store"
)

const (
	DefaultBatchCap = 5

	reasonMissingSettings = "missing send settings"
	reasonNoSenderEmail   = "sender account has no email address"
)

// Config holds the worker collaborators. Content and Attachments are optional.
type Config struct {
	Store       Store
	Candidates  CandidateFinder
	Content     ai.ContentGenerator
	Attachments AttachmentSource
	Sender      MailSender
	Clock       clock.Clock
	Location    *time.Location
	BatchCap    int
	Rand        *rand.Rand
	Logger      *observability.Logger
}

type Worker struct {
	store       Store
	candidates  CandidateFinder
	content     ai.ContentGenerator
	fallback    ai.FallbackTemplate
	attachments AttachmentSource
	sender      MailSender
	clock       clock.Clock
	location    *time.Location
	batchCap    int
	logger      *observability.Logger

	randMu sync.Mutex
	rand   *rand.Rand

	running atomic.Bool
}

func New(cfg Config) *Worker {
	if cfg.BatchCap <= 0 {
		cfg.BatchCap = DefaultBatchCap
	}
	if cfg.Location == nil {
		cfg.Location = time.UTC
	}
	if cfg.Rand == nil {
		cfg.Rand = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return &Worker{
		store:       cfg.Store,
		candidates:  cfg.Candidates,
		content:     cfg.Content,
		attachments: cfg.Attachments,
		sender:      cfg.Sender,
		clock:       cfg.Clock,
		location:    cfg.Location,
		batchCap:    cfg.BatchCap,
		rand:        cfg.Rand,
		logger:      cfg.Logger,
	}
}

// Tick processes every QUEUED or RUNNING job once. Overlapping calls return
// immediately, and a panic ends the tick without taking the process down.
func (w *Worker) Tick(ctx context.Context) {
	if !w.running.CompareAndSwap(false, true) {
		w.logger.Debug(ctx, "dispatch tick already running, skipping")
		metrics.IncDispatchSkipped("tick_overlap")
		return
	}
	defer w.running.Store(false)
	defer func() {
		if r := recover(); r != nil {
			w.logger.Error(ctx, "recovered from panic in dispatch tick", fmt.Errorf("reason: %+v", r))
		}
	}()

	start := w.clock.Now()
	defer func() { metrics.ObserveDispatchTick(w.clock.Now().Sub(start)) }()

	if err := w.tick(ctx); err != nil {
		w.logger.Error(ctx, "dispatch tick failed", err)
	}
}

func (w *Worker) tick(ctx context.Context) error {
	jobs, err := w.store.ListActiveSendJobs(ctx)
	if err != nil {
		return fmt.Errorf("failed to list active send jobs: %w", err)
	}
	if len(jobs) == 0 {
		return nil
	}

	settings, err := w.store.GetGlobalSendConfig(ctx)
	hasSettings := true
	if errors.Is(err, store.ErrNotFound) {
		hasSettings = false
	} else if err != nil {
		return fmt.Errorf("failed to load send settings: %w", err)
	}

	for _, job := range jobs {
		if ctx.Err() != nil {
			return nil
		}
		jobCtx := observability.WithFields(ctx,
			observability.Field{Key: "send_job_id", Value: job.ID},
			observability.Field{Key: "account_id", Value: job.AccountID},
		)
		if !hasSettings {
			w.fail(jobCtx, job, reasonMissingSettings)
			continue
		}
		if err := w.processJob(jobCtx, job, settings); err != nil {
			w.logger.Error(jobCtx, "failed to process send job", err)
		}
	}
	return nil
}

func (w *Worker) processJob(ctx context.Context, job store.SendJob, settings store.GlobalSendConfig) error {
	now := w.clock.Now()
	if job.SendDate.Before(clock.Day(now, w.location)) {
		w.logger.Info(ctx, "closing send job of an elapsed day")
		return w.done(ctx, job)
	}

	if job.Status == store.SendJobStatusQueued {
		running, err := w.store.MarkSendJobRunning(ctx, job.ID)
		switch {
		case err == nil:
			job = running
		case errors.Is(err, store.ErrNotFound):
			// Already moved on by someone else
		default:
			return fmt.Errorf("failed to start send job: %w", err)
		}
	}

	if job.Remaining() == 0 {
		return w.done(ctx, job)
	}

	profile, err := w.store.GetSendProfileByAccountID(ctx, job.AccountID)
	if errors.Is(err, store.ErrNotFound) || (err == nil && !profile.Active) {
		metrics.IncDispatchSkipped("profile_inactive")
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to load send profile: %w", err)
	}

	if !Allowed(settings, now.In(w.location)) {
		metrics.IncDispatchSkipped("outside_window")
		return nil
	}

	account, err := w.store.GetAccountByID(ctx, job.AccountID)
	if err != nil {
		return fmt.Errorf("failed to load account: %w", err)
	}

	batch := min(job.Remaining(), w.batchCap)
	offers, err := w.candidates.FindCandidates(ctx, account, batch)
	if err != nil {
		return fmt.Errorf("failed to find candidates: %w", err)
	}
	if len(offers) == 0 {
		w.logger.Debug(ctx, "no candidates for send job")
		return nil
	}

	for i, offer := range offers {
		if i > 0 {
			if err := w.clock.Sleep(ctx, w.delay(settings)); err != nil {
				return nil
			}
		}
		if ctx.Err() != nil {
			return nil
		}

		// Shutdown only interrupts the pauses; a started candidate is always recorded and counted
		offerCtx := context.WithoutCancel(observability.WithFields(ctx,
			observability.Field{Key: "offer_id", Value: offer.ID}))
		if !w.processCandidate(offerCtx, job, account, profile, offer) {
			continue
		}

		updated, err := w.store.IncrementSendJobSentCount(offerCtx, job.ID)
		if err != nil {
			return fmt.Errorf("failed to count send: %w", err)
		}
		job = updated
		if job.Remaining() == 0 {
			return w.done(offerCtx, job)
		}
	}
	return nil
}

// processCandidate handles one offer and reports whether it used a quota slot,
// which is the case whenever the reservation was won and its outcome recorded
// or the mail left the mailbox.
func (w *Worker) processCandidate(ctx context.Context, job store.SendJob, account store.Account, profile store.AccountSendProfile, offer store.JobOffer) bool {
	send, won, err := w.reserve(ctx, job, offer)
	if err != nil {
		w.logger.Error(ctx, "failed to reserve offer", err)
		return false
	}
	if !won {
		w.logger.Debug(ctx, "offer already reserved, skipping")
		metrics.IncDispatchSkipped("reservation_race")
		return false
	}
	ctx = observability.WithFields(ctx, observability.Field{Key: "email_send_id", Value: send.ID})

	if strings.TrimSpace(account.Email) == "" {
		w.markFailed(ctx, send, reasonNoSenderEmail)
		return true
	}

	content, aiGenerated := w.generate(ctx, account, offer)
	attachments := w.loadAttachments(ctx, account)

	names := make([]string, len(attachments))
	for i, a := range attachments {
		names[i] = a.Filename
	}
	snapshot := store.ContentSnapshot{
		Subject:         content.Subject,
		Body:            content.Body,
		AIGenerated:     aiGenerated,
		AttachmentNames: names,
	}

	if profile.PreviewEnabled {
		// Nothing left the mailbox, so an unrecorded review does not use a quota slot
		if err := w.store.MarkEmailSendPendingReview(ctx, send.ID, snapshot); err != nil {
			w.logger.Error(ctx, "failed to queue application for review", err)
			return false
		}
		metrics.IncEmailsDispatched(string(store.EmailSendStatusPendingReview))
		return true
	}

	result, err := w.sender.Send(ctx, account, email.Message{
		FromName:    account.Name,
		FromAddress: account.Email,
		To:          send.RecipientEmail,
		Subject:     content.Subject,
		TextBody:    content.Body,
		Attachments: attachments,
	})
	if err != nil {
		w.markFailed(ctx, send, err.Error())
		return true
	}

	if err := w.store.MarkEmailSendSent(ctx, send.ID, snapshot, result.ProviderMessageID, result.ThreadID, w.clock.Now()); err != nil {
		w.logger.Error(ctx, "failed to record sent application", err)
	}
	metrics.IncEmailsDispatched(string(store.EmailSendStatusSent))
	w.logger.Info(ctx, "application sent")
	return true
}

// generate asks the content generator and falls back to the template on any failure
func (w *Worker) generate(ctx context.Context, account store.Account, offer store.JobOffer) (ai.Content, bool) {
	req := ai.ApplicationRequest{
		CandidateName:  account.Name,
		CandidateEmail: account.Email,
		JobTitle:       offer.Title,
		Company:        offer.Company,
		Country:        offer.Country,
		City:           offer.City,
		Description:    offer.Description,
		OfferURL:       offer.URL,
	}

	if w.content != nil {
		content, err := w.content.GenerateApplication(ctx, req)
		if err == nil && strings.TrimSpace(content.Subject) != "" && strings.TrimSpace(content.Body) != "" {
			return content, true
		}
		if err == nil {
			err = errors.New("empty content")
		}
		w.logger.WarnWithError(ctx, "content generation failed, using fallback template", err)
	}

	metrics.IncContentFallback()
	content, _ := w.fallback.GenerateApplication(ctx, req)
	return content, false
}

func (w *Worker) loadAttachments(ctx context.Context, account store.Account) []email.Attachment {
	if w.attachments == nil {
		return nil
	}
	attachments, err := w.attachments.ForAccount(ctx, account)
	if err != nil {
		w.logger.WarnWithError(ctx, "sending without attachments", err)
		return nil
	}
	return attachments
}

func (w *Worker) delay(settings store.GlobalSendConfig) time.Duration {
	w.randMu.Lock()
	defer w.randMu.Unlock()
	return Delay(settings, w.rand)
}

func (w *Worker) markFailed(ctx context.Context, send store.EmailSend, reason string) {
	w.logger.Warn(ctx, fmt.Sprintf("application failed: %s", reason))
	if err := w.store.MarkEmailSendFailed(ctx, send.ID, reason); err != nil {
		w.logger.Error(ctx, "failed to record failed application", err)
	}
	metrics.IncEmailsDispatched(string(store.EmailSendStatusFailed))
}

func (w *Worker) done(ctx context.Context, job store.SendJob) error {
	if err := w.store.MarkSendJobDone(ctx, job.ID); err != nil {
		return fmt.Errorf("failed to close send job: %w", err)
	}
	w.logger.Info(ctx, fmt.Sprintf("send job done: %d/%d", job.EmailsSentCount, job.EmailsToSend))
	return nil
}

func (w *Worker) fail(ctx context.Context, job store.SendJob, reason string) {
	if err := w.store.MarkSendJobFailed(ctx, job.ID, reason); err != nil {
		w.logger.Error(ctx, "failed to mark send job failed", err)
		return
	}
	w.logger.Warn(ctx, fmt.Sprintf("send job failed: %s", reason))
}
