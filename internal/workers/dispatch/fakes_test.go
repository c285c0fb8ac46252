package dispatch

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"outreach-server/internal/ai"
	"outreach-server/internal/email"
	"outreach-server/internal/store"

	"github.com/google/uuid"
)

// memoryStore mirrors the Postgres semantics the worker relies on, including the
// (account, offer) and (account, recipient) unique constraints.
type memoryStore struct {
	mu       sync.Mutex
	jobs     map[uuid.UUID]store.SendJob
	profiles map[uuid.UUID]store.AccountSendProfile
	accounts map[uuid.UUID]store.Account
	sends    map[uuid.UUID]store.EmailSend
	settings *store.GlobalSendConfig
}

func newMemoryStore() *memoryStore {
	return &memoryStore{
		jobs:     make(map[uuid.UUID]store.SendJob),
		profiles: make(map[uuid.UUID]store.AccountSendProfile),
		accounts: make(map[uuid.UUID]store.Account),
		sends:    make(map[uuid.UUID]store.EmailSend),
	}
}

func (m *memoryStore) job(id uuid.UUID) store.SendJob {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.jobs[id]
}

func (m *memoryStore) sendsByStatus(status store.EmailSendStatus) []store.EmailSend {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []store.EmailSend
	for _, s := range m.sends {
		if s.Status == status {
			out = append(out, s)
		}
	}
	return out
}

func (m *memoryStore) ListActiveSendJobs(context.Context) ([]store.SendJob, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []store.SendJob
	for _, j := range m.jobs {
		if j.Status == store.SendJobStatusQueued || j.Status == store.SendJobStatusRunning {
			out = append(out, j)
		}
	}
	return out, nil
}

func (m *memoryStore) GetGlobalSendConfig(context.Context) (store.GlobalSendConfig, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.settings == nil {
		return store.GlobalSendConfig{}, store.ErrNotFound
	}
	return *m.settings, nil
}

func (m *memoryStore) MarkSendJobRunning(_ context.Context, id uuid.UUID) (store.SendJob, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	j, ok := m.jobs[id]
	if !ok || j.Status != store.SendJobStatusQueued {
		return store.SendJob{}, store.ErrNotFound
	}
	now := time.Now()
	j.Status = store.SendJobStatusRunning
	j.StartedAt = &now
	m.jobs[id] = j
	return j, nil
}

func (m *memoryStore) finish(id uuid.UUID, status store.SendJobStatus, reason *string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	j, ok := m.jobs[id]
	if !ok {
		return store.ErrNotFound
	}
	j.Status = status
	j.ErrorMessage = reason
	m.jobs[id] = j
	return nil
}

func (m *memoryStore) MarkSendJobDone(_ context.Context, id uuid.UUID) error {
	return m.finish(id, store.SendJobStatusDone, nil)
}

func (m *memoryStore) MarkSendJobFailed(_ context.Context, id uuid.UUID, reason string) error {
	return m.finish(id, store.SendJobStatusFailed, &reason)
}

func (m *memoryStore) IncrementSendJobSentCount(_ context.Context, id uuid.UUID) (store.SendJob, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	j, ok := m.jobs[id]
	if !ok {
		return store.SendJob{}, store.ErrNotFound
	}
	j.EmailsSentCount++
	m.jobs[id] = j
	return j, nil
}

func (m *memoryStore) GetSendProfileByAccountID(_ context.Context, accountID uuid.UUID) (store.AccountSendProfile, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	p, ok := m.profiles[accountID]
	if !ok {
		return store.AccountSendProfile{}, store.ErrNotFound
	}
	return p, nil
}

func (m *memoryStore) GetAccountByID(_ context.Context, id uuid.UUID) (store.Account, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	a, ok := m.accounts[id]
	if !ok {
		return store.Account{}, store.ErrNotFound
	}
	return a, nil
}

func (m *memoryStore) ReserveEmailSend(_ context.Context, p store.ReserveEmailSendParams) (store.EmailSend, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, s := range m.sends {
		if s.AccountID != p.AccountID {
			continue
		}
		if s.OfferID == p.OfferID || strings.EqualFold(s.RecipientEmail, p.RecipientEmail) {
			return store.EmailSend{}, store.ErrAlreadyExists
		}
	}
	jobID := p.SendJobID
	send := store.EmailSend{
		ID:             uuid.New(),
		AccountID:      p.AccountID,
		OfferID:        p.OfferID,
		SendJobID:      &jobID,
		RecipientEmail: p.RecipientEmail,
		Status:         store.EmailSendStatusReserved,
	}
	m.sends[send.ID] = send
	return send, nil
}

func (m *memoryStore) update(id uuid.UUID, fn func(*store.EmailSend)) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.sends[id]
	if !ok || s.Status != store.EmailSendStatusReserved {
		return store.ErrNotFound
	}
	fn(&s)
	m.sends[id] = s
	return nil
}

func applySnapshot(s *store.EmailSend, c store.ContentSnapshot) {
	s.Subject = c.Subject
	s.Body = c.Body
	s.AIGenerated = c.AIGenerated
	s.AttachmentNames = c.AttachmentNames
}

func (m *memoryStore) MarkEmailSendPendingReview(_ context.Context, id uuid.UUID, c store.ContentSnapshot) error {
	return m.update(id, func(s *store.EmailSend) {
		s.Status = store.EmailSendStatusPendingReview
		applySnapshot(s, c)
	})
}

func (m *memoryStore) MarkEmailSendSent(_ context.Context, id uuid.UUID, c store.ContentSnapshot, msgID, threadID string, sentAt time.Time) error {
	return m.update(id, func(s *store.EmailSend) {
		s.Status = store.EmailSendStatusSent
		applySnapshot(s, c)
		s.ProviderMessageID = &msgID
		s.ThreadID = &threadID
		s.SentAt = &sentAt
	})
}

func (m *memoryStore) MarkEmailSendFailed(_ context.Context, id uuid.UUID, reason string) error {
	return m.update(id, func(s *store.EmailSend) {
		s.Status = store.EmailSendStatusFailed
		s.ErrorMessage = &reason
	})
}

// staticCandidates returns the same offers on every call
type staticCandidates struct {
	mu     sync.Mutex
	offers []store.JobOffer
	calls  int
	limits []int
	block  chan struct{}
	panics bool
}

func (s *staticCandidates) FindCandidates(_ context.Context, _ store.Account, limit int) ([]store.JobOffer, error) {
	s.mu.Lock()
	s.calls++
	s.limits = append(s.limits, limit)
	block := s.block
	s.mu.Unlock()

	if block != nil {
		<-block
	}
	if s.panics {
		panic("matcher exploded")
	}
	if len(s.offers) > limit {
		return s.offers[:limit], nil
	}
	return s.offers, nil
}

func (s *staticCandidates) callCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls
}

type recordingSender struct {
	mu   sync.Mutex
	sent []email.Message
	err  error
}

func (r *recordingSender) Send(_ context.Context, _ store.Account, msg email.Message) (email.SendResult, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return email.SendResult{}, r.err
	}
	r.sent = append(r.sent, msg)
	return email.SendResult{ProviderMessageID: "msg-" + msg.To, ThreadID: "thread-" + msg.To}, nil
}

type failingGenerator struct{}

func (failingGenerator) GenerateApplication(context.Context, ai.ApplicationRequest) (ai.Content, error) {
	return ai.Content{}, errors.New("quota exceeded")
}

type staticGenerator struct{ content ai.Content }

func (s staticGenerator) GenerateApplication(context.Context, ai.ApplicationRequest) (ai.Content, error) {
	return s.content, nil
}

type staticAttachments struct {
	attachments []email.Attachment
	err         error
}

func (s staticAttachments) ForAccount(context.Context, store.Account) ([]email.Attachment, error) {
	return s.attachments, s.err
}

// cancelAwareStore fails writes on a cancelled context like database/sql does,
// and fails review updates when failReview is set.
type cancelAwareStore struct {
	*memoryStore
	failReview error
}

func (c *cancelAwareStore) IncrementSendJobSentCount(ctx context.Context, id uuid.UUID) (store.SendJob, error) {
	if err := ctx.Err(); err != nil {
		return store.SendJob{}, err
	}
	return c.memoryStore.IncrementSendJobSentCount(ctx, id)
}

func (c *cancelAwareStore) MarkSendJobDone(ctx context.Context, id uuid.UUID) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return c.memoryStore.MarkSendJobDone(ctx, id)
}

func (c *cancelAwareStore) MarkEmailSendSent(ctx context.Context, id uuid.UUID, content store.ContentSnapshot, msgID, threadID string, sentAt time.Time) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return c.memoryStore.MarkEmailSendSent(ctx, id, content, msgID, threadID, sentAt)
}

func (c *cancelAwareStore) MarkEmailSendFailed(ctx context.Context, id uuid.UUID, reason string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return c.memoryStore.MarkEmailSendFailed(ctx, id, reason)
}

func (c *cancelAwareStore) MarkEmailSendPendingReview(ctx context.Context, id uuid.UUID, content store.ContentSnapshot) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if c.failReview != nil {
		return c.failReview
	}
	return c.memoryStore.MarkEmailSendPendingReview(ctx, id, content)
}
