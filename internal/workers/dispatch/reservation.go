package dispatch

import (
	"context"
	"errors"
	"strings"

	"outreach-server/internal/store"
)

// reserve claims the (account, offer) pair for job. It returns false without an
// error when another dispatcher already holds the pair or the recipient.
func (w *Worker) reserve(ctx context.Context, job store.SendJob, offer store.JobOffer) (store.EmailSend, bool, error) {
	send, err := w.store.ReserveEmailSend(ctx, store.ReserveEmailSendParams{
		AccountID:      job.AccountID,
		OfferID:        offer.ID,
		SendJobID:      job.ID,
		RecipientEmail: strings.ToLower(strings.TrimSpace(offer.ContactEmail)),
	})
	if errors.Is(err, store.ErrAlreadyExists) {
		return store.EmailSend{}, false, nil
	}
	if err != nil {
		return store.EmailSend{}, false, err
	}
	return send, true, nil
}
