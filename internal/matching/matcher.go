// Package matching selects the job offers an account should apply to next.
package matching

import (
	"context"
	"fmt"
	"strings"

	"outreach-server/internal/observability"
	"outreach-server/internal/reputation"
	"outreach-server/internal/store"

	"github.com/google/uuid"
)

// maxPages bounds how far one call scans when filters reject most offers
const maxPages = 50

type OfferSource interface {
	ListCandidateOffers(ctx context.Context, query store.CandidateOffersQuery) ([]store.JobOffer, error)
}

type BlocklistSource interface {
	Load(ctx context.Context) (reputation.Set, error)
}

type Matcher struct {
	offers    OfferSource
	blocklist BlocklistSource
	pageSize  int
	logger    *observability.Logger
}

func New(offers OfferSource, blocklist BlocklistSource, pageSize int, logger *observability.Logger) *Matcher {
	if pageSize <= 0 {
		pageSize = 200
	}
	return &Matcher{
		offers:    offers,
		blocklist: blocklist,
		pageSize:  pageSize,
		logger:    logger,
	}
}

// FindCandidates returns up to limit offers for the account, most recently scraped first.
// Offers already used by the account or its partner, recipients already contacted by the
// account, blocked recipients and offers rejected by the account filters are left out.
// Within one result every recipient appears at most once.
func (m *Matcher) FindCandidates(ctx context.Context, account store.Account, limit int) ([]store.JobOffer, error) {
	if limit <= 0 {
		return nil, nil
	}

	blocked, err := m.blocklist.Load(ctx)
	if err != nil {
		return nil, err
	}

	exclude := []uuid.UUID{account.ID}
	if account.PartnerAccountID != nil && *account.PartnerAccountID != account.ID {
		exclude = append(exclude, *account.PartnerAccountID)
	}

	filter := NewFilter(account)
	query := store.CandidateOffersQuery{
		ExcludeOffersOf: exclude,
		RecipientsOf:    account.ID,
		Limit:           m.pageSize,
	}

	seen := make(map[string]struct{})
	var result []store.JobOffer
	for page := 0; page < maxPages; page++ {
		offers, err := m.offers.ListCandidateOffers(ctx, query)
		if err != nil {
			return nil, fmt.Errorf("failed to load candidate offers: %w", err)
		}

		for _, offer := range offers {
			recipient := strings.ToLower(strings.TrimSpace(offer.ContactEmail))
			if recipient == "" || blocked.Contains(recipient) {
				continue
			}
			if _, dup := seen[recipient]; dup {
				continue
			}
			if !filter.Match(offer) {
				continue
			}
			seen[recipient] = struct{}{}
			result = append(result, offer)
			if len(result) == limit {
				return result, nil
			}
		}

		if len(offers) < m.pageSize {
			return result, nil
		}
		last := offers[len(offers)-1]
		query.After = &store.OfferCursor{ScrapedAt: last.ScrapedAt, ID: last.ID}
	}

	m.logger.Warn(observability.WithFields(ctx, observability.Field{Key: "account_id", Value: account.ID}),
		"candidate scan stopped at page limit")
	return result, nil
}
