package store

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// CreateJobOfferParams represents parameters for creating a job offer
type CreateJobOfferParams struct {
	Company      string
	Title        string
	Country      string
	City         string
	ContactEmail string
	Description  string
	URL          string
	ScrapedAt    time.Time
}

// CandidateOffersQuery selects one page of offers that have not been used by any of the
// given accounts, newest first. After is the keyset cursor of the previous page.
type CandidateOffersQuery struct {
	// ExcludeOffersOf lists accounts whose sent offers are excluded (the account and its partner)
	ExcludeOffersOf []uuid.UUID
	// RecipientsOf is the account whose already contacted recipients are excluded
	RecipientsOf uuid.UUID
	After        *OfferCursor
	Limit        int
}

// OfferCursor is the position of the last offer of a page
type OfferCursor struct {
	ScrapedAt time.Time
	ID        uuid.UUID
}

const jobOfferColumns = `
id, company, title, country, city, contact_email, description, url, scraped_at`

const sqlCreateJobOffer = `
INSERT INTO job_offers (company, title, country, city, contact_email, description, url, scraped_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
RETURNING` + jobOfferColumns

// CreateJobOffer inserts a scraped offer
func (s *Store) CreateJobOffer(ctx context.Context, params CreateJobOfferParams) (JobOffer, error) {
	if params.ScrapedAt.IsZero() {
		params.ScrapedAt = time.Now()
	}
	var offer JobOffer
	err := s.db.GetContext(ctx, &offer, sqlCreateJobOffer,
		params.Company,
		params.Title,
		params.Country,
		params.City,
		params.ContactEmail,
		params.Description,
		params.URL,
		params.ScrapedAt)
	if err != nil {
		return JobOffer{}, fmt.Errorf("failed to create job offer: %w", err)
	}
	return offer, nil
}

const sqlListCandidateOffers = `SELECT` + jobOfferColumns + `
FROM job_offers o
WHERE o.contact_email <> ''
  AND ($2::timestamptz IS NULL OR (o.scraped_at, o.id) < ($2::timestamptz, $3::uuid))
  AND NOT EXISTS (
      SELECT 1 FROM email_sends es
      WHERE es.offer_id = o.id AND es.account_id = ANY($1::uuid[])
  )
  AND NOT EXISTS (
      SELECT 1 FROM email_sends es
      WHERE es.account_id = $4 AND lower(es.recipient_email) = lower(o.contact_email)
  )
ORDER BY o.scraped_at DESC, o.id DESC
LIMIT $5
`

// ListCandidateOffers returns one page of unused offers with a contact address
func (s *Store) ListCandidateOffers(ctx context.Context, query CandidateOffersQuery) ([]JobOffer, error) {
	excluded := make(StringArray, len(query.ExcludeOffersOf))
	for i, id := range query.ExcludeOffersOf {
		excluded[i] = id.String()
	}

	var (
		afterScrapedAt *time.Time
		afterID        *uuid.UUID
	)
	if query.After != nil {
		afterScrapedAt = &query.After.ScrapedAt
		afterID = &query.After.ID
	}

	var offers []JobOffer
	err := s.db.SelectContext(ctx, &offers, sqlListCandidateOffers,
		excluded, afterScrapedAt, afterID, query.RecipientsOf, query.Limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list candidate offers: %w", err)
	}
	return offers, nil
}
