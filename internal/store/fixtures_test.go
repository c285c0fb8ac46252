package store

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

// Fixtures provides factory functions for creating test data.
// All factory methods use testify/require to fail fast on errors.
type Fixtures struct {
	t      *testing.T
	testDB *TestDB
	ctx    context.Context
}

// NewFixtures creates a new Fixtures instance for test data generation.
func NewFixtures(t *testing.T, testDB *TestDB) *Fixtures {
	t.Helper()
	return &Fixtures{
		t:      t,
		testDB: testDB,
		ctx:    context.Background(),
	}
}

// CreateAccount creates a test account with optional customization.
func (f *Fixtures) CreateAccount(opts ...func(*CreateAccountParams)) Account {
	f.t.Helper()
	params := CreateAccountParams{
		Name:  "Test Seeker",
		Email: "seeker-" + uuid.NewString()[:8] + "@example.com",
	}
	for _, fn := range opts {
		fn(&params)
	}
	account, err := f.testDB.Store.CreateAccount(f.ctx, params)
	require.NoError(f.t, err, "failed to create test account")
	return account
}

// CreateSendProfile creates an active send profile for the account.
func (f *Fixtures) CreateSendProfile(accountID uuid.UUID, opts ...func(*CreateSendProfileParams)) AccountSendProfile {
	f.t.Helper()
	params := CreateSendProfileParams{
		AccountID:         accountID,
		MaxDaily:          50,
		CurrentDailyLimit: 5,
		TargetDailyLimit:  20,
		DailyIncrement:    2,
		WarmupActive:      true,
		Active:            true,
	}
	for _, fn := range opts {
		fn(&params)
	}
	profile, err := f.testDB.Store.CreateSendProfile(f.ctx, params)
	require.NoError(f.t, err, "failed to create test send profile")
	return profile
}

// CreateSendJob creates today's job for the account.
func (f *Fixtures) CreateSendJob(accountID uuid.UUID, quota int) SendJob {
	f.t.Helper()
	job, err := f.testDB.Store.CreateDailySendJob(f.ctx, CreateDailySendJobParams{
		AccountID:    accountID,
		SendDate:     time.Now(),
		EmailsToSend: quota,
	})
	require.NoError(f.t, err, "failed to create test send job")
	return job
}

// CreateJobOffer creates an offer scraped at the given time.
func (f *Fixtures) CreateJobOffer(contactEmail string, scrapedAt time.Time) JobOffer {
	f.t.Helper()
	offer, err := f.testDB.Store.CreateJobOffer(f.ctx, CreateJobOfferParams{
		Company:      "Acme",
		Title:        "Backend Engineer",
		Country:      "Germany",
		City:         "Berlin",
		ContactEmail: contactEmail,
		ScrapedAt:    scrapedAt,
	})
	require.NoError(f.t, err, "failed to create test job offer")
	return offer
}
