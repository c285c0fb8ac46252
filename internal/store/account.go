package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
)

// CreateAccountParams represents parameters for creating an account
type CreateAccountParams struct {
	Name                   string
	Email                  string
	PartnerAccountID       *uuid.UUID
	Countries              []string
	Cities                 []string
	JobTitle               string
	JobTitleMatch          JobTitleMatch
	MatchMode              MatchMode
	FilterCountriesEnabled bool
	FilterCitiesEnabled    bool
	FilterJobTitleEnabled  bool
	DriveFolderID          string
	GoogleRefreshToken     string
	MailProvider           MailProvider
}

const accountColumns = `
id, name, email, partner_account_id, countries, cities, job_title, job_title_match, match_mode,
filter_countries_enabled, filter_cities_enabled, filter_job_title_enabled,
drive_folder_id, google_refresh_token, mail_provider, created_at, updated_at`

const sqlCreateAccount = `
INSERT INTO accounts (name, email, partner_account_id, countries, cities, job_title, job_title_match, match_mode,
    filter_countries_enabled, filter_cities_enabled, filter_job_title_enabled,
    drive_folder_id, google_refresh_token, mail_provider)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
RETURNING` + accountColumns

// CreateAccount creates a new account
func (s *Store) CreateAccount(ctx context.Context, params CreateAccountParams) (Account, error) {
	if params.JobTitleMatch == "" {
		params.JobTitleMatch = JobTitleMatchContains
	}
	if params.MatchMode == "" {
		params.MatchMode = MatchModeAll
	}
	if params.MailProvider == "" {
		params.MailProvider = MailProviderGmail
	}

	var account Account
	err := s.db.GetContext(ctx, &account, sqlCreateAccount,
		params.Name,
		params.Email,
		params.PartnerAccountID,
		StringArray(params.Countries),
		StringArray(params.Cities),
		params.JobTitle,
		params.JobTitleMatch,
		params.MatchMode,
		params.FilterCountriesEnabled,
		params.FilterCitiesEnabled,
		params.FilterJobTitleEnabled,
		params.DriveFolderID,
		params.GoogleRefreshToken,
		params.MailProvider)
	if err != nil {
		return Account{}, fmt.Errorf("failed to create account: %w", err)
	}
	return account, nil
}

const sqlGetAccountByID = `SELECT` + accountColumns + `
FROM accounts
WHERE id = $1
`

// GetAccountByID retrieves an account by ID
func (s *Store) GetAccountByID(ctx context.Context, accountID uuid.UUID) (Account, error) {
	var account Account
	err := s.db.GetContext(ctx, &account, sqlGetAccountByID, accountID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Account{}, ErrNotFound
		}
		return Account{}, fmt.Errorf("failed to get account: %w", err)
	}
	return account, nil
}
