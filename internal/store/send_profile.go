package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
)

// CreateSendProfileParams represents parameters for creating a send profile
type CreateSendProfileParams struct {
	AccountID         uuid.UUID
	MinDaily          int
	MaxDaily          int
	CurrentDailyLimit int
	TargetDailyLimit  int
	DailyIncrement    int
	WarmupActive      bool
	Active            bool
	PreviewEnabled    bool
}

const sendProfileColumns = `
id, account_id, min_daily, max_daily, current_daily_limit, target_daily_limit,
daily_increment, warmup_active, active, preview_enabled, created_at, updated_at`

const sqlCreateSendProfile = `
INSERT INTO account_send_profiles (account_id, min_daily, max_daily, current_daily_limit, target_daily_limit,
    daily_increment, warmup_active, active, preview_enabled)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
RETURNING` + sendProfileColumns

// CreateSendProfile creates the send profile of an account
func (s *Store) CreateSendProfile(ctx context.Context, params CreateSendProfileParams) (AccountSendProfile, error) {
	var profile AccountSendProfile
	err := s.db.GetContext(ctx, &profile, sqlCreateSendProfile,
		params.AccountID,
		params.MinDaily,
		params.MaxDaily,
		params.CurrentDailyLimit,
		params.TargetDailyLimit,
		params.DailyIncrement,
		params.WarmupActive,
		params.Active,
		params.PreviewEnabled)
	if err != nil {
		if isUniqueViolation(err, "") {
			return AccountSendProfile{}, ErrAlreadyExists
		}
		return AccountSendProfile{}, fmt.Errorf("failed to create send profile: %w", err)
	}
	return profile, nil
}

const sqlGetSendProfileByAccountID = `SELECT` + sendProfileColumns + `
FROM account_send_profiles
WHERE account_id = $1
`

// GetSendProfileByAccountID retrieves the send profile of an account
func (s *Store) GetSendProfileByAccountID(ctx context.Context, accountID uuid.UUID) (AccountSendProfile, error) {
	var profile AccountSendProfile
	err := s.db.GetContext(ctx, &profile, sqlGetSendProfileByAccountID, accountID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return AccountSendProfile{}, ErrNotFound
		}
		return AccountSendProfile{}, fmt.Errorf("failed to get send profile: %w", err)
	}
	return profile, nil
}

const sqlListActiveSendProfiles = `SELECT` + sendProfileColumns + `
FROM account_send_profiles
WHERE active = TRUE
ORDER BY created_at ASC
`

// ListActiveSendProfiles returns every profile that takes part in sending
func (s *Store) ListActiveSendProfiles(ctx context.Context) ([]AccountSendProfile, error) {
	var profiles []AccountSendProfile
	err := s.db.SelectContext(ctx, &profiles, sqlListActiveSendProfiles)
	if err != nil {
		return nil, fmt.Errorf("failed to list active send profiles: %w", err)
	}
	return profiles, nil
}
