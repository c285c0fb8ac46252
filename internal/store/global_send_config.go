package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

const sqlGetGlobalSendConfig = `
SELECT start_hour, end_hour, min_delay_minutes, max_delay_minutes, enabled, updated_at
FROM global_send_config
WHERE id = 1
`

// GetGlobalSendConfig returns the singleton sending window configuration
func (s *Store) GetGlobalSendConfig(ctx context.Context) (GlobalSendConfig, error) {
	var cfg GlobalSendConfig
	err := s.db.GetContext(ctx, &cfg, sqlGetGlobalSendConfig)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return GlobalSendConfig{}, ErrNotFound
		}
		return GlobalSendConfig{}, fmt.Errorf("failed to get global send config: %w", err)
	}
	return cfg, nil
}

const sqlUpsertGlobalSendConfig = `
INSERT INTO global_send_config (id, start_hour, end_hour, min_delay_minutes, max_delay_minutes, enabled)
VALUES (1, $1, $2, $3, $4, $5)
ON CONFLICT (id) DO UPDATE SET
    start_hour = EXCLUDED.start_hour,
    end_hour = EXCLUDED.end_hour,
    min_delay_minutes = EXCLUDED.min_delay_minutes,
    max_delay_minutes = EXCLUDED.max_delay_minutes,
    enabled = EXCLUDED.enabled,
    updated_at = CURRENT_TIMESTAMP
RETURNING start_hour, end_hour, min_delay_minutes, max_delay_minutes, enabled, updated_at
`

// UpsertGlobalSendConfig replaces the singleton sending window configuration
func (s *Store) UpsertGlobalSendConfig(ctx context.Context, cfg GlobalSendConfig) (GlobalSendConfig, error) {
	if cfg.MaxDelayMinutes < cfg.MinDelayMinutes {
		return GlobalSendConfig{}, fmt.Errorf("max delay %d is below min delay %d", cfg.MaxDelayMinutes, cfg.MinDelayMinutes)
	}
	var saved GlobalSendConfig
	err := s.db.GetContext(ctx, &saved, sqlUpsertGlobalSendConfig,
		cfg.StartHour, cfg.EndHour, cfg.MinDelayMinutes, cfg.MaxDelayMinutes, cfg.Enabled)
	if err != nil {
		return GlobalSendConfig{}, fmt.Errorf("failed to save global send config: %w", err)
	}
	return saved, nil
}
