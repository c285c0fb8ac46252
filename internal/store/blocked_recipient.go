package store

import (
	"context"
	"fmt"
	"strings"
)

const sqlBlockRecipient = `
INSERT INTO blocked_recipients (email, reason)
VALUES (lower($1), $2)
ON CONFLICT (email) DO UPDATE SET reason = EXCLUDED.reason
`

// BlockRecipient adds an address to the reputation blocklist
func (s *Store) BlockRecipient(ctx context.Context, email, reason string) error {
	_, err := s.db.ExecContext(ctx, sqlBlockRecipient, strings.TrimSpace(email), reason)
	if err != nil {
		return fmt.Errorf("failed to block recipient: %w", err)
	}
	return nil
}

const sqlListBlockedRecipients = `
SELECT email FROM blocked_recipients
UNION
SELECT DISTINCT lower(recipient_email) FROM email_sends WHERE status = 'BOUNCED'
`

// ListBlockedRecipients returns the lowercased addresses that must not be contacted
func (s *Store) ListBlockedRecipients(ctx context.Context) ([]string, error) {
	var emails []string
	if err := s.db.SelectContext(ctx, &emails, sqlListBlockedRecipients); err != nil {
		return nil, fmt.Errorf("failed to list blocked recipients: %w", err)
	}
	return emails, nil
}
