// Package reputation tracks recipients that must never be contacted again.
package reputation

import (
	"context"
	"fmt"
	"strings"
	"time"

	"outreach-server/internal/observability"
)

const cacheKey = "outreach:blocklist"

// Set is a lowercased set of blocked addresses
type Set map[string]struct{}

// Contains reports whether email is blocked, ignoring case and surrounding space
func (s Set) Contains(email string) bool {
	_, ok := s[normalize(email)]
	return ok
}

// Blocklist reads the blocklist from Postgres, cached in Redis when available.
// Cache failures fall back to the store.
type Blocklist struct {
	store  BlockStore
	cache  SetCache
	ttl    time.Duration
	logger *observability.Logger
}

func New(store BlockStore, cache SetCache, ttl time.Duration, logger *observability.Logger) *Blocklist {
	return &Blocklist{
		store:  store,
		cache:  cache,
		ttl:    ttl,
		logger: logger,
	}
}

func (b *Blocklist) cacheEnabled() bool {
	return b.cache != nil && b.cache.IsEnabled()
}

// Load returns the current blocklist
func (b *Blocklist) Load(ctx context.Context) (Set, error) {
	if b.cacheEnabled() {
		if set, ok := b.fromCache(ctx); ok {
			return set, nil
		}
	}

	emails, err := b.store.ListBlockedRecipients(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load blocklist: %w", err)
	}

	set := make(Set, len(emails))
	members := make([]string, 0, len(emails))
	for _, e := range emails {
		e = normalize(e)
		if e == "" {
			continue
		}
		if _, dup := set[e]; !dup {
			set[e] = struct{}{}
			members = append(members, e)
		}
	}

	if b.cacheEnabled() && len(members) > 0 {
		if err := b.cache.ReplaceSet(ctx, cacheKey, members, b.ttl); err != nil {
			b.logger.WarnWithError(ctx, "failed to cache blocklist", err)
		}
	}
	return set, nil
}

func (b *Blocklist) fromCache(ctx context.Context) (Set, bool) {
	n, err := b.cache.Exists(ctx, cacheKey)
	if err != nil {
		b.logger.WarnWithError(ctx, "failed to check blocklist cache", err)
		return nil, false
	}
	if n == 0 {
		return nil, false
	}
	members, err := b.cache.SMembers(ctx, cacheKey)
	if err != nil {
		b.logger.WarnWithError(ctx, "failed to read blocklist cache", err)
		return nil, false
	}
	set := make(Set, len(members))
	for _, m := range members {
		set[m] = struct{}{}
	}
	return set, true
}

// Block adds email to the blocklist and invalidates the cached copy
func (b *Blocklist) Block(ctx context.Context, email, reason string) error {
	email = normalize(email)
	if email == "" {
		return fmt.Errorf("cannot block an empty address")
	}
	if err := b.store.BlockRecipient(ctx, email, reason); err != nil {
		return err
	}
	if b.cacheEnabled() {
		if err := b.cache.Del(ctx, cacheKey); err != nil {
			b.logger.WarnWithError(ctx, "failed to invalidate blocklist cache", err)
		}
	}
	return nil
}

func normalize(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
