// Package cache keeps downloaded attachments on disk under
// {root}/{accountID}/{fileID}_{filename} with an in-memory metadata index.
package cache

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"outreach-server/internal/clock"
	"outreach-server/internal/observability"

	"github.com/gabriel-vasile/mimetype"
)

const tempPrefix = ".tmp-"

var ErrInvalidKey = errors.New("invalid cache key")

// Key identifies a cached attachment
type Key struct {
	AccountID string
	FileID    string
}

// Meta describes a cached attachment
type Meta struct {
	AccountID   string    `json:"account_id"`
	FileID      string    `json:"file_id"`
	Filename    string    `json:"filename"`
	Path        string    `json:"path"`
	Size        int64     `json:"size"`
	CachedAt    time.Time `json:"cached_at"`
	ContentType string    `json:"content_type"`
}

func (m Meta) key() Key {
	return Key{AccountID: m.AccountID, FileID: m.FileID}
}

// Cache is a TTL-bound disk cache. Metadata is only recorded after the file
// is fully written, and every lookup re-checks the file on disk.
type Cache struct {
	root   string
	ttl    time.Duration
	index  Index
	clock  clock.Clock
	logger *observability.Logger

	mu      sync.RWMutex
	entries map[Key]Meta
}

func New(root string, ttl time.Duration, index Index, clk clock.Clock, logger *observability.Logger) (*Cache, error) {
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create cache root: %w", err)
	}
	return &Cache{
		root:    root,
		ttl:     ttl,
		index:   index,
		clock:   clk,
		logger:  logger,
		entries: make(map[Key]Meta),
	}, nil
}

// Has reports whether a fresh entry with a backing file exists.
// Stale or orphaned entries are evicted.
func (c *Cache) Has(key Key) bool {
	_, ok := c.lookup(key)
	return ok
}

// Get returns the cached bytes, or false on a miss
func (c *Cache) Get(key Key) ([]byte, Meta, bool) {
	meta, ok := c.lookup(key)
	if !ok {
		return nil, Meta{}, false
	}
	data, err := os.ReadFile(meta.Path)
	if err != nil {
		c.evict(meta)
		return nil, Meta{}, false
	}
	return data, meta, true
}

func (c *Cache) lookup(key Key) (Meta, bool) {
	c.mu.RLock()
	meta, ok := c.entries[key]
	c.mu.RUnlock()
	if !ok {
		return Meta{}, false
	}

	if c.expired(meta) {
		c.evict(meta)
		return Meta{}, false
	}
	if _, err := os.Stat(meta.Path); err != nil {
		c.evict(meta)
		return Meta{}, false
	}
	return meta, true
}

// Set stores data for key. The file is written to a temporary name, synced and
// renamed into place before the metadata is recorded.
func (c *Cache) Set(key Key, filename, contentType string, data []byte) (Meta, error) {
	if err := validateKey(key); err != nil {
		return Meta{}, err
	}
	filename = SanitizeFilename(filename)
	if filename == "" {
		return Meta{}, fmt.Errorf("%w: empty filename", ErrInvalidKey)
	}

	dir := filepath.Join(c.root, key.AccountID)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return Meta{}, fmt.Errorf("failed to create account directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, tempPrefix+"*")
	if err != nil {
		return Meta{}, fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpName := tmp.Name()
	if err := writeAndSync(tmp, data); err != nil {
		os.Remove(tmpName)
		return Meta{}, err
	}

	path := filepath.Join(dir, fileName(key.FileID, filename))
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return Meta{}, fmt.Errorf("failed to move attachment into place: %w", err)
	}

	if contentType == "" {
		contentType = mimetype.Detect(data).String()
	}
	meta := Meta{
		AccountID:   key.AccountID,
		FileID:      key.FileID,
		Filename:    filename,
		Path:        path,
		Size:        int64(len(data)),
		CachedAt:    c.clock.Now(),
		ContentType: contentType,
	}

	c.mu.Lock()
	previous, hadPrevious := c.entries[key]
	c.entries[key] = meta
	c.mu.Unlock()

	// A new filename for the same file id leaves the old file behind
	if hadPrevious && previous.Path != path {
		os.Remove(previous.Path)
	}
	if err := c.index.Put(meta); err != nil {
		c.logger.WarnWithError(context.Background(), "failed to persist cache index entry", err)
	}
	return meta, nil
}

func writeAndSync(f *os.File, data []byte) error {
	if _, err := f.Write(data); err != nil {
		f.Close()
		return fmt.Errorf("failed to write attachment: %w", err)
	}
	if err := f.Sync(); err != nil {
		f.Close()
		return fmt.Errorf("failed to sync attachment: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to close attachment: %w", err)
	}
	return nil
}

// Delete removes one entry and its file
func (c *Cache) Delete(key Key) {
	c.mu.RLock()
	meta, ok := c.entries[key]
	c.mu.RUnlock()
	if ok {
		c.evict(meta)
	}
}

// Clear removes every entry of an account together with its directory
func (c *Cache) Clear(accountID string) error {
	if err := validateKey(Key{AccountID: accountID, FileID: "x"}); err != nil {
		return err
	}

	c.mu.Lock()
	var removed []Meta
	for k, meta := range c.entries {
		if k.AccountID == accountID {
			delete(c.entries, k)
			removed = append(removed, meta)
		}
	}
	c.mu.Unlock()

	for _, meta := range removed {
		if err := c.index.Delete(meta.key()); err != nil {
			c.logger.WarnWithError(context.Background(), "failed to delete cache index entry", err)
		}
	}
	if err := os.RemoveAll(filepath.Join(c.root, accountID)); err != nil {
		return fmt.Errorf("failed to remove account cache: %w", err)
	}
	return nil
}

// CleanupExpired removes every entry older than the TTL and returns how many were removed
func (c *Cache) CleanupExpired() int {
	c.mu.RLock()
	var expired []Meta
	for _, meta := range c.entries {
		if c.expired(meta) {
			expired = append(expired, meta)
		}
	}
	c.mu.RUnlock()

	for _, meta := range expired {
		c.evict(meta)
	}
	return len(expired)
}

// Rebuild restores the in-memory metadata from the recovery index.
// Entries whose file is gone or already expired are dropped.
func (c *Cache) Rebuild() (int, error) {
	metas, err := c.index.Load(c.root)
	if err != nil {
		return 0, fmt.Errorf("failed to load cache index: %w", err)
	}

	recovered := make(map[Key]Meta, len(metas))
	for _, meta := range metas {
		if _, err := os.Stat(meta.Path); err != nil {
			c.index.Delete(meta.key())
			continue
		}
		if c.expired(meta) {
			c.evictFiles(meta)
			continue
		}
		recovered[meta.key()] = meta
	}

	c.mu.Lock()
	c.entries = recovered
	c.mu.Unlock()
	return len(recovered), nil
}

// Len returns the number of indexed entries
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

// Close releases the recovery index
func (c *Cache) Close() error {
	return c.index.Close()
}

func (c *Cache) expired(meta Meta) bool {
	return c.clock.Now().Sub(meta.CachedAt) > c.ttl
}

// evict drops meta from the map if it is still the current entry, then removes its file
func (c *Cache) evict(meta Meta) {
	c.mu.Lock()
	if current, ok := c.entries[meta.key()]; ok && current.Path == meta.Path && current.CachedAt.Equal(meta.CachedAt) {
		delete(c.entries, meta.key())
	}
	c.mu.Unlock()
	c.evictFiles(meta)
}

func (c *Cache) evictFiles(meta Meta) {
	if err := os.Remove(meta.Path); err != nil && !os.IsNotExist(err) {
		c.logger.WarnWithError(context.Background(), "failed to remove cached attachment", err)
	}
	if err := c.index.Delete(meta.key()); err != nil {
		c.logger.WarnWithError(context.Background(), "failed to delete cache index entry", err)
	}
}

func validateKey(key Key) error {
	for _, part := range []string{key.AccountID, key.FileID} {
		if part == "" || part == "." || part == ".." || strings.ContainsAny(part, `/\`) {
			return fmt.Errorf("%w: %q", ErrInvalidKey, part)
		}
	}
	return nil
}

// SanitizeFilename returns the name an attachment is stored under: the last path
// element of name, trimmed. Empty when nothing usable is left.
func SanitizeFilename(name string) string {
	name = strings.ReplaceAll(name, `\`, "/")
	name = filepath.Base(strings.TrimSpace(name))
	if name == "." || name == ".." || name == "/" {
		return ""
	}
	return name
}

// fileName escapes '_' in the file id so the first '_' always separates id and filename
func fileName(fileID, filename string) string {
	escaped := strings.ReplaceAll(url.PathEscape(fileID), "_", "%5F")
	return escaped + "_" + filename
}

// parseFileName is the inverse of fileName
func parseFileName(name string) (fileID, filename string, ok bool) {
	if strings.HasPrefix(name, ".") {
		return "", "", false
	}
	idx := strings.Index(name, "_")
	if idx <= 0 || idx == len(name)-1 {
		return "", "", false
	}
	fileID, err := url.PathUnescape(name[:idx])
	if err != nil || fileID == "" {
		return "", "", false
	}
	return fileID, name[idx+1:], true
}
