package cache

import (
	"context"
	"os"
	"path/filepath"

	"outreach-server/internal/observability"

	"github.com/gabriel-vasile/mimetype"
)

// Index recovers cache metadata after a restart and optionally persists it
type Index interface {
	Load(root string) ([]Meta, error)
	Put(meta Meta) error
	Delete(key Key) error
	Close() error
}

// ScanIndex recovers metadata from the directory layout alone. The file
// modification time stands in for the original cache time.
type ScanIndex struct {
	logger *observability.Logger
}

func NewScanIndex(logger *observability.Logger) *ScanIndex {
	return &ScanIndex{logger: logger}
}

func (s *ScanIndex) Load(root string) ([]Meta, error) {
	accounts, err := os.ReadDir(root)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}

	var metas []Meta
	for _, account := range accounts {
		if !account.IsDir() || account.Name()[0] == '.' {
			continue
		}
		dir := filepath.Join(root, account.Name())
		files, err := os.ReadDir(dir)
		if err != nil {
			s.logger.WarnWithError(context.Background(), "skipping unreadable cache directory", err)
			continue
		}
		for _, f := range files {
			if f.IsDir() {
				continue
			}
			fileID, filename, ok := parseFileName(f.Name())
			if !ok {
				continue
			}
			info, err := f.Info()
			if err != nil || !info.Mode().IsRegular() {
				continue
			}
			path := filepath.Join(dir, f.Name())
			mt, err := mimetype.DetectFile(path)
			if err != nil {
				continue
			}
			metas = append(metas, Meta{
				AccountID:   account.Name(),
				FileID:      fileID,
				Filename:    filename,
				Path:        path,
				Size:        info.Size(),
				CachedAt:    info.ModTime(),
				ContentType: mt.String(),
			})
		}
	}
	return metas, nil
}

func (s *ScanIndex) Put(Meta) error   { return nil }
func (s *ScanIndex) Delete(Key) error { return nil }
func (s *ScanIndex) Close() error     { return nil }
