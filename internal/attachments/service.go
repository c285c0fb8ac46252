// Package attachments resolves the files an account sends with every application.
package attachments

import (
	"context"
	"errors"
	"fmt"

	"outreach-server/internal/attachments/cache"
	"outreach-server/internal/email"
	"outreach-server/internal/metrics"
	"outreach-server/internal/observability"
	"outreach-server/internal/store"
)

var ErrNoFolder = errors.New("account has no attachment folder")

type Service struct {
	source FileSource
	cache  *cache.Cache
	logger *observability.Logger
}

func New(source FileSource, c *cache.Cache, logger *observability.Logger) *Service {
	return &Service{
		source: source,
		cache:  c,
		logger: logger,
	}
}

// ForAccount lists the account's Drive folder and returns every file, served from the
// cache when fresh and downloaded otherwise. Files that fail to download are skipped.
func (s *Service) ForAccount(ctx context.Context, account store.Account) ([]email.Attachment, error) {
	if account.DriveFolderID == "" {
		return nil, ErrNoFolder
	}
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "account_id", Value: account.ID},
		observability.Field{Key: "drive_folder_id", Value: account.DriveFolderID},
	)

	files, err := s.source.ListFolder(ctx, account.GoogleRefreshToken, account.DriveFolderID)
	if err != nil {
		return nil, fmt.Errorf("failed to list attachment folder: %w", err)
	}

	accountID := account.ID.String()
	result := make([]email.Attachment, 0, len(files))
	for _, file := range files {
		key := cache.Key{AccountID: accountID, FileID: file.ID}
		// The cache keeps the sanitized name, so a renamed Drive file is fetched again
		if data, meta, ok := s.cache.Get(key); ok && meta.Filename == cache.SanitizeFilename(file.Name) {
			result = append(result, email.Attachment{Filename: meta.Filename, ContentType: meta.ContentType, Data: data})
			metrics.IncAttachmentCache("hit")
			continue
		}
		metrics.IncAttachmentCache("miss")

		fileCtx := observability.WithFields(ctx, observability.Field{Key: "file_id", Value: file.ID})
		data, err := s.source.Download(fileCtx, account.GoogleRefreshToken, file)
		if err != nil {
			s.logger.WarnWithError(fileCtx, "skipping attachment that failed to download", err)
			metrics.IncAttachmentCache("download_error")
			continue
		}

		meta, err := s.cache.Set(key, file.Name, file.MimeType, data)
		if err != nil {
			// The download is still usable for this send
			s.logger.WarnWithError(fileCtx, "failed to cache attachment", err)
			result = append(result, email.Attachment{Filename: file.Name, ContentType: file.MimeType, Data: data})
			continue
		}
		result = append(result, email.Attachment{Filename: meta.Filename, ContentType: meta.ContentType, Data: data})
	}
	return result, nil
}
