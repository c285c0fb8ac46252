package attachments

//go:generate go run go.uber.org/mock/mockgen@latest -source=interfaces.go -destination=mocks_test.go -package=attachments

import (
	"context"

	"outreach-server/internal/clients/drive"
)

// FileSource is the Drive surface the attachment lookup reads from
type FileSource interface {
	ListFolder(ctx context.Context, refreshToken, folderID string) ([]drive.File, error)
	Download(ctx context.Context, refreshToken string, file drive.File) ([]byte, error)
}
