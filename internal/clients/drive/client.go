package drive

import (
	"context"
	"fmt"
	"io"
	"strings"

	"outreach-server/internal/observability"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/drive/v3"
	"google.golang.org/api/option"
)

const (
	folderMimeType   = "application/vnd.google-apps.folder"
	googleAppsPrefix = "application/vnd.google-apps."
	pdfMimeType      = "application/pdf"
	// maxDownloadBytes bounds a single attachment download
	maxDownloadBytes = 20 << 20
)

// File is a downloadable entry of a Drive folder
type File struct {
	ID       string
	Name     string
	MimeType string
	Size     int64
	// export is set for native Google documents, which are exported as PDF
	export bool
}

// Client reads attachment files from an account's Drive folder
type Client struct {
	oauthConfig *oauth2.Config
	logger      *observability.Logger
}

func NewClient(clientID, clientSecret string, logger *observability.Logger) *Client {
	return &Client{
		oauthConfig: &oauth2.Config{
			ClientID:     clientID,
			ClientSecret: clientSecret,
			Endpoint:     google.Endpoint,
			Scopes:       []string{drive.DriveReadonlyScope},
		},
		logger: logger,
	}
}

func (c *Client) service(ctx context.Context, refreshToken string) (*drive.Service, error) {
	if refreshToken == "" {
		return nil, fmt.Errorf("account has no Google refresh token")
	}
	tokenSource := c.oauthConfig.TokenSource(ctx, &oauth2.Token{RefreshToken: refreshToken})
	srv, err := drive.NewService(ctx, option.WithHTTPClient(oauth2.NewClient(ctx, tokenSource)))
	if err != nil {
		return nil, fmt.Errorf("unable to create Drive service: %w", err)
	}
	return srv, nil
}

// ListFolder returns the downloadable files directly inside a folder
func (c *Client) ListFolder(ctx context.Context, refreshToken, folderID string) ([]File, error) {
	srv, err := c.service(ctx, refreshToken)
	if err != nil {
		return nil, err
	}

	query := fmt.Sprintf("'%s' in parents and trashed = false", strings.ReplaceAll(folderID, "'", `\'`))
	var files []File
	err = srv.Files.List().
		Q(query).
		Fields("nextPageToken, files(id, name, mimeType, size)").
		OrderBy("name").
		Pages(ctx, func(page *drive.FileList) error {
			for _, f := range page.Files {
				if file, ok := toFile(f); ok {
					files = append(files, file)
				}
			}
			return nil
		})
	if err != nil {
		return nil, fmt.Errorf("failed to list folder %s: %w", folderID, err)
	}
	return files, nil
}

// Download returns the content of a file listed by ListFolder
func (c *Client) Download(ctx context.Context, refreshToken string, file File) ([]byte, error) {
	srv, err := c.service(ctx, refreshToken)
	if err != nil {
		return nil, err
	}

	var body io.ReadCloser
	if file.export {
		resp, err := srv.Files.Export(file.ID, pdfMimeType).Context(ctx).Download()
		if err != nil {
			return nil, fmt.Errorf("failed to export file %s: %w", file.ID, err)
		}
		body = resp.Body
	} else {
		resp, err := srv.Files.Get(file.ID).Context(ctx).Download()
		if err != nil {
			return nil, fmt.Errorf("failed to download file %s: %w", file.ID, err)
		}
		body = resp.Body
	}
	defer body.Close()

	data, err := io.ReadAll(io.LimitReader(body, maxDownloadBytes+1))
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", file.ID, err)
	}
	if len(data) > maxDownloadBytes {
		return nil, fmt.Errorf("file %s exceeds %d bytes", file.ID, maxDownloadBytes)
	}
	return data, nil
}

func toFile(f *drive.File) (File, bool) {
	switch {
	case f.MimeType == folderMimeType:
		return File{}, false
	case f.MimeType == "application/vnd.google-apps.document":
		name := f.Name
		if !strings.HasSuffix(strings.ToLower(name), ".pdf") {
			name += ".pdf"
		}
		return File{ID: f.Id, Name: name, MimeType: pdfMimeType, export: true}, true
	case strings.HasPrefix(f.MimeType, googleAppsPrefix):
		return File{}, false
	}
	return File{ID: f.Id, Name: f.Name, MimeType: f.MimeType, Size: f.Size}, true
}
