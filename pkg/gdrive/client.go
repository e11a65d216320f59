package gdrive

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"google.golang.org/api/drive/v3"
	"google.golang.org/api/option"
)

// Scope grants full Drive access, needed to move files between folders.
const Scope = drive.DriveScope

const pageSize = 100

// Client wraps the Google Drive files API.
type Client struct {
	service *drive.Service
}

// File is the subset of Drive file metadata the service uses.
type File struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	MimeType    string   `json:"mime_type"`
	WebViewLink string   `json:"web_view_link,omitempty"`
	Parents     []string `json:"parents,omitempty"`
}

// NewClient creates a Drive client from API client options.
func NewClient(ctx context.Context, opts ...option.ClientOption) (*Client, error) {
	svc, err := drive.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create drive service: %w", err)
	}
	return &Client{service: svc}, nil
}

// NewClientFromHTTP creates a Drive client with a pre-configured HTTP client (useful for testing).
func NewClientFromHTTP(ctx context.Context, httpClient *http.Client) (*Client, error) {
	return NewClient(ctx, option.WithHTTPClient(httpClient))
}

// ListByPrefix returns the files of folderID whose name starts with prefix,
// oldest first, following every result page.
func (c *Client) ListByPrefix(ctx context.Context, folderID, prefix string) ([]File, error) {
	q := fmt.Sprintf("name contains '%s' and '%s' in parents and trashed = false", escape(prefix), escape(folderID))

	var files []File
	pageToken := ""
	for {
		call := c.service.Files.List().
			Q(q).
			Fields("nextPageToken, files(id, name, mimeType, webViewLink, parents)").
			PageSize(pageSize).
			OrderBy("createdTime").
			Context(ctx)
		if pageToken != "" {
			call = call.PageToken(pageToken)
		}

		resp, err := call.Do()
		if err != nil {
			return nil, fmt.Errorf("gdrive: list %s: %w", folderID, err)
		}

		for _, f := range resp.Files {
			// "contains" matches word prefixes anywhere in the name
			if strings.HasPrefix(f.Name, prefix) {
				files = append(files, toFile(f))
			}
		}

		if resp.NextPageToken == "" {
			return files, nil
		}
		pageToken = resp.NextPageToken
	}
}

// Move re-parents fileID under targetFolderID, removing its previous parents.
func (c *Client) Move(ctx context.Context, fileID, targetFolderID string) (File, error) {
	current, err := c.service.Files.Get(fileID).Fields("id, parents").Context(ctx).Do()
	if err != nil {
		return File{}, fmt.Errorf("gdrive: get %s: %w", fileID, err)
	}

	updated, err := c.service.Files.Update(fileID, &drive.File{}).
		AddParents(targetFolderID).
		RemoveParents(strings.Join(current.Parents, ",")).
		Fields("id, name, mimeType, webViewLink, parents").
		Context(ctx).
		Do()
	if err != nil {
		return File{}, fmt.Errorf("gdrive: move %s: %w", fileID, err)
	}
	return toFile(updated), nil
}

func toFile(f *drive.File) File {
	return File{
		ID:          f.Id,
		Name:        f.Name,
		MimeType:    f.MimeType,
		WebViewLink: f.WebViewLink,
		Parents:     f.Parents,
	}
}

func escape(s string) string {
	return strings.NewReplacer(`\`, `\\`, `'`, `\'`).Replace(s)
}
