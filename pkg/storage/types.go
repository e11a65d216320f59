package storage

import "errors"

var (
	ErrInvalidConfig  = errors.New("storage: bucket and region are required")
	ErrNotFound       = errors.New("storage: object not found")
	ErrBucketNotFound = errors.New("storage: bucket not found")
	ErrAccessDenied   = errors.New("storage: access denied")
	ErrEmptyFile      = errors.New("storage: file is empty")
)

// UploadInput is an object to store.
type UploadInput struct {
	Key         string
	Body        []byte
	ContentType string
}

// UploadResult describes a stored object.
type UploadResult struct {
	StatusCode int    `json:"status_code"`
	Key        string `json:"key"`
	ETag       string `json:"etag,omitempty"`
}
