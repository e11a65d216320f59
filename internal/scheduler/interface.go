package scheduler

import (
	"context"

	"serverless-api-template/pkg/gdrive"
	"serverless-api-template/pkg/gsheets"
	"serverless-api-template/pkg/slack"
	"serverless-api-template/pkg/storage"
)

//go:generate mockery --name UseCase
type UseCase interface {
	// Main dispatches to the job named by t.
	Main(ctx context.Context, t *EventType) (any, error)
	Draft(ctx context.Context) (DraftOutput, error)
	Publish(ctx context.Context) (PublishOutput, error)
}

// Sheets is the spreadsheet access the jobs need.
type Sheets interface {
	Fetch(ctx context.Context, req gsheets.FetchRequest) (gsheets.SheetData, error)
	Reset(ctx context.Context, req gsheets.ResetRequest) (gsheets.ResetResult, error)
}

// Drive is the file access the jobs need.
type Drive interface {
	ListByPrefix(ctx context.Context, folderID, prefix string) ([]gdrive.File, error)
	Move(ctx context.Context, fileID, targetFolderID string) (gdrive.File, error)
}

// Storage keeps snapshots.
type Storage interface {
	FetchJSON(ctx context.Context, key string, out any) error
	UploadJSON(ctx context.Context, key string, v any) (storage.UploadResult, error)
}

// Notifier reports finished jobs to the debug channel.
type Notifier interface {
	PostDebug(ctx context.Context, text string) (slack.Result, error)
}
