package scheduler

import (
	"time"

	"serverless-api-template/pkg/gdrive"
)

// EventType selects the job to run.
type EventType string

const (
	EventTypeDraft   EventType = "draft"
	EventTypePublish EventType = "publish"
)

// Event is the payload a scheduler trigger delivers. A missing type is null.
type Event struct {
	Type *EventType `json:"type"`
}

// Config binds the jobs to their Drive folder, sheet and storage keys.
type Config struct {
	DriveFolderID   string
	FilePrefix      string
	ArchiveFolderID string
	SpreadsheetID   string
	SheetRange      string
	HeaderLines     int
	InsertRange     string
	DeleteRange     string
	SnapshotPrefix  string
	PublishKey      string
}

// Snapshot is the document written by draft and read back by publish.
type Snapshot struct {
	GeneratedAt time.Time     `json:"generated_at"`
	Files       []gdrive.File `json:"files"`
	Headers     [][]string    `json:"headers"`
	Rows        [][]string    `json:"rows"`
}

// --- UseCase outputs ---

type DraftOutput struct {
	Key   string `json:"key"`
	Files int    `json:"files"`
	Rows  int    `json:"rows"`
	Moved int    `json:"moved"`
}

type PublishOutput struct {
	Key    string `json:"key"`
	Rows   int    `json:"rows"`
	Reset  int    `json:"reset"`
	Update int    `json:"update"`
}
