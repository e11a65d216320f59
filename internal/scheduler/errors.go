package scheduler

import "errors"

var (
	ErrUnknownType   = errors.New("scheduler: unknown event type")
	ErrNotConfigured = errors.New("scheduler: job is not configured")
)
