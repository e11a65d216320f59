package usecase

import (
	"time"

	"serverless-api-template/internal/scheduler"
	"serverless-api-template/pkg/log"
)

type implUseCase struct {
	l      log.Logger
	cfg    scheduler.Config
	sheets scheduler.Sheets
	drive  scheduler.Drive
	store  scheduler.Storage
	notify scheduler.Notifier
	now    func() time.Time
}

// New creates the scheduler use case. notify may be nil.
func New(l log.Logger, cfg scheduler.Config, sheets scheduler.Sheets, drive scheduler.Drive, store scheduler.Storage, notify scheduler.Notifier) scheduler.UseCase {
	return &implUseCase{
		l:      l,
		cfg:    cfg,
		sheets: sheets,
		drive:  drive,
		store:  store,
		notify: notify,
		now:    func() time.Time { return time.Now().UTC() },
	}
}
