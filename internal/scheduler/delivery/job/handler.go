// Package job exposes the scheduler use case as an event-style entry point.
package job

import (
	"context"

	"serverless-api-template/internal/scheduler"
	pkgJob "serverless-api-template/pkg/job"
	"serverless-api-template/pkg/log"
)

type Handler struct {
	l  log.Logger
	uc scheduler.UseCase
}

func New(l log.Logger, uc scheduler.UseCase) Handler {
	return Handler{l: l, uc: uc}
}

// Handle runs the job named by ev.Type.
func (h Handler) Handle(ctx context.Context, ev scheduler.Event) pkgJob.Result {
	return pkgJob.Wrap(ctx, h.l, "scheduler.Handle", func(ctx context.Context) (any, error) {
		return h.uc.Main(ctx, ev.Type)
	})
}
