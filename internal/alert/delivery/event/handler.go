// Package event exposes the alert relay as an event-style entry point.
package event

import (
	"context"
	"net/http"

	"serverless-api-template/internal/alert"
	"serverless-api-template/pkg/job"
	"serverless-api-template/pkg/log"
	"serverless-api-template/pkg/response"
)

type Handler struct {
	l  log.Logger
	uc alert.UseCase
}

func New(l log.Logger, uc alert.UseCase) Handler {
	return Handler{l: l, uc: uc}
}

// Handle relays ev. Any failure yields 500 {"message":"Error posting to Slack."}.
func (h Handler) Handle(ctx context.Context, ev alert.Event) (res job.Result) {
	defer func() {
		if r := recover(); r != nil {
			log.Track(ctx, h.l, "alert.Handle", r)
			res = job.JSON(http.StatusInternalServerError, response.MessageResp{Message: alert.MessageFailed})
		}
	}()

	out, err := h.uc.Relay(ctx, ev)
	if err != nil {
		h.l.Errorf(ctx, "Error posting to Slack: %v", err)
		return job.JSON(http.StatusInternalServerError, response.MessageResp{Message: alert.MessageFailed})
	}
	return job.JSON(http.StatusOK, out)
}
