package http

import (
	"serverless-api-template/internal/alert"
	"serverless-api-template/pkg/log"
)

type handler struct {
	l  log.Logger
	uc alert.UseCase
}

// New creates the HTTP handler for the alert relay.
func New(l log.Logger, uc alert.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
