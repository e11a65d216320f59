package http

import "serverless-api-template/pkg/log"

type handler struct {
	l log.Logger
}

// New creates the HTTP handler for the root resource.
func New(l log.Logger) *handler {
	return &handler{l: l}
}
