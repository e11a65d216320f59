package usecase

import (
	"serverless-api-template/internal/alert"
	"serverless-api-template/pkg/log"
)

type implUseCase struct {
	l      log.Logger
	sender alert.Sender
}

// New creates the alert relay use case.
func New(l log.Logger, sender alert.Sender) alert.UseCase {
	return &implUseCase{
		l:      l,
		sender: sender,
	}
}
