package alert

import (
	"context"

	"serverless-api-template/pkg/slack"
)

//go:generate mockery --name UseCase
type UseCase interface {
	// Relay decodes ev and posts every log line to the chat channel.
	Relay(ctx context.Context, ev Event) (Output, error)
}

// Sender posts one text message to the chat channel.
type Sender interface {
	PostMessage(ctx context.Context, text string) (slack.Result, error)
}
