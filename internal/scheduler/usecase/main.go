package usecase

import (
	"context"
	"fmt"

	"serverless-api-template/internal/scheduler"
)

func (uc *implUseCase) Main(ctx context.Context, t *scheduler.EventType) (any, error) {
	if t == nil {
		uc.l.Infof(ctx, "scheduler.Main: no event type, nothing to run")
		return nil, nil
	}
	uc.l.Debugf(ctx, "scheduler.Main: type=%s", *t)

	var (
		out any
		err error
	)
	switch *t {
	case scheduler.EventTypeDraft:
		out, err = uc.Draft(ctx)
	case scheduler.EventTypePublish:
		out, err = uc.Publish(ctx)
	default:
		return nil, fmt.Errorf("%w: %q", scheduler.ErrUnknownType, *t)
	}
	if err != nil {
		return nil, err
	}

	uc.debug(ctx, fmt.Sprintf("[scheduler] %s finished: %+v", *t, out))
	return out, nil
}

// debug posts text to the debug channel. Failures are only logged.
func (uc *implUseCase) debug(ctx context.Context, text string) {
	if uc.notify == nil {
		return
	}
	if _, err := uc.notify.PostDebug(ctx, text); err != nil {
		uc.l.Warnf(ctx, "scheduler.debug: %v", err)
	}
}
