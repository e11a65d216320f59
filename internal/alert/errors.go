package alert

import "errors"

var (
	ErrMissingData = errors.New("alert: event has no awslogs data")
	ErrDecode      = errors.New("alert: cannot decode log data")
)
