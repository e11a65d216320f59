package log

import (
	"context"
	"fmt"
	"time"

	"serverless-api-template/pkg/dates"
)

// Normalize splits any failure value into a short message and its full detail.
// It accepts nil and values that are not errors.
func Normalize(v any) (string, any) {
	switch e := v.(type) {
	case nil:
		return "", nil
	case error:
		return e.Error(), fmt.Sprintf("%+v", e)
	case string:
		return e, e
	case fmt.Stringer:
		return e.String(), e
	case map[string]any:
		if m, ok := e["msg"].(string); ok {
			return m, e["e"]
		}
		return "", e
	default:
		return "", v
	}
}

// Track logs v at error level under a "[tracking-<time>-<name>]" tag.
func Track(ctx context.Context, l Logger, name string, v any) {
	msg, detail := Normalize(v)
	l.Errorf(ctx, "[tracking-%s-%s] msg=%s error=%v", time.Now().Format(dates.DTTMFormat), name, msg, detail)
}
