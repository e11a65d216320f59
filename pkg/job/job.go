// Package job adapts use cases to event-style entry points that answer with
// a status code and a JSON body instead of an HTTP response.
package job

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"serverless-api-template/pkg/log"
	"serverless-api-template/pkg/metrics"
	"serverless-api-template/pkg/response"
)

// Result is what an event-style entry point returns to its caller.
type Result struct {
	StatusCode int    `json:"statusCode"`
	Body       string `json:"body"`
}

// Func is the unit of work run by Wrap.
type Func func(ctx context.Context) (any, error)

// Wrap runs fn and turns its outcome into a Result: 200 with the JSON result,
// or 500 with {"message": "Internal Server Error", "error": <message>} when fn
// fails or panics.
func Wrap(ctx context.Context, l log.Logger, name string, fn Func) (res Result) {
	defer func() {
		if r := recover(); r != nil {
			log.Track(ctx, l, name, r)
			res = Failure(fmt.Sprint(r))
		}
		metrics.ReportJobRun(res.StatusCode)
	}()

	out, err := fn(ctx)
	if err != nil {
		log.Track(ctx, l, name, err)
		return Failure(err.Error())
	}

	body, err := json.Marshal(out)
	if err != nil {
		log.Track(ctx, l, name, err)
		return Failure(err.Error())
	}
	return Result{StatusCode: http.StatusOK, Body: string(body)}
}

// Failure builds the standard 500 Result.
func Failure(message string) Result {
	return JSON(http.StatusInternalServerError, response.MessageResp{
		Message: response.MessageInternalServerError,
		Error:   message,
	})
}

// JSON builds a Result with v serialized as the body.
func JSON(status int, v any) Result {
	body, err := json.Marshal(v)
	if err != nil {
		return Result{StatusCode: http.StatusInternalServerError, Body: fmt.Sprintf(`{"message":%q}`, response.MessageInternalServerError)}
	}
	return Result{StatusCode: status, Body: string(body)}
}
