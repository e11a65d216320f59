package errors

import (
	"encoding/json"
	"fmt"
)

// HTTPError is a failure that carries its HTTP status and a JSON detail.
type HTTPError struct {
	Kind       Kind
	StatusCode int
	// Detail is the JSON text of the detail payload, or the raw string when
	// the payload could not be serialized.
	Detail string
	// Errors holds field errors for KindValidation, or entries that precede
	// the detail for other kinds.
	Errors []any
}

func (e *HTTPError) Error() string {
	if e.Detail == "" {
		return e.Kind.String()
	}
	return e.Detail
}

// WithErrors appends entries to e.Errors and returns e.
func (e *HTTPError) WithErrors(errs ...any) *HTTPError {
	e.Errors = append(e.Errors, errs...)
	return e
}

// New builds an HTTPError of the given kind. A string detail is wrapped as
// {"reason": detail}; any other value is serialized as JSON.
func New(kind Kind, detail any) *HTTPError {
	return &HTTPError{
		Kind:       kind,
		StatusCode: kind.Status(),
		Detail:     serialize(detail),
	}
}

// NewHTTPError picks the kind from status. Statuses outside the taxonomy map
// to KindUnknown but keep their status code.
func NewHTTPError(status int, detail any) *HTTPError {
	e := New(KindFromStatus(status), detail)
	e.StatusCode = status
	return e
}

func BadRequest(detail any) *HTTPError          { return New(KindBadRequest, detail) }
func Forbidden(detail any) *HTTPError           { return New(KindForbidden, detail) }
func NotFound(detail any) *HTTPError            { return New(KindNotFound, detail) }
func InternalServerError(detail any) *HTTPError { return New(KindInternalServerError, detail) }

// Validation builds the multi-field kind from per-field errors.
func Validation(errs ...any) *HTTPError {
	e := New(KindValidation, CodeBadParams)
	e.Errors = errs
	return e
}

func serialize(detail any) string {
	if s, ok := detail.(string); ok {
		detail = map[string]string{"reason": s}
	}
	b, err := json.Marshal(detail)
	if err != nil {
		return fmt.Sprint(detail)
	}
	return string(b)
}

// ParseDetail decodes a Detail string, falling back to the raw text.
func ParseDetail(detail string) any {
	var v any
	if err := json.Unmarshal([]byte(detail), &v); err != nil {
		return detail
	}
	return v
}
