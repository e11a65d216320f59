package errors

import "net/http"

// Response codes sent as the "msg" of an error envelope.
const (
	CodeBadParams       = "[101] bad params"
	CodeValidationError = "[102] validation error"
	CodeUnexpected      = "[103] unexpected"
	CodeTooManyRequests = "[104] too many requests"
	CodeUnknownError    = "[105] unknown error"
	CodeNoData          = "[400] no data"
)

// Kind is the closed set of error kinds a handler may raise.
type Kind int

const (
	KindUnknown Kind = iota
	KindBadRequest
	KindForbidden
	KindNotFound
	KindInternalServerError
	KindValidation
)

// Status returns the HTTP status bound to k.
func (k Kind) Status() int {
	switch k {
	case KindBadRequest, KindValidation:
		return http.StatusBadRequest
	case KindForbidden:
		return http.StatusForbidden
	case KindNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// Code returns the response code bound to k.
func (k Kind) Code() string {
	switch k {
	case KindBadRequest, KindValidation:
		return CodeBadParams
	case KindForbidden:
		return CodeValidationError
	case KindNotFound:
		return CodeNoData
	case KindInternalServerError:
		return CodeUnexpected
	default:
		return CodeUnknownError
	}
}

func (k Kind) String() string {
	switch k {
	case KindBadRequest:
		return "BadRequest"
	case KindForbidden:
		return "Forbidden"
	case KindNotFound:
		return "NotFound"
	case KindInternalServerError:
		return "InternalServerError"
	case KindValidation:
		return "ValidationError"
	default:
		return "Unknown"
	}
}

// KindFromStatus maps an HTTP status back to its kind.
func KindFromStatus(status int) Kind {
	switch status {
	case http.StatusBadRequest:
		return KindBadRequest
	case http.StatusForbidden:
		return KindForbidden
	case http.StatusNotFound:
		return KindNotFound
	case http.StatusInternalServerError:
		return KindInternalServerError
	default:
		return KindUnknown
	}
}
