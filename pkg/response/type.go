package response

// ErrorResp is the wire envelope for every failed request.
type ErrorResp struct {
	Msg    string `json:"msg"`
	Errors []any  `json:"errors"`
}

// MessageResp is the envelope used by event-style entry points.
type MessageResp struct {
	Message string `json:"message"`
	Error   string `json:"error,omitempty"`
}
