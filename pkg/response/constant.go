package response

const (
	// MessageInternalServerError is the message of a failed job response.
	MessageInternalServerError = "Internal Server Error"
)
