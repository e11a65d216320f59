package alert

// --- Inbound event ---

// Event is a log-subscription delivery. Data is base64(gzip(json(LogsData))).
type Event struct {
	AWSLogs AWSLogs `json:"awslogs"`
}

type AWSLogs struct {
	Data string `json:"data"`
}

// LogsData is the decoded batch of log lines from one log stream.
type LogsData struct {
	MessageType         string     `json:"messageType"`
	Owner               string     `json:"owner"`
	LogGroup            string     `json:"logGroup"`
	LogStream           string     `json:"logStream"`
	SubscriptionFilters []string   `json:"subscriptionFilters"`
	LogEvents           []LogEvent `json:"logEvents"`
}

type LogEvent struct {
	ID        string `json:"id"`
	Timestamp int64  `json:"timestamp"`
	Message   string `json:"message"`
}

// --- UseCase output ---

const (
	MessageFinished = "Finished."
	MessageFailed   = "Error posting to Slack."
)

// Output lists the chat API status code of every relayed line, in order.
type Output struct {
	Message string `json:"message"`
	Codes   []int  `json:"codes"`
}
